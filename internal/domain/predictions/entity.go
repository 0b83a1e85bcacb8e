package predictions

import (
	"time"

	"github.com/bryanwahyu/spinalscan/internal/domain/users"
)

// PredictionID identifier type
type PredictionID string

// Label enum: the two outcomes the simulated model can produce.
type Label string

const (
	LabelTumor   Label = "Tumor Detected"
	LabelNoTumor Label = "No Tumor"
)

// Prediction is one classification of one uploaded scan. Records are
// append-only: nothing updates or deletes them.
type Prediction struct {
	ID         PredictionID `json:"id"`
	UserID     users.UserID `json:"user_id"`
	Filename   string       `json:"filename"`
	Result     Label        `json:"result"`
	Confidence string       `json:"confidence"`
	ImageURL   string       `json:"image_url,omitempty"`
	CreatedAt  time.Time    `json:"date"`
}

// Counts per label for one user, unbounded by time.
type Counts struct {
	Tumor   int `json:"tumor"`
	NoTumor int `json:"no_tumor"`
}
