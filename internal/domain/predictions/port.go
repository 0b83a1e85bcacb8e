package predictions

import (
	"context"
	"io"

	"github.com/bryanwahyu/spinalscan/internal/domain/users"
)

// Repository port (interface for persistence)
type Repository interface {
	Save(ctx context.Context, p *Prediction) error
	// RecentFor returns at most limit predictions for the user,
	// newest first.
	RecentFor(ctx context.Context, user users.UserID, limit int) ([]*Prediction, error)
	CountsFor(ctx context.Context, user users.UserID) (Counts, error)
}

// Result of a classification.
type Result struct {
	Label      Label
	Confidence string
}

// Classifier port. The current implementation is a random placeholder
// with no relationship to scan content; a real model replaces this
// one interface without touching any other component.
type Classifier interface {
	Classify(ctx context.Context, filename string) (Result, error)
}

// ScanStore port (interface for uploaded image storage)
type ScanStore interface {
	// Upload stores the scan bytes under key and returns the object URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
}
