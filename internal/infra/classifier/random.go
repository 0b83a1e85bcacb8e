package classifier

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/bryanwahyu/spinalscan/internal/domain/predictions"
)

// Random is a placeholder classifier. It ignores the scan entirely
// and fabricates a result: a coin flip between the two labels and a
// confidence drawn uniformly from [80,99), rendered as "NN.NN%".
// Swapping in a real model means replacing this type and nothing else.
type Random struct {
	src *rand.Rand
}

// New returns a classifier seeded from the global source.
func New() *Random {
	return &Random{}
}

// NewWithSource returns a classifier with a fixed source, for tests.
func NewWithSource(src *rand.Rand) *Random {
	return &Random{src: src}
}

func (c *Random) float64() float64 {
	if c.src != nil {
		return c.src.Float64()
	}
	return rand.Float64()
}

func (c *Random) Classify(ctx context.Context, filename string) (predictions.Result, error) {
	label := predictions.LabelNoTumor
	if c.float64() > 0.5 {
		label = predictions.LabelTumor
	}
	confidence := 80 + c.float64()*(99-80)
	return predictions.Result{
		Label:      label,
		Confidence: fmt.Sprintf("%.2f%%", confidence),
	}, nil
}
