package ai

import (
	"context"
	"fmt"
)

// StaticAnswerer is the no-LLM fallback: it echoes the question inside
// a fixed template. Used when no API key is configured.
type StaticAnswerer struct{}

func (StaticAnswerer) Answer(ctx context.Context, question string) (string, error) {
	return fmt.Sprintf(`This is a dummy answer for: "%s"`, question), nil
}
