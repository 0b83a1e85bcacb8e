package predictions

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bryanwahyu/spinalscan/internal/application"
	domain "github.com/bryanwahyu/spinalscan/internal/domain/predictions"
	"github.com/bryanwahyu/spinalscan/internal/domain/users"
	"github.com/bryanwahyu/spinalscan/internal/domain/validation"
)

// Service implements the upload/stats use-cases: classify the scan,
// store the image bytes, persist the record.
type Service struct {
	Repo       domain.Repository
	Classifier domain.Classifier
	Scans      domain.ScanStore
	Clock      application.Clock
}

// Stats bundles the dashboard response: last five predictions plus
// all-time per-label counts.
type Stats struct {
	Recent []*domain.Prediction `json:"recent_predictions"`
	Counts domain.Counts        `json:"total_counts"`
}

const recentLimit = 5

// Upload classifies the scan, uploads the bytes and persists the
// resulting prediction. The classification is simulated; only the
// Classifier implementation knows that.
func (s *Service) Upload(ctx context.Context, owner users.UserID, filename, contentType string, r io.Reader, size int64) (*domain.Prediction, error) {
	if filename == "" {
		return nil, validation.Errorf("no file uploaded")
	}
	// Never trust a client path; keep the base name only.
	filename = filepath.Base(filename)

	res, err := s.Classifier.Classify(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	id := domain.PredictionID(uuid.NewString())
	key := fmt.Sprintf("%s/%s-%s", owner, id, filename)
	url, err := s.Scans.Upload(ctx, key, contentType, r, size)
	if err != nil {
		return nil, fmt.Errorf("storing scan: %w", err)
	}

	p := &domain.Prediction{
		ID:         id,
		UserID:     owner,
		Filename:   filename,
		Result:     res.Label,
		Confidence: res.Confidence,
		ImageURL:   url,
		CreatedAt:  s.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving prediction: %w", err)
	}
	return p, nil
}

// Stats returns the recent predictions (newest first, at most limit,
// five when limit is not positive) and the unbounded per-label totals
// for one user.
func (s *Service) Stats(ctx context.Context, owner users.UserID, limit int) (*Stats, error) {
	if limit <= 0 {
		limit = recentLimit
	}
	recent, err := s.Repo.RecentFor(ctx, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("recent predictions: %w", err)
	}
	counts, err := s.Repo.CountsFor(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("prediction counts: %w", err)
	}
	if recent == nil {
		recent = []*domain.Prediction{}
	}
	return &Stats{Recent: recent, Counts: counts}, nil
}
