package sqlite

import (
	"context"
	"database/sql"

	"github.com/bryanwahyu/spinalscan/internal/domain/predictions"
	"github.com/bryanwahyu/spinalscan/internal/domain/users"
)

type PredictionRepository struct {
	db *sql.DB
}

func NewPredictionRepository(db *sql.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Save(ctx context.Context, p *predictions.Prediction) error {
	const q = `
INSERT INTO predictions (id, user_id, filename, result, confidence, image_url, created_at)
VALUES (?,?,?,?,?,?,?);
`
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.UserID, p.Filename, p.Result, p.Confidence, p.ImageURL, p.CreatedAt,
	)
	return err
}

func (r *PredictionRepository) RecentFor(ctx context.Context, user users.UserID, limit int) ([]*predictions.Prediction, error) {
	if limit <= 0 {
		limit = 5
	}
	const q = `
SELECT id, user_id, filename, result, confidence, image_url, created_at
FROM predictions
WHERE user_id=? ORDER BY created_at DESC, id DESC LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, user, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*predictions.Prediction
	for rows.Next() {
		var p predictions.Prediction
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Filename, &p.Result, &p.Confidence, &p.ImageURL, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *PredictionRepository) CountsFor(ctx context.Context, user users.UserID) (predictions.Counts, error) {
	const q = `
SELECT
  COALESCE(SUM(CASE WHEN result=? THEN 1 ELSE 0 END),0),
  COALESCE(SUM(CASE WHEN result=? THEN 1 ELSE 0 END),0)
FROM predictions WHERE user_id=?;
`
	var c predictions.Counts
	err := r.db.QueryRowContext(ctx, q,
		predictions.LabelTumor, predictions.LabelNoTumor, user,
	).Scan(&c.Tumor, &c.NoTumor)
	return c, err
}
