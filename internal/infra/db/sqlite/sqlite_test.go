package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/spinalscan/internal/domain/chat"
	"github.com/bryanwahyu/spinalscan/internal/domain/predictions"
	"github.com/bryanwahyu/spinalscan/internal/domain/users"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Connect(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func testUser(id, email string) *users.User {
	return &users.User{
		ID:           users.UserID(id),
		Name:         "Ann",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("u-1", "ann@x.com")))

	u, err := repo.ByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, users.UserID("u-1"), u.ID)
	assert.Equal(t, "Ann", u.Name)

	u, err = repo.ByID(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "ann@x.com", u.Email)

	missing, err := repo.ByEmail(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("u-1", "ann@x.com")))

	err := repo.Create(ctx, testUser("u-2", "ann@x.com"))
	require.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestPredictionRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewPredictionRepository(db)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	labels := []predictions.Label{
		predictions.LabelTumor, predictions.LabelNoTumor, predictions.LabelTumor,
		predictions.LabelTumor, predictions.LabelNoTumor, predictions.LabelTumor,
		predictions.LabelNoTumor,
	}
	for i, label := range labels {
		p := &predictions.Prediction{
			ID:         predictions.PredictionID(fmt.Sprintf("p-%d", i)),
			UserID:     "u-1",
			Filename:   fmt.Sprintf("scan-%d.png", i),
			Result:     label,
			Confidence: "90.00%",
			ImageURL:   "http://store.local/mri-scans/x",
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Save(ctx, p))
	}

	recent, err := repo.RecentFor(ctx, "u-1", 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "scan-6.png", recent[0].Filename)
	for i := 0; i < len(recent)-1; i++ {
		assert.False(t, recent[i].CreatedAt.Before(recent[i+1].CreatedAt))
	}

	counts, err := repo.CountsFor(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, predictions.Counts{Tumor: 4, NoTumor: 3}, counts)

	// Another user sees nothing.
	other, err := repo.RecentFor(ctx, "u-2", 5)
	require.NoError(t, err)
	assert.Empty(t, other)
	counts, err = repo.CountsFor(ctx, "u-2")
	require.NoError(t, err)
	assert.Zero(t, counts.Tumor+counts.NoTumor)
}

func TestPredictionRepositoryDefaultLimit(t *testing.T) {
	repo := NewPredictionRepository(openTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		p := &predictions.Prediction{
			ID:         predictions.PredictionID(fmt.Sprintf("p-%d", i)),
			UserID:     "u-1",
			Filename:   "scan.png",
			Result:     predictions.LabelNoTumor,
			Confidence: "85.00%",
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Save(ctx, p))
	}

	recent, err := repo.RecentFor(ctx, "u-1", 0)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
}

func TestChatRepository(t *testing.T) {
	repo := NewChatRepository(openTestDB(t))
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, q := range []string{"first", "second", "third"} {
		e := &chat.Entry{
			ID:        chat.EntryID(fmt.Sprintf("c-%d", i)),
			UserID:    "u-1",
			Question:  q,
			Answer:    "answer for " + q,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Save(ctx, e))
	}

	history, err := repo.HistoryFor(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "third", history[0].Question)
	assert.Equal(t, "first", history[2].Question)

	other, err := repo.HistoryFor(ctx, "u-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
