package sqldb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ugcengagement/engagement/configs"
	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
	"ugcengagement/engagement/pkg/testutil"
)

func newSQLite(t *testing.T) *Repository {
	t.Helper()
	r, err := NewSQLite(context.Background(), configs.SqliteConfig{Path: filepath.Join(t.TempDir(), "engagement.db")}, zap.NewNop())
	require.NoError(t, err)
	return r
}

func TestSQLiteRepository(t *testing.T) {
	testutil.RunStoreSuite(t, func(t *testing.T) repository.Store {
		return newSQLite(t)
	})
}

func TestSQLiteRequiresPath(t *testing.T) {
	_, err := NewSQLite(context.Background(), configs.SqliteConfig{Path: "  "}, zap.NewNop())
	assert.Error(t, err)
}

func TestSQLiteMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engagement.db")
	ctx := context.Background()
	r, err := NewSQLite(ctx, configs.SqliteConfig{Path: path}, zap.NewNop())
	require.NoError(t, err)
	_, err = r.SetReaction(ctx, "f1", "u1", model.ReactionLike)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	r, err = NewSQLite(ctx, configs.SqliteConfig{Path: path}, zap.NewNop())
	require.NoError(t, err)
	defer r.Close()
	got, err := r.GetReaction(ctx, "f1", "u1")
	require.NoError(t, err)
	assert.Equal(t, model.ReactionLike, got)
}

func TestSQLiteVotesReferenceReviews(t *testing.T) {
	r := newSQLite(t)
	defer r.Close()
	_, err := r.SetVote(context.Background(), "missing", "u1", model.VoteUp)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
