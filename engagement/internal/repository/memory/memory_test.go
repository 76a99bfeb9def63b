package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
	"ugcengagement/engagement/pkg/testutil"
)

func TestRepository(t *testing.T) {
	testutil.RunStoreSuite(t, func(t *testing.T) repository.Store {
		return New(zap.NewNop())
	})
}

func TestClearRemovesEmptySubjects(t *testing.T) {
	r := New(zap.NewNop())
	ctx := context.Background()
	_, err := r.SetReaction(ctx, "f1", "u1", model.ReactionLike)
	require.NoError(t, err)
	_, err = r.ClearReaction(ctx, "f1", "u1")
	require.NoError(t, err)
	assert.Empty(t, r.state.reactions)
}

func TestJournalOnlyInsideTx(t *testing.T) {
	r := New(zap.NewNop())
	ctx := context.Background()
	_, err := r.SetRating(ctx, "f1", "u1", 3)
	require.NoError(t, err)
	assert.Nil(t, r.state.journal)

	err = r.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		_, err := tx.SetRating(ctx, "f1", "u1", 5)
		assert.Len(t, r.state.journal, 1)
		return err
	})
	require.NoError(t, err)
	assert.Nil(t, r.state.journal)
}
