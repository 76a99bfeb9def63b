// Package testutil contains helpers shared by engagement store and
// service tests.
package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
)

// StoreFactory returns an empty store. The store is closed by the suite.
type StoreFactory func(t *testing.T) repository.Store

// NewReview returns a review with a fresh id and zero vote counters.
func NewReview(filmID model.FilmID, authorID model.UserID, text string) *model.Review {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &model.Review{
		ID:        model.ReviewID(uuid.NewString()),
		FilmID:    filmID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RunStoreSuite checks that a store implementation honours the
// repository contract.
func RunStoreSuite(t *testing.T, newStore StoreFactory) {
	t.Helper()
	open := func(t *testing.T) repository.Store {
		s := newStore(t)
		t.Cleanup(func() { _ = s.Close() })
		return s
	}

	t.Run("reaction swap returns previous", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		prev, err := s.SetReaction(ctx, "f1", "u1", model.ReactionLike)
		require.NoError(t, err)
		assert.Equal(t, model.ReactionNone, prev)
		prev, err = s.SetReaction(ctx, "f1", "u1", model.ReactionDislike)
		require.NoError(t, err)
		assert.Equal(t, model.ReactionLike, prev)
		prev, err = s.SetReaction(ctx, "f1", "u1", model.ReactionDislike)
		require.NoError(t, err)
		assert.Equal(t, model.ReactionDislike, prev)
		got, err := s.GetReaction(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.Equal(t, model.ReactionDislike, got)
		prev, err = s.ClearReaction(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.Equal(t, model.ReactionDislike, prev)
		prev, err = s.ClearReaction(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.Equal(t, model.ReactionNone, prev)
	})

	t.Run("rating swap returns previous", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		prev, err := s.SetRating(ctx, "f1", "u1", 7)
		require.NoError(t, err)
		assert.Equal(t, model.NoScore, prev)
		prev, err = s.SetRating(ctx, "f1", "u1", 9)
		require.NoError(t, err)
		assert.Equal(t, model.Score(7), prev)
		got, err := s.GetRating(ctx, "f1", "u2")
		require.NoError(t, err)
		assert.Equal(t, model.NoScore, got)
		prev, err = s.ClearRating(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.Equal(t, model.Score(9), prev)
	})

	t.Run("review lifecycle", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		review := NewReview("f1", "author", "great")
		require.NoError(t, s.CreateReview(ctx, review))
		assert.ErrorIs(t, s.CreateReview(ctx, review), repository.ErrAlreadyExists)

		got, err := s.GetReview(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, review.Text, got.Text)
		assert.Equal(t, review.AuthorID, got.AuthorID)
		assert.Equal(t, int64(0), got.VotesUp)

		_, err = s.UpdateReviewText(ctx, review.ID, "intruder", "spam")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		got, err = s.UpdateReviewText(ctx, review.ID, "author", "even better")
		require.NoError(t, err)
		assert.Equal(t, "even better", got.Text)

		got, err = s.ApplyReviewVotes(ctx, review.ID, model.StatsDelta{VotesUp: 2, VotesDown: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.VotesUp)
		assert.Equal(t, int64(1), got.VotesDown)

		_, err = s.DeleteReview(ctx, review.ID, "intruder")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		deleted, err := s.DeleteReview(ctx, review.ID, "author")
		require.NoError(t, err)
		assert.Equal(t, model.FilmID("f1"), deleted.FilmID)
		_, err = s.GetReview(ctx, review.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = s.ApplyReviewVotes(ctx, review.ID, model.StatsDelta{VotesUp: 1})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete review votes tallies removed facts", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		review := NewReview("f1", "author", "text")
		require.NoError(t, s.CreateReview(ctx, review))
		for user, v := range map[model.UserID]model.Vote{"a": model.VoteUp, "b": model.VoteUp, "c": model.VoteDown} {
			prev, err := s.SetVote(ctx, review.ID, user, v)
			require.NoError(t, err)
			assert.Equal(t, model.VoteNone, prev)
		}
		prev, err := s.SetVote(ctx, review.ID, "c", model.VoteUp)
		require.NoError(t, err)
		assert.Equal(t, model.VoteDown, prev)

		tally, err := s.DeleteReviewVotes(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, model.VoteTally{Up: 3}, tally)
		got, err := s.GetVote(ctx, review.ID, "a")
		require.NoError(t, err)
		assert.Equal(t, model.VoteNone, got)
		tally, err = s.DeleteReviewVotes(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, model.VoteTally{}, tally)
	})

	t.Run("vote on missing review is not found", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		_, err := s.SetVote(ctx, "missing", "u1", model.VoteUp)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		review := NewReview("f1", "author", "text")
		require.NoError(t, s.CreateReview(ctx, review))
		_, err = s.DeleteReview(ctx, review.ID, "author")
		require.NoError(t, err)
		_, err = s.SetVote(ctx, review.ID, "u1", model.VoteUp)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		got, err := s.GetVote(ctx, review.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, model.VoteNone, got)
	})

	t.Run("bookmarks report created and deleted", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		created, err := s.AddBookmark(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.True(t, created)
		created, err = s.AddBookmark(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.False(t, created)
		created, err = s.AddBookmark(ctx, "f2", "u1")
		require.NoError(t, err)
		assert.True(t, created)

		deleted, err := s.RemoveBookmark(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.True(t, deleted)
		deleted, err = s.RemoveBookmark(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.False(t, deleted)
		deleted, err = s.RemoveBookmark(ctx, "f3", "u1")
		require.NoError(t, err)
		assert.False(t, deleted)

		errBoom := errors.New("boom")
		err = s.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
			if _, err := tx.AddBookmark(ctx, "f1", "u1"); err != nil {
				return err
			}
			if _, err := tx.RemoveBookmark(ctx, "f2", "u1"); err != nil {
				return err
			}
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)
		created, err = s.AddBookmark(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.True(t, created, "the rolled back bookmark is gone")
		deleted, err = s.RemoveBookmark(ctx, "f2", "u1")
		require.NoError(t, err)
		assert.True(t, deleted, "the rolled back removal is undone")
	})

	t.Run("stats are created lazily and incremented", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		stats, err := s.EnsureStats(ctx, "f1")
		require.NoError(t, err)
		assert.Equal(t, model.FilmID("f1"), stats.FilmID)
		assert.Equal(t, int64(0), stats.Likes)
		assert.False(t, stats.CreatedAt.IsZero())

		stats, err = s.ApplyStatsDelta(ctx, "f2", model.StatsDelta{Likes: 1, RatingsCount: 2, RatingsSum: 15})
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Likes)
		stats, err = s.ApplyStatsDelta(ctx, "f2", model.StatsDelta{Likes: -1, Dislikes: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.Likes)
		assert.Equal(t, int64(1), stats.Dislikes)
		assert.Equal(t, 0.0, stats.AvgRating)

		stats, err = s.RecomputeAverage(ctx, "f2")
		require.NoError(t, err)
		assert.InDelta(t, 7.5, stats.AvgRating, 1e-9)

		// Ensuring an existing record never resets it.
		stats, err = s.EnsureStats(ctx, "f2")
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.RatingsCount)
		assert.Equal(t, int64(15), stats.RatingsSum)
	})

	t.Run("rollback discards every change", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		review := NewReview("f1", "author", "text")
		require.NoError(t, s.CreateReview(ctx, review))
		_, err := s.SetVote(ctx, review.ID, "voter", model.VoteUp)
		require.NoError(t, err)
		_, err = s.ApplyStatsDelta(ctx, "f1", model.StatsDelta{ReviewsCount: 1, VotesUp: 1})
		require.NoError(t, err)

		errBoom := errors.New("boom")
		err = s.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
			if _, err := tx.DeleteReviewVotes(ctx, review.ID); err != nil {
				return err
			}
			if _, err := tx.DeleteReview(ctx, review.ID, "author"); err != nil {
				return err
			}
			if _, err := tx.SetReaction(ctx, "f1", "voter", model.ReactionLike); err != nil {
				return err
			}
			if _, err := tx.ApplyStatsDelta(ctx, "f1", model.StatsDelta{ReviewsCount: -1, VotesUp: -1}); err != nil {
				return err
			}
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)

		got, err := s.GetReview(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, review.ID, got.ID)
		vote, err := s.GetVote(ctx, review.ID, "voter")
		require.NoError(t, err)
		assert.Equal(t, model.VoteUp, vote)
		reaction, err := s.GetReaction(ctx, "f1", "voter")
		require.NoError(t, err)
		assert.Equal(t, model.ReactionNone, reaction)
		stats, err := s.EnsureStats(ctx, "f1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.ReviewsCount)
		assert.Equal(t, int64(1), stats.VotesUp)
	})

	t.Run("commit keeps every change", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		err := s.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
			if _, err := tx.SetRating(ctx, "f1", "u1", 4); err != nil {
				return err
			}
			if _, err := tx.ApplyStatsDelta(ctx, "f1", model.StatsDelta{RatingsCount: 1, RatingsSum: 4}); err != nil {
				return err
			}
			_, err := tx.RecomputeAverage(ctx, "f1")
			return err
		})
		require.NoError(t, err)
		stats, err := s.EnsureStats(ctx, "f1")
		require.NoError(t, err)
		assert.InDelta(t, 4.0, stats.AvgRating, 1e-9)
		score, err := s.GetRating(ctx, "f1", "u1")
		require.NoError(t, err)
		assert.Equal(t, model.Score(4), score)
	})

	t.Run("concurrent increments commute", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
					_, err := tx.ApplyStatsDelta(ctx, "hot", model.StatsDelta{Likes: 1, VotesDown: 2})
					return err
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
		stats, err := s.EnsureStats(ctx, "hot")
		require.NoError(t, err)
		assert.Equal(t, int64(workers), stats.Likes)
		assert.Equal(t, int64(2*workers), stats.VotesDown)
	})
}
