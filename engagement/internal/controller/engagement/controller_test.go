package engagement

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v6"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"ugcengagement/engagement/configs"
	gen "ugcengagement/engagement/gen/mock/repository"
	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/internal/repository/memory"
	"ugcengagement/engagement/internal/repository/sqldb"
	"ugcengagement/engagement/pkg/model"
)

var stores = map[string]func(t *testing.T) repository.Store{
	"memory": func(t *testing.T) repository.Store {
		return memory.New(zap.NewNop())
	},
	"sqlite": func(t *testing.T) repository.Store {
		s, err := sqldb.NewSQLite(context.Background(), configs.SqliteConfig{Path: filepath.Join(t.TempDir(), "engagement.db")}, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	},
}

func forEachStore(t *testing.T, fn func(t *testing.T, store repository.Store, c *Controller)) {
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			fn(t, store, New(store, nil, tally.NoopScope, zap.NewNop()))
		})
	}
}

func stats(t *testing.T, c *Controller, filmID model.FilmID) *model.FilmStats {
	t.Helper()
	s, err := c.GetFilmStats(context.Background(), filmID)
	require.NoError(t, err)
	return s
}

func TestReactionScenario(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ repository.Store, c *Controller) {
		ctx := context.Background()
		ch, err := c.SetReaction(ctx, "F", "U1", model.ReactionLike)
		require.NoError(t, err)
		assert.True(t, ch.Applied())
		s := stats(t, c, "F")
		assert.Equal(t, [2]int64{1, 0}, [2]int64{s.Likes, s.Dislikes})

		ch, err = c.SetReaction(ctx, "F", "U1", model.ReactionDislike)
		require.NoError(t, err)
		assert.Equal(t, model.Change[model.Reaction]{Previous: model.ReactionLike, Current: model.ReactionDislike}, ch)
		s = stats(t, c, "F")
		assert.Equal(t, [2]int64{0, 1}, [2]int64{s.Likes, s.Dislikes})

		ch, err = c.ClearReaction(ctx, "F", "U1")
		require.NoError(t, err)
		assert.True(t, ch.Applied())
		s = stats(t, c, "F")
		assert.Equal(t, [2]int64{0, 0}, [2]int64{s.Likes, s.Dislikes})
	})
}

func TestReactionIdempotence(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ repository.Store, c *Controller) {
		ctx := context.Background()
		_, err := c.SetReaction(ctx, "F", "U1", model.ReactionLike)
		require.NoError(t, err)
		ch, err := c.SetReaction(ctx, "F", "U1", model.ReactionLike)
		require.NoError(t, err)
		assert.False(t, ch.Applied())
		assert.Equal(t, int64(1), stats(t, c, "F").Likes)

		_, err = c.ClearReaction(ctx, "F", "U1")
		require.NoError(t, err)
		ch, err = c.ClearReaction(ctx, "F", "U1")
		require.NoError(t, err)
		assert.False(t, ch.Applied())
		assert.Equal(t, int64(0), stats(t, c, "F").Likes)

		got, err := c.GetReaction(ctx, "F", "U1")
		require.NoError(t, err)
		assert.Equal(t, model.ReactionNone, got)
	})
}

func TestRatingScenario(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ repository.Store, c *Controller) {
		ctx := context.Background()
		_, err := c.SetRating(ctx, "F", "U1", 7)
		require.NoError(t, err)
		ch, err := c.SetRating(ctx, "F", "U1", 9)
		require.NoError(t, err)
		assert.Equal(t, model.Change[model.Score]{Previous: 7, Current: 9}, ch)
		s := stats(t, c, "F")
		assert.Equal(t, int64(1), s.RatingsCount)
		assert.Equal(t, int64(9), s.RatingsSum)
		assert.InDelta(t, 9.0, s.AvgRating, 1e-9)

		_, err = c.SetRating(ctx, "F", "U2", 5)
		require.NoError(t, err)
		s = stats(t, c, "F")
		assert.Equal(t, int64(2), s.RatingsCount)
		assert.Equal(t, int64(14), s.RatingsSum)
		assert.InDelta(t, 7.0, s.AvgRating, 1e-9)

		_, err = c.ClearRating(ctx, "F", "U2")
		require.NoError(t, err)
		s = stats(t, c, "F")
		assert.Equal(t, int64(1), s.RatingsCount)
		assert.Equal(t, int64(9), s.RatingsSum)
		assert.InDelta(t, 9.0, s.AvgRating, 1e-9)

		ch, err = c.ClearRating(ctx, "F", "nobody")
		require.NoError(t, err)
		assert.False(t, ch.Applied())
		assert.Equal(t, int64(1), stats(t, c, "F").RatingsCount)
	})
}

func TestRatingConservation(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ repository.Store, c *Controller) {
		ctx := context.Background()
		rnd := rand.New(rand.NewSource(42))
		users := make([]model.UserID, 12)
		for i := range users {
			users[i] = model.UserID(fmt.Sprintf("user-%d", i))
			for j := 0; j < 3; j++ {
				_, err := c.SetRating(ctx, "F", users[i], model.Score(1+rnd.Intn(10)))
				require.NoError(t, err)
			}
		}
		assert.Equal(t, int64(len(users)), stats(t, c, "F").RatingsCount)

		rnd.Shuffle(len(users), func(i, j int) { users[i], users[j] = users[j], users[i] })
		for _, u := range users {
			ch, err := c.ClearRating(ctx, "F", u)
			require.NoError(t, err)
			assert.True(t, ch.Applied())
		}
		s := stats(t, c, "F")
		assert.Equal(t, int64(0), s.RatingsCount)
		assert.Equal(t, int64(0), s.RatingsSum)
		assert.Equal(t, 0.0, s.AvgRating)
	})
}

func TestReactionCommutativity(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ repository.Store, c *Controller) {
		ctx := context.Background()
		plans := map[model.UserID][]model.Reaction{
			"a": {model.ReactionLike, model.ReactionDislike, model.ReactionLike},
			"b": {model.ReactionDislike},
			"c": {model.ReactionLike, model.ReactionNone},
			"d": {model.ReactionDislike, model.ReactionDislike, model.ReactionLike, model.ReactionDislike},
			"e": {model.ReactionLike},
			"f": {model.ReactionNone, model.ReactionLike},
		}
		var wg sync.WaitGroup
		errs := make(chan error, 32)
		for user, plan := range plans {
			wg.Add(1)
			go func(user model.UserID, plan []model.Reaction) {
				defer wg.Done()
				for _, r := range plan {
					var err error
					if r == model.ReactionNone {
						_, err = c.ClearReaction(ctx, "F", user)
					} else {
						_, err = c.SetReaction(ctx, "F", user, r)
					}
					if err != nil {
						errs <- err
					}
				}
			}(user, plan)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
		// a, e and f end liking; b and d end disliking; c has cleared.
		s := stats(t, c, "F")
		assert.Equal(t, int64(3), s.Likes)
		assert.Equal(t, int64(2), s.Dislikes)
	})
}

func TestReviewVoteScenario(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ repository.Store, c *Controller) {
		ctx := context.Background()
		review, err := c.CreateReview(ctx, "F", "author", "a fine film")
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats(t, c, "F").ReviewsCount)

		ch, err := c.VoteReview(ctx, review.ID, "U2", model.VoteUp)
		require.NoError(t, err)
		assert.True(t, ch.Applied())
		assert.Equal(t, int64(1), stats(t, c, "F").VotesUp)

		ch, err = c.VoteReview(ctx, review.ID, "U2", model.VoteUp)
		require.NoError(t, err)
		assert.False(t, ch.Applied())

		ch, err = c.VoteReview(ctx, review.ID, "U2", model.VoteDown)
		require.NoError(t, err)
		assert.Equal(t, model.Change[model.Vote]{Previous: model.VoteUp, Current: model.VoteDown}, ch)
		s := stats(t, c, "F")
		assert.Equal(t, int64(0), s.VotesUp)
		assert.Equal(t, int64(1), s.VotesDown)
		got, err := c.GetReview(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.VotesUp)
		assert.Equal(t, int64(1), got.VotesDown)

		require.NoError(t, c.DeleteReview(ctx, "author", review.ID))
		s = stats(t, c, "F")
		assert.Equal(t, int64(0), s.ReviewsCount)
		assert.Equal(t, int64(0), s.VotesUp)
		assert.Equal(t, int64(0), s.VotesDown)
		vote, err := c.GetVote(ctx, review.ID, "U2")
		require.NoError(t, err)
		assert.Equal(t, model.VoteNone, vote)
		_, err = c.GetReview(ctx, review.ID)
		assert.Equal(t, FailureNotFound, KindOf(err))
	})
}

func TestUnvote(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ repository.Store, c *Controller) {
		ctx := context.Background()
		review, err := c.CreateReview(ctx, "F", "author", "text")
		require.NoError(t, err)
		ch, err := c.UnvoteReview(ctx, review.ID, "U2")
		require.NoError(t, err)
		assert.False(t, ch.Applied())

		_, err = c.VoteReview(ctx, review.ID, "U2", model.VoteDown)
		require.NoError(t, err)
		ch, err = c.UnvoteReview(ctx, review.ID, "U2")
		require.NoError(t, err)
		assert.Equal(t, model.Change[model.Vote]{Previous: model.VoteDown, Current: model.VoteNone}, ch)
		assert.Equal(t, int64(0), stats(t, c, "F").VotesDown)

		_, err = c.VoteReview(ctx, "missing", "U2", model.VoteUp)
		assert.Equal(t, FailureNotFound, KindOf(err))
		_, err = c.UnvoteReview(ctx, "missing", "U2")
		assert.Equal(t, FailureNotFound, KindOf(err))
	})
}

func TestReviewOwnership(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ repository.Store, c *Controller) {
		ctx := context.Background()
		review, err := c.CreateReview(ctx, "F", "author", "text")
		require.NoError(t, err)
		_, err = c.VoteReview(ctx, review.ID, "voter", model.VoteUp)
		require.NoError(t, err)

		err = c.DeleteReview(ctx, "intruder", review.ID)
		assert.Equal(t, FailureNotAuthorized, KindOf(err))
		assert.ErrorIs(t, err, ErrNotAuthorized)
		_, err = c.EditReview(ctx, "intruder", review.ID, "spam")
		assert.Equal(t, FailureNotAuthorized, KindOf(err))

		// The rejected cascade leaves votes and stats untouched.
		vote, err := c.GetVote(ctx, review.ID, "voter")
		require.NoError(t, err)
		assert.Equal(t, model.VoteUp, vote)
		s := stats(t, c, "F")
		assert.Equal(t, int64(1), s.ReviewsCount)
		assert.Equal(t, int64(1), s.VotesUp)

		edited, err := c.EditReview(ctx, "author", review.ID, "second thoughts")
		require.NoError(t, err)
		assert.Equal(t, "second thoughts", edited.Text)

		err = c.DeleteReview(ctx, "author", "missing")
		assert.Equal(t, FailureNotFound, KindOf(err))
		_, err = c.EditReview(ctx, "author", "missing", "text")
		assert.Equal(t, FailureNotFound, KindOf(err))
	})
}

var errInjected = errors.New("injected failure")

// failingStore hands every transaction a wrapped Tx that fails one
// step after the earlier writes have been made.
type failingStore struct {
	repository.Store
	wrap func(tx repository.Tx) repository.Tx
}

func (s failingStore) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	return s.Store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		return fn(ctx, s.wrap(tx))
	})
}

type failingDeleteTx struct {
	repository.Tx
}

func (failingDeleteTx) DeleteReview(context.Context, model.ReviewID, model.UserID) (*model.Review, error) {
	return nil, errInjected
}

type failingStatsTx struct {
	repository.Tx
}

func (failingStatsTx) ApplyStatsDelta(context.Context, model.FilmID, model.StatsDelta) (*model.FilmStats, error) {
	return nil, errInjected
}

type failingAverageTx struct {
	repository.Tx
}

func (failingAverageTx) RecomputeAverage(context.Context, model.FilmID) (*model.FilmStats, error) {
	return nil, errInjected
}

func failing(store repository.Store, wrap func(tx repository.Tx) repository.Tx) *Controller {
	return New(failingStore{Store: store, wrap: wrap}, nil, tally.NoopScope, zap.NewNop())
}

func TestDeleteReviewAtomicity(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repository.Store, c *Controller) {
		ctx := context.Background()
		review, err := c.CreateReview(ctx, "F", "author", "text")
		require.NoError(t, err)
		_, err = c.VoteReview(ctx, review.ID, "voter", model.VoteUp)
		require.NoError(t, err)

		err = failing(store, func(tx repository.Tx) repository.Tx { return failingDeleteTx{tx} }).
			DeleteReview(ctx, "author", review.ID)
		require.Error(t, err)
		assert.Equal(t, FailureAborted, KindOf(err))
		assert.ErrorIs(t, err, errInjected)

		vote, err := c.GetVote(ctx, review.ID, "voter")
		require.NoError(t, err)
		assert.Equal(t, model.VoteUp, vote)
		_, err = c.GetReview(ctx, review.ID)
		require.NoError(t, err)
		s := stats(t, c, "F")
		assert.Equal(t, int64(1), s.ReviewsCount)
		assert.Equal(t, int64(1), s.VotesUp)
	})
}

func TestBookmarks(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ repository.Store, c *Controller) {
		ctx := context.Background()
		created, err := c.AddBookmark(ctx, "F", "U1")
		require.NoError(t, err)
		assert.True(t, created)
		created, err = c.AddBookmark(ctx, "F", "U1")
		require.NoError(t, err)
		assert.False(t, created)

		deleted, err := c.RemoveBookmark(ctx, "F", "U1")
		require.NoError(t, err)
		assert.True(t, deleted)
		deleted, err = c.RemoveBookmark(ctx, "F", "U1")
		require.NoError(t, err)
		assert.False(t, deleted)

		// Bookmarks are not part of the film stats.
		s := stats(t, c, "F")
		assert.Equal(t, model.FilmStats{FilmID: "F", CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}, *s)
	})
}

func TestVoteAtomicity(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repository.Store, c *Controller) {
		ctx := context.Background()
		review, err := c.CreateReview(ctx, "F", "author", "text")
		require.NoError(t, err)
		_, err = c.VoteReview(ctx, review.ID, "voter", model.VoteUp)
		require.NoError(t, err)

		// The stats step fails after the vote fact and the review
		// counters have been written.
		broken := failing(store, func(tx repository.Tx) repository.Tx { return failingStatsTx{tx} })
		_, err = broken.VoteReview(ctx, review.ID, "voter", model.VoteDown)
		assert.Equal(t, FailureAborted, KindOf(err))
		assert.ErrorIs(t, err, errInjected)
		_, err = broken.VoteReview(ctx, review.ID, "newcomer", model.VoteUp)
		assert.ErrorIs(t, err, errInjected)
		_, err = broken.UnvoteReview(ctx, review.ID, "voter")
		assert.ErrorIs(t, err, errInjected)

		vote, err := c.GetVote(ctx, review.ID, "voter")
		require.NoError(t, err)
		assert.Equal(t, model.VoteUp, vote)
		vote, err = c.GetVote(ctx, review.ID, "newcomer")
		require.NoError(t, err)
		assert.Equal(t, model.VoteNone, vote)
		got, err := c.GetReview(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.VotesUp)
		assert.Equal(t, int64(0), got.VotesDown)
		s := stats(t, c, "F")
		assert.Equal(t, int64(1), s.VotesUp)
		assert.Equal(t, int64(0), s.VotesDown)
	})
}

func TestRatingAtomicity(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repository.Store, c *Controller) {
		ctx := context.Background()
		_, err := c.SetRating(ctx, "F", "U1", 7)
		require.NoError(t, err)

		// The average step fails after the rating fact and the
		// counters have been written.
		broken := failing(store, func(tx repository.Tx) repository.Tx { return failingAverageTx{tx} })
		_, err = broken.SetRating(ctx, "F", "U1", 9)
		assert.Equal(t, FailureStore, KindOf(err))
		assert.ErrorIs(t, err, errInjected)
		_, err = broken.SetRating(ctx, "F", "U2", 3)
		assert.ErrorIs(t, err, errInjected)
		_, err = broken.ClearRating(ctx, "F", "U1")
		assert.ErrorIs(t, err, errInjected)

		score, err := c.GetRating(ctx, "F", "U1")
		require.NoError(t, err)
		assert.Equal(t, model.Score(7), score)
		score, err = c.GetRating(ctx, "F", "U2")
		require.NoError(t, err)
		assert.Equal(t, model.NoScore, score)
		s := stats(t, c, "F")
		assert.Equal(t, int64(1), s.RatingsCount)
		assert.Equal(t, int64(7), s.RatingsSum)
		assert.InDelta(t, 7.0, s.AvgRating, 1e-9)

		// A reaction never touches the average, so the broken step is
		// not reached.
		ch, err := broken.SetReaction(ctx, "F", "U1", model.ReactionLike)
		require.NoError(t, err)
		assert.True(t, ch.Applied())
	})
}

func TestValidation(t *testing.T) {
	c := New(memory.New(zap.NewNop()), nil, tally.NoopScope, zap.NewNop())
	ctx := context.Background()
	long := model.FilmID(fmt.Sprintf("%065d", 0))
	tests := []struct {
		name string
		call func() error
	}{
		{name: "empty film", call: func() error { _, err := c.SetReaction(ctx, "", "u", model.ReactionLike); return err }},
		{name: "long film", call: func() error { _, err := c.SetReaction(ctx, long, "u", model.ReactionLike); return err }},
		{name: "non ascii user", call: func() error { _, err := c.SetReaction(ctx, "f", "ü", model.ReactionLike); return err }},
		{name: "zero reaction", call: func() error { _, err := c.SetReaction(ctx, "f", "u", model.ReactionNone); return err }},
		{name: "reaction out of range", call: func() error { _, err := c.SetReaction(ctx, "f", "u", 2); return err }},
		{name: "score too low", call: func() error { _, err := c.SetRating(ctx, "f", "u", 0); return err }},
		{name: "score too high", call: func() error { _, err := c.SetRating(ctx, "f", "u", 11); return err }},
		{name: "empty review text", call: func() error { _, err := c.CreateReview(ctx, "f", "u", ""); return err }},
		{name: "empty edit text", call: func() error { _, err := c.EditReview(ctx, "u", "r", ""); return err }},
		{name: "unknown vote", call: func() error { _, err := c.VoteReview(ctx, "r", "u", "sideways"); return err }},
		{name: "empty vote", call: func() error { _, err := c.VoteReview(ctx, "r", "u", model.VoteNone); return err }},
		{name: "empty review id", call: func() error { return c.DeleteReview(ctx, "u", "") }},
		{name: "empty stats film", call: func() error { _, err := c.GetFilmStats(ctx, ""); return err }},
		{name: "empty bookmark film", call: func() error { _, err := c.AddBookmark(ctx, "", "u"); return err }},
		{name: "non ascii bookmark user", call: func() error { _, err := c.RemoveBookmark(ctx, "f", "ü"); return err }},
		{name: "unknown event", call: func() error {
			_, err := c.Apply(ctx, model.EngagementEvent{Type: "bookmark.set", FilmID: "f", UserID: "u"})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.Equal(t, FailureValidation, KindOf(err), tt.name)
			assert.ErrorIs(t, err, ErrValidation, tt.name)
		})
	}
}

func TestStoreFailures(t *testing.T) {
	errStore := errors.New("connection refused")
	tests := []struct {
		name     string
		expect   func(m *gen.MockengagementStore)
		call     func(c *Controller) error
		wantKind FailureKind
	}{
		{
			name: "reaction transaction fails",
			expect: func(m *gen.MockengagementStore) {
				m.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(errStore)
			},
			call: func(c *Controller) error {
				_, err := c.SetReaction(context.Background(), "f", "u", model.ReactionLike)
				return err
			},
			wantKind: FailureStore,
		},
		{
			name: "stats read fails",
			expect: func(m *gen.MockengagementStore) {
				m.EXPECT().EnsureStats(gomock.Any(), model.FilmID("f")).Return(nil, errStore)
			},
			call: func(c *Controller) error {
				_, err := c.GetFilmStats(context.Background(), "f")
				return err
			},
			wantKind: FailureStore,
		},
		{
			name: "review read fails",
			expect: func(m *gen.MockengagementStore) {
				m.EXPECT().GetReview(gomock.Any(), model.ReviewID("r")).Return(nil, errStore)
			},
			call: func(c *Controller) error {
				_, err := c.GetReview(context.Background(), "r")
				return err
			},
			wantKind: FailureStore,
		},
		{
			name: "review not found",
			expect: func(m *gen.MockengagementStore) {
				m.EXPECT().GetReview(gomock.Any(), model.ReviewID("r")).Return(nil, repository.ErrNotFound)
			},
			call: func(c *Controller) error {
				_, err := c.GetReview(context.Background(), "r")
				return err
			},
			wantKind: FailureNotFound,
		},
		{
			name: "delete cascade fails",
			expect: func(m *gen.MockengagementStore) {
				m.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(errStore)
			},
			call: func(c *Controller) error {
				return c.DeleteReview(context.Background(), "u", "r")
			},
			wantKind: FailureAborted,
		},
		{
			name: "bookmark write fails",
			expect: func(m *gen.MockengagementStore) {
				m.EXPECT().AddBookmark(gomock.Any(), model.FilmID("f"), model.UserID("u")).Return(false, errStore)
			},
			call: func(c *Controller) error {
				_, err := c.AddBookmark(context.Background(), "f", "u")
				return err
			},
			wantKind: FailureStore,
		},
		{
			name: "review deleted while voting",
			expect: func(m *gen.MockengagementStore) {
				m.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn repository.TxFunc) error {
					return fn(ctx, m)
				})
				m.EXPECT().GetReview(gomock.Any(), model.ReviewID("r")).Return(&model.Review{ID: "r", FilmID: "f"}, nil)
				m.EXPECT().SetVote(gomock.Any(), model.ReviewID("r"), model.UserID("u"), model.VoteUp).Return(model.VoteNone, repository.ErrNotFound)
			},
			call: func(c *Controller) error {
				_, err := c.VoteReview(context.Background(), "r", "u", model.VoteUp)
				return err
			},
			wantKind: FailureNotFound,
		},
		{
			name: "vote transaction fails",
			expect: func(m *gen.MockengagementStore) {
				m.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(errStore)
			},
			call: func(c *Controller) error {
				_, err := c.VoteReview(context.Background(), "r", "u", model.VoteUp)
				return err
			},
			wantKind: FailureAborted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storeMock := gen.NewMockengagementStore(ctrl)
			tt.expect(storeMock)
			c := New(storeMock, nil, tally.NoopScope, zap.NewNop())
			err := tt.call(c)
			assert.Equal(t, tt.wantKind, KindOf(err), tt.name)
		})
	}
}

// ackCounter hands out acknowledgements and counts the ones used.
type ackCounter struct {
	mu    sync.Mutex
	acked []model.EngagementEventType
}

func (a *ackCounter) deliver(e model.EngagementEvent) model.EngagementDelivery {
	return model.EngagementDelivery{Event: e, Ack: func() error {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.acked = append(a.acked, e.Type)
		return nil
	}}
}

func TestStartIngestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingesterMock := gen.NewMockengagementIngester(ctrl)
	ch := make(chan model.EngagementDelivery, 8)
	ctx := context.Background()
	ingesterMock.EXPECT().Ingest(ctx).Return(ch, nil)

	acks := &ackCounter{}
	c := New(memory.New(zap.NewNop()), ingesterMock, tally.NoopScope, zap.NewNop())
	ch <- acks.deliver(model.EngagementEvent{Type: model.EventTypeReactionSet, FilmID: "F", UserID: "u1", Value: 1})
	ch <- acks.deliver(model.EngagementEvent{Type: model.EventTypeReactionSet, FilmID: "F", UserID: "u1", Value: 1})
	ch <- acks.deliver(model.EngagementEvent{Type: model.EventTypeRatingSet, FilmID: "F", UserID: "u1", Value: 8})
	ch <- acks.deliver(model.EngagementEvent{Type: model.EventTypeRatingSet, FilmID: "F", UserID: "u2", Value: 42})
	ch <- acks.deliver(model.EngagementEvent{Type: model.EventTypeReactionSet, FilmID: "F", UserID: "u2", Value: -1})
	ch <- acks.deliver(model.EngagementEvent{Type: model.EventTypeReactionClear, FilmID: "F", UserID: "u2"})
	ch <- model.EngagementDelivery{Event: model.EngagementEvent{Type: model.EventTypeRatingClear, FilmID: "F", UserID: "u3"}}
	close(ch)

	require.NoError(t, c.StartIngestion(ctx))
	s := stats(t, c, "F")
	assert.Equal(t, int64(1), s.Likes)
	assert.Equal(t, int64(0), s.Dislikes)
	assert.Equal(t, int64(1), s.RatingsCount)
	assert.InDelta(t, 8.0, s.AvgRating, 1e-9)
	assert.Len(t, acks.acked, 6, "applied and invalid events are acknowledged")
}

func TestStartIngestionLeavesFailedEventUnacknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingesterMock := gen.NewMockengagementIngester(ctrl)
	storeMock := gen.NewMockengagementStore(ctrl)
	ch := make(chan model.EngagementDelivery, 2)
	ctx := context.Background()
	ingesterMock.EXPECT().Ingest(ctx).Return(ch, nil)
	storeMock.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	acks := &ackCounter{}
	ch <- acks.deliver(model.EngagementEvent{Type: model.EventTypeReactionSet, FilmID: "F", UserID: "u1", Value: 1})
	ch <- acks.deliver(model.EngagementEvent{Type: model.EventTypeReactionSet, FilmID: "F", UserID: "u2", Value: 1})
	close(ch)

	c := New(storeMock, ingesterMock, tally.NoopScope, zap.NewNop())
	err := c.StartIngestion(ctx)
	assert.Equal(t, FailureStore, KindOf(err))
	assert.Empty(t, acks.acked)
}

func TestStartIngestionWithoutIngester(t *testing.T) {
	c := New(memory.New(zap.NewNop()), nil, tally.NoopScope, zap.NewNop())
	assert.ErrorIs(t, c.StartIngestion(context.Background()), ErrNoIngester)
}
