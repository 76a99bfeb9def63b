package memory

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
	"ugcengagement/pkg/logging"
)

const tracerID = "engagement-repository-memory"

// Repository defines an in-memory engagement repository. A single mutex
// serializes every call, so each call and each transaction is atomic.
type Repository struct {
	mu     sync.Mutex
	state  *state
	logger *zap.Logger
}

// New creates a new memory repository.
func New(logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "memory"),
	)
	return &Repository{
		state: &state{
			reactions: map[model.FilmID]map[model.UserID]model.Reaction{},
			ratings:   map[model.FilmID]map[model.UserID]model.Score{},
			votes:     map[model.ReviewID]map[model.UserID]model.Vote{},
			reviews:   map[model.ReviewID]model.Review{},
			stats:     map[model.FilmID]model.FilmStats{},
			bookmarks: map[model.FilmID]map[model.UserID]time.Time{},
			now:       func() time.Time { return time.Now().UTC() },
		},
		logger: logger,
	}
}

// WithinTx runs fn while holding the repository lock. Every change fn
// makes is journaled and undone in reverse order if fn fails.
func (r *Repository) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/WithinTx")
	defer span.End()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.journal = []func(){}
	defer func() { r.state.journal = nil }()
	if err := fn(ctx, r.state); err != nil {
		r.logger.Debug("Rolling back transaction", zap.Int("changes", len(r.state.journal)), zap.Error(err))
		for i := len(r.state.journal) - 1; i >= 0; i-- {
			r.state.journal[i]()
		}
		return err
	}
	return nil
}

// Close releases nothing; it exists to satisfy the store lifecycle.
func (r *Repository) Close() error {
	return nil
}

func locked[T any](ctx context.Context, r *Repository, op string, fn func(s *state) (T, error)) (T, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/"+op)
	defer span.End()
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.state)
}

// GetReaction returns the user's reaction to a film.
func (r *Repository) GetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	return locked(ctx, r, "GetReaction", func(s *state) (model.Reaction, error) { return s.GetReaction(ctx, filmID, userID) })
}

// SetReaction stores the user's reaction and returns the previous one.
func (r *Repository) SetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID, value model.Reaction) (model.Reaction, error) {
	return locked(ctx, r, "SetReaction", func(s *state) (model.Reaction, error) { return s.SetReaction(ctx, filmID, userID, value) })
}

// ClearReaction removes the user's reaction and returns the previous one.
func (r *Repository) ClearReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	return locked(ctx, r, "ClearReaction", func(s *state) (model.Reaction, error) { return s.ClearReaction(ctx, filmID, userID) })
}

// GetRating returns the user's rating of a film.
func (r *Repository) GetRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	return locked(ctx, r, "GetRating", func(s *state) (model.Score, error) { return s.GetRating(ctx, filmID, userID) })
}

// SetRating stores the user's rating and returns the previous one.
func (r *Repository) SetRating(ctx context.Context, filmID model.FilmID, userID model.UserID, score model.Score) (model.Score, error) {
	return locked(ctx, r, "SetRating", func(s *state) (model.Score, error) { return s.SetRating(ctx, filmID, userID, score) })
}

// ClearRating removes the user's rating and returns the previous one.
func (r *Repository) ClearRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	return locked(ctx, r, "ClearRating", func(s *state) (model.Score, error) { return s.ClearRating(ctx, filmID, userID) })
}

// GetVote returns the user's vote on a review.
func (r *Repository) GetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	return locked(ctx, r, "GetVote", func(s *state) (model.Vote, error) { return s.GetVote(ctx, reviewID, userID) })
}

// SetVote stores the user's vote and returns the previous one.
func (r *Repository) SetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID, value model.Vote) (model.Vote, error) {
	return locked(ctx, r, "SetVote", func(s *state) (model.Vote, error) { return s.SetVote(ctx, reviewID, userID, value) })
}

// ClearVote removes the user's vote and returns the previous one.
func (r *Repository) ClearVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	return locked(ctx, r, "ClearVote", func(s *state) (model.Vote, error) { return s.ClearVote(ctx, reviewID, userID) })
}

// DeleteReviewVotes removes all votes of a review.
func (r *Repository) DeleteReviewVotes(ctx context.Context, reviewID model.ReviewID) (model.VoteTally, error) {
	return locked(ctx, r, "DeleteReviewVotes", func(s *state) (model.VoteTally, error) { return s.DeleteReviewVotes(ctx, reviewID) })
}

// CreateReview stores a new review.
func (r *Repository) CreateReview(ctx context.Context, review *model.Review) error {
	_, err := locked(ctx, r, "CreateReview", func(s *state) (struct{}, error) { return struct{}{}, s.CreateReview(ctx, review) })
	return err
}

// GetReview retrieves a review by id.
func (r *Repository) GetReview(ctx context.Context, reviewID model.ReviewID) (*model.Review, error) {
	return locked(ctx, r, "GetReview", func(s *state) (*model.Review, error) { return s.GetReview(ctx, reviewID) })
}

// UpdateReviewText replaces the text of the author's review.
func (r *Repository) UpdateReviewText(ctx context.Context, reviewID model.ReviewID, authorID model.UserID, text string) (*model.Review, error) {
	return locked(ctx, r, "UpdateReviewText", func(s *state) (*model.Review, error) { return s.UpdateReviewText(ctx, reviewID, authorID, text) })
}

// DeleteReview deletes the author's review.
func (r *Repository) DeleteReview(ctx context.Context, reviewID model.ReviewID, authorID model.UserID) (*model.Review, error) {
	return locked(ctx, r, "DeleteReview", func(s *state) (*model.Review, error) { return s.DeleteReview(ctx, reviewID, authorID) })
}

// ApplyReviewVotes increments the review vote counters.
func (r *Repository) ApplyReviewVotes(ctx context.Context, reviewID model.ReviewID, delta model.StatsDelta) (*model.Review, error) {
	return locked(ctx, r, "ApplyReviewVotes", func(s *state) (*model.Review, error) { return s.ApplyReviewVotes(ctx, reviewID, delta) })
}

// EnsureStats returns the film stats, creating them if absent.
func (r *Repository) EnsureStats(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	return locked(ctx, r, "EnsureStats", func(s *state) (*model.FilmStats, error) { return s.EnsureStats(ctx, filmID) })
}

// ApplyStatsDelta increments the film stats counters.
func (r *Repository) ApplyStatsDelta(ctx context.Context, filmID model.FilmID, delta model.StatsDelta) (*model.FilmStats, error) {
	return locked(ctx, r, "ApplyStatsDelta", func(s *state) (*model.FilmStats, error) { return s.ApplyStatsDelta(ctx, filmID, delta) })
}

// RecomputeAverage recomputes the average rating of a film.
func (r *Repository) RecomputeAverage(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	return locked(ctx, r, "RecomputeAverage", func(s *state) (*model.FilmStats, error) { return s.RecomputeAverage(ctx, filmID) })
}

// AddBookmark saves the film for the user.
func (r *Repository) AddBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	return locked(ctx, r, "AddBookmark", func(s *state) (bool, error) { return s.AddBookmark(ctx, filmID, userID) })
}

// RemoveBookmark removes the user's bookmark of the film.
func (r *Repository) RemoveBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	return locked(ctx, r, "RemoveBookmark", func(s *state) (bool, error) { return s.RemoveBookmark(ctx, filmID, userID) })
}
