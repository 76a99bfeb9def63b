package sqldb

import (
	"context"

	"ugcengagement/engagement/pkg/model"
)

// GetReaction returns the user's reaction to a film.
func (r *Repository) GetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	return r.queries.GetReaction(ctx, filmID, userID)
}

// SetReaction stores the user's reaction and returns the previous one.
func (r *Repository) SetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID, value model.Reaction) (model.Reaction, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (model.Reaction, error) {
		return q.SetReaction(ctx, filmID, userID, value)
	})
}

// ClearReaction removes the user's reaction and returns the previous one.
func (r *Repository) ClearReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (model.Reaction, error) {
		return q.ClearReaction(ctx, filmID, userID)
	})
}

// GetRating returns the user's rating of a film.
func (r *Repository) GetRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	return r.queries.GetRating(ctx, filmID, userID)
}

// SetRating stores the user's rating and returns the previous one.
func (r *Repository) SetRating(ctx context.Context, filmID model.FilmID, userID model.UserID, score model.Score) (model.Score, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (model.Score, error) {
		return q.SetRating(ctx, filmID, userID, score)
	})
}

// ClearRating removes the user's rating and returns the previous one.
func (r *Repository) ClearRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (model.Score, error) { return q.ClearRating(ctx, filmID, userID) })
}

// GetVote returns the user's vote on a review.
func (r *Repository) GetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	return r.queries.GetVote(ctx, reviewID, userID)
}

// SetVote stores the user's vote and returns the previous one.
func (r *Repository) SetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID, value model.Vote) (model.Vote, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (model.Vote, error) {
		return q.SetVote(ctx, reviewID, userID, value)
	})
}

// ClearVote removes the user's vote and returns the previous one.
func (r *Repository) ClearVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (model.Vote, error) { return q.ClearVote(ctx, reviewID, userID) })
}

// DeleteReviewVotes removes all votes of a review.
func (r *Repository) DeleteReviewVotes(ctx context.Context, reviewID model.ReviewID) (model.VoteTally, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (model.VoteTally, error) {
		return q.DeleteReviewVotes(ctx, reviewID)
	})
}

// CreateReview stores a new review.
func (r *Repository) CreateReview(ctx context.Context, review *model.Review) error {
	return r.queries.CreateReview(ctx, review)
}

// GetReview retrieves a review by id.
func (r *Repository) GetReview(ctx context.Context, reviewID model.ReviewID) (*model.Review, error) {
	return r.queries.GetReview(ctx, reviewID)
}

// UpdateReviewText replaces the text of the author's review.
func (r *Repository) UpdateReviewText(ctx context.Context, reviewID model.ReviewID, authorID model.UserID, text string) (*model.Review, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (*model.Review, error) {
		return q.UpdateReviewText(ctx, reviewID, authorID, text)
	})
}

// DeleteReview deletes the author's review.
func (r *Repository) DeleteReview(ctx context.Context, reviewID model.ReviewID, authorID model.UserID) (*model.Review, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (*model.Review, error) {
		return q.DeleteReview(ctx, reviewID, authorID)
	})
}

// ApplyReviewVotes increments the review vote counters.
func (r *Repository) ApplyReviewVotes(ctx context.Context, reviewID model.ReviewID, delta model.StatsDelta) (*model.Review, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (*model.Review, error) {
		return q.ApplyReviewVotes(ctx, reviewID, delta)
	})
}

// EnsureStats returns the film stats, creating them if absent.
func (r *Repository) EnsureStats(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	return r.queries.EnsureStats(ctx, filmID)
}

// ApplyStatsDelta increments the film stats counters.
func (r *Repository) ApplyStatsDelta(ctx context.Context, filmID model.FilmID, delta model.StatsDelta) (*model.FilmStats, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (*model.FilmStats, error) {
		return q.ApplyStatsDelta(ctx, filmID, delta)
	})
}

// RecomputeAverage recomputes the average rating of a film.
func (r *Repository) RecomputeAverage(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	return inTx(ctx, r, func(ctx context.Context, q *queries) (*model.FilmStats, error) {
		return q.RecomputeAverage(ctx, filmID)
	})
}

// AddBookmark saves the film for the user.
func (r *Repository) AddBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	return r.queries.AddBookmark(ctx, filmID, userID)
}

// RemoveBookmark removes the user's bookmark of the film.
func (r *Repository) RemoveBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	return r.queries.RemoveBookmark(ctx, filmID, userID)
}
