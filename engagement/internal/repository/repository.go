package repository

import (
	"context"
	"errors"

	"ugcengagement/engagement/pkg/model"
)

// ErrNotFound is returned when a requested record is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a record with the same id exists.
var ErrAlreadyExists = errors.New("already exists")

// Tx defines the operations available on a store, inside or outside
// of a transaction. Every fact setter atomically returns the value the
// fact held immediately before the write; the zero value means absent.
type Tx interface {
	GetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error)
	SetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID, value model.Reaction) (model.Reaction, error)
	ClearReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error)

	GetRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error)
	SetRating(ctx context.Context, filmID model.FilmID, userID model.UserID, score model.Score) (model.Score, error)
	ClearRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error)

	GetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error)
	SetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID, value model.Vote) (model.Vote, error)
	ClearVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error)
	// DeleteReviewVotes removes every vote fact of the review and
	// returns how many of each value were removed.
	DeleteReviewVotes(ctx context.Context, reviewID model.ReviewID) (model.VoteTally, error)

	CreateReview(ctx context.Context, review *model.Review) error
	// GetReview returns ErrNotFound if the review does not exist.
	GetReview(ctx context.Context, reviewID model.ReviewID) (*model.Review, error)
	// UpdateReviewText returns ErrNotFound unless the review exists
	// and is authored by authorID.
	UpdateReviewText(ctx context.Context, reviewID model.ReviewID, authorID model.UserID, text string) (*model.Review, error)
	// DeleteReview deletes the review only if it is authored by
	// authorID and returns the deleted review, or ErrNotFound.
	DeleteReview(ctx context.Context, reviewID model.ReviewID, authorID model.UserID) (*model.Review, error)
	// ApplyReviewVotes increments the review's own vote counters,
	// or returns ErrNotFound.
	ApplyReviewVotes(ctx context.Context, reviewID model.ReviewID, delta model.StatsDelta) (*model.Review, error)

	// EnsureStats returns the film stats, creating a zeroed record if absent.
	EnsureStats(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error)
	// ApplyStatsDelta adds the increments and stamps updated_at.
	ApplyStatsDelta(ctx context.Context, filmID model.FilmID, delta model.StatsDelta) (*model.FilmStats, error)
	// RecomputeAverage overwrites avg_rating from the stored counters.
	RecomputeAverage(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error)

	// AddBookmark saves the film for the user and reports whether the
	// bookmark is new. An existing bookmark keeps its creation time.
	AddBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error)
	// RemoveBookmark reports whether a bookmark was removed.
	RemoveBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error)
}

// TxFunc defines a unit of work executed inside a transaction.
type TxFunc func(ctx context.Context, tx Tx) error

// Store defines a transactional engagement store.
type Store interface {
	Tx
	// WithinTx runs fn in a transaction. The transaction commits if fn
	// returns nil and is rolled back otherwise; no partial effect of fn
	// is ever observable.
	WithinTx(ctx context.Context, fn TxFunc) error
	Close() error
}
