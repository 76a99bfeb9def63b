package engagement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/delta"
	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
	"ugcengagement/pkg/logging"
)

//go:generate mockgen -package=repository -source=controller.go -destination=../../../gen/mock/repository/repository.go

// ErrNoIngester is returned by StartIngestion when no ingester is configured.
var ErrNoIngester = errors.New("no event ingester configured")

const (
	idRule   = "required,max=64,printascii"
	textRule = "required,max=10000"
)

type engagementStore interface {
	repository.Tx
	WithinTx(ctx context.Context, fn repository.TxFunc) error
}

type engagementIngester interface {
	Ingest(ctx context.Context) (chan model.EngagementDelivery, error)
}

// Controller defines an engagement service controller. It keeps the film
// stats consistent with the reaction, rating, review and vote facts.
type Controller struct {
	store    engagementStore
	ingester engagementIngester
	validate *validator.Validate
	scope    tally.Scope
	logger   *zap.Logger
	now      func() time.Time
}

// New creates an engagement service controller. ingester may be nil
// when events are not consumed.
func New(store engagementStore, ingester engagementIngester, scope tally.Scope, logger *zap.Logger) *Controller {
	logger = logger.With(zap.String(logging.FieldComponent, "controller"))
	return &Controller{
		store:    store,
		ingester: ingester,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		scope:    scope.Tagged(map[string]string{"component": "controller"}),
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (c *Controller) observe(op string, applied bool) {
	outcome := "noop"
	if applied {
		outcome = "applied"
	}
	c.scope.Tagged(map[string]string{"op": op, "outcome": outcome}).Counter("mutations").Inc(1)
}

func (c *Controller) validateIDs(op string, ids ...string) error {
	for _, id := range ids {
		if err := c.validate.Var(id, idRule); err != nil {
			return fail(FailureValidation, op, fmt.Errorf("invalid identifier %q: %w", id, err))
		}
	}
	return nil
}

// mutateFilmFact swaps a per-film fact and applies the resulting delta in
// one transaction. Equal previous and next values leave the stats as is,
// and the average is recomputed whenever the rating counters move.
func mutateFilmFact[T comparable](
	ctx context.Context,
	c *Controller,
	op string,
	filmID model.FilmID,
	next T,
	swap func(ctx context.Context, tx repository.Tx) (T, error),
	rule func(prev, next T) model.StatsDelta,
) (model.Change[T], error) {
	var change model.Change[T]
	err := c.store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		prev, err := swap(ctx, tx)
		if err != nil {
			return err
		}
		change = model.Change[T]{Previous: prev, Current: next}
		if !change.Applied() {
			return nil
		}
		d := rule(prev, next)
		if _, err := tx.ApplyStatsDelta(ctx, filmID, d); err != nil {
			return err
		}
		if d.TouchesRatings() {
			_, err = tx.RecomputeAverage(ctx, filmID)
		}
		return err
	})
	if err != nil {
		return model.Change[T]{}, storeFailure(FailureStore, op, err)
	}
	c.observe(op, change.Applied())
	return change, nil
}

// GetReaction returns the user's current reaction to a film.
func (c *Controller) GetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	const op = "GetReaction"
	if err := c.validateIDs(op, string(filmID), string(userID)); err != nil {
		return model.ReactionNone, err
	}
	v, err := c.store.GetReaction(ctx, filmID, userID)
	if err != nil {
		return model.ReactionNone, fail(FailureStore, op, err)
	}
	return v, nil
}

// SetReaction likes or dislikes a film on behalf of the user.
func (c *Controller) SetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID, value model.Reaction) (model.Change[model.Reaction], error) {
	const op = "SetReaction"
	if err := c.validateIDs(op, string(filmID), string(userID)); err != nil {
		return model.Change[model.Reaction]{}, err
	}
	if value == model.ReactionNone || !value.Valid() {
		return model.Change[model.Reaction]{}, fail(FailureValidation, op, fmt.Errorf("reaction must be 1 or -1, got %d", value))
	}
	return mutateFilmFact(ctx, c, op, filmID, value, func(ctx context.Context, tx repository.Tx) (model.Reaction, error) {
		return tx.SetReaction(ctx, filmID, userID, value)
	}, delta.Reaction)
}

// ClearReaction removes the user's reaction to a film.
func (c *Controller) ClearReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Change[model.Reaction], error) {
	const op = "ClearReaction"
	if err := c.validateIDs(op, string(filmID), string(userID)); err != nil {
		return model.Change[model.Reaction]{}, err
	}
	return mutateFilmFact(ctx, c, op, filmID, model.ReactionNone, func(ctx context.Context, tx repository.Tx) (model.Reaction, error) {
		return tx.ClearReaction(ctx, filmID, userID)
	}, delta.Reaction)
}

// GetRating returns the user's current rating of a film.
func (c *Controller) GetRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	const op = "GetRating"
	if err := c.validateIDs(op, string(filmID), string(userID)); err != nil {
		return model.NoScore, err
	}
	v, err := c.store.GetRating(ctx, filmID, userID)
	if err != nil {
		return model.NoScore, fail(FailureStore, op, err)
	}
	return v, nil
}

// SetRating rates a film on behalf of the user and refreshes the average.
func (c *Controller) SetRating(ctx context.Context, filmID model.FilmID, userID model.UserID, score model.Score) (model.Change[model.Score], error) {
	const op = "SetRating"
	if err := c.validateIDs(op, string(filmID), string(userID)); err != nil {
		return model.Change[model.Score]{}, err
	}
	if !score.Valid() || score == model.NoScore {
		return model.Change[model.Score]{}, fail(FailureValidation, op, fmt.Errorf("score must be within %d..%d, got %d", model.MinScore, model.MaxScore, score))
	}
	return mutateFilmFact(ctx, c, op, filmID, score, func(ctx context.Context, tx repository.Tx) (model.Score, error) {
		return tx.SetRating(ctx, filmID, userID, score)
	}, delta.Rating)
}

// ClearRating removes the user's rating of a film.
func (c *Controller) ClearRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Change[model.Score], error) {
	const op = "ClearRating"
	if err := c.validateIDs(op, string(filmID), string(userID)); err != nil {
		return model.Change[model.Score]{}, err
	}
	return mutateFilmFact(ctx, c, op, filmID, model.NoScore, func(ctx context.Context, tx repository.Tx) (model.Score, error) {
		return tx.ClearRating(ctx, filmID, userID)
	}, delta.Rating)
}

type reviewInput struct {
	FilmID   string `validate:"required,max=64,printascii"`
	AuthorID string `validate:"required,max=64,printascii"`
	Text     string `validate:"required,max=10000"`
}

// CreateReview publishes a review of a film.
func (c *Controller) CreateReview(ctx context.Context, filmID model.FilmID, authorID model.UserID, text string) (*model.Review, error) {
	const op = "CreateReview"
	if err := c.validate.Struct(reviewInput{FilmID: string(filmID), AuthorID: string(authorID), Text: text}); err != nil {
		return nil, fail(FailureValidation, op, err)
	}
	now := c.now()
	review := &model.Review{
		ID:        model.ReviewID(uuid.NewString()),
		FilmID:    filmID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := c.store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		if err := tx.CreateReview(ctx, review); err != nil {
			return err
		}
		_, err := tx.ApplyStatsDelta(ctx, filmID, delta.ReviewCreated())
		return err
	})
	if err != nil {
		return nil, storeFailure(FailureStore, op, err)
	}
	c.observe(op, true)
	return review, nil
}

// GetReview returns a review by id.
func (c *Controller) GetReview(ctx context.Context, reviewID model.ReviewID) (*model.Review, error) {
	const op = "GetReview"
	if err := c.validateIDs(op, string(reviewID)); err != nil {
		return nil, err
	}
	review, err := c.store.GetReview(ctx, reviewID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fail(FailureNotFound, op, err)
	}
	if err != nil {
		return nil, fail(FailureStore, op, err)
	}
	return review, nil
}

// ownershipFailure tells a missing review from one owned by someone
// else after an author-scoped statement matched nothing.
func ownershipFailure(ctx context.Context, tx repository.Tx, op string, reviewID model.ReviewID) error {
	_, err := tx.GetReview(ctx, reviewID)
	switch {
	case err == nil:
		return fail(FailureNotAuthorized, op, fmt.Errorf("review %s belongs to another user", reviewID))
	case errors.Is(err, repository.ErrNotFound):
		return fail(FailureNotFound, op, err)
	}
	return err
}

// EditReview replaces the text of the user's own review.
func (c *Controller) EditReview(ctx context.Context, userID model.UserID, reviewID model.ReviewID, text string) (*model.Review, error) {
	const op = "EditReview"
	if err := c.validateIDs(op, string(userID), string(reviewID)); err != nil {
		return nil, err
	}
	if err := c.validate.Var(text, textRule); err != nil {
		return nil, fail(FailureValidation, op, err)
	}
	var review *model.Review
	err := c.store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		var err error
		review, err = tx.UpdateReviewText(ctx, reviewID, userID, text)
		if errors.Is(err, repository.ErrNotFound) {
			return ownershipFailure(ctx, tx, op, reviewID)
		}
		return err
	})
	if err != nil {
		return nil, storeFailure(FailureStore, op, err)
	}
	return review, nil
}

// DeleteReview deletes the user's own review together with its votes
// and takes both out of the film stats. Nothing is applied on failure.
func (c *Controller) DeleteReview(ctx context.Context, userID model.UserID, reviewID model.ReviewID) error {
	const op = "DeleteReview"
	if err := c.validateIDs(op, string(userID), string(reviewID)); err != nil {
		return err
	}
	var (
		deleted *model.Review
		tally   model.VoteTally
	)
	err := c.store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		var err error
		if tally, err = tx.DeleteReviewVotes(ctx, reviewID); err != nil {
			return err
		}
		deleted, err = tx.DeleteReview(ctx, reviewID, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return ownershipFailure(ctx, tx, op, reviewID)
		}
		if err != nil {
			return err
		}
		_, err = tx.ApplyStatsDelta(ctx, deleted.FilmID, delta.ReviewDeleted(tally))
		return err
	})
	if err != nil {
		return storeFailure(FailureAborted, op, err)
	}
	c.observe(op, true)
	c.logger.Info("Review deleted",
		zap.String(logging.FieldReview, string(reviewID)),
		zap.String(logging.FieldFilm, string(deleted.FilmID)),
		zap.Int64("votesUp", tally.Up),
		zap.Int64("votesDown", tally.Down),
	)
	return nil
}

// GetVote returns the user's current vote on a review.
func (c *Controller) GetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	const op = "GetVote"
	if err := c.validateIDs(op, string(reviewID), string(userID)); err != nil {
		return model.VoteNone, err
	}
	v, err := c.store.GetVote(ctx, reviewID, userID)
	if err != nil {
		return model.VoteNone, fail(FailureStore, op, err)
	}
	return v, nil
}

// VoteReview votes a review up or down on behalf of the user.
func (c *Controller) VoteReview(ctx context.Context, reviewID model.ReviewID, userID model.UserID, value model.Vote) (model.Change[model.Vote], error) {
	const op = "VoteReview"
	if err := c.validateIDs(op, string(reviewID), string(userID)); err != nil {
		return model.Change[model.Vote]{}, err
	}
	if value == model.VoteNone || !value.Valid() {
		return model.Change[model.Vote]{}, fail(FailureValidation, op, fmt.Errorf("vote must be %q or %q, got %q", model.VoteUp, model.VoteDown, value))
	}
	return c.mutateVote(ctx, op, reviewID, value, func(ctx context.Context, tx repository.Tx) (model.Vote, error) {
		return tx.SetVote(ctx, reviewID, userID, value)
	})
}

// UnvoteReview withdraws the user's vote on a review.
func (c *Controller) UnvoteReview(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Change[model.Vote], error) {
	const op = "UnvoteReview"
	if err := c.validateIDs(op, string(reviewID), string(userID)); err != nil {
		return model.Change[model.Vote]{}, err
	}
	return c.mutateVote(ctx, op, reviewID, model.VoteNone, func(ctx context.Context, tx repository.Tx) (model.Vote, error) {
		return tx.ClearVote(ctx, reviewID, userID)
	})
}

// mutateVote applies one vote delta to both the review counters and the
// film stats in a single transaction.
func (c *Controller) mutateVote(
	ctx context.Context,
	op string,
	reviewID model.ReviewID,
	next model.Vote,
	swap func(ctx context.Context, tx repository.Tx) (model.Vote, error),
) (model.Change[model.Vote], error) {
	var change model.Change[model.Vote]
	err := c.store.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		review, err := tx.GetReview(ctx, reviewID)
		if errors.Is(err, repository.ErrNotFound) {
			return fail(FailureNotFound, op, err)
		}
		if err != nil {
			return err
		}
		prev, err := swap(ctx, tx)
		if errors.Is(err, repository.ErrNotFound) {
			return fail(FailureNotFound, op, err)
		}
		if err != nil {
			return err
		}
		change = model.Change[model.Vote]{Previous: prev, Current: next}
		if !change.Applied() {
			return nil
		}
		d := delta.Vote(prev, next)
		if _, err := tx.ApplyReviewVotes(ctx, reviewID, d); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fail(FailureNotFound, op, err)
			}
			return err
		}
		_, err = tx.ApplyStatsDelta(ctx, review.FilmID, d)
		return err
	})
	if err != nil {
		return model.Change[model.Vote]{}, storeFailure(FailureAborted, op, err)
	}
	c.observe(op, change.Applied())
	return change, nil
}

// GetFilmStats returns the film stats, creating empty ones on first read.
func (c *Controller) GetFilmStats(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	const op = "GetFilmStats"
	if err := c.validateIDs(op, string(filmID)); err != nil {
		return nil, err
	}
	stats, err := c.store.EnsureStats(ctx, filmID)
	if err != nil {
		return nil, fail(FailureStore, op, err)
	}
	return stats, nil
}

// AddBookmark saves a film for the user. Bookmarking twice is harmless;
// the result tells whether the bookmark is new.
func (c *Controller) AddBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	const op = "AddBookmark"
	if err := c.validateIDs(op, string(filmID), string(userID)); err != nil {
		return false, err
	}
	created, err := c.store.AddBookmark(ctx, filmID, userID)
	if err != nil {
		return false, fail(FailureStore, op, err)
	}
	c.observe(op, created)
	return created, nil
}

// RemoveBookmark removes the user's bookmark and tells whether there
// was one.
func (c *Controller) RemoveBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	const op = "RemoveBookmark"
	if err := c.validateIDs(op, string(filmID), string(userID)); err != nil {
		return false, err
	}
	deleted, err := c.store.RemoveBookmark(ctx, filmID, userID)
	if err != nil {
		return false, fail(FailureStore, op, err)
	}
	c.observe(op, deleted)
	return deleted, nil
}

// Apply applies an ingested engagement event. Redelivered events are
// harmless because fact writes are idempotent.
func (c *Controller) Apply(ctx context.Context, e model.EngagementEvent) (bool, error) {
	const op = "Apply"
	filmID, userID := e.FilmID, e.UserID
	switch e.Type {
	case model.EventTypeReactionSet:
		ch, err := c.SetReaction(ctx, filmID, userID, model.Reaction(e.Value))
		return ch.Applied(), err
	case model.EventTypeReactionClear:
		ch, err := c.ClearReaction(ctx, filmID, userID)
		return ch.Applied(), err
	case model.EventTypeRatingSet:
		ch, err := c.SetRating(ctx, filmID, userID, model.Score(e.Value))
		return ch.Applied(), err
	case model.EventTypeRatingClear:
		ch, err := c.ClearRating(ctx, filmID, userID)
		return ch.Applied(), err
	}
	return false, fail(FailureValidation, op, fmt.Errorf("unknown event type %q", e.Type))
}

// StartIngestion consumes engagement events until the ingester channel
// closes. A delivery is acknowledged once its event is applied or found
// invalid. A store failure stops ingestion and leaves the delivery
// unacknowledged so it is consumed again.
func (c *Controller) StartIngestion(ctx context.Context) error {
	if c.ingester == nil {
		return ErrNoIngester
	}
	ch, err := c.ingester.Ingest(ctx)
	if err != nil {
		return err
	}
	for d := range ch {
		e := d.Event
		applied, err := c.Apply(ctx, e)
		switch {
		case KindOf(err) == FailureValidation:
			c.logger.Warn("Skipping invalid event", zap.Stringer("event", &e), zap.Error(err))
		case err != nil:
			return err
		default:
			c.logger.Debug("Event applied", zap.Stringer("event", &e), zap.Bool("applied", applied))
		}
		if d.Ack == nil {
			continue
		}
		if err := d.Ack(); err != nil {
			c.logger.Warn("Failed to acknowledge event", zap.Stringer("event", &e), zap.Error(err))
		}
	}
	return nil
}
