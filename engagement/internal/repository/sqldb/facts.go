package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
)

// maxSwapAttempts bounds how often a swap retries after losing an
// insert race on the same key.
const maxSwapAttempts = 3

var errSwapContention = errors.New("fact swap lost repeated insert races")

// queries runs statements against either the pool or a transaction.
type queries struct {
	ext      sqlx.ExtContext
	dialect  goqu.DialectWrapper
	lockRows bool
	now      func() time.Time
	logger   *zap.Logger
}

var _ repository.Tx = (*queries)(nil)

func (q *queries) withExt(ext sqlx.ExtContext) *queries {
	cp := *q
	cp.ext = ext
	return &cp
}

func (q *queries) forUpdate(ds *goqu.SelectDataset) *goqu.SelectDataset {
	if q.lockRows {
		return ds.ForUpdate(exp.Wait)
	}
	return ds
}

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

func (q *queries) get(ctx context.Context, dest any, ds *goqu.SelectDataset) error {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return sqlx.GetContext(ctx, q.ext, dest, query, args...)
}

func (q *queries) selectAll(ctx context.Context, dest any, ds *goqu.SelectDataset) error {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return sqlx.SelectContext(ctx, q.ext, dest, query, args...)
}

func (q *queries) exec(ctx context.Context, b sqlBuilder) (int64, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}
	res, err := q.ext.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// factTable describes a table holding one value per (subject, user).
type factTable struct {
	name    string
	subject string
	value   string
}

var (
	reactionsTable = factTable{name: "film_reactions", subject: "film_id", value: "reaction"}
	ratingsTable   = factTable{name: "film_ratings", subject: "film_id", value: "score"}
	votesTable     = factTable{name: "review_votes", subject: "review_id", value: "vote"}
)

func (t factTable) key(subject, user string) goqu.Ex {
	return goqu.Ex{t.subject: subject, "user_id": user}
}

func getFact[V comparable](ctx context.Context, q *queries, t factTable, subject, user string, lock bool) (V, bool, error) {
	var v V
	ds := q.dialect.From(t.name).Select(t.value).Where(t.key(subject, user))
	if lock {
		ds = q.forUpdate(ds)
	}
	err := q.get(ctx, &v, ds)
	if errors.Is(err, sql.ErrNoRows) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("get %s: %w", t.value, err)
	}
	return v, true, nil
}

// swapFact writes next and returns the previous value; the zero value
// of V deletes the row. The current row is read under a lock, and an
// insert that finds the key taken starts over.
func swapFact[V comparable](ctx context.Context, q *queries, t factTable, subject, user string, next V) (V, error) {
	var zero V
	for attempt := 0; attempt < maxSwapAttempts; attempt++ {
		prev, found, err := getFact[V](ctx, q, t, subject, user, true)
		if err != nil {
			return zero, err
		}
		switch {
		case found && next == zero:
			if _, err := q.exec(ctx, q.dialect.Delete(t.name).Where(t.key(subject, user)).Prepared(true)); err != nil {
				return zero, fmt.Errorf("delete %s: %w", t.value, err)
			}
		case found && prev != next:
			upd := q.dialect.Update(t.name).Set(goqu.Record{t.value: next}).Where(t.key(subject, user)).Prepared(true)
			if _, err := q.exec(ctx, upd); err != nil {
				return zero, fmt.Errorf("update %s: %w", t.value, err)
			}
		case !found && next != zero:
			ins := q.dialect.Insert(t.name).
				Rows(goqu.Record{t.subject: subject, "user_id": user, t.value: next}).
				OnConflict(goqu.DoNothing()).
				Prepared(true)
			n, err := q.exec(ctx, ins)
			if err != nil {
				return zero, fmt.Errorf("insert %s: %w", t.value, err)
			}
			if n == 0 {
				q.logger.Debug("Concurrent insert detected, retrying swap", zap.String("table", t.name), zap.Int("attempt", attempt))
				continue
			}
		}
		return prev, nil
	}
	return zero, errSwapContention
}

func (q *queries) GetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetReaction")
	defer span.End()
	v, _, err := getFact[model.Reaction](ctx, q, reactionsTable, string(filmID), string(userID), false)
	return v, err
}

func (q *queries) SetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID, value model.Reaction) (model.Reaction, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/SetReaction")
	defer span.End()
	return swapFact(ctx, q, reactionsTable, string(filmID), string(userID), value)
}

func (q *queries) ClearReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ClearReaction")
	defer span.End()
	return swapFact(ctx, q, reactionsTable, string(filmID), string(userID), model.ReactionNone)
}

func (q *queries) GetRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetRating")
	defer span.End()
	v, _, err := getFact[model.Score](ctx, q, ratingsTable, string(filmID), string(userID), false)
	return v, err
}

func (q *queries) SetRating(ctx context.Context, filmID model.FilmID, userID model.UserID, score model.Score) (model.Score, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/SetRating")
	defer span.End()
	return swapFact(ctx, q, ratingsTable, string(filmID), string(userID), score)
}

func (q *queries) ClearRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ClearRating")
	defer span.End()
	return swapFact(ctx, q, ratingsTable, string(filmID), string(userID), model.NoScore)
}

func (q *queries) GetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetVote")
	defer span.End()
	v, _, err := getFact[model.Vote](ctx, q, votesTable, string(reviewID), string(userID), false)
	return v, err
}

func (q *queries) SetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID, value model.Vote) (model.Vote, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/SetVote")
	defer span.End()
	found, err := q.lockReview(ctx, reviewID)
	if err != nil {
		return model.VoteNone, err
	}
	if !found {
		return model.VoteNone, repository.ErrNotFound
	}
	return swapFact(ctx, q, votesTable, string(reviewID), string(userID), value)
}

func (q *queries) ClearVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ClearVote")
	defer span.End()
	return swapFact(ctx, q, votesTable, string(reviewID), string(userID), model.VoteNone)
}

// lockReview locks the review row until the transaction ends and
// reports whether it exists. A vote insert racing a review deletion
// waits here instead of hitting the foreign key.
func (q *queries) lockReview(ctx context.Context, reviewID model.ReviewID) (bool, error) {
	var id string
	err := q.get(ctx, &id, q.forUpdate(q.dialect.From(reviewsTable).Select("id").Where(goqu.Ex{"id": string(reviewID)})))
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lock review: %w", err)
	}
	return true, nil
}

// DeleteReviewVotes locks the review row first, so no vote can be added
// to the review until the transaction ends.
func (q *queries) DeleteReviewVotes(ctx context.Context, reviewID model.ReviewID) (model.VoteTally, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteReviewVotes")
	defer span.End()
	var tally model.VoteTally
	if _, err := q.lockReview(ctx, reviewID); err != nil {
		return tally, err
	}
	var votes []model.Vote
	if err := q.selectAll(ctx, &votes, q.forUpdate(q.dialect.From(votesTable.name).Select(votesTable.value).Where(goqu.Ex{"review_id": string(reviewID)}))); err != nil {
		return tally, fmt.Errorf("select votes: %w", err)
	}
	if len(votes) == 0 {
		return tally, nil
	}
	for _, v := range votes {
		switch v {
		case model.VoteUp:
			tally.Up++
		case model.VoteDown:
			tally.Down++
		}
	}
	n, err := q.exec(ctx, q.dialect.Delete(votesTable.name).Where(goqu.Ex{"review_id": string(reviewID)}).Prepared(true))
	if err != nil {
		return model.VoteTally{}, fmt.Errorf("delete votes: %w", err)
	}
	if n != int64(len(votes)) {
		q.logger.Warn("Vote set changed during cascade", zap.String("review", string(reviewID)), zap.Int64("deleted", n), zap.Int("tallied", len(votes)))
		return model.VoteTally{}, fmt.Errorf("deleted %d votes, tallied %d", n, len(votes))
	}
	return tally, nil
}
