package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
)

const reviewsTable = "reviews"

var reviewColumns = []any{"id", "film_id", "user_id", "content", "votes_up", "votes_down", "created_at", "updated_at"}

type reviewRow struct {
	ID        string `db:"id"`
	FilmID    string `db:"film_id"`
	AuthorID  string `db:"user_id"`
	Content   string `db:"content"`
	VotesUp   int64  `db:"votes_up"`
	VotesDown int64  `db:"votes_down"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func (r reviewRow) toModel() *model.Review {
	return &model.Review{
		ID:        model.ReviewID(r.ID),
		FilmID:    model.FilmID(r.FilmID),
		AuthorID:  model.UserID(r.AuthorID),
		Text:      r.Content,
		VotesUp:   r.VotesUp,
		VotesDown: r.VotesDown,
		CreatedAt: time.UnixMilli(r.CreatedAt).UTC(),
		UpdatedAt: time.UnixMilli(r.UpdatedAt).UTC(),
	}
}

func (q *queries) getReview(ctx context.Context, where goqu.Ex, lock bool) (*model.Review, error) {
	ds := q.dialect.From(reviewsTable).Select(reviewColumns...).Where(where)
	if lock {
		ds = q.forUpdate(ds)
	}
	var row reviewRow
	err := q.get(ctx, &row, ds)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	return row.toModel(), nil
}

func (q *queries) CreateReview(ctx context.Context, review *model.Review) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/CreateReview")
	defer span.End()
	if review == nil {
		return errors.New("review is nil")
	}
	ins := q.dialect.Insert(reviewsTable).Rows(goqu.Record{
		"id":         string(review.ID),
		"film_id":    string(review.FilmID),
		"user_id":    string(review.AuthorID),
		"content":    review.Text,
		"votes_up":   review.VotesUp,
		"votes_down": review.VotesDown,
		"created_at": review.CreatedAt.UnixMilli(),
		"updated_at": review.UpdatedAt.UnixMilli(),
	}).OnConflict(goqu.DoNothing()).Prepared(true)
	n, err := q.exec(ctx, ins)
	if err != nil {
		q.logger.Warn("Failed to insert review", zap.String("review", string(review.ID)), zap.Error(err))
		return fmt.Errorf("insert review: %w", err)
	}
	if n == 0 {
		return repository.ErrAlreadyExists
	}
	return nil
}

func (q *queries) GetReview(ctx context.Context, reviewID model.ReviewID) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetReview")
	defer span.End()
	return q.getReview(ctx, goqu.Ex{"id": string(reviewID)}, false)
}

func (q *queries) UpdateReviewText(ctx context.Context, reviewID model.ReviewID, authorID model.UserID, text string) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/UpdateReviewText")
	defer span.End()
	where := goqu.Ex{"id": string(reviewID), "user_id": string(authorID)}
	upd := q.dialect.Update(reviewsTable).
		Set(goqu.Record{"content": text, "updated_at": q.now().UnixMilli()}).
		Where(where).
		Prepared(true)
	n, err := q.exec(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if n == 0 {
		return nil, repository.ErrNotFound
	}
	return q.getReview(ctx, where, false)
}

func (q *queries) DeleteReview(ctx context.Context, reviewID model.ReviewID, authorID model.UserID) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteReview")
	defer span.End()
	where := goqu.Ex{"id": string(reviewID), "user_id": string(authorID)}
	review, err := q.getReview(ctx, where, true)
	if err != nil {
		return nil, err
	}
	n, err := q.exec(ctx, q.dialect.Delete(reviewsTable).Where(where).Prepared(true))
	if err != nil {
		return nil, fmt.Errorf("delete review: %w", err)
	}
	if n == 0 {
		return nil, repository.ErrNotFound
	}
	return review, nil
}

func (q *queries) ApplyReviewVotes(ctx context.Context, reviewID model.ReviewID, delta model.StatsDelta) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ApplyReviewVotes")
	defer span.End()
	where := goqu.Ex{"id": string(reviewID)}
	upd := q.dialect.Update(reviewsTable).Set(goqu.Record{
		"votes_up":   goqu.L("? + ?", goqu.C("votes_up"), delta.VotesUp),
		"votes_down": goqu.L("? + ?", goqu.C("votes_down"), delta.VotesDown),
	}).Where(where).Prepared(true)
	n, err := q.exec(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("update review votes: %w", err)
	}
	if n == 0 {
		return nil, repository.ErrNotFound
	}
	return q.getReview(ctx, where, false)
}
