package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"go.opentelemetry.io/otel"

	"ugcengagement/engagement/pkg/model"
)

const statsTable = "film_stats"

var statsColumns = []any{"film_id", "likes", "dislikes", "ratings_count", "ratings_sum", "avg_rating",
	"reviews_count", "votes_up", "votes_down", "created_at", "updated_at"}

type statsRow struct {
	FilmID       string  `db:"film_id"`
	Likes        int64   `db:"likes"`
	Dislikes     int64   `db:"dislikes"`
	RatingsCount int64   `db:"ratings_count"`
	RatingsSum   int64   `db:"ratings_sum"`
	AvgRating    float64 `db:"avg_rating"`
	ReviewsCount int64   `db:"reviews_count"`
	VotesUp      int64   `db:"votes_up"`
	VotesDown    int64   `db:"votes_down"`
	CreatedAt    int64   `db:"created_at"`
	UpdatedAt    int64   `db:"updated_at"`
}

func (r statsRow) toModel() *model.FilmStats {
	return &model.FilmStats{
		FilmID:       model.FilmID(r.FilmID),
		Likes:        r.Likes,
		Dislikes:     r.Dislikes,
		RatingsCount: r.RatingsCount,
		RatingsSum:   r.RatingsSum,
		AvgRating:    r.AvgRating,
		ReviewsCount: r.ReviewsCount,
		VotesUp:      r.VotesUp,
		VotesDown:    r.VotesDown,
		CreatedAt:    time.UnixMilli(r.CreatedAt).UTC(),
		UpdatedAt:    time.UnixMilli(r.UpdatedAt).UTC(),
	}
}

// ensureStats inserts a zeroed row unless one exists. Concurrent
// inserts of the same film resolve to a single row.
func (q *queries) ensureStats(ctx context.Context, filmID model.FilmID) error {
	now := q.now().UnixMilli()
	rec := goqu.Record{"film_id": string(filmID), "avg_rating": 0.0, "created_at": now, "updated_at": now}
	for _, c := range model.CounterFields {
		rec[c] = 0
	}
	if _, err := q.exec(ctx, q.dialect.Insert(statsTable).Rows(rec).OnConflict(goqu.DoNothing()).Prepared(true)); err != nil {
		return fmt.Errorf("ensure stats: %w", err)
	}
	return nil
}

func (q *queries) getStats(ctx context.Context, filmID model.FilmID, lock bool) (*model.FilmStats, error) {
	ds := q.dialect.From(statsTable).Select(statsColumns...).Where(goqu.Ex{"film_id": string(filmID)})
	if lock {
		ds = q.forUpdate(ds)
	}
	var row statsRow
	if err := q.get(ctx, &row, ds); err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return row.toModel(), nil
}

func (q *queries) EnsureStats(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/EnsureStats")
	defer span.End()
	if err := q.ensureStats(ctx, filmID); err != nil {
		return nil, err
	}
	return q.getStats(ctx, filmID, false)
}

func (q *queries) ApplyStatsDelta(ctx context.Context, filmID model.FilmID, delta model.StatsDelta) (*model.FilmStats, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ApplyStatsDelta")
	defer span.End()
	if err := q.ensureStats(ctx, filmID); err != nil {
		return nil, err
	}
	rec := goqu.Record{"updated_at": q.now().UnixMilli()}
	for col, v := range delta.Fields() {
		rec[col] = goqu.L("? + ?", goqu.C(col), v)
	}
	upd := q.dialect.Update(statsTable).Set(rec).Where(goqu.Ex{"film_id": string(filmID)}).Prepared(true)
	if _, err := q.exec(ctx, upd); err != nil {
		return nil, fmt.Errorf("apply stats delta: %w", err)
	}
	return q.getStats(ctx, filmID, false)
}

// RecomputeAverage reads the counters under a row lock, so the average
// always reflects the stored sum and count.
func (q *queries) RecomputeAverage(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/RecomputeAverage")
	defer span.End()
	if err := q.ensureStats(ctx, filmID); err != nil {
		return nil, err
	}
	stats, err := q.getStats(ctx, filmID, true)
	if err != nil {
		return nil, err
	}
	stats.AvgRating = stats.Average()
	stats.UpdatedAt = time.UnixMilli(q.now().UnixMilli()).UTC()
	upd := q.dialect.Update(statsTable).
		Set(goqu.Record{"avg_rating": stats.AvgRating, "updated_at": stats.UpdatedAt.UnixMilli()}).
		Where(goqu.Ex{"film_id": string(filmID)}).
		Prepared(true)
	if _, err := q.exec(ctx, upd); err != nil {
		return nil, fmt.Errorf("recompute average: %w", err)
	}
	return stats, nil
}
