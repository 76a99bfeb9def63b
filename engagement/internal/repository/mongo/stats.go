package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"

	"ugcengagement/engagement/pkg/model"
)

type statsDoc struct {
	FilmID       string    `bson:"_id"`
	Likes        int64     `bson:"likes"`
	Dislikes     int64     `bson:"dislikes"`
	RatingsCount int64     `bson:"ratings_count"`
	RatingsSum   int64     `bson:"ratings_sum"`
	AvgRating    float64   `bson:"avg_rating"`
	ReviewsCount int64     `bson:"reviews_count"`
	VotesUp      int64     `bson:"votes_up"`
	VotesDown    int64     `bson:"votes_down"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d statsDoc) toModel() *model.FilmStats {
	return &model.FilmStats{
		FilmID:       model.FilmID(d.FilmID),
		Likes:        d.Likes,
		Dislikes:     d.Dislikes,
		RatingsCount: d.RatingsCount,
		RatingsSum:   d.RatingsSum,
		AvgRating:    d.AvgRating,
		ReviewsCount: d.ReviewsCount,
		VotesUp:      d.VotesUp,
		VotesDown:    d.VotesDown,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

func decodeStats(res *mongo.SingleResult) (*model.FilmStats, error) {
	var doc statsDoc
	if err := res.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return doc.toModel(), nil
}

var upsertAfter = options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

func (c *collections) EnsureStats(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/EnsureStats")
	defer span.End()
	now := c.now()
	zeros := bson.D{{Key: "avg_rating", Value: 0.0}, {Key: "created_at", Value: now}, {Key: "updated_at", Value: now}}
	for _, f := range model.CounterFields {
		zeros = append(zeros, bson.E{Key: f, Value: int64(0)})
	}
	return decodeStats(c.stats.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: string(filmID)}},
		bson.D{{Key: "$setOnInsert", Value: zeros}},
		upsertAfter,
	))
}

func (c *collections) ApplyStatsDelta(ctx context.Context, filmID model.FilmID, delta model.StatsDelta) (*model.FilmStats, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ApplyStatsDelta")
	defer span.End()
	inc := bson.D{}
	fields := delta.Fields()
	for _, f := range model.CounterFields {
		if v, ok := fields[f]; ok {
			inc = append(inc, bson.E{Key: f, Value: v})
		}
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: c.now()}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "created_at", Value: c.now()}, {Key: "avg_rating", Value: 0.0}}},
	}
	if len(inc) > 0 {
		update = append(update, bson.E{Key: "$inc", Value: inc})
	}
	return decodeStats(c.stats.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: string(filmID)}}, update, upsertAfter))
}

// RecomputeAverage derives avg_rating on the server from the stored
// counters in the same update that writes it.
func (c *collections) RecomputeAverage(ctx context.Context, filmID model.FilmID) (*model.FilmStats, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/RecomputeAverage")
	defer span.End()
	now := c.now()
	pipeline := mongo.Pipeline{{{Key: "$set", Value: bson.D{
		{Key: "avg_rating", Value: bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$gt", Value: bson.A{"$ratings_count", 0}}},
			bson.D{{Key: "$divide", Value: bson.A{"$ratings_sum", "$ratings_count"}}},
			0.0,
		}}}},
		{Key: "created_at", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$created_at", now}}}},
		{Key: "updated_at", Value: now},
	}}}}
	return decodeStats(c.stats.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: string(filmID)}}, pipeline, upsertAfter))
}
