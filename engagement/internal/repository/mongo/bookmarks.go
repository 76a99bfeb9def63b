package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"

	"ugcengagement/engagement/pkg/model"
)

// AddBookmark upserts on the (film, user) key; created_at is only
// written by the insert.
func (c *collections) AddBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/AddBookmark")
	defer span.End()
	res, err := c.bookmarks.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: factKey{string(filmID), string(userID)}}},
		bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "created_at", Value: c.now()}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("upsert bookmark: %w", err)
	}
	return res.UpsertedCount == 1, nil
}

func (c *collections) RemoveBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/RemoveBookmark")
	defer span.End()
	res, err := c.bookmarks.DeleteOne(ctx, bson.D{{Key: "_id", Value: factKey{string(filmID), string(userID)}}})
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}
	return res.DeletedCount == 1, nil
}
