package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"

	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
)

type reviewDoc struct {
	ID        string    `bson:"_id"`
	FilmID    string    `bson:"film_id"`
	AuthorID  string    `bson:"user_id"`
	Text      string    `bson:"text"`
	VotesUp   int64     `bson:"votes_up"`
	VotesDown int64     `bson:"votes_down"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d reviewDoc) toModel() *model.Review {
	return &model.Review{
		ID:        model.ReviewID(d.ID),
		FilmID:    model.FilmID(d.FilmID),
		AuthorID:  model.UserID(d.AuthorID),
		Text:      d.Text,
		VotesUp:   d.VotesUp,
		VotesDown: d.VotesDown,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func decodeReview(res *mongo.SingleResult) (*model.Review, error) {
	var doc reviewDoc
	err := res.Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("decode review: %w", err)
	}
	return doc.toModel(), nil
}

func (c *collections) CreateReview(ctx context.Context, review *model.Review) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/CreateReview")
	defer span.End()
	if review == nil {
		return errors.New("review is nil")
	}
	_, err := c.reviews.InsertOne(ctx, reviewDoc{
		ID:        string(review.ID),
		FilmID:    string(review.FilmID),
		AuthorID:  string(review.AuthorID),
		Text:      review.Text,
		VotesUp:   review.VotesUp,
		VotesDown: review.VotesDown,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (c *collections) GetReview(ctx context.Context, reviewID model.ReviewID) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetReview")
	defer span.End()
	return decodeReview(c.reviews.FindOne(ctx, bson.D{{Key: "_id", Value: string(reviewID)}}))
}

func (c *collections) UpdateReviewText(ctx context.Context, reviewID model.ReviewID, authorID model.UserID, text string) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/UpdateReviewText")
	defer span.End()
	return decodeReview(c.reviews.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: string(reviewID)}, {Key: "user_id", Value: string(authorID)}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "text", Value: text}, {Key: "updated_at", Value: c.now()}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	))
}

func (c *collections) DeleteReview(ctx context.Context, reviewID model.ReviewID, authorID model.UserID) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteReview")
	defer span.End()
	return decodeReview(c.reviews.FindOneAndDelete(ctx,
		bson.D{{Key: "_id", Value: string(reviewID)}, {Key: "user_id", Value: string(authorID)}},
	))
}

func (c *collections) ApplyReviewVotes(ctx context.Context, reviewID model.ReviewID, delta model.StatsDelta) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ApplyReviewVotes")
	defer span.End()
	return decodeReview(c.reviews.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: string(reviewID)}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "votes_up", Value: delta.VotesUp}, {Key: "votes_down", Value: delta.VotesDown}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	))
}
