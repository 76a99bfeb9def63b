package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/repository"
	"ugcengagement/engagement/pkg/model"
)

// factKey identifies a fact. Field order is fixed so equality matches
// on the whole _id document.
type factKey struct {
	Subject string `bson:"s"`
	User    string `bson:"u"`
}

type factDoc[V any] struct {
	ID    factKey `bson:"_id"`
	Value V       `bson:"value"`
}

func getFact[V comparable](ctx context.Context, coll *mongo.Collection, key factKey) (V, error) {
	var doc factDoc[V]
	err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc.Value, nil
	}
	if err != nil {
		return doc.Value, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	return doc.Value, nil
}

// swapFact replaces the fact in one server-side operation and returns
// the document as it was before. The zero value of V deletes it.
func swapFact[V comparable](ctx context.Context, coll *mongo.Collection, key factKey, next V) (V, error) {
	var zero V
	var prev factDoc[V]
	filter := bson.D{{Key: "_id", Value: key}}
	var res *mongo.SingleResult
	if next == zero {
		res = coll.FindOneAndDelete(ctx, filter)
	} else {
		res = coll.FindOneAndUpdate(ctx, filter,
			bson.D{{Key: "$set", Value: bson.D{{Key: "value", Value: next}}}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before),
		)
	}
	err := res.Decode(&prev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return zero, nil
	}
	if err != nil {
		return zero, fmt.Errorf("swap %s: %w", coll.Name(), err)
	}
	return prev.Value, nil
}

func (c *collections) GetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetReaction")
	defer span.End()
	return getFact[model.Reaction](ctx, c.reactions, factKey{string(filmID), string(userID)})
}

func (c *collections) SetReaction(ctx context.Context, filmID model.FilmID, userID model.UserID, value model.Reaction) (model.Reaction, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/SetReaction")
	defer span.End()
	return swapFact(ctx, c.reactions, factKey{string(filmID), string(userID)}, value)
}

func (c *collections) ClearReaction(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Reaction, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ClearReaction")
	defer span.End()
	return swapFact(ctx, c.reactions, factKey{string(filmID), string(userID)}, model.ReactionNone)
}

func (c *collections) GetRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetRating")
	defer span.End()
	return getFact[model.Score](ctx, c.ratings, factKey{string(filmID), string(userID)})
}

func (c *collections) SetRating(ctx context.Context, filmID model.FilmID, userID model.UserID, score model.Score) (model.Score, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/SetRating")
	defer span.End()
	return swapFact(ctx, c.ratings, factKey{string(filmID), string(userID)}, score)
}

func (c *collections) ClearRating(ctx context.Context, filmID model.FilmID, userID model.UserID) (model.Score, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ClearRating")
	defer span.End()
	return swapFact(ctx, c.ratings, factKey{string(filmID), string(userID)}, model.NoScore)
}

func (c *collections) GetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/GetVote")
	defer span.End()
	return getFact[model.Vote](ctx, c.votes, factKey{string(reviewID), string(userID)})
}

func (c *collections) SetVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID, value model.Vote) (model.Vote, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/SetVote")
	defer span.End()
	n, err := c.reviews.CountDocuments(ctx, bson.D{{Key: "_id", Value: string(reviewID)}})
	if err != nil {
		return model.VoteNone, fmt.Errorf("check review: %w", err)
	}
	if n == 0 {
		return model.VoteNone, repository.ErrNotFound
	}
	return swapFact(ctx, c.votes, factKey{string(reviewID), string(userID)}, value)
}

func (c *collections) ClearVote(ctx context.Context, reviewID model.ReviewID, userID model.UserID) (model.Vote, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/ClearVote")
	defer span.End()
	return swapFact(ctx, c.votes, factKey{string(reviewID), string(userID)}, model.VoteNone)
}

func (c *collections) DeleteReviewVotes(ctx context.Context, reviewID model.ReviewID) (model.VoteTally, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteReviewVotes")
	defer span.End()
	var tally model.VoteTally
	filter := bson.D{{Key: "_id.s", Value: string(reviewID)}}
	cur, err := c.votes.Find(ctx, filter)
	if err != nil {
		return tally, fmt.Errorf("find votes: %w", err)
	}
	var docs []factDoc[model.Vote]
	if err := cur.All(ctx, &docs); err != nil {
		return tally, fmt.Errorf("decode votes: %w", err)
	}
	if len(docs) == 0 {
		return tally, nil
	}
	for _, d := range docs {
		switch d.Value {
		case model.VoteUp:
			tally.Up++
		case model.VoteDown:
			tally.Down++
		}
	}
	res, err := c.votes.DeleteMany(ctx, filter)
	if err != nil {
		return model.VoteTally{}, fmt.Errorf("delete votes: %w", err)
	}
	if res.DeletedCount != int64(len(docs)) {
		c.logger.Warn("Vote set changed during cascade", zap.String("review", string(reviewID)),
			zap.Int64("deleted", res.DeletedCount), zap.Int("tallied", len(docs)))
		return model.VoteTally{}, fmt.Errorf("deleted %d votes, tallied %d", res.DeletedCount, len(docs))
	}
	return tally, nil
}
