// Package mongo implements the engagement store on MongoDB. Transactions
// require a replica set.
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
	"go.uber.org/zap"

	"ugcengagement/engagement/configs"
	"ugcengagement/engagement/internal/repository"
	"ugcengagement/pkg/logging"
)

const tracerID = "engagement-repository-mongo"

const (
	reactionsCollection = "film_reactions"
	ratingsCollection   = "film_ratings"
	votesCollection     = "review_votes"
	reviewsCollection   = "reviews"
	statsCollection     = "film_stats"
	bookmarksCollection = "bookmarks"
)

// Repository defines a MongoDB-based engagement repository.
type Repository struct {
	client *mongo.Client
	*collections
	logger *zap.Logger
}

var _ repository.Store = (*Repository)(nil)

// collections implements every store operation. Inside a transaction
// the session travels in the context.
type collections struct {
	reactions *mongo.Collection
	ratings   *mongo.Collection
	votes     *mongo.Collection
	reviews   *mongo.Collection
	stats     *mongo.Collection
	bookmarks *mongo.Collection
	now       func() time.Time
	logger    *zap.Logger
}

// New creates a new MongoDB-based engagement repository.
func New(ctx context.Context, config configs.MongoConfig, logger *zap.Logger) (*Repository, error) {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "mongo"),
	)
	logger.Info("Connecting to mongo")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	db := client.Database(config.Name)
	r := &Repository{
		client: client,
		collections: &collections{
			reactions: db.Collection(reactionsCollection),
			ratings:   db.Collection(ratingsCollection),
			votes:     db.Collection(votesCollection),
			reviews:   db.Collection(reviewsCollection),
			stats:     db.Collection(statsCollection),
			bookmarks: db.Collection(bookmarksCollection),
			now:       func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
			logger:    logger,
		},
		logger: logger,
	}
	if err := r.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return r, nil
}

func (r *Repository) ensureIndexes(ctx context.Context) error {
	if _, err := r.votes.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "_id.s", Value: 1}}}); err != nil {
		return fmt.Errorf("create votes index: %w", err)
	}
	if _, err := r.reviews.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "film_id", Value: 1}}}); err != nil {
		return fmt.Errorf("create reviews index: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (r *Repository) Close() error {
	r.logger.Info("Disconnecting from mongo")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}

// WithinTx runs fn in a multi-document transaction. The transaction is
// not retried on transient errors.
func (r *Repository) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/WithinTx")
	defer span.End()
	sess, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)
	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sess.StartTransaction(); err != nil {
			return fmt.Errorf("start transaction: %w", err)
		}
		if err := fn(sc, r.collections); err != nil {
			if abortErr := sess.AbortTransaction(context.WithoutCancel(sc)); abortErr != nil {
				return errors.Join(err, fmt.Errorf("abort transaction: %w", abortErr))
			}
			return err
		}
		if err := sess.CommitTransaction(sc); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}
