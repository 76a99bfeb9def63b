package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is portable across MySQL, PostgreSQL and SQLite. Timestamps are
// unix milliseconds. Votes are never removed by a cascading delete; the
// caller deletes them and adjusts the film stats by their tally.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS film_reactions (
		film_id VARCHAR(64) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		reaction SMALLINT NOT NULL,
		PRIMARY KEY (film_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS film_ratings (
		film_id VARCHAR(64) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		score SMALLINT NOT NULL,
		PRIMARY KEY (film_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		film_id VARCHAR(64) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		content TEXT NOT NULL,
		votes_up BIGINT NOT NULL DEFAULT 0,
		votes_down BIGINT NOT NULL DEFAULT 0,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS review_votes (
		review_id VARCHAR(64) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		vote VARCHAR(8) NOT NULL,
		PRIMARY KEY (review_id, user_id),
		FOREIGN KEY (review_id) REFERENCES reviews (id)
	)`,
	`CREATE TABLE IF NOT EXISTS bookmarks (
		film_id VARCHAR(64) NOT NULL,
		user_id VARCHAR(64) NOT NULL,
		created_at BIGINT NOT NULL,
		PRIMARY KEY (film_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS film_stats (
		film_id VARCHAR(64) NOT NULL PRIMARY KEY,
		likes BIGINT NOT NULL DEFAULT 0,
		dislikes BIGINT NOT NULL DEFAULT 0,
		ratings_count BIGINT NOT NULL DEFAULT 0,
		ratings_sum BIGINT NOT NULL DEFAULT 0,
		avg_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		reviews_count BIGINT NOT NULL DEFAULT 0,
		votes_up BIGINT NOT NULL DEFAULT 0,
		votes_down BIGINT NOT NULL DEFAULT 0,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
}

func migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
