package sqldb

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"go.opentelemetry.io/otel"

	"ugcengagement/engagement/pkg/model"
)

const bookmarksTable = "bookmarks"

func bookmarkKey(filmID model.FilmID, userID model.UserID) goqu.Ex {
	return goqu.Ex{"film_id": string(filmID), "user_id": string(userID)}
}

// AddBookmark relies on the primary key: a second insert of the same
// pair affects no rows.
func (q *queries) AddBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/AddBookmark")
	defer span.End()
	ins := q.dialect.Insert(bookmarksTable).
		Rows(goqu.Record{"film_id": string(filmID), "user_id": string(userID), "created_at": q.now().UnixMilli()}).
		OnConflict(goqu.DoNothing()).
		Prepared(true)
	n, err := q.exec(ctx, ins)
	if err != nil {
		return false, fmt.Errorf("insert bookmark: %w", err)
	}
	return n == 1, nil
}

func (q *queries) RemoveBookmark(ctx context.Context, filmID model.FilmID, userID model.UserID) (bool, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/RemoveBookmark")
	defer span.End()
	n, err := q.exec(ctx, q.dialect.Delete(bookmarksTable).Where(bookmarkKey(filmID, userID)).Prepared(true))
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}
	return n == 1, nil
}
