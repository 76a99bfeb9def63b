package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/controller/engagement"
	"ugcengagement/engagement/internal/identity"
	"ugcengagement/engagement/internal/repository/memory"
	"ugcengagement/pkg/limiter"
)

type client struct {
	t   *testing.T
	srv *httptest.Server
}

func newClient(t *testing.T, middlewares ...func(http.Handler) http.Handler) *client {
	t.Helper()
	ctrl := engagement.New(memory.New(zap.NewNop()), nil, tally.NoopScope, zap.NewNop())
	h := New(ctrl, identity.NewResolver(""), tally.NoopScope, zap.NewNop())
	srv := httptest.NewServer(h.Routes(middlewares...))
	t.Cleanup(srv.Close)
	return &client{t: t, srv: srv}
}

func (c *client) do(method, path, userID, body string) (int, string) {
	c.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, c.srv.URL+path, r)
	require.NoError(c.t, err)
	if userID != "" {
		req.Header.Set(identity.Header, userID)
	}
	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, strings.TrimSpace(string(b))
}

func (c *client) decode(method, path, userID, body string, v any) int {
	c.t.Helper()
	code, raw := c.do(method, path, userID, body)
	require.NoError(c.t, json.Unmarshal([]byte(raw), v), raw)
	return code
}

func TestLikes(t *testing.T) {
	c := newClient(t)

	code, body := c.do(http.MethodGet, "/api/v1/likes/film-1", "u1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"film_id":"film-1","user_id":"u1","value":null}`, body)

	code, body = c.do(http.MethodPut, "/api/v1/likes/film-1", "u1", `{"value":1}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true,"applied":true}`, body)

	_, body = c.do(http.MethodPut, "/api/v1/likes/film-1", "u1", `{"value":1}`)
	assert.JSONEq(t, `{"ok":true,"applied":false}`, body)

	_, body = c.do(http.MethodGet, "/api/v1/likes/film-1", "u1", "")
	assert.JSONEq(t, `{"film_id":"film-1","user_id":"u1","value":1}`, body)

	code, body = c.do(http.MethodPut, "/api/v1/likes/film-1", "u1", `{"value":5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.JSONEq(t, `{"detail":"invalid_argument"}`, body)

	code, _ = c.do(http.MethodPut, "/api/v1/likes/film-1", "u1", `{`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, body = c.do(http.MethodPut, "/api/v1/likes/film-1", "", `{"value":1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.JSONEq(t, `{"detail":"missing_user_id"}`, body)

	_, body = c.do(http.MethodDelete, "/api/v1/likes/film-1", "u1", "")
	assert.JSONEq(t, `{"ok":true,"applied":true}`, body)
}

func TestRatingsAndStats(t *testing.T) {
	c := newClient(t)

	c.do(http.MethodPut, "/api/v1/ratings/film-1", "u1", `{"score":7}`)
	c.do(http.MethodPut, "/api/v1/ratings/film-1", "u1", `{"score":9}`)
	c.do(http.MethodPut, "/api/v1/ratings/film-1", "u2", `{"score":5}`)
	c.do(http.MethodPut, "/api/v1/likes/film-1", "u2", `{"value":-1}`)

	_, body := c.do(http.MethodGet, "/api/v1/ratings/film-1", "u1", "")
	assert.JSONEq(t, `{"film_id":"film-1","user_id":"u1","score":9}`, body)

	var stats struct {
		Likes        int64   `json:"likes"`
		Dislikes     int64   `json:"dislikes"`
		RatingsCount int64   `json:"ratings_count"`
		RatingsSum   int64   `json:"ratings_sum"`
		AvgRating    float64 `json:"avg_rating"`
	}
	code := c.decode(http.MethodGet, "/api/v1/film-stats/film-1", "", "", &stats)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(0), stats.Likes)
	assert.Equal(t, int64(1), stats.Dislikes)
	assert.Equal(t, int64(2), stats.RatingsCount)
	assert.Equal(t, int64(14), stats.RatingsSum)
	assert.InDelta(t, 7.0, stats.AvgRating, 1e-9)

	code, _ = c.do(http.MethodPut, "/api/v1/ratings/film-1", "u1", `{"score":0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestBookmarks(t *testing.T) {
	c := newClient(t)

	code, body := c.do(http.MethodPut, "/api/v1/bookmarks/film-1", "u1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true,"created":true}`, body)
	_, body = c.do(http.MethodPut, "/api/v1/bookmarks/film-1", "u1", "")
	assert.JSONEq(t, `{"ok":true,"created":false}`, body)

	code, body = c.do(http.MethodDelete, "/api/v1/bookmarks/film-1", "u1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true,"deleted":true}`, body)
	_, body = c.do(http.MethodDelete, "/api/v1/bookmarks/film-1", "u1", "")
	assert.JSONEq(t, `{"ok":true,"deleted":false}`, body)

	code, body = c.do(http.MethodPut, "/api/v1/bookmarks/film-1", "", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.JSONEq(t, `{"detail":"missing_user_id"}`, body)
}

func TestReviewLifecycle(t *testing.T) {
	c := newClient(t)

	var created struct {
		ReviewID string `json:"review_id"`
	}
	code := c.decode(http.MethodPost, "/api/v1/reviews", "author", `{"film_id":"film-1","text":"great"}`, &created)
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, created.ReviewID)
	path := "/api/v1/reviews/" + created.ReviewID

	code, body := c.do(http.MethodPost, path+"/vote", "voter", `{"value":"down"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true,"applied":true}`, body)

	_, body = c.do(http.MethodGet, path+"/vote", "voter", "")
	assert.JSONEq(t, `{"review_id":"`+created.ReviewID+`","user_id":"voter","value":"down"}`, body)

	var review struct {
		Text string `json:"text"`
		Down int64  `json:"down"`
	}
	code = c.decode(http.MethodGet, path, "", "", &review)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), review.Down)

	code, body = c.do(http.MethodPatch, path, "intruder", `{"text":"spam"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"detail":"not_found"}`, body)

	code, body = c.do(http.MethodPatch, path, "author", `{"text":"better"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true}`, body)

	code, _ = c.do(http.MethodPatch, path, "author", `{"text":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = c.do(http.MethodDelete, path, "intruder", "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = c.do(http.MethodDelete, path, "author", "")
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = c.do(http.MethodDelete, path, "author", "")
	assert.Equal(t, http.StatusNotFound, code)

	var stats struct {
		ReviewsCount int64 `json:"reviews_count"`
		VotesDown    int64 `json:"votes_down"`
	}
	c.decode(http.MethodGet, "/api/v1/film-stats/film-1", "", "", &stats)
	assert.Equal(t, int64(0), stats.ReviewsCount)
	assert.Equal(t, int64(0), stats.VotesDown)

	code, _ = c.do(http.MethodPost, path+"/vote", "voter", `{"value":"up"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRateLimit(t *testing.T) {
	c := newClient(t, limiter.New(zap.NewNop(), 1, 1).Middleware)
	code, _ := c.do(http.MethodGet, "/api/v1/film-stats/film-1", "", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = c.do(http.MethodGet, "/api/v1/film-stats/film-1", "", "")
	assert.Equal(t, http.StatusTooManyRequests, code)
}
