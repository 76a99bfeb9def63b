package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/controller/engagement"
	"ugcengagement/engagement/internal/handler"
	"ugcengagement/engagement/internal/identity"
	"ugcengagement/engagement/pkg/model"
	"ugcengagement/pkg/logging"
	"ugcengagement/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler defines an engagement HTTP handler.
type Handler struct {
	ctrl     *engagement.Controller
	identity *identity.Resolver
	scope    tally.Scope
	logger   *zap.Logger
}

// New creates a new engagement HTTP handler.
func New(ctrl *engagement.Controller, resolver *identity.Resolver, scope tally.Scope, logger *zap.Logger) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "http"),
	)
	return &Handler{ctrl: ctrl, identity: resolver, scope: scope, logger: logger}
}

// Routes returns the /api/v1 router. Extra middlewares run before routing.
func (h *Handler) Routes(middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares...)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/likes/{film_id}", func(r chi.Router) {
			r.Get("/", h.endpoint("GetReaction", h.getReaction))
			r.Put("/", h.endpoint("SetReaction", h.setReaction))
			r.Delete("/", h.endpoint("ClearReaction", h.clearReaction))
		})
		r.Route("/ratings/{film_id}", func(r chi.Router) {
			r.Get("/", h.endpoint("GetRating", h.getRating))
			r.Put("/", h.endpoint("SetRating", h.setRating))
			r.Delete("/", h.endpoint("ClearRating", h.clearRating))
		})
		r.Post("/reviews", h.endpoint("CreateReview", h.createReview))
		r.Route("/reviews/{review_id}", func(r chi.Router) {
			r.Get("/", h.endpoint("GetReview", h.getReview))
			r.Patch("/", h.endpoint("EditReview", h.editReview))
			r.Delete("/", h.endpoint("DeleteReview", h.deleteReview))
			r.Get("/vote", h.endpoint("GetVote", h.getVote))
			r.Post("/vote", h.endpoint("VoteReview", h.voteReview))
			r.Delete("/vote", h.endpoint("UnvoteReview", h.unvoteReview))
		})
		r.Route("/bookmarks/{film_id}", func(r chi.Router) {
			r.Put("/", h.endpoint("AddBookmark", h.addBookmark))
			r.Delete("/", h.endpoint("RemoveBookmark", h.removeBookmark))
		})
		r.Get("/film-stats/{film_id}", h.endpoint("GetFilmStats", h.getFilmStats))
	})
	return r
}

// requestError is a failure detected by the handler itself.
type requestError struct {
	status int
	detail string
}

func (e *requestError) Error() string {
	return e.detail
}

var errBadBody = &requestError{status: http.StatusUnprocessableEntity, detail: "invalid_argument"}

type handlerFunc func(w http.ResponseWriter, req *http.Request) error

func (h *Handler) endpoint(name string, fn handlerFunc) http.HandlerFunc {
	m := metrics.NewEndpointMetrics(h.scope, name)
	return func(w http.ResponseWriter, req *http.Request) {
		m.Calls.Inc(1)
		err := fn(w, req)
		if err == nil {
			m.Successes.Inc(1)
			return
		}
		var re *requestError
		if errors.As(err, &re) {
			m.Failed(re.detail)
			h.writeJSON(w, re.status, errorBody{Detail: re.detail})
			return
		}
		f := handler.Classify(err)
		m.Failed(f.Detail)
		if f.Internal() {
			h.logger.Warn("Request failed", zap.String(logging.FieldOperation, name), zap.Error(err))
		}
		h.writeJSON(w, f.Status, errorBody{Detail: f.Detail})
	}
}

type errorBody struct {
	Detail string `json:"detail"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("Response encode error", zap.Error(err))
	}
}

func decode(req *http.Request, v any) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return errBadBody
	}
	return nil
}

func (h *Handler) user(req *http.Request) (model.UserID, error) {
	id, err := h.identity.Resolve(req.Header.Get("Authorization"), req.Header.Get(identity.Header))
	switch {
	case errors.Is(err, identity.ErrMissing):
		return "", &requestError{status: http.StatusUnprocessableEntity, detail: "missing_user_id"}
	case err != nil:
		return "", &requestError{status: http.StatusUnauthorized, detail: "invalid_token"}
	}
	return id, nil
}

type changeBody struct {
	OK      bool `json:"ok"`
	Applied bool `json:"applied"`
}

func (h *Handler) writeChange(w http.ResponseWriter, applied bool) {
	h.writeJSON(w, http.StatusOK, changeBody{OK: true, Applied: applied})
}

// optional renders the absent value of a fact as null.
func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

type reactionBody struct {
	FilmID string `json:"film_id"`
	UserID string `json:"user_id"`
	Value  *int   `json:"value"`
}

func (h *Handler) getReaction(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	filmID := chi.URLParam(req, "film_id")
	v, err := h.ctrl.GetReaction(req.Context(), model.FilmID(filmID), userID)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, reactionBody{FilmID: filmID, UserID: string(userID), Value: optional(int(v))})
	return nil
}

func (h *Handler) setReaction(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	var body struct {
		Value int `json:"value"`
	}
	if err := decode(req, &body); err != nil {
		return err
	}
	c, err := h.ctrl.SetReaction(req.Context(), model.FilmID(chi.URLParam(req, "film_id")), userID, model.Reaction(body.Value))
	if err != nil {
		return err
	}
	h.writeChange(w, c.Applied())
	return nil
}

func (h *Handler) clearReaction(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	c, err := h.ctrl.ClearReaction(req.Context(), model.FilmID(chi.URLParam(req, "film_id")), userID)
	if err != nil {
		return err
	}
	h.writeChange(w, c.Applied())
	return nil
}

type ratingBody struct {
	FilmID string `json:"film_id"`
	UserID string `json:"user_id"`
	Score  *int   `json:"score"`
}

func (h *Handler) getRating(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	filmID := chi.URLParam(req, "film_id")
	v, err := h.ctrl.GetRating(req.Context(), model.FilmID(filmID), userID)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, ratingBody{FilmID: filmID, UserID: string(userID), Score: optional(int(v))})
	return nil
}

func (h *Handler) setRating(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	var body struct {
		Score int `json:"score"`
	}
	if err := decode(req, &body); err != nil {
		return err
	}
	c, err := h.ctrl.SetRating(req.Context(), model.FilmID(chi.URLParam(req, "film_id")), userID, model.Score(body.Score))
	if err != nil {
		return err
	}
	h.writeChange(w, c.Applied())
	return nil
}

func (h *Handler) clearRating(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	c, err := h.ctrl.ClearRating(req.Context(), model.FilmID(chi.URLParam(req, "film_id")), userID)
	if err != nil {
		return err
	}
	h.writeChange(w, c.Applied())
	return nil
}

func (h *Handler) createReview(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	var body struct {
		FilmID string `json:"film_id"`
		Text   string `json:"text"`
	}
	if err := decode(req, &body); err != nil {
		return err
	}
	r, err := h.ctrl.CreateReview(req.Context(), model.FilmID(body.FilmID), userID, body.Text)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, struct {
		ReviewID string `json:"review_id"`
	}{ReviewID: string(r.ID)})
	return nil
}

func (h *Handler) getReview(w http.ResponseWriter, req *http.Request) error {
	r, err := h.ctrl.GetReview(req.Context(), model.ReviewID(chi.URLParam(req, "review_id")))
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, r)
	return nil
}

func (h *Handler) editReview(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := decode(req, &body); err != nil {
		return err
	}
	if _, err := h.ctrl.EditReview(req.Context(), userID, model.ReviewID(chi.URLParam(req, "review_id")), body.Text); err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
	return nil
}

func (h *Handler) deleteReview(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	if err := h.ctrl.DeleteReview(req.Context(), userID, model.ReviewID(chi.URLParam(req, "review_id"))); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type voteBody struct {
	ReviewID string      `json:"review_id"`
	UserID   string      `json:"user_id"`
	Value    *model.Vote `json:"value"`
}

func (h *Handler) getVote(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	reviewID := chi.URLParam(req, "review_id")
	v, err := h.ctrl.GetVote(req.Context(), model.ReviewID(reviewID), userID)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, voteBody{ReviewID: reviewID, UserID: string(userID), Value: optional(v)})
	return nil
}

func (h *Handler) voteReview(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	var body struct {
		Value model.Vote `json:"value"`
	}
	if err := decode(req, &body); err != nil {
		return err
	}
	c, err := h.ctrl.VoteReview(req.Context(), model.ReviewID(chi.URLParam(req, "review_id")), userID, body.Value)
	if err != nil {
		return err
	}
	h.writeChange(w, c.Applied())
	return nil
}

func (h *Handler) unvoteReview(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	c, err := h.ctrl.UnvoteReview(req.Context(), model.ReviewID(chi.URLParam(req, "review_id")), userID)
	if err != nil {
		return err
	}
	h.writeChange(w, c.Applied())
	return nil
}

func (h *Handler) getFilmStats(w http.ResponseWriter, req *http.Request) error {
	s, err := h.ctrl.GetFilmStats(req.Context(), model.FilmID(chi.URLParam(req, "film_id")))
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, s)
	return nil
}

type bookmarkBody struct {
	OK      bool  `json:"ok"`
	Created *bool `json:"created,omitempty"`
	Deleted *bool `json:"deleted,omitempty"`
}

func (h *Handler) addBookmark(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	created, err := h.ctrl.AddBookmark(req.Context(), model.FilmID(chi.URLParam(req, "film_id")), userID)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, bookmarkBody{OK: true, Created: &created})
	return nil
}

func (h *Handler) removeBookmark(w http.ResponseWriter, req *http.Request) error {
	userID, err := h.user(req)
	if err != nil {
		return err
	}
	deleted, err := h.ctrl.RemoveBookmark(req.Context(), model.FilmID(chi.URLParam(req, "film_id")), userID)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, bookmarkBody{OK: true, Deleted: &deleted})
	return nil
}
