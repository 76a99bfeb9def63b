package grpc

import (
	"context"
	"errors"
	"strconv"

	"github.com/uber-go/tally/v6"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"ugcengagement/engagement/internal/controller/engagement"
	"ugcengagement/engagement/internal/handler"
	"ugcengagement/engagement/internal/identity"
	"ugcengagement/engagement/pkg/model"
	"ugcengagement/gen"
	"ugcengagement/pkg/logging"
	"ugcengagement/pkg/metrics"
)

var endpoints = []string{
	"GetReaction", "SetReaction", "ClearReaction",
	"GetRating", "SetRating", "ClearRating",
	"CreateReview", "GetReview", "EditReview", "DeleteReview",
	"GetVote", "VoteReview", "UnvoteReview",
	"AddBookmark", "RemoveBookmark",
	"GetFilmStats",
}

// Handler defines a gRPC engagement API handler.
type Handler struct {
	gen.UnimplementedEngagementServiceServer
	svc      *engagement.Controller
	identity *identity.Resolver
	logger   *zap.Logger
	metrics  map[string]*metrics.EndpointMetrics
}

// New creates a new engagement gRPC handler.
func New(svc *engagement.Controller, resolver *identity.Resolver, scope tally.Scope, logger *zap.Logger) *Handler {
	logger = logger.With(
		zap.String(logging.FieldComponent, "handler"),
		zap.String(logging.FieldType, "grpc"),
	)
	m := make(map[string]*metrics.EndpointMetrics, len(endpoints))
	for _, e := range endpoints {
		m[e] = metrics.NewEndpointMetrics(scope, e)
	}
	return &Handler{svc: svc, identity: resolver, logger: logger, metrics: m}
}

func serve[Resp any](ctx context.Context, h *Handler, endpoint string, fn func(ctx context.Context) (*Resp, error)) (*Resp, error) {
	m := h.metrics[endpoint]
	m.Calls.Inc(1)
	resp, err := fn(ctx)
	if err == nil {
		m.Successes.Inc(1)
		return resp, nil
	}
	if st, ok := status.FromError(err); ok {
		m.Failed(st.Code().String())
		return nil, err
	}
	f := handler.Classify(err)
	m.Failed(f.Detail)
	if f.Internal() {
		h.logger.Warn("Request failed", zap.String(logging.FieldOperation, endpoint), zap.Error(err))
	}
	return nil, f.Err()
}

// user resolves the caller from the authorization and x-user-id metadata,
// falling back to the user id carried by the request.
func (h *Handler) user(ctx context.Context, fromRequest string) (model.UserID, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	first := func(key string) string {
		if v := md.Get(key); len(v) > 0 {
			return v[0]
		}
		return ""
	}
	userID := fromRequest
	if userID == "" {
		userID = first("x-user-id")
	}
	id, err := h.identity.Resolve(first("authorization"), userID)
	switch {
	case errors.Is(err, identity.ErrMissing):
		return "", status.Error(codes.InvalidArgument, "user identity is missing")
	case err != nil:
		return "", status.Error(codes.Unauthenticated, "invalid token")
	}
	return id, nil
}

func formatReaction(r model.Reaction) string {
	if r == model.ReactionNone {
		return ""
	}
	return strconv.Itoa(int(r))
}

func formatScore(s model.Score) string {
	if s == model.NoScore {
		return ""
	}
	return strconv.Itoa(int(s))
}

func changeResponse[T comparable](c model.Change[T], format func(T) string) *gen.ChangeResponse {
	return &gen.ChangeResponse{Previous: format(c.Previous), Current: format(c.Current), Applied: c.Applied()}
}

func reviewResponse(r *model.Review) *gen.ReviewResponse {
	return &gen.ReviewResponse{Review: &gen.Review{
		ReviewId:  string(r.ID),
		FilmId:    string(r.FilmID),
		UserId:    string(r.AuthorID),
		Text:      r.Text,
		Up:        r.VotesUp,
		Down:      r.VotesDown,
		CreatedAt: r.CreatedAt.UnixMilli(),
		UpdatedAt: r.UpdatedAt.UnixMilli(),
	}}
}

// GetReaction returns the caller's reaction to a film.
func (h *Handler) GetReaction(ctx context.Context, req *gen.FilmUserRequest) (*gen.ReactionResponse, error) {
	return serve(ctx, h, "GetReaction", func(ctx context.Context) (*gen.ReactionResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		v, err := h.svc.GetReaction(ctx, model.FilmID(req.FilmId), userID)
		if err != nil {
			return nil, err
		}
		return &gen.ReactionResponse{FilmId: req.FilmId, UserId: string(userID), Value: int32(v)}, nil
	})
}

// SetReaction likes or dislikes a film.
func (h *Handler) SetReaction(ctx context.Context, req *gen.SetReactionRequest) (*gen.ChangeResponse, error) {
	return serve(ctx, h, "SetReaction", func(ctx context.Context) (*gen.ChangeResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		c, err := h.svc.SetReaction(ctx, model.FilmID(req.FilmId), userID, model.Reaction(req.Value))
		if err != nil {
			return nil, err
		}
		return changeResponse(c, formatReaction), nil
	})
}

// ClearReaction removes the caller's reaction to a film.
func (h *Handler) ClearReaction(ctx context.Context, req *gen.FilmUserRequest) (*gen.ChangeResponse, error) {
	return serve(ctx, h, "ClearReaction", func(ctx context.Context) (*gen.ChangeResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		c, err := h.svc.ClearReaction(ctx, model.FilmID(req.FilmId), userID)
		if err != nil {
			return nil, err
		}
		return changeResponse(c, formatReaction), nil
	})
}

// GetRating returns the caller's score of a film, 0 when unrated.
func (h *Handler) GetRating(ctx context.Context, req *gen.FilmUserRequest) (*gen.RatingResponse, error) {
	return serve(ctx, h, "GetRating", func(ctx context.Context) (*gen.RatingResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		v, err := h.svc.GetRating(ctx, model.FilmID(req.FilmId), userID)
		if err != nil {
			return nil, err
		}
		return &gen.RatingResponse{FilmId: req.FilmId, UserId: string(userID), Score: int32(v)}, nil
	})
}

// SetRating scores a film.
func (h *Handler) SetRating(ctx context.Context, req *gen.SetRatingRequest) (*gen.ChangeResponse, error) {
	return serve(ctx, h, "SetRating", func(ctx context.Context) (*gen.ChangeResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		c, err := h.svc.SetRating(ctx, model.FilmID(req.FilmId), userID, model.Score(req.Score))
		if err != nil {
			return nil, err
		}
		return changeResponse(c, formatScore), nil
	})
}

// ClearRating removes the caller's score of a film.
func (h *Handler) ClearRating(ctx context.Context, req *gen.FilmUserRequest) (*gen.ChangeResponse, error) {
	return serve(ctx, h, "ClearRating", func(ctx context.Context) (*gen.ChangeResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		c, err := h.svc.ClearRating(ctx, model.FilmID(req.FilmId), userID)
		if err != nil {
			return nil, err
		}
		return changeResponse(c, formatScore), nil
	})
}

// CreateReview publishes a review authored by the caller.
func (h *Handler) CreateReview(ctx context.Context, req *gen.CreateReviewRequest) (*gen.ReviewResponse, error) {
	return serve(ctx, h, "CreateReview", func(ctx context.Context) (*gen.ReviewResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		r, err := h.svc.CreateReview(ctx, model.FilmID(req.FilmId), userID, req.Text)
		if err != nil {
			return nil, err
		}
		return reviewResponse(r), nil
	})
}

// GetReview returns a review. No identity is required.
func (h *Handler) GetReview(ctx context.Context, req *gen.ReviewRequest) (*gen.ReviewResponse, error) {
	return serve(ctx, h, "GetReview", func(ctx context.Context) (*gen.ReviewResponse, error) {
		r, err := h.svc.GetReview(ctx, model.ReviewID(req.ReviewId))
		if err != nil {
			return nil, err
		}
		return reviewResponse(r), nil
	})
}

// EditReview replaces the text of the caller's review.
func (h *Handler) EditReview(ctx context.Context, req *gen.EditReviewRequest) (*gen.ReviewResponse, error) {
	return serve(ctx, h, "EditReview", func(ctx context.Context) (*gen.ReviewResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		r, err := h.svc.EditReview(ctx, userID, model.ReviewID(req.ReviewId), req.Text)
		if err != nil {
			return nil, err
		}
		return reviewResponse(r), nil
	})
}

// DeleteReview deletes the caller's review with its votes.
func (h *Handler) DeleteReview(ctx context.Context, req *gen.ReviewRequest) (*gen.DeleteReviewResponse, error) {
	return serve(ctx, h, "DeleteReview", func(ctx context.Context) (*gen.DeleteReviewResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		if err := h.svc.DeleteReview(ctx, userID, model.ReviewID(req.ReviewId)); err != nil {
			return nil, err
		}
		return &gen.DeleteReviewResponse{}, nil
	})
}

// GetVote returns the caller's vote on a review.
func (h *Handler) GetVote(ctx context.Context, req *gen.VoteRequest) (*gen.VoteResponse, error) {
	return serve(ctx, h, "GetVote", func(ctx context.Context) (*gen.VoteResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		v, err := h.svc.GetVote(ctx, model.ReviewID(req.ReviewId), userID)
		if err != nil {
			return nil, err
		}
		return &gen.VoteResponse{ReviewId: req.ReviewId, UserId: string(userID), Value: string(v)}, nil
	})
}

// VoteReview votes a review up or down.
func (h *Handler) VoteReview(ctx context.Context, req *gen.VoteRequest) (*gen.ChangeResponse, error) {
	return serve(ctx, h, "VoteReview", func(ctx context.Context) (*gen.ChangeResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		c, err := h.svc.VoteReview(ctx, model.ReviewID(req.ReviewId), userID, model.Vote(req.Value))
		if err != nil {
			return nil, err
		}
		return changeResponse(c, func(v model.Vote) string { return string(v) }), nil
	})
}

// UnvoteReview withdraws the caller's vote on a review.
func (h *Handler) UnvoteReview(ctx context.Context, req *gen.VoteRequest) (*gen.ChangeResponse, error) {
	return serve(ctx, h, "UnvoteReview", func(ctx context.Context) (*gen.ChangeResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		c, err := h.svc.UnvoteReview(ctx, model.ReviewID(req.ReviewId), userID)
		if err != nil {
			return nil, err
		}
		return changeResponse(c, func(v model.Vote) string { return string(v) }), nil
	})
}

// AddBookmark saves a film for the caller.
func (h *Handler) AddBookmark(ctx context.Context, req *gen.FilmUserRequest) (*gen.AddBookmarkResponse, error) {
	return serve(ctx, h, "AddBookmark", func(ctx context.Context) (*gen.AddBookmarkResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		created, err := h.svc.AddBookmark(ctx, model.FilmID(req.FilmId), userID)
		if err != nil {
			return nil, err
		}
		return &gen.AddBookmarkResponse{Created: created}, nil
	})
}

// RemoveBookmark removes the caller's bookmark of a film.
func (h *Handler) RemoveBookmark(ctx context.Context, req *gen.FilmUserRequest) (*gen.RemoveBookmarkResponse, error) {
	return serve(ctx, h, "RemoveBookmark", func(ctx context.Context) (*gen.RemoveBookmarkResponse, error) {
		userID, err := h.user(ctx, req.UserId)
		if err != nil {
			return nil, err
		}
		deleted, err := h.svc.RemoveBookmark(ctx, model.FilmID(req.FilmId), userID)
		if err != nil {
			return nil, err
		}
		return &gen.RemoveBookmarkResponse{Deleted: deleted}, nil
	})
}

// GetFilmStats returns the film engagement aggregate.
func (h *Handler) GetFilmStats(ctx context.Context, req *gen.FilmStatsRequest) (*gen.FilmStatsResponse, error) {
	return serve(ctx, h, "GetFilmStats", func(ctx context.Context) (*gen.FilmStatsResponse, error) {
		s, err := h.svc.GetFilmStats(ctx, model.FilmID(req.FilmId))
		if err != nil {
			return nil, err
		}
		return &gen.FilmStatsResponse{Stats: &gen.FilmStats{
			FilmId:       string(s.FilmID),
			Likes:        s.Likes,
			Dislikes:     s.Dislikes,
			RatingsCount: s.RatingsCount,
			RatingsSum:   s.RatingsSum,
			AvgRating:    s.AvgRating,
			ReviewsCount: s.ReviewsCount,
			VotesUp:      s.VotesUp,
			VotesDown:    s.VotesDown,
			UpdatedAt:    s.UpdatedAt.UnixMilli(),
		}}, nil
	})
}
