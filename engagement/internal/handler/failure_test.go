package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ugcengagement/engagement/internal/controller/engagement"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   codes.Code
		wantStatus int
		wantDetail string
	}{
		{
			name:       "validation",
			err:        &engagement.Error{Kind: engagement.FailureValidation, Op: "SetRating"},
			wantCode:   codes.InvalidArgument,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "invalid_argument",
		},
		{
			name:       "not found",
			err:        &engagement.Error{Kind: engagement.FailureNotFound, Op: "GetReview"},
			wantCode:   codes.NotFound,
			wantStatus: http.StatusNotFound,
			wantDetail: "not_found",
		},
		{
			name:       "not authorized collapses to not found",
			err:        &engagement.Error{Kind: engagement.FailureNotAuthorized, Op: "DeleteReview"},
			wantCode:   codes.NotFound,
			wantStatus: http.StatusNotFound,
			wantDetail: "not_found",
		},
		{
			name:       "store",
			err:        fmt.Errorf("handler: %w", &engagement.Error{Kind: engagement.FailureStore, Op: "SetReaction", Err: errors.New("dial tcp")}),
			wantCode:   codes.Unavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "store_unavailable",
		},
		{
			name:       "aborted",
			err:        &engagement.Error{Kind: engagement.FailureAborted, Op: "DeleteReview"},
			wantCode:   codes.Aborted,
			wantStatus: http.StatusInternalServerError,
			wantDetail: "transaction_aborted",
		},
		{
			name:       "foreign error",
			err:        errors.New("boom"),
			wantCode:   codes.Internal,
			wantStatus: http.StatusInternalServerError,
			wantDetail: "internal_error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Classify(tt.err)
			assert.Equal(t, tt.wantCode, f.Code)
			assert.Equal(t, tt.wantStatus, f.Status)
			assert.Equal(t, tt.wantDetail, f.Detail)

			st, ok := status.FromError(f.Err())
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantDetail, st.Message())
		})
	}
}

func TestInternal(t *testing.T) {
	assert.False(t, Classify(engagement.ErrNotFound).Internal())
	assert.True(t, Classify(engagement.ErrStore).Internal())
	assert.True(t, Classify(errors.New("boom")).Internal())
}
