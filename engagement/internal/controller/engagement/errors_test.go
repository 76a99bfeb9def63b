package engagement

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{name: "nil", err: nil, want: FailureUnknown},
		{name: "foreign", err: cause, want: FailureUnknown},
		{name: "direct", err: fail(FailureStore, "SetRating", cause), want: FailureStore},
		{name: "wrapped", err: fmt.Errorf("ingest: %w", fail(FailureValidation, "Apply", cause)), want: FailureValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMatchesSentinels(t *testing.T) {
	cause := errors.New("boom")
	err := fail(FailureNotAuthorized, "DeleteReview", cause)

	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DeleteReview: not authorized: boom", err.Error())
	assert.Equal(t, "VoteReview: transaction aborted", (&Error{Kind: FailureAborted, Op: "VoteReview"}).Error())
}

func TestStoreFailureKeepsInnerKind(t *testing.T) {
	inner := fail(FailureNotFound, "DeleteReview", errors.New("missing"))
	assert.Same(t, inner, storeFailure(FailureAborted, "DeleteReview", inner))

	wrapped := storeFailure(FailureAborted, "DeleteReview", errors.New("deadlock"))
	assert.Equal(t, FailureAborted, KindOf(wrapped))
}
