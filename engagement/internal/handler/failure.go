// Package handler maps engagement failures onto transport status codes.
// Both the gRPC and the HTTP handler go through Classify.
package handler

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ugcengagement/engagement/internal/controller/engagement"
)

// Failure describes how a failed operation is reported to a client.
type Failure struct {
	Code   codes.Code
	Status int
	Detail string
}

var failures = map[engagement.FailureKind]Failure{
	engagement.FailureValidation: {Code: codes.InvalidArgument, Status: http.StatusUnprocessableEntity, Detail: "invalid_argument"},
	engagement.FailureNotFound:   {Code: codes.NotFound, Status: http.StatusNotFound, Detail: "not_found"},
	// Reviews of other users are reported as missing.
	engagement.FailureNotAuthorized: {Code: codes.NotFound, Status: http.StatusNotFound, Detail: "not_found"},
	engagement.FailureStore:         {Code: codes.Unavailable, Status: http.StatusServiceUnavailable, Detail: "store_unavailable"},
	engagement.FailureAborted:       {Code: codes.Aborted, Status: http.StatusInternalServerError, Detail: "transaction_aborted"},
}

var internalFailure = Failure{Code: codes.Internal, Status: http.StatusInternalServerError, Detail: "internal_error"}

// Classify returns the transport failure for err.
func Classify(err error) Failure {
	if f, ok := failures[engagement.KindOf(err)]; ok {
		return f
	}
	return internalFailure
}

// Internal reports whether the failure is the server's fault.
func (f Failure) Internal() bool {
	return f.Status >= http.StatusInternalServerError
}

// Err returns the gRPC status error for the failure. Only the detail
// string is sent to the client.
func (f Failure) Err() error {
	return status.Error(f.Code, f.Detail)
}
