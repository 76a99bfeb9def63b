package engagement

import (
	"errors"
	"fmt"
)

// FailureKind classifies a failed engagement operation.
type FailureKind int

const (
	// FailureUnknown is reported for errors not produced by this package.
	FailureUnknown FailureKind = iota
	// FailureValidation rejects malformed input before any store access.
	FailureValidation
	// FailureNotFound reports a missing review.
	FailureNotFound
	// FailureNotAuthorized reports a review owned by another user.
	FailureNotAuthorized
	// FailureStore reports an unreachable or rejecting store.
	FailureStore
	// FailureAborted reports a cascade that failed and was rolled back.
	FailureAborted
)

func (k FailureKind) String() string {
	switch k {
	case FailureValidation:
		return "validation"
	case FailureNotFound:
		return "not found"
	case FailureNotAuthorized:
		return "not authorized"
	case FailureStore:
		return "store failure"
	case FailureAborted:
		return "transaction aborted"
	}
	return "unknown"
}

// Error defines a typed engagement failure.
type Error struct {
	Kind FailureKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels below work
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

var (
	ErrValidation    = &Error{Kind: FailureValidation}
	ErrNotFound      = &Error{Kind: FailureNotFound}
	ErrNotAuthorized = &Error{Kind: FailureNotAuthorized}
	ErrStore         = &Error{Kind: FailureStore}
	ErrAborted       = &Error{Kind: FailureAborted}
)

// KindOf returns the failure kind carried by err.
func KindOf(err error) FailureKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return FailureUnknown
}

func fail(kind FailureKind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// storeFailure keeps an *Error produced inside a transaction and wraps
// anything else with kind.
func storeFailure(kind FailureKind, op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return fail(kind, op, err)
}
