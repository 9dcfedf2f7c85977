package dummyjson

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure.
type Kind int

const (
	// KindTransport covers requests that could not complete or returned a
	// non-2xx status.
	KindTransport Kind = iota + 1
	// KindShape covers bodies that decoded but broke the structural contract,
	// or bodies that were not JSON at all.
	KindShape
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindShape:
		return "shape"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrTransport = errors.New("transport error")
	ErrShape     = errors.New("shape error")
)

// Error is the single failure value returned by the gateway.
type Error struct {
	Kind    Kind
	Status  int // HTTP status when known, otherwise 0
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets callers test the failure class with errors.Is(err, ErrShape).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrShape:
		return e.Kind == KindShape
	}
	return false
}

func transportError(status int, msg string, cause error) *Error {
	return &Error{Kind: KindTransport, Status: status, Message: msg, Err: cause}
}

func shapeError(msg string, cause error) *Error {
	return &Error{Kind: KindShape, Message: msg, Err: cause}
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Status
	}
	return 0
}
