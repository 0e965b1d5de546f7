// Package apperror carries the request error taxonomy shared by the
// adapters, orchestrators, and the workflow controller.
//
// Classification rules:
//   - Validation: detected locally, before any network call.
//   - Network: a call was sent but no response came back.
//   - Application: a response came back with an error status; the message is
//     the server's detail when present, else a route-specific fallback.
//   - Unknown: anything else.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNetwork
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindApplication:
		return "application"
	default:
		return "unknown"
	}
}

// GenericNetworkMessage is what users see when no response was received.
// Infrastructure failures are reported generically, never with server detail.
const GenericNetworkMessage = "Unable to reach the logistics service. Check your connection and try again."

// Error is a classified request failure with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Message: GenericNetworkMessage, Err: err}
}

// Application wraps a response received with an error status. detail may be
// empty when the server sent no usable message; callers fill it in with
// WithFallback at the adapter boundary.
func Application(detail string, err error) *Error {
	return &Error{Kind: KindApplication, Message: detail, Err: err}
}

// From classifies an arbitrary error for display. Errors outside the
// taxonomy become KindUnknown carrying the underlying message.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindUnknown, Message: err.Error(), Err: err}
}

// WithFallback fills an empty Application message with the route-specific
// fallback and folds unclassified errors into KindUnknown. Validation and
// Network errors pass through untouched.
func WithFallback(err error, fallback string) *Error {
	e := From(err)
	if e.Kind == KindApplication && e.Message == "" {
		return &Error{Kind: KindApplication, Message: fallback, Err: e.Err}
	}
	if e.Kind == KindUnknown && e.Message == "" {
		return &Error{Kind: KindUnknown, Message: fallback, Err: e.Err}
	}
	return e
}

// IsKind reports whether err classifies as the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
