package client

import (
	"errors"
	"net/http"
)

var (
	// ErrUnavailable is wrapped by every KindNetwork error.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized is wrapped by KindServer errors with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
)

// Kind classifies a failed API call.
type Kind int

const (
	// KindUnexpected covers failures before sending or after receiving,
	// such as a malformed URL or an undecodable body.
	KindUnexpected Kind = iota
	// KindServer means the backend answered and reported a failure.
	KindServer
	// KindNetwork means the request went out and no response came back.
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "unexpected"
	}
}

// User-facing messages for failures without a server message.
const (
	MessageServerDefault = "An error occurred"
	MessageNetwork       = "Network error. Please try again."
	MessageUnexpected    = "An unexpected error occurred"
)

// APIError is the single error type returned by HTTPClient.
type APIError struct {
	Kind   Kind
	Status int
	// Message is ready for display.
	Message string
	// ServerMessage is the backend's own message, empty when it sent none.
	ServerMessage string
	Err           error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 2)
	switch {
	case e.Kind == KindNetwork:
		errs = append(errs, ErrUnavailable)
	case e.Kind == KindServer && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden):
		errs = append(errs, ErrUnauthorized)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func serverError(status int, msg string) *APIError {
	e := &APIError{Kind: KindServer, Status: status, Message: msg, ServerMessage: msg}
	if msg == "" {
		e.Message = MessageServerDefault
	}
	return e
}

func networkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Message: MessageNetwork, Err: err}
}

func unexpectedError(err error) *APIError {
	return &APIError{Kind: KindUnexpected, Message: MessageUnexpected, Err: err}
}

// MessageOf returns the display message of err: the APIError message when
// err wraps one, MessageUnexpected for any other non-nil error.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return MessageUnexpected
}

// ServerMessageOf returns the backend's own message carried by err, if any.
func ServerMessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ServerMessage
	}
	return ""
}
