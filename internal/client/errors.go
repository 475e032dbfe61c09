package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-while/go-foxstarter/internal/models"
)

var (
	// ErrUnreachable matches every failure to reach the server at all
	ErrUnreachable = errors.New("server unreachable")

	// ErrMalformedRequest matches 400 replies
	ErrMalformedRequest = errors.New("malformed request")

	// ErrServerFault matches 5xx replies
	ErrServerFault = errors.New("server fault")

	// ErrBadResponse is returned when a 2xx reply cannot be decoded
	ErrBadResponse = errors.New("unexpected response body")
)

// UnreachableError wraps the transport error of a request that never got an answer
type UnreachableError struct {
	URL string
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("server unreachable at %s: %v", e.URL, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUnreachable) hold
func (e *UnreachableError) Is(target error) bool {
	return target == ErrUnreachable
}

// StatusError is a non-2xx reply from the server
type StatusError struct {
	StatusCode int
	Kind       string
	Message    string
}

func newStatusError(code int, body []byte) *StatusError {
	e := &StatusError{StatusCode: code}
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Kind != "" {
		e.Kind = er.Kind
		e.Message = er.Error
		return e
	}
	e.Message = strings.TrimSpace(string(body))
	if e.Message == "" {
		e.Message = http.StatusText(code)
	}
	return e
}

func (e *StatusError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Kind, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Is maps the status code onto ErrMalformedRequest and ErrServerFault
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrMalformedRequest:
		return e.StatusCode == http.StatusBadRequest
	case ErrServerFault:
		return e.StatusCode >= 500
	}
	return false
}
