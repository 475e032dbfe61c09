// Package models defines the request and response shapes shared by the
// go-foxstarter server, its API client and the front-end views.
package models

import (
	"math"
	"time"
)

// Counter actions understood by the counter endpoint
const (
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

// Error kinds carried in ErrorResponse.Kind
const (
	KindMalformedRequest = "malformed_request"
	KindNotFound         = "not_found"
	KindMethodNotAllowed = "method_not_allowed"
	KindServerFault      = "server_fault"
)

// CounterRequest is the body of POST /counter.
// CurrentCount is a pointer so a missing field can be told apart from 0.
type CounterRequest struct {
	Action       string `json:"action"`
	CurrentCount *int64 `json:"currentCount" binding:"required"`
}

// CounterResponse is the reply of POST /counter
type CounterResponse struct {
	Count         int64  `json:"count"`
	Action        string `json:"action"`
	PreviousCount int64  `json:"previousCount"`
}

// ThemeRequest is the body of POST /theme. The theme is echoed back as sent.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse is the reply of POST /theme
type ThemeResponse struct {
	Message   string    `json:"message"`
	Theme     string    `json:"theme"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageResponse is the reply of the diagnostic endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for every non-2xx JSON reply
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// KnownAction reports whether action changes the count.
func KnownAction(action string) bool {
	return action == ActionIncrement || action == ActionDecrement
}

// ApplyCounterAction computes the counter reply for current and action.
// Unknown actions leave the count unchanged. The result saturates at the
// int64 bounds.
func ApplyCounterAction(action string, current int64) CounterResponse {
	next := current
	switch action {
	case ActionIncrement:
		if current < math.MaxInt64 {
			next = current + 1
		}
	case ActionDecrement:
		if current > math.MinInt64 {
			next = current - 1
		}
	}
	return CounterResponse{
		Count:         next,
		Action:        action,
		PreviousCount: current,
	}
}
