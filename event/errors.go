package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for events and the event bus.
var (
	// ErrInvalidEvent is returned when an event is malformed or missing required fields.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrElementNotFound is returned when a name matches no element type.
	ErrElementNotFound = errors.New("element type not found")

	// ErrInvalidTopic is returned when a topic pattern is empty or malformed.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrSubscriptionNotFound is returned when trying to unsubscribe a non-existent subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrHandlerPanic is returned when a handler panics.
	ErrHandlerPanic = errors.New("handler panicked")

	// ErrNilHandler is returned when a nil handler is provided.
	ErrNilHandler = errors.New("handler cannot be nil")
)

// HandlerError wraps an error from a handler with additional context.
type HandlerError struct {
	// SubscriptionID is the ID of the subscription whose handler failed.
	SubscriptionID uint64

	// Topic is the topic of the event being delivered.
	Topic Topic

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %d for %s: %v", e.SubscriptionID, e.Topic, e.Err)
}

// Unwrap returns the underlying error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}
