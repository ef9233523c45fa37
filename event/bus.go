package event

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Priority determines handler execution order.
// Lower values execute first.
type Priority int

const (
	// PriorityHigh is for handlers that must observe an event first,
	// such as speech interruption.
	PriorityHigh Priority = 100

	// PriorityNormal is the default priority.
	PriorityNormal Priority = 200

	// PriorityLow is for logging and metrics handlers that run last.
	PriorityLow Priority = 300
)

// Handler is the interface for event handlers.
type Handler interface {
	Handle(ctx context.Context, ev ScreenReaderEvent) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, ev ScreenReaderEvent) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, ev ScreenReaderEvent) error {
	return f(ctx, ev)
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*subscription)

// WithPriority sets the handler priority.
func WithPriority(p Priority) SubscriptionOption {
	return func(s *subscription) {
		s.priority = p
	}
}

// Once cancels the subscription after its first delivery.
func Once() SubscriptionOption {
	return func(s *subscription) {
		s.once = true
	}
}

// Subscription is an active registration on a Bus.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() uint64

	// Pattern returns the subscribed topic pattern.
	Pattern() Topic

	// Unsubscribe removes the subscription. Calling it twice returns
	// ErrSubscriptionNotFound.
	Unsubscribe() error
}

type subscription struct {
	id       uint64
	pattern  Topic
	handler  Handler
	priority Priority
	once     bool
	bus      *Bus
}

func (s *subscription) ID() uint64         { return s.id }
func (s *subscription) Pattern() Topic     { return s.pattern }
func (s *subscription) Unsubscribe() error { return s.bus.unsubscribe(s.id) }

// Stats contains event bus statistics.
type Stats struct {
	// EventsPublished is the total number of events published.
	EventsPublished uint64

	// HandlersExecuted is the total number of handler executions.
	HandlersExecuted uint64

	// HandlerErrors is the number of handlers that returned errors or panicked.
	HandlerErrors uint64

	// ActiveSubscribers is the current number of subscriptions.
	ActiveSubscribers int
}

// Bus delivers ScreenReaderEvents to subscribed handlers synchronously.
// It is safe for concurrent use; handlers run in the publisher's goroutine
// without the bus lock held, so they may subscribe or unsubscribe.
type Bus struct {
	mu     sync.RWMutex
	subs   []*subscription
	nextID uint64

	published atomic.Uint64
	executed  atomic.Uint64
	failed    atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers handler for events whose topic matches pattern.
func (b *Bus) Subscribe(pattern Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTopic, pattern)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	s := &subscription{
		id:       b.nextID,
		pattern:  pattern,
		handler:  handler,
		priority: PriorityNormal,
		bus:      b,
	}
	for _, opt := range opts {
		opt(s)
	}

	b.subs = append(b.subs, s)
	// Stable sort keeps registration order within a priority.
	sort.SliceStable(b.subs, func(i, j int) bool {
		return b.subs[i].priority < b.subs[j].priority
	})
	return s, nil
}

// SubscribeFunc is Subscribe for a plain function.
func (b *Bus) SubscribeFunc(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, fn, opts...)
}

func (b *Bus) unsubscribe(id uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers ev to every matching handler in priority order.
// Handler errors and panics do not stop delivery; they are joined into
// the returned error as *HandlerError values. If ctx is cancelled,
// delivery stops and ctx.Err() is included.
func (b *Bus) Publish(ctx context.Context, ev ScreenReaderEvent) error {
	if err := ev.Validate(); err != nil {
		return err
	}
	b.published.Add(1)

	topic := ev.Topic()
	b.mu.RLock()
	matched := make([]*subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if topic.Matches(s.pattern) {
			matched = append(matched, s)
		}
	}
	b.mu.RUnlock()

	var errs []error
	for _, s := range matched {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if s.once {
			// Another publisher may have consumed it already.
			if b.unsubscribe(s.id) != nil {
				continue
			}
		}
		b.executed.Add(1)
		if err := b.invoke(ctx, s, ev); err != nil {
			b.failed.Add(1)
			errs = append(errs, &HandlerError{SubscriptionID: s.id, Topic: topic, Err: err})
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) invoke(ctx context.Context, s *subscription, ev ScreenReaderEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return s.handler.Handle(ctx, ev)
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := len(b.subs)
	b.mu.RUnlock()

	return Stats{
		EventsPublished:   b.published.Load(),
		HandlersExecuted:  b.executed.Load(),
		HandlerErrors:     b.failed.Load(),
		ActiveSubscribers: active,
	}
}
