// Package events is a synchronous, in-process publish/subscribe hub.
//
// A Bus is created once at startup and passed to every component that
// publishes or subscribes. Delivery happens inside Publish, in subscription
// order. A failing handler is logged and skipped; it never prevents delivery
// to the handlers after it.
package events

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Topic names an event stream.
type Topic string

const (
	// ReviewSubmitted carries a models.Review.
	ReviewSubmitted Topic = "review-submitted"
	// CartItemRemoved carries a models.CartItemRemoved.
	CartItemRemoved Topic = "cart-item-removed"
)

// ErrUnexpectedPayload is returned by typed handlers given a payload of the wrong type.
var ErrUnexpectedPayload = errors.New("unexpected payload type")

// Handler reacts to a published payload.
type Handler func(payload any) error

// Subscription identifies one registered handler.
type Subscription struct {
	ID    uuid.UUID
	Topic Topic
}

type subscriber struct {
	id      uuid.UUID
	handler Handler
}

// Bus is not safe for concurrent use.
type Bus struct {
	logger *zap.Logger
	subs   map[Topic][]subscriber
	closed bool
}

// NewBus creates an empty bus. A nil logger discards delivery failures.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		logger: logger,
		subs:   make(map[Topic][]subscriber),
	}
}

// Subscribe registers h for topic. Handlers registered after Close are never called.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	sub := Subscription{ID: uuid.New(), Topic: topic}
	if b.closed {
		b.logger.Warn("subscribe on closed bus", zap.String("topic", string(topic)))
		return sub
	}
	b.subs[topic] = append(b.subs[topic], subscriber{id: sub.ID, handler: h})
	return sub
}

// On registers a handler that only accepts payloads of type T.
func On[T any](b *Bus, topic Topic, fn func(T) error) Subscription {
	return b.Subscribe(topic, func(payload any) error {
		v, ok := payload.(T)
		if !ok {
			return fmt.Errorf("%w: %T on %s", ErrUnexpectedPayload, payload, topic)
		}
		return fn(v)
	})
}

// Unsubscribe removes sub. It reports whether the subscription was registered.
func (b *Bus) Unsubscribe(sub Subscription) bool {
	list := b.subs[sub.Topic]
	for i, s := range list {
		if s.id != sub.ID {
			continue
		}
		next := make([]subscriber, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(b.subs, sub.Topic)
		} else {
			b.subs[sub.Topic] = next
		}
		return true
	}
	return false
}

// Publish delivers payload to every current subscriber of topic.
// Handlers added or removed during delivery take effect on the next Publish.
func (b *Bus) Publish(topic Topic, payload any) {
	list := b.subs[topic]
	for _, s := range list {
		if err := b.deliver(s, payload); err != nil {
			b.logger.Error("event handler failed",
				zap.String("topic", string(topic)),
				zap.String("subscription", s.id.String()),
				zap.Error(err),
			)
		}
	}
}

func (b *Bus) deliver(s subscriber, payload any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return s.handler(payload)
}

// Subscribers returns the number of handlers registered for topic.
func (b *Bus) Subscribers(topic Topic) int {
	return len(b.subs[topic])
}

// Close drops every subscription. Later publishes are no-ops.
func (b *Bus) Close() {
	b.subs = make(map[Topic][]subscriber)
	b.closed = true
}
