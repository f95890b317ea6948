// Package events fans storefront mutations out to live subscribers.
package events

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Actions emitted after a successful write.
const (
	ActionProductCreated = "product_created"
	ActionProductUpdated = "product_updated"
	ActionProductDeleted = "product_deleted"
	ActionOrderCreated   = "order_created"
	ActionLeadSubmitted  = "lead_submitted"
)

const (
	TypeCatalog = "catalog_update"
	TypeOrder   = "order_update"
	TypeLead    = "lead_update"
)

type Event struct {
	Type       string    `json:"type"`
	Action     string    `json:"action"`
	Key        string    `json:"-"`
	Data       any       `json:"data"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers events to one destination.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// New stamps an event with the current time.
func New(eventType, action, key, message string, data any) Event {
	return Event{
		Type:       eventType,
		Action:     action,
		Key:        key,
		Data:       data,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	}
}

// Emit publishes and logs failures. Delivery is best effort: the write that
// produced the event has already committed.
func Emit(ctx context.Context, pub Publisher, event Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "event publish failed", "action", event.Action, "key", event.Key, "err", err)
	}
}

type nop struct{}

// Nop discards every event.
func Nop() Publisher { return nop{} }

func (nop) Publish(context.Context, Event) error { return nil }
func (nop) Close() error                         { return nil }

// Multi sends each event to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, p := range m {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
