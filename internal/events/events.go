package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ProductCreated  = "product.created"
	ProductUpdated  = "product.updated"
	ProductDeleted  = "product.deleted"
	CategoryCreated = "category.created"
	CategoryUpdated = "category.updated"
	CategoryDeleted = "category.deleted"
)

type Event struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// Deleted is the payload of the *.deleted events.
type Deleted struct {
	ID int64 `json:"id"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Bus wraps catalog changes in an Event envelope and routes them by name.
type Bus struct {
	publisher Publisher
	now       func() time.Time
}

func NewBus(publisher Publisher) *Bus {
	return &Bus{
		publisher: publisher,
		now:       time.Now,
	}
}

func (b *Bus) Publish(ctx context.Context, name string, payload any) error {
	event := Event{
		ID:         uuid.NewString(),
		Name:       name,
		OccurredAt: b.now().UTC(),
		Payload:    payload,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", name, err)
	}

	return b.publisher.Publish(ctx, name, body)
}

// Nop drops every event; used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
