package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	TypeProductPublished = "product.published"
	TypeSyncRequested    = "sync.requested"
)

type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ProductID int64     `json:"product_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewProductPublished(productID int64) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      TypeProductPublished,
		ProductID: productID,
		Timestamp: time.Now().UTC(),
	}
}

func NewSyncRequested() Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      TypeSyncRequested,
		Timestamp: time.Now().UTC(),
	}
}

// Key partitions product events by product so they stay ordered.
func (e Event) Key() []byte {
	if e.ProductID != 0 {
		return []byte(strconv.FormatInt(e.ProductID, 10))
	}
	return []byte(e.Type)
}

func Decode(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, fmt.Errorf("failed to parse event: %w", err)
	}
	if e.Type == "" {
		return Event{}, fmt.Errorf("failed to parse event: missing type")
	}
	return e, nil
}

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer MessageWriter
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	})
}

func NewPublisherWithWriter(w MessageWriter) *Publisher {
	return &Publisher{writer: w}
}

func (p *Publisher) Publish(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: e.Key(), Value: data}); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", e.Type, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
