package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
	"github.com/dangsuk1211/Website-banthucung/internal/repository"
)

// OrderStatusEvent is what the external fulfillment actor publishes when an
// order moves to shipping, completed or cancelled.
type OrderStatusEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// FulfillmentConsumer applies fulfillment status updates to stored orders.
// The storefront itself never transitions an order past Submitted; this is
// the only writer of later statuses.
type FulfillmentConsumer struct {
	orders repository.OrderRepository
	reader *kafka.Reader
}

func NewFulfillmentConsumer(orders repository.OrderRepository, brokers ...string) *FulfillmentConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    TopicOrderStatus,
		GroupID:  "storefront-fulfillment",
		MaxBytes: 10e6, // 10MB
	})
	return &FulfillmentConsumer{orders: orders, reader: reader}
}

func (c *FulfillmentConsumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.processMessage(ctx)
	}
}

func (c *FulfillmentConsumer) Close() {
	if err := c.reader.Close(); err != nil {
		log.Printf("error closing kafka reader: %v", err)
	}
}

func (c *FulfillmentConsumer) processMessage(ctx context.Context) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("error reading message: %v", err)
		return
	}

	var event OrderStatusEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		log.Printf("error parsing message: %v", err)
		return
	}

	if err := c.apply(ctx, event); err != nil {
		log.Printf("failed to apply status %q to order %s: %v", event.Status, event.OrderID, err)
	}
}

func (c *FulfillmentConsumer) apply(ctx context.Context, event OrderStatusEvent) error {
	status := domain.OrderStatus(event.Status)
	if !status.Valid() || status == domain.OrderStatusSubmitted {
		return errors.New("not a fulfillment status")
	}
	return c.orders.UpdateStatus(ctx, event.OrderID, status)
}
