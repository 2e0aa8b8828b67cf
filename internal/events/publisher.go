// Package events connects the store to the fulfillment side over Kafka:
// submitted orders go out, status updates from the fulfillment actor come
// back in.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
)

const (
	TopicOrderSubmitted = "order-submitted"
	TopicOrderStatus    = "order-status"
)

type orderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderSubmittedEvent struct {
	OrderID     string      `json:"order_id"`
	UserID      string      `json:"user_id"`
	Items       []orderItem `json:"items"`
	Total       float64     `json:"total"`
	Ship        string      `json:"ship"`
	Payment     string      `json:"payment"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers ...string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        TopicOrderSubmitted,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return &Publisher{writer: writer}
}

// OrderSubmitted publishes the stored order keyed by user so one visitor's
// orders stay in partition order.
func (p *Publisher) OrderSubmitted(ctx context.Context, order *domain.Order) error {
	items := make([]orderItem, len(order.Details))
	for i, line := range order.Details {
		items[i] = orderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
	}

	payload, err := json.Marshal(orderSubmittedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		Items:       items,
		Total:       order.Total,
		Ship:        order.Ship,
		Payment:     order.Payment,
		SubmittedAt: order.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.UserID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to write order event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
