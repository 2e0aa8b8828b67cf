package events

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
	"github.com/dangsuk1211/Website-banthucung/internal/repository"
)

type mockOrders struct {
	m        sync.Mutex
	statuses map[string]domain.OrderStatus
}

func newMockOrders(ids ...string) *mockOrders {
	m := &mockOrders{statuses: map[string]domain.OrderStatus{}}
	for _, id := range ids {
		m.statuses[id] = domain.OrderStatusSubmitted
	}
	return m
}

func (m *mockOrders) CreateOrder(context.Context, *domain.Order) error { return nil }

func (m *mockOrders) ListByUser(context.Context, string) ([]*domain.Order, error) {
	return nil, nil
}

func (m *mockOrders) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) error {
	m.m.Lock()
	defer m.m.Unlock()
	if _, ok := m.statuses[orderID]; !ok {
		return repository.ErrOrderNotFound
	}
	m.statuses[orderID] = status
	return nil
}

func (m *mockOrders) statusOf(id string) domain.OrderStatus {
	m.m.Lock()
	defer m.m.Unlock()
	return m.statuses[id]
}

func TestApply_FulfillmentTransitions(t *testing.T) {
	orders := newMockOrders("o1")
	c := &FulfillmentConsumer{orders: orders}

	for _, status := range []string{"SHIPPING", "COMPLETED", "CANCELLED"} {
		err := c.apply(context.Background(), OrderStatusEvent{OrderID: "o1", Status: status})
		require.NoError(t, err, "status %s", status)
		assert.Equal(t, domain.OrderStatus(status), orders.statusOf("o1"))
	}
}

func TestApply_RejectsUnknownStatus(t *testing.T) {
	orders := newMockOrders("o1")
	c := &FulfillmentConsumer{orders: orders}

	err := c.apply(context.Background(), OrderStatusEvent{OrderID: "o1", Status: "TELEPORTED"})
	require.Error(t, err)
	assert.Equal(t, domain.OrderStatusSubmitted, orders.statusOf("o1"), "order untouched")
}

func TestApply_RejectsSubmitted(t *testing.T) {
	// Submitted is the checkout's state, never a fulfillment update.
	c := &FulfillmentConsumer{orders: newMockOrders("o1")}

	err := c.apply(context.Background(), OrderStatusEvent{OrderID: "o1", Status: "SUBMITTED"})
	assert.Error(t, err)
}

func TestApply_UnknownOrder(t *testing.T) {
	c := &FulfillmentConsumer{orders: newMockOrders()}

	err := c.apply(context.Background(), OrderStatusEvent{OrderID: "ghost", Status: "SHIPPING"})
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
