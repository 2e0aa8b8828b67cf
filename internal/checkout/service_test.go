package checkout

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
	"github.com/dangsuk1211/Website-banthucung/internal/session"
)

type mockOrders struct {
	m      sync.Mutex
	orders []*domain.Order
	err    error
}

func (m *mockOrders) CreateOrder(_ context.Context, order *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrders) ListByUser(_ context.Context, userID string) ([]*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	var out []*domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrders) UpdateStatus(_ context.Context, orderID string, status domain.OrderStatus) error {
	m.m.Lock()
	defer m.m.Unlock()
	for _, o := range m.orders {
		if o.ID == orderID {
			o.Status = status
			return nil
		}
	}
	return fmt.Errorf("order not found")
}

func (m *mockOrders) created() []*domain.Order {
	m.m.Lock()
	defer m.m.Unlock()
	return append([]*domain.Order(nil), m.orders...)
}

type memStore struct {
	m        sync.Mutex
	sessions map[string]*session.Session
	saveErr  error
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]*session.Session{}}
}

func (s *memStore) Get(_ context.Context, id string) (*session.Session, error) {
	s.m.Lock()
	defer s.m.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (s *memStore) Save(_ context.Context, sess *session.Session) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.m.Lock()
	defer s.m.Unlock()
	delete(s.sessions, id)
	return nil
}

type mockPublisher struct {
	m         sync.Mutex
	published []*domain.Order
	err       error
}

func (p *mockPublisher) OrderSubmitted(_ context.Context, order *domain.Order) error {
	p.m.Lock()
	defer p.m.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, order)
	return nil
}

func loggedInSession(t *testing.T, store *memStore) *session.Session {
	t.Helper()
	sess := session.New()
	sess.Identity = &domain.Identity{ID: "u1", Fullname: "Nguyen Van A", Email: "a@example.com"}
	sess.Cart.AddItem("p1", domain.Product{ID: "p1", Name: "Dog food", Price: 10})
	sess.Cart.AddItem("p1", domain.Product{ID: "p1", Name: "Dog food", Price: 10})
	sess.Cart.AddItem("p2", domain.Product{ID: "p2", Name: "Chew toy", Price: 5})
	require.NoError(t, store.Save(context.Background(), sess))
	return sess
}

func checkoutForm() OrderForm {
	return OrderForm{
		Name:    "Nguyen Van A",
		Email:   "a@example.com",
		Phone:   "0900000000",
		Ship:    "standard",
		Payment: "cod",
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	orders := &mockOrders{}
	store := newMemStore()
	pub := &mockPublisher{}
	sess := loggedInSession(t, store)

	sut := NewService(orders, store, session.NewLocker(), pub)
	order, err := sut.PlaceOrder(context.Background(), sess, checkoutForm())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, domain.OrderStatusSubmitted, order.Status)
	assert.Equal(t, 25.0, order.Total)
	assert.Equal(t, "cod", order.Payment)
	require.Len(t, order.Details, 2)
	assert.Equal(t, "p1", order.Details[0].ProductID)
	assert.Equal(t, 2, order.Details[0].Quantity)

	require.Len(t, orders.created(), 1)

	// cart cleared, both on the passed-in session and in the store
	assert.True(t, sess.Cart.IsEmpty())
	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.True(t, stored.Cart.IsEmpty())
	require.NotNil(t, stored.Identity, "login survives checkout")

	require.Len(t, pub.published, 1)
	assert.Equal(t, order.ID, pub.published[0].ID)
}

func TestPlaceOrder_SnapshotIsolation(t *testing.T) {
	orders := &mockOrders{}
	store := newMemStore()
	sess := loggedInSession(t, store)

	sut := NewService(orders, store, session.NewLocker(), nil)
	order, err := sut.PlaceOrder(context.Background(), sess, checkoutForm())
	require.NoError(t, err)

	// mutate the (now cleared) session cart afterwards
	sess.Cart.AddItem("p9", domain.Product{ID: "p9", Name: "Fish tank", Price: 500})
	sess.Cart.UpdateQuantity("p9", 40)

	require.Len(t, order.Details, 2)
	assert.Equal(t, 25.0, order.Total, "stored order must not see later cart mutations")
	for _, line := range order.Details {
		assert.NotEqual(t, "p9", line.ProductID)
	}
}

func TestPlaceOrder_NotLoggedIn(t *testing.T) {
	store := newMemStore()
	sess := session.New()
	sess.Cart.AddItem("p1", domain.Product{ID: "p1", Price: 10})
	require.NoError(t, store.Save(context.Background(), sess))

	sut := NewService(&mockOrders{}, store, session.NewLocker(), nil)
	_, err := sut.PlaceOrder(context.Background(), sess, checkoutForm())
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	orders := &mockOrders{}
	store := newMemStore()
	sess := session.New()
	sess.Identity = &domain.Identity{ID: "u1"}
	require.NoError(t, store.Save(context.Background(), sess))

	sut := NewService(orders, store, session.NewLocker(), nil)
	_, err := sut.PlaceOrder(context.Background(), sess, checkoutForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orders.created())
}

func TestPlaceOrder_PersistenceFailureKeepsCart(t *testing.T) {
	orders := &mockOrders{err: fmt.Errorf("database error")}
	store := newMemStore()
	sess := loggedInSession(t, store)

	sut := NewService(orders, store, session.NewLocker(), nil)
	_, err := sut.PlaceOrder(context.Background(), sess, checkoutForm())
	require.ErrorContains(t, err, "database error")

	stored, getErr := store.Get(context.Background(), sess.ID)
	require.NoError(t, getErr)
	assert.False(t, stored.Cart.IsEmpty(), "cart must survive a failed order")
	assert.Equal(t, 25.0, stored.Cart.Total())
}

func TestPlaceOrder_PublishFailureDoesNotFailCheckout(t *testing.T) {
	orders := &mockOrders{}
	store := newMemStore()
	sess := loggedInSession(t, store)

	sut := NewService(orders, store, session.NewLocker(), &mockPublisher{err: fmt.Errorf("broker down")})
	order, err := sut.PlaceOrder(context.Background(), sess, checkoutForm())
	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.True(t, sess.Cart.IsEmpty())
}

func TestPlaceOrder_ConcurrentSameSession(t *testing.T) {
	orders := &mockOrders{}
	store := newMemStore()
	sess := loggedInSession(t, store)

	sut := NewService(orders, store, session.NewLocker(), nil)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sut.PlaceOrder(context.Background(), sess, checkoutForm())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var okCount, emptyCount int
	for err := range results {
		switch {
		case err == nil:
			okCount++
		case assert.ErrorIs(t, err, ErrEmptyCart):
			emptyCount++
		}
	}

	assert.Equal(t, 1, okCount, "exactly one checkout may win")
	assert.Equal(t, 1, emptyCount, "the loser sees the already-cleared cart")
	assert.Len(t, orders.created(), 1, "a double submit must not double the order")
}
