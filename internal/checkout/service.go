// Package checkout turns a session cart into a persisted order. The workflow
// has two states: building (cart has items) and submitted (order stored, cart
// cleared). Any failure leaves the session in building with the cart intact.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
	"github.com/dangsuk1211/Website-banthucung/internal/repository"
	"github.com/dangsuk1211/Website-banthucung/internal/session"
)

var (
	ErrLoginRequired = errors.New("checkout requires a logged-in session")
	ErrEmptyCart     = errors.New("cart is empty, nothing to check out")
)

// OrderForm is the shipping/payment/contact block the visitor submits with
// the checkout, validated at the route boundary.
type OrderForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Ship    string
	Payment string
}

// EventPublisher announces a stored order to the outside world. Publishing is
// best effort and never fails a checkout.
type EventPublisher interface {
	OrderSubmitted(ctx context.Context, order *domain.Order) error
}

type Service struct {
	orders   repository.OrderRepository
	sessions session.Store
	locks    *session.Locker
	events   EventPublisher // may be nil
}

func NewService(orders repository.OrderRepository, sessions session.Store, locks *session.Locker, events EventPublisher) *Service {
	return &Service{
		orders:   orders,
		sessions: sessions,
		locks:    locks,
		events:   events,
	}
}

// PlaceOrder runs the checkout sequence: require identity, snapshot the cart,
// persist the order, then clear the cart. The whole read-create-clear span
// holds the session lock so no other request for this session can slip in
// between order creation and cart reset.
func (s *Service) PlaceOrder(ctx context.Context, sess *session.Session, form OrderForm) (*domain.Order, error) {
	if !sess.LoggedIn() {
		return nil, ErrLoginRequired
	}

	unlock := s.locks.Lock(sess.ID)
	defer unlock()

	// Re-read under the lock: the context session may be stale by now.
	current, err := s.sessions.Get(ctx, sess.ID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		current = sess
	}

	if current.Cart == nil || current.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    sess.Identity.ID,
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Message:   form.Message,
		Ship:      form.Ship,
		Payment:   form.Payment,
		Total:     current.Cart.Total(),
		Status:    domain.OrderStatusSubmitted,
		Details:   current.Cart.ItemList(),
		CreatedAt: time.Now(),
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		// Cart untouched so the visitor can retry.
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	current.Cart = domain.NewCart()
	current.Identity = sess.Identity
	if err := s.sessions.Save(ctx, current); err != nil {
		// The order exists; a stale cart is the lesser evil. Log and move on.
		log.Printf("failed to clear cart after checkout %s: %v", order.ID, err)
	}
	sess.Cart = current.Cart

	if s.events != nil {
		if err := s.events.OrderSubmitted(ctx, order); err != nil {
			log.Printf("failed to publish order %s: %v", order.ID, err)
		}
	}

	return order, nil
}
