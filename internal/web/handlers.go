// Package web is the HTTP route layer: thin handlers that read the session,
// call a service, save the session and render or redirect. All money and
// quantity invariants live below, in domain and checkout.
package web

import (
	"context"

	"github.com/dangsuk1211/Website-banthucung/internal/auth"
	"github.com/dangsuk1211/Website-banthucung/internal/checkout"
	"github.com/dangsuk1211/Website-banthucung/internal/domain"
	"github.com/dangsuk1211/Website-banthucung/internal/session"
)

// Catalog is the product lookup surface the handlers consume.
type Catalog interface {
	Products(ctx context.Context) ([]*domain.Product, error)
	Categories(ctx context.Context) ([]*domain.Category, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	ByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	Search(ctx context.Context, keyword string) ([]*domain.Product, error)
	Related(ctx context.Context, categoryID, excludeID string) ([]*domain.Product, error)
}

// Authenticator is the account surface: credentials, registration, profile.
type Authenticator interface {
	Verify(ctx context.Context, email, password string) (*domain.Identity, error)
	Register(ctx context.Context, form auth.RegisterForm) error
	UpdateProfile(ctx context.Context, userID string, form auth.ProfileForm) (*domain.Identity, error)
}

// OrderPlacer runs the checkout workflow.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, sess *session.Session, form checkout.OrderForm) (*domain.Order, error)
}

// OrderHistory lists a user's past orders for the account page.
type OrderHistory interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
