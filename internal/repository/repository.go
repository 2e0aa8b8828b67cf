package repository

import (
	"context"
	"errors"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
)

// ProductRepository is the catalog lookup collaborator. Soft-deleted records
// never come back from any of these.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	ListAll(ctx context.Context) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	Search(ctx context.Context, keyword string) ([]*domain.Product, error)
	Related(ctx context.Context, categoryID, excludeID string, limit int64) ([]*domain.Product, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

// OrderRepository is the order persistence collaborator. CreateOrder is a
// single insert: the order exists fully or not at all.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateProfile(ctx context.Context, id string, fields ProfileUpdate) (*domain.User, error)
}

// ProfileUpdate carries the account fields a user may change. Password is the
// already-hashed digest; empty means keep the current one.
type ProfileUpdate struct {
	Fullname string
	Email    string
	Phone    string
	Password string
}
