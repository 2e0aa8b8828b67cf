package cache

import (
	"context"
	"errors"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
)

type CatalogCache interface {
	GetProducts(ctx context.Context, key string) ([]*domain.Product, error)
	SetProducts(ctx context.Context, key string, products []*domain.Product) error
	GetCategories(ctx context.Context) ([]*domain.Category, error)
	SetCategories(ctx context.Context, categories []*domain.Category) error
	Invalidate(ctx context.Context, keys ...string) error
}

var ErrCacheMiss = errors.New("cache miss")
