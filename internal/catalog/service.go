// Package catalog serves the read side of the store: product lists, category
// menus, detail pages. Hot lists go through Redis with a singleflight guard.
package catalog

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/dangsuk1211/Website-banthucung/internal/cache"
	"github.com/dangsuk1211/Website-banthucung/internal/domain"
	"github.com/dangsuk1211/Website-banthucung/internal/repository"
)

const allProductsKey = "all"

type Service struct {
	repo  repository.ProductRepository
	cache cache.CatalogCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewService(repo repository.ProductRepository, cache cache.CatalogCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

// Products returns every live product, from cache when possible.
func (s *Service) Products(ctx context.Context) ([]*domain.Product, error) {
	v, err, _ := s.sfg.Do("products:"+allProductsKey, func() (interface{}, error) {
		products, err := s.cache.GetProducts(ctx, allProductsKey)
		if err == nil {
			return products, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		products, err = s.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.SetProducts(context.Background(), allProductsKey, products); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]*domain.Product), nil
}

// Categories returns the live categories with their product counters filled
// in for menu rendering.
func (s *Service) Categories(ctx context.Context) ([]*domain.Category, error) {
	v, err, _ := s.sfg.Do("categories", func() (interface{}, error) {
		categories, err := s.cache.GetCategories(ctx)
		if err == nil {
			return categories, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err)
		}

		categories, err = s.repo.ListCategories(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.SetCategories(context.Background(), categories); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return categories, nil
	})

	if err != nil {
		return nil, err
	}

	// The singleflight result is shared with other callers and with the
	// async cache fill; counters go onto a per-call copy.
	shared := v.([]*domain.Category)
	categories := make([]*domain.Category, len(shared))
	for i, c := range shared {
		clone := *c
		categories[i] = &clone
	}

	if err := s.fillCounters(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Service) fillCounters(ctx context.Context, categories []*domain.Category) error {
	products, err := s.Products(ctx)
	if err != nil {
		return err
	}

	counts := map[string]int{}
	for _, p := range products {
		counts[p.CategoryID]++
	}
	for _, c := range categories {
		c.Counter = counts[c.ID]
	}
	return nil
}

// RefreshCache drops the cached product and category lists so the next read
// repopulates from the repository. Called at startup: catalog records change
// in the database out of band, and a restart must not keep serving lists from
// before the downtime.
func (s *Service) RefreshCache(ctx context.Context) error {
	return s.cache.Invalidate(ctx, allProductsKey)
}

// Product looks up a single live product. Unknown or soft-deleted IDs come
// back as repository.ErrProductNotFound.
func (s *Service) Product(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *Service) Search(ctx context.Context, keyword string) ([]*domain.Product, error) {
	return s.repo.Search(ctx, keyword)
}

func (s *Service) Related(ctx context.Context, categoryID, excludeID string) ([]*domain.Product, error) {
	return s.repo.Related(ctx, categoryID, excludeID, 10)
}
