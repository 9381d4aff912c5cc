package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"persona-matcher/internal/domain"
	"persona-matcher/internal/repository"
)

// CatalogService holds the in-memory catalog snapshot the matcher scores
// against. Reload swaps the whole snapshot atomically, so in-flight requests
// keep scoring the catalog they started with and the products themselves stay
// read-only for the life of the process.
type CatalogService struct {
	logger   *zap.Logger
	products repository.ProductRepository
	catalog  atomic.Pointer[domain.Catalog]
}

func NewCatalogService(logger *zap.Logger, products repository.ProductRepository) *CatalogService {
	s := &CatalogService{
		logger:   logger,
		products: products,
	}
	empty := domain.Catalog{}
	s.catalog.Store(&empty)
	return s
}

// Reload reads the full catalog from the repository and publishes it.
func (s *CatalogService) Reload(ctx context.Context) error {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	catalog := domain.Catalog(products)
	s.catalog.Store(&catalog)
	s.logger.Info("catalog loaded", zap.Int("products", len(catalog)))
	return nil
}

// Snapshot returns the current catalog. Callers must treat it as read-only.
func (s *CatalogService) Snapshot() domain.Catalog {
	return *s.catalog.Load()
}
