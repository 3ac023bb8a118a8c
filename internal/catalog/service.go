package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/noah-isme/backend-pasar/internal/common"
	"github.com/noah-isme/backend-pasar/internal/obs"
	"github.com/noah-isme/backend-pasar/internal/pricing"
)

// Service orchestrates catalog queries, quote resolution, and caching.
type Service struct {
	repo   Repository
	cache  *Cache
	policy pricing.Policy
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Repo   Repository
	Cache  *Cache
	Policy pricing.Policy
}

// ProductQuote pairs a resolved quote with the product it was computed for.
type ProductQuote struct {
	ProductID   int           `json:"productId"`
	Name        string        `json:"name"`
	MinQuantity int           `json:"minQuantity"`
	pricing.Quote
}

// NewService constructs a Service instance.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Repo == nil {
		return nil, errors.New("catalog: repository is required")
	}
	policy := cfg.Policy
	if policy == nil {
		policy = pricing.DefaultPolicy
	}
	return &Service{repo: cfg.Repo, cache: cfg.Cache, policy: policy}, nil
}

// ListProducts returns every product in stable insertion order.
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	key := listCacheKey()
	if s.cache != nil {
		var cached []Product
		ok, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && ok {
			obs.ObserveCatalogList("cache")
			return cached, nil
		}
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	obs.ObserveCatalogList("store")
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, products)
	}
	return products, nil
}

// ListByCategory returns the products whose category matches exactly.
// An unknown category yields an empty list, not an error.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	key := categoryCacheKey(category)
	if s.cache != nil {
		var cached []Product
		ok, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && ok {
			obs.ObserveCatalogList("cache")
			return cached, nil
		}
	}
	products, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	obs.ObserveCatalogList("store")
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, products)
	}
	return products, nil
}

// Quote resolves the tiered unit price for the given product and quantity.
func (s *Service) Quote(ctx context.Context, productID, quantity int) (ProductQuote, error) {
	product, ok, err := s.repo.Get(ctx, productID)
	if err != nil {
		return ProductQuote{}, fmt.Errorf("get product: %w", err)
	}
	if !ok {
		return ProductQuote{}, common.NotFoundError("product not found")
	}
	quote, err := pricing.Resolve(product.PricePerKg, product.MinQuantity, quantity, s.policy)
	if err != nil {
		details := map[string]any{"quantity": quantity, "minQuantity": product.MinQuantity}
		return ProductQuote{}, &common.AppError{
			Code:       common.CodeValidation,
			Message:    "Invalid quote request",
			HTTPStatus: http.StatusBadRequest,
			Err:        err,
			Details:    details,
		}
	}
	return ProductQuote{
		ProductID:   product.ID,
		Name:        product.Name,
		MinQuantity: product.MinQuantity,
		Quote:       quote,
	}, nil
}
