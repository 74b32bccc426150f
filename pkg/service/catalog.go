package service

import (
	"context"

	"github.com/example/storefront/pkg/models"
	"go.uber.org/zap"
)

const defaultPerPage = 20

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Items   []models.Product
	Page    int
	PerPage int
	Total   int64
	Pages   int
}

// CatalogService serves product listing, lookup and category queries.
type CatalogService struct {
	products ProductStore
	cache    ProductCache
	logger   *zap.Logger
}

// ProductCache is an optional read cache in front of the product store.
// A nil cache disables caching entirely.
type ProductCache interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CacheProduct(ctx context.Context, product *models.Product) error
	InvalidateProduct(ctx context.Context, id string) error
}

func NewCatalogService(products ProductStore, cache ProductCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		cache:    cache,
		logger:   logger,
	}
}

func (s *CatalogService) List(ctx context.Context, filter ProductFilter) (*ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}

	items, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := int(total) / filter.PerPage
	if int(total)%filter.PerPage != 0 {
		pages++
	}

	return &ProductPage{
		Items:   items,
		Page:    filter.Page,
		PerPage: filter.PerPage,
		Total:   total,
		Pages:   pages,
	}, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetProduct(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	product, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheProduct(ctx, product); err != nil {
			s.logger.Warn("Failed to cache product", zap.String("product_id", id), zap.Error(err))
		}
	}

	return product, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.products.Categories(ctx)
}
