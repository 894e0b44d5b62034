package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pranesta/internal/models"
	"pranesta/internal/repositories"
	"pranesta/pkg/cache"
)

// listCacheTTL keeps catalog listings fresh enough for a storefront
// while absorbing repeated reads.
const listCacheTTL = 30 * time.Second

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	repo  repositories.ProductRepository
	cache cache.Cache // may be nil; caching is then skipped
}

// NewCatalogService creates a new CatalogService. c may be nil.
func NewCatalogService(repo repositories.ProductRepository, c cache.Cache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: c,
	}
}

// Categories returns the fixed category list.
func (s *CatalogService) Categories() []models.Category {
	return models.Categories()
}

// ListProducts retrieves products, optionally filtered by category.
// Listings are served from the cache when one is configured; cache
// failures fall through to the repository.
func (s *CatalogService) ListProducts(ctx context.Context, category models.Category) ([]models.Product, error) {
	var key string
	if s.cache != nil {
		filter := string(category)
		if filter == "" {
			filter = "all"
		}
		key = s.cache.GenerateKey("products", filter)
		if cached, err := s.cache.Get(ctx, key); err != nil {
			log.Printf("Warning: product list cache read failed: %v", err)
		} else if cached != "" {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
			log.Printf("Warning: discarding malformed product list cache entry %s", key)
		}
	}

	products, err := s.repo.List(category)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if body, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, key, body, listCacheTTL); err != nil {
				log.Printf("Warning: product list cache write failed: %v", err)
			}
		}
	}

	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}
