package services

import (
	"context"
	"fmt"

	"hrone/internal/identifier"
	"hrone/internal/models"
	"hrone/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct persists a new product and returns the stored document with
// its external identifier set.
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductCreate) (*models.Product, error) {
	product := &models.Product{
		Name:        input.Name,
		Size:        input.Size,
		Price:       *input.Price,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product.ExternalID = identifier.ToExternal(product.ID)
	return product, nil
}

// ListProducts returns the products matching the query, shaped for output.
func (s *ProductService) ListProducts(ctx context.Context, query repositories.ProductQuery) ([]models.Product, error) {
	products, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	for i := range products {
		products[i].ExternalID = identifier.ToExternal(products[i].ID)
	}
	return products, nil
}
