package repositories

import (
	"context"
	"errors"

	"hrone/internal/models"
)

// ErrNotFound is returned when a document that should exist does not,
// e.g. when the read-back after an insert comes up empty.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	List(ctx context.Context, query ProductQuery) ([]models.Product, error)
}
