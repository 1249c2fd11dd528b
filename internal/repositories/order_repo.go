package repositories

import (
	"context"

	"hrone/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are created once and listed per user; there is no update or delete.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context, query OrderQuery) ([]models.Order, error)
}
