package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hrone/internal/identifier"
	"hrone/internal/models"
	"hrone/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events to a message broker.
// A nil publisher disables eventing without affecting order creation.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	repo      repositories.OrderRepository
	publisher OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateOrder persists a new order and publishes an order-created event.
// Item product IDs are converted to their native form; referenced products
// are not checked for existence.
func (s *OrderService) CreateOrder(ctx context.Context, input models.OrderCreate) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		productID, err := identifier.ToNative(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product reference: %w", err)
		}
		items = append(items, models.OrderItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	order := &models.Order{
		UserID: input.UserID,
		Items:  items,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.ExternalID = identifier.ToExternal(order.ID)

	s.publishOrderCreated(order)
	return order, nil
}

// ListOrders returns a user's orders, shaped for output.
func (s *OrderService) ListOrders(ctx context.Context, query repositories.OrderQuery) ([]models.Order, error) {
	orders, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	for i := range orders {
		orders[i].ExternalID = identifier.ToExternal(orders[i].ID)
	}
	return orders, nil
}

// publishOrderCreated emits the order-created event. Publishing is best
// effort: a missing broker or a publish failure never fails the request.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not configured. Skipping order event publication.")
		return
	}

	event := map[string]interface{}{
		"event_id":   uuid.New().String(),
		"order_id":   order.ExternalID,
		"user_id":    order.UserID,
		"item_count": len(order.Items),
	}
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ExternalID, err)
	} else {
		log.Printf("Published order created event for order %s", order.ExternalID)
	}
}
