package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hrone/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It honors the same filter, ordering and pagination semantics as the
// MongoDB implementation so handler tests exercise the full list pipeline.
type MockProductRepository struct {
	products map[primitive.ObjectID]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[primitive.ObjectID]models.Product),
	}
}

// Create stores a new product, assigning an identifier when absent.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	stored := *product
	stored.ExternalID = "" // not part of the persisted document
	r.products[stored.ID] = stored
	*product = stored
	return nil
}

// List returns matching products sorted by identifier, with skip/limit applied.
func (r *MockProductRepository) List(_ context.Context, query ProductQuery) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0)
	for _, product := range r.products {
		if query.Name != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(query.Name)) {
			continue
		}
		if query.Size != "" && product.Size != query.Size {
			continue
		}
		matched = append(matched, product)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID.Hex() < matched[j].ID.Hex()
	})
	return paginate(matched, query.Offset, query.Limit), nil
}

// paginate applies offset and limit to an already sorted result set.
func paginate[T any](items []T, offset, limit int64) []T {
	if offset >= int64(len(items)) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}
