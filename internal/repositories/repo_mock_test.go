package repositories_test

import (
	"context"
	"testing"

	"hrone/internal/models"
	"hrone/internal/repositories"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedProducts(t *testing.T, repo *repositories.MockProductRepository, names ...string) []models.Product {
	t.Helper()
	ctx := context.Background()
	seeded := make([]models.Product, 0, len(names))
	for _, name := range names {
		product := models.Product{Name: name, Price: 10.0}
		assert.NoError(t, repo.Create(ctx, &product))
		seeded = append(seeded, product)
	}
	return seeded
}

func TestMockProductRepository_AssignsIdentifierOnCreate(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	product := models.Product{Name: "Laptop", Price: 1200.0}
	assert.NoError(t, repo.Create(context.Background(), &product))
	assert.False(t, product.ID.IsZero())
}

func TestMockProductRepository_ListIsDeterministic(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo, "A", "B", "C", "D", "E")

	query := repositories.ProductQuery{Limit: 100}
	first, err := repo.List(context.Background(), query)
	assert.NoError(t, err)
	second, err := repo.List(context.Background(), query)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].ID.Hex(), first[i].ID.Hex(), "results must be in ascending identifier order")
	}
}

func TestMockProductRepository_SkipAndLimit(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo, "A", "B", "C", "D", "E")
	ctx := context.Background()

	all, err := repo.List(ctx, repositories.ProductQuery{Limit: 100})
	assert.NoError(t, err)
	assert.Len(t, all, 5)

	page, err := repo.List(ctx, repositories.ProductQuery{Limit: 2, Offset: 2})
	assert.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, all[2:4], page)

	tail, err := repo.List(ctx, repositories.ProductQuery{Limit: 10, Offset: 4})
	assert.NoError(t, err)
	assert.Len(t, tail, 1)

	past, err := repo.List(ctx, repositories.ProductQuery{Limit: 10, Offset: 99})
	assert.NoError(t, err)
	assert.Empty(t, past)
}

func TestMockProductRepository_NameFilterIsCaseInsensitiveSubstring(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	seedProducts(t, repo, "Test Laptop", "TESTING Mouse", "Keyboard")

	products, err := repo.List(context.Background(), repositories.ProductQuery{Name: "test", Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Contains(t, []string{"Test Laptop", "TESTING Mouse"}, p.Name)
	}
}

func TestMockOrderRepository_ScopedToUser(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	ctx := context.Background()

	for _, userID := range []string{"user123", "user123", "other456"} {
		order := models.Order{
			UserID: userID,
			Items:  []models.OrderItem{{ProductID: primitive.NewObjectID(), Quantity: 1}},
		}
		assert.NoError(t, repo.Create(ctx, &order))
	}

	orders, err := repo.List(ctx, repositories.OrderQuery{UserID: "user123", Limit: 10})
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, "user123", order.UserID)
	}

	none, err := repo.List(ctx, repositories.OrderQuery{UserID: "stranger", Limit: 10})
	assert.NoError(t, err)
	assert.Empty(t, none)
}
