package services_test

import (
	"context"
	"fmt"
	"testing"

	"hrone/internal/models"
	"hrone/internal/repositories"
	"hrone/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, query repositories.ProductQuery) ([]models.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	assignedID := primitive.NewObjectID()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			// Simulate the store assigning an identifier on insert.
			product := args.Get(1).(*models.Product)
			product.ID = assignedID
		}).
		Return(nil).Once()

	product, err := service.CreateProduct(context.Background(), models.ProductCreate{
		Name:        "T-shirt",
		Size:        "large",
		Price:       floatPtr(499.99),
		Description: "A comfortable cotton t-shirt",
	})

	assert.NoError(t, err)
	assert.Equal(t, assignedID, product.ID)
	assert.Equal(t, assignedID.Hex(), product.ExternalID)
	assert.Equal(t, "T-shirt", product.Name)
	assert.Equal(t, "large", product.Size)
	assert.Equal(t, 499.99, product.Price)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_RepositoryError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).
		Return(fmt.Errorf("connection reset")).Once()

	product, err := service.CreateProduct(context.Background(), models.ProductCreate{
		Name:  "Mouse",
		Price: floatPtr(25.0),
	})

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "connection reset")
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	query := repositories.ProductQuery{Size: "large", Limit: 10}

	mockRepo.On("List", mock.Anything, query).Return([]models.Product{
		{ID: first, Name: "T-shirt", Size: "large", Price: 499.99},
		{ID: second, Name: "Hoodie", Size: "large", Price: 899.99},
	}, nil).Once()

	products, err := service.ListProducts(context.Background(), query)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, first.Hex(), products[0].ExternalID)
	assert.Equal(t, second.Hex(), products[1].ExternalID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_RepositoryError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("List", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("cursor timeout")).Once()

	products, err := service.ListProducts(context.Background(), repositories.ProductQuery{Limit: 10})

	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "cursor timeout")
	mockRepo.AssertExpectations(t)
}
