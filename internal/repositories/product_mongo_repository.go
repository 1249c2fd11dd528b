package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hrone/internal/models"
)

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
	}
}

// Create inserts a new product and reads back the stored document so the
// caller receives the store-assigned identifier and canonical form.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	err = r.collection.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("product %v missing after insert: %w", res.InsertedID, ErrNotFound)
		}
		return fmt.Errorf("failed to read back product %v: %w", res.InsertedID, err)
	}
	return nil
}

// List returns the products matching the query, in query order.
func (r *MongoProductRepository) List(ctx context.Context, query ProductQuery) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, query.Filter(), query.FindOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, product)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor failed while listing products: %w", err)
	}
	return products, nil
}
