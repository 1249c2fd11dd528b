package repositories_test

import (
	"testing"

	"hrone/internal/repositories"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductQueryFilter_Empty(t *testing.T) {
	query := repositories.ProductQuery{Limit: 10}
	assert.Equal(t, bson.M{}, query.Filter())
}

func TestProductQueryFilter_Name(t *testing.T) {
	query := repositories.ProductQuery{Name: "T-shirt (v2)", Limit: 10}

	filter := query.Filter()
	regex, ok := filter["name"].(primitive.Regex)
	assert.True(t, ok, "name predicate should be a regex")
	assert.Equal(t, "i", regex.Options, "name match must be case-insensitive")
	// Regex metacharacters in the input are matched literally.
	assert.Equal(t, `T-shirt \(v2\)`, regex.Pattern)
}

func TestProductQueryFilter_Size(t *testing.T) {
	query := repositories.ProductQuery{Size: "large", Limit: 10}
	assert.Equal(t, bson.M{"size": "large"}, query.Filter())
}

func TestProductQueryFilter_NameAndSize(t *testing.T) {
	query := repositories.ProductQuery{Name: "shirt", Size: "large", Limit: 10}

	filter := query.Filter()
	assert.Len(t, filter, 2)
	assert.Contains(t, filter, "name")
	assert.Equal(t, "large", filter["size"])
}

func TestOrderQueryFilter(t *testing.T) {
	query := repositories.OrderQuery{UserID: "user123", Limit: 10}
	assert.Equal(t, bson.M{"user_id": "user123"}, query.Filter())
}

func TestFindOptionsPagination(t *testing.T) {
	opts := repositories.ProductQuery{Limit: 25, Offset: 50}.FindOptions()

	assert.Equal(t, int64(25), *opts.Limit)
	assert.Equal(t, int64(50), *opts.Skip)
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, opts.Sort)
}
