package repositories

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Pagination bounds shared by every list endpoint.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ProductQuery describes an optional filter plus pagination for listing
// products. Zero-value Name/Size mean "no filter on that field".
type ProductQuery struct {
	Name   string
	Size   string
	Limit  int64
	Offset int64
}

// Filter builds the store predicate. Name matches as a case-insensitive
// literal substring; Size matches exactly; both compose with AND.
func (q ProductQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Name), Options: "i"}
	}
	if q.Size != "" {
		filter["size"] = q.Size
	}
	return filter
}

// FindOptions applies pagination and the deterministic ordering.
func (q ProductQuery) FindOptions() *options.FindOptions {
	return findOptions(q.Limit, q.Offset)
}

// OrderQuery scopes an order listing to a single user plus pagination.
type OrderQuery struct {
	UserID string
	Limit  int64
	Offset int64
}

// Filter builds the exact-match predicate on user_id.
func (q OrderQuery) Filter() bson.M {
	return bson.M{"user_id": q.UserID}
}

// FindOptions applies pagination and the deterministic ordering.
func (q OrderQuery) FindOptions() *options.FindOptions {
	return findOptions(q.Limit, q.Offset)
}

// findOptions sorts by "_id" ascending so repeated calls against an
// unchanged dataset return the same page in insertion order.
func findOptions(limit, offset int64) *options.FindOptions {
	return options.Find().
		SetSkip(offset).
		SetLimit(limit).
		SetSort(bson.D{{Key: "_id", Value: 1}})
}
