package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a product document in the store.
// Every response carries the identifier twice: as the store's native
// "_id" alias and as the plain external "id" hex string.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ExternalID  string             `bson:"-" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Size        string             `bson:"size,omitempty" json:"size,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

// ProductCreate is the request body for creating a product.
// Price is a pointer so that a present zero (or negative) price passes the
// required check; the sign is intentionally unconstrained.
type ProductCreate struct {
	Name        string   `json:"name" validate:"required"`
	Size        string   `json:"size"`
	Price       *float64 `json:"price" validate:"required"`
	Description string   `json:"description"`
}
