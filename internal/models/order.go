package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderItem represents a single item within an order. ProductID is stored
// in its native form; it is not checked against the products collection,
// so orphan references are permitted.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Order represents a customer order document.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ExternalID string             `bson:"-" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Items      []OrderItem        `bson:"items" json:"items"`
}

// OrderItemCreate is a single item in an order creation request. The
// "objectid" tag runs the identifier adapter over product_id.
type OrderItemCreate struct {
	ProductID string `json:"product_id" validate:"required,objectid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderCreate is the request body for creating an order.
type OrderCreate struct {
	UserID string            `json:"user_id" validate:"required"`
	Items  []OrderItemCreate `json:"items" validate:"required,min=1,dive"`
}
