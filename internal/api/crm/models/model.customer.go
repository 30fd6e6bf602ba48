// Package models - model khách hàng (Customer) thuộc domain crm.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer định nghĩa mô hình khách hàng
type Customer struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty" schema:"-"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Phone     string             `json:"phone" bson:"phone" validate:"required"`
	Address   string             `json:"address" bson:"address" validate:"required"`
	Email     *string            `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty" schema:"-"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty" schema:"-"`
}
