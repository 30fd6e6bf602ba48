// Package models - model đơn hàng (Order) thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem là một dòng hàng trong đơn: loại gas, dung tích và số lượng
type OrderItem struct {
	GasType    string  `json:"gas_type" bson:"gas_type" validate:"required"`
	CapacityKg float64 `json:"capacity_kg" bson:"capacity_kg" validate:"required"`
	Quantity   int     `json:"quantity" bson:"quantity" validate:"required,gt=0"`
}

// Order định nghĩa mô hình đơn hàng.
// CustomerID và AssignedTo là tham chiếu mềm dạng chuỗi, không enforce ở store.
type Order struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty" schema:"-"`
	CustomerID string             `json:"customer_id" bson:"customer_id" validate:"required" description:"Reference to customer _id as string"`
	Items      []OrderItem        `json:"items" bson:"items" validate:"required,min=1,dive"`
	Status     string             `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending preparing out_for_delivery delivered cancelled" default:"pending"`
	AssignedTo *string            `json:"assigned_to,omitempty" bson:"assigned_to,omitempty" description:"Driver user id"`
	CreatedAt  int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty" schema:"-"`
	UpdatedAt  int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty" schema:"-"`
}
