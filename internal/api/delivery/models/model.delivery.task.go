// Package models - model nhiệm vụ giao hàng (DeliveryTask) thuộc domain delivery.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryTask định nghĩa mô hình nhiệm vụ giao hàng.
// CurrentLat/CurrentLng là vị trí tài xế báo về lần cuối, có thể không có.
type DeliveryTask struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty" schema:"-"`
	OrderID    string             `json:"order_id" bson:"order_id" validate:"required"`
	DriverID   *string            `json:"driver_id,omitempty" bson:"driver_id,omitempty"`
	Status     string             `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=assigned picked_up en_route delivered failed" default:"assigned"`
	CurrentLat *float64           `json:"current_lat,omitempty" bson:"current_lat,omitempty"`
	CurrentLng *float64           `json:"current_lng,omitempty" bson:"current_lng,omitempty"`
	Note       *string            `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt  int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty" schema:"-"`
	UpdatedAt  int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty" schema:"-"`
}
