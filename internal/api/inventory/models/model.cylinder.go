// Package models - model bình gas (Cylinder) thuộc domain inventory.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cylinder định nghĩa mô hình bình gas trong kho.
// Barcode là định danh nghiệp vụ duy nhất, được backstop bằng unique index ở store.
type Cylinder struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty" schema:"-"`
	Barcode    string             `json:"barcode" bson:"barcode" validate:"required" index:"unique" description:"Unique cylinder barcode/serial"`
	GasType    string             `json:"gas_type,omitempty" bson:"gas_type,omitempty" validate:"omitempty,oneof=LPG O2 CO2 N2 Ar Other" default:"LPG"`
	CapacityKg float64            `json:"capacity_kg" bson:"capacity_kg" validate:"required,gt=0" description:"Cylinder capacity in KG"`
	Status     string             `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=in_stock reserved out_for_delivery delivered maintenance" default:"in_stock"`
	Location   *string            `json:"location,omitempty" bson:"location,omitempty" description:"Warehouse bin or current location"`
	Notes      *string            `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty" schema:"-"`
	UpdatedAt  int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty" schema:"-"`
}
