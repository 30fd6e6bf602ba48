// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng.
// Password là mật khẩu demo dạng plaintext, chỉ dùng cho môi trường thử nghiệm.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty" schema:"-"`
	Email     string             `json:"email" bson:"email" validate:"required" index:"unique,sparse" description:"Email address used for login"`
	Name      string             `json:"name" bson:"name" validate:"required" description:"Display name"`
	Role      string             `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,oneof=admin staff driver" default:"admin" description:"User role"`
	Password  *string            `json:"password,omitempty" bson:"password,omitempty" description:"Plain demo password (do not use in production)"`
	IsActive  *bool              `json:"is_active,omitempty" bson:"is_active,omitempty" default:"true" description:"Whether user is active"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty" schema:"-"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty" schema:"-"`
}
