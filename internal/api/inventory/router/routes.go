// Package router đăng ký các route thuộc domain inventory.
package router

import (
	"github.com/gofiber/fiber/v3"

	inventoryhdl "gas_manager/internal/api/inventory/handler"
	apirouter "gas_manager/internal/api/router"
)

// Register đăng ký các route quản lý kho bình gas lên root.
func Register(root fiber.Router, r *apirouter.Router) error {
	cylinderHandler := inventoryhdl.NewCylinderHandler()
	root.Get("/inventory", cylinderHandler.HandleFind)
	root.Post("/inventory", cylinderHandler.HandleInsert)
	return nil
}
