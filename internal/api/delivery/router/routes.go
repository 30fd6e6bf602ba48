// Package router đăng ký các route thuộc domain delivery.
package router

import (
	"github.com/gofiber/fiber/v3"

	deliveryhdl "gas_manager/internal/api/delivery/handler"
	apirouter "gas_manager/internal/api/router"
)

// Register đăng ký các route nhiệm vụ giao hàng lên root.
func Register(root fiber.Router, r *apirouter.Router) error {
	taskHandler := deliveryhdl.NewDeliveryTaskHandler()
	root.Get("/deliveries", taskHandler.HandleFind)
	root.Post("/deliveries", taskHandler.HandleInsert)
	return nil
}
