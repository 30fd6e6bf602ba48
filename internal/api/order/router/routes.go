// Package router đăng ký các route thuộc domain order.
package router

import (
	"github.com/gofiber/fiber/v3"

	orderhdl "gas_manager/internal/api/order/handler"
	apirouter "gas_manager/internal/api/router"
)

// Register đăng ký các route đơn hàng lên root.
func Register(root fiber.Router, r *apirouter.Router) error {
	orderHandler := orderhdl.NewOrderHandler()
	root.Get("/orders", orderHandler.HandleFind)
	root.Post("/orders", orderHandler.HandleInsert)
	return nil
}
