// Package router đăng ký các route thuộc domain crm.
package router

import (
	"github.com/gofiber/fiber/v3"

	crmhdl "gas_manager/internal/api/crm/handler"
	apirouter "gas_manager/internal/api/router"
)

// Register đăng ký các route khách hàng lên root.
func Register(root fiber.Router, r *apirouter.Router) error {
	customerHandler := crmhdl.NewCustomerHandler()
	root.Get("/customers", customerHandler.HandleFind)
	root.Post("/customers", customerHandler.HandleInsert)
	return nil
}
