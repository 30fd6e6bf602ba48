// Package router đăng ký các route thuộc domain auth: System, Auth.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "gas_manager/internal/api/auth/handler"
	basehdl "gas_manager/internal/api/base/handler"
	apirouter "gas_manager/internal/api/router"
)

// Register đăng ký các route hệ thống và đăng nhập lên root.
func Register(root fiber.Router, r *apirouter.Router) error {
	systemHandler := basehdl.NewSystemHandler()
	root.Get("/", systemHandler.HandleRoot)
	root.Get("/test", systemHandler.HandleTest)
	root.Get("/schema", systemHandler.HandleSchema)
	root.Get("/system/health", systemHandler.HandleHealth)

	userHandler := authhdl.NewUserHandler()
	root.Post("/auth/login", userHandler.HandleLogin)
	return nil
}
