// Package router quản lý việc định tuyến cho API.
//
// Các domain tự đăng ký route của mình qua RegisterFunc để tránh import
// cycle giữa router trung tâm và handler của từng domain.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// App trả về fiber app gốc
func (r *Router) App() *fiber.App {
	return r.app
}

// RegisterFunc là hàm đăng ký route của một domain lên router gốc
type RegisterFunc func(root fiber.Router, r *Router) error

// SetupRoutes đăng ký toàn bộ route của các domain lên app.
// Các path được giữ nguyên ở root, không có prefix version.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	r := NewRouter(app)
	root := app.Group("")
	for _, reg := range regs {
		if err := reg(root, r); err != nil {
			return err
		}
	}
	return nil
}
