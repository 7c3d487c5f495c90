// Package router đăng ký các route thuộc domain auth: System, Auth, User.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/santuguddu/YouTube-clone/internal/api/auth/handler"
	basehdl "github.com/santuguddu/YouTube-clone/internal/api/base/handler"
	"github.com/santuguddu/YouTube-clone/internal/api/middleware"
	apirouter "github.com/santuguddu/YouTube-clone/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, user) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Đăng ký và đăng nhập là route công khai
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/change-password", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangePassword)

	// CRUD chỉ đọc cho user (tra cứu kênh/người đăng)
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadOnlyConfig)
	return nil
}
