// Package router đăng ký các route upload file.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/santuguddu/YouTube-clone/internal/api/middleware"
	apirouter "github.com/santuguddu/YouTube-clone/internal/api/router"
	uploadhdl "github.com/santuguddu/YouTube-clone/internal/api/upload/handler"
)

// Register đăng ký tất cả route upload lên v1. Mọi route upload đều
// yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	uploadHandler, err := uploadhdl.NewUploadHandler()
	if err != nil {
		return fmt.Errorf("failed to create upload handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "POST", "/video", []fiber.Handler{authOnlyMiddleware}, uploadHandler.HandleUploadVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "POST", "/profile-picture", []fiber.Handler{authOnlyMiddleware}, uploadHandler.HandleUploadProfilePicture)
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "POST", "/banner", []fiber.Handler{authOnlyMiddleware}, uploadHandler.HandleUploadBanner)
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "POST", "/multiple", []fiber.Handler{authOnlyMiddleware}, uploadHandler.HandleUploadMultiple)
	return nil
}
