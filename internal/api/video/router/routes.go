// Package router đăng ký các route thuộc domain video.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/santuguddu/YouTube-clone/internal/api/middleware"
	apirouter "github.com/santuguddu/YouTube-clone/internal/api/router"
	videohdl "github.com/santuguddu/YouTube-clone/internal/api/video/handler"
)

// Register đăng ký tất cả route video lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	videoHandler, err := videohdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("failed to create video handler: %w", err)
	}

	// Đọc video là route công khai
	v1.Get("/videos", videoHandler.Find)
	v1.Get("/videos/:videoId", videoHandler.HandleGetByVideoId)

	// Counter chỉ tăng: client không cần đăng nhập để tính lượt xem,
	// nhưng like/dislike thì cần
	v1.Put("/videos/:videoId/view", videoHandler.HandleIncrementViews)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "POST", "/", []fiber.Handler{authOnlyMiddleware}, videoHandler.HandleCreateVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PUT", "/:videoId/like", []fiber.Handler{authOnlyMiddleware}, videoHandler.HandleIncrementLikes)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PUT", "/:videoId/dislike", []fiber.Handler{authOnlyMiddleware}, videoHandler.HandleIncrementDislikes)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "POST", "/:videoId/comments", []fiber.Handler{authOnlyMiddleware}, videoHandler.HandleCreateComment)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PUT", "/:videoId/comments/:commentId", []fiber.Handler{authOnlyMiddleware}, videoHandler.HandleUpdateComment)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "DELETE", "/:videoId/comments/:commentId", []fiber.Handler{authOnlyMiddleware}, videoHandler.HandleDeleteComment)

	// CRUD quản trị theo _id
	r.RegisterCRUDRoutes(v1, "/video", videoHandler, apirouter.ReadWriteConfig)
	return nil
}
