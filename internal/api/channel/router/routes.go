// Package router đăng ký các route thuộc domain channel.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	channelhdl "github.com/santuguddu/YouTube-clone/internal/api/channel/handler"
	"github.com/santuguddu/YouTube-clone/internal/api/middleware"
	apirouter "github.com/santuguddu/YouTube-clone/internal/api/router"
)

// Register đăng ký tất cả route channel lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	channelHandler, err := channelhdl.NewChannelHandler()
	if err != nil {
		return fmt.Errorf("failed to create channel handler: %w", err)
	}

	// Đọc kênh là route công khai. Kênh tra được theo hai khóa:
	// channelId cho trang kênh, owner cho các thao tác của chủ kênh.
	v1.Get("/channels", channelHandler.Find)
	v1.Get("/channels/:channelId", channelHandler.HandleGetByChannelId)
	v1.Get("/channels/by-owner/:owner", channelHandler.HandleGetByOwner)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/channels", "POST", "/", []fiber.Handler{authOnlyMiddleware}, channelHandler.HandleCreateChannel)
	apirouter.RegisterRouteWithMiddleware(v1, "/channels", "PUT", "/:channelId/subscribe", []fiber.Handler{authOnlyMiddleware}, channelHandler.HandleSubscribe)
	apirouter.RegisterRouteWithMiddleware(v1, "/channels", "POST", "/:channelId/videos/reference", []fiber.Handler{authOnlyMiddleware}, channelHandler.HandleAttachVideoReference)
	apirouter.RegisterRouteWithMiddleware(v1, "/channels", "POST", "/:channelId/videos/summary", []fiber.Handler{authOnlyMiddleware}, channelHandler.HandleAttachVideoSummary)
	apirouter.RegisterRouteWithMiddleware(v1, "/channels", "PUT", "/by-owner/:owner/videos/:entryId", []fiber.Handler{authOnlyMiddleware}, channelHandler.HandleUpdateChannelVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/channels", "DELETE", "/by-owner/:owner/videos/:entryId", []fiber.Handler{authOnlyMiddleware}, channelHandler.HandleDeleteChannelVideo)

	// CRUD quản trị theo _id
	r.RegisterCRUDRoutes(v1, "/channel", channelHandler, apirouter.ReadWriteConfig)
	return nil
}
