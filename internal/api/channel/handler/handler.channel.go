package channelhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/santuguddu/YouTube-clone/internal/api/base/handler"
	channeldto "github.com/santuguddu/YouTube-clone/internal/api/channel/dto"
	models "github.com/santuguddu/YouTube-clone/internal/api/channel/models"
	channelsvc "github.com/santuguddu/YouTube-clone/internal/api/channel/service"
	"github.com/santuguddu/YouTube-clone/internal/logger"
)

// ChannelHandler xử lý các request kênh, subscribe và video nhúng
type ChannelHandler struct {
	*basehdl.BaseHandler[models.Channel, channeldto.ChannelCreateInput, channeldto.ChannelUpdateInput]
	channelService *channelsvc.ChannelService
}

// NewChannelHandler tạo instance mới của ChannelHandler
func NewChannelHandler() (*ChannelHandler, error) {
	channelService, err := channelsvc.NewChannelService()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Channel, channeldto.ChannelCreateInput, channeldto.ChannelUpdateInput](channelService)
	return &ChannelHandler{
		BaseHandler:    baseHandler,
		channelService: channelService,
	}, nil
}

// HandleCreateChannel xử lý tạo kênh mới
func (h *ChannelHandler) HandleCreateChannel(c fiber.Ctx) error {
	var input channeldto.ChannelCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	channel, err := h.channelService.CreateChannel(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAction("create", "channel", channel.ChannelID, c, nil)
	h.HandleResponse(c, channel, nil)
	return nil
}

// HandleGetByChannelId lấy một kênh theo channelId
func (h *ChannelHandler) HandleGetByChannelId(c fiber.Ctx) error {
	channel, err := h.channelService.FindByChannelId(c.Context(), c.Params("channelId"))
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, channel, nil)
	return nil
}

// HandleGetByOwner lấy kênh theo owner
func (h *ChannelHandler) HandleGetByOwner(c fiber.Ctx) error {
	channel, err := h.channelService.FindByOwner(c.Context(), c.Params("owner"))
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, channel, nil)
	return nil
}

// HandleSubscribe tăng subscribers và chỉ trả về giá trị mới
func (h *ChannelHandler) HandleSubscribe(c fiber.Ctx) error {
	value, err := h.channelService.Subscribe(c.Context(), c.Params("channelId"))
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, fiber.Map{"subscribers": value}, nil)
	return nil
}

// HandleAttachVideoReference gắn video đã tồn tại vào kênh theo videoId
func (h *ChannelHandler) HandleAttachVideoReference(c fiber.Ctx) error {
	var input channeldto.ChannelVideoReferenceInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	entry, err := h.channelService.AttachVideoReference(c.Context(), c.Params("channelId"), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAction("attach_video", "channel", c.Params("channelId"), c, map[string]interface{}{"kind": entry.Kind, "video_id": entry.VideoID})
	h.HandleResponse(c, entry, nil)
	return nil
}

// HandleAttachVideoSummary gắn bản tóm tắt video tự chứa vào kênh
func (h *ChannelHandler) HandleAttachVideoSummary(c fiber.Ctx) error {
	var input channeldto.ChannelVideoSummaryInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	entry, err := h.channelService.AttachVideoSummary(c.Context(), c.Params("channelId"), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAction("attach_video", "channel", c.Params("channelId"), c, map[string]interface{}{"kind": entry.Kind})
	h.HandleResponse(c, entry, nil)
	return nil
}

// HandleUpdateChannelVideo cập nhật một entry video nhúng, kênh tra theo owner
func (h *ChannelHandler) HandleUpdateChannelVideo(c fiber.Ctx) error {
	var input channeldto.ChannelVideoUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	entry, err := h.channelService.UpdateChannelVideo(c.Context(), c.Params("owner"), c.Params("entryId"), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, entry, nil)
	return nil
}

// HandleDeleteChannelVideo xóa một entry video nhúng, kênh tra theo owner
func (h *ChannelHandler) HandleDeleteChannelVideo(c fiber.Ctx) error {
	if err := h.channelService.DeleteChannelVideo(c.Context(), c.Params("owner"), c.Params("entryId")); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, fiber.Map{"owner": c.Params("owner"), "entryId": c.Params("entryId")}, nil)
	return nil
}
