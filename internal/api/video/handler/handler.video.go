package videohdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/santuguddu/YouTube-clone/internal/api/base/handler"
	videodto "github.com/santuguddu/YouTube-clone/internal/api/video/dto"
	models "github.com/santuguddu/YouTube-clone/internal/api/video/models"
	videosvc "github.com/santuguddu/YouTube-clone/internal/api/video/service"
	"github.com/santuguddu/YouTube-clone/internal/logger"
)

// VideoHandler xử lý các request video, counter và bình luận nhúng
type VideoHandler struct {
	*basehdl.BaseHandler[models.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput]
	videoService *videosvc.VideoService
}

// NewVideoHandler tạo instance mới của VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput](videoService)
	return &VideoHandler{
		BaseHandler:  baseHandler,
		videoService: videoService,
	}, nil
}

// HandleCreateVideo xử lý tạo video mới
func (h *VideoHandler) HandleCreateVideo(c fiber.Ctx) error {
	var input videodto.VideoCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	video, err := h.videoService.CreateVideo(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAction("create", "video", video.VideoID, c, nil)
	h.HandleResponse(c, video, nil)
	return nil
}

// HandleGetByVideoId lấy một video theo videoId
func (h *VideoHandler) HandleGetByVideoId(c fiber.Ctx) error {
	video, err := h.videoService.FindByVideoId(c.Context(), c.Params("videoId"))
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, video, nil)
	return nil
}

// handleIncrement tăng một counter và chỉ trả về giá trị mới,
// không trả về document video.
func (h *VideoHandler) handleIncrement(c fiber.Ctx, field string) error {
	value, err := h.videoService.IncrementCounter(c.Context(), c.Params("videoId"), field)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, fiber.Map{field: value}, nil)
	return nil
}

// HandleIncrementViews tăng lượt xem
func (h *VideoHandler) HandleIncrementViews(c fiber.Ctx) error {
	return h.handleIncrement(c, videosvc.CounterViews)
}

// HandleIncrementLikes tăng lượt thích
func (h *VideoHandler) HandleIncrementLikes(c fiber.Ctx) error {
	return h.handleIncrement(c, videosvc.CounterLikes)
}

// HandleIncrementDislikes tăng lượt không thích
func (h *VideoHandler) HandleIncrementDislikes(c fiber.Ctx) error {
	return h.handleIncrement(c, videosvc.CounterDislikes)
}

// HandleCreateComment thêm bình luận vào video
func (h *VideoHandler) HandleCreateComment(c fiber.Ctx) error {
	var input videodto.CommentCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	comment, err := h.videoService.CreateComment(c.Context(), c.Params("videoId"), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAction("create_comment", "video", c.Params("videoId"), c, map[string]interface{}{"comment_id": comment.CommentID})
	h.HandleResponse(c, comment, nil)
	return nil
}

// HandleUpdateComment sửa text một bình luận theo commentId
func (h *VideoHandler) HandleUpdateComment(c fiber.Ctx) error {
	var input videodto.CommentUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	comment, err := h.videoService.UpdateComment(c.Context(), c.Params("videoId"), c.Params("commentId"), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, comment, nil)
	return nil
}

// HandleDeleteComment xóa một bình luận theo commentId
func (h *VideoHandler) HandleDeleteComment(c fiber.Ctx) error {
	if err := h.videoService.DeleteComment(c.Context(), c.Params("videoId"), c.Params("commentId")); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, fiber.Map{"videoId": c.Params("videoId"), "commentId": c.Params("commentId")}, nil)
	return nil
}
