package basehdl

import (
	"testing"

	videodto "github.com/santuguddu/YouTube-clone/internal/api/video/dto"
	videomodels "github.com/santuguddu/YouTube-clone/internal/api/video/models"
)

// TestTransformCreateInputToModel kiểm tra chuyển đổi DTO sang Model qua json tag chung
func TestTransformCreateInputToModel(t *testing.T) {
	h := &BaseHandler[videomodels.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput]{}

	input := &videodto.VideoCreateInput{
		Title:       "Go generics",
		Description: "Video giới thiệu generics",
		ChannelID:   "tech_reviews_1",
		Uploader:    "alice",
	}

	model, err := h.TransformCreateInputToModel(input)
	if err != nil {
		t.Fatalf("Transform CreateInput thất bại: %v", err)
	}
	if model.Title != input.Title {
		t.Errorf("Title không khớp: muốn %q, nhận %q", input.Title, model.Title)
	}
	if model.ChannelID != input.ChannelID {
		t.Errorf("ChannelID không khớp: muốn %q, nhận %q", input.ChannelID, model.ChannelID)
	}
	if model.Uploader != input.Uploader {
		t.Errorf("Uploader không khớp: muốn %q, nhận %q", input.Uploader, model.Uploader)
	}
}

// TestTransformUpdateInputToModel kiểm tra chuyển đổi UpdateInput chỉ mang các field được gửi
func TestTransformUpdateInputToModel(t *testing.T) {
	h := &BaseHandler[videomodels.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput]{}

	input := &videodto.VideoUpdateInput{
		Title: "Tiêu đề mới",
	}

	model, err := h.TransformUpdateInputToModel(input)
	if err != nil {
		t.Fatalf("Transform UpdateInput thất bại: %v", err)
	}
	if model.Title != "Tiêu đề mới" {
		t.Errorf("Title không khớp: muốn %q, nhận %q", "Tiêu đề mới", model.Title)
	}
	if model.Description != "" {
		t.Errorf("Description phải rỗng khi không gửi, nhận %q", model.Description)
	}
}
