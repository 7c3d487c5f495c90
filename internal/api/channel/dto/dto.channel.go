// Package dto định nghĩa các cấu trúc dữ liệu đầu vào cho domain channel
package dto

// ChannelCreateInput - dữ liệu tạo kênh mới.
// channelId do server sinh từ tên kênh, client không gửi lên.
type ChannelCreateInput struct {
	Name              string `json:"name" validate:"required,no_xss"`
	Description       string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Owner             string `json:"owner" validate:"required"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	BannerImageURL    string `json:"bannerImageUrl,omitempty"`
}

// ChannelUpdateInput - dữ liệu cập nhật thông tin kênh
type ChannelUpdateInput struct {
	Name              string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description       string `json:"description,omitempty" validate:"omitempty,no_xss"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	BannerImageURL    string `json:"bannerImageUrl,omitempty"`
}

// ChannelVideoReferenceInput - gắn video vào kênh theo videoId.
// Server tra cứu video thật và denormalize các trường hiển thị.
type ChannelVideoReferenceInput struct {
	VideoID string `json:"videoId" validate:"required"`
}

// ChannelVideoSummaryInput - gắn bản tóm tắt video tự chứa vào kênh,
// không cần video tương ứng trong collection videos.
type ChannelVideoSummaryInput struct {
	Title        string `json:"title" validate:"required,no_xss"`
	Description  string `json:"description,omitempty" validate:"omitempty,no_xss"`
	VideoURL     string `json:"videoUrl" validate:"required"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// ChannelVideoUpdateInput - cập nhật các trường hiển thị của một entry
// video nhúng trong kênh
type ChannelVideoUpdateInput struct {
	Title        string `json:"title,omitempty" validate:"omitempty,no_xss"`
	Description  string `json:"description,omitempty" validate:"omitempty,no_xss"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}
