package videodto

// VideoCreateInput đầu vào tạo video.
// VideoID để trống thì server tự sinh.
type VideoCreateInput struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title" validate:"required,no_xss"`
	Description  string `json:"description" validate:"omitempty,no_xss"`
	VideoURL     string `json:"videoUrl" validate:"required"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Duration     string `json:"duration"`
	ChannelID    string `json:"channelId"`
	Uploader     string `json:"uploader" validate:"required"`
}

// VideoUpdateInput đầu vào cập nhật metadata video.
type VideoUpdateInput struct {
	Title        string `json:"title" validate:"omitempty,no_xss"`
	Description  string `json:"description" validate:"omitempty,no_xss"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// CommentCreateInput đầu vào tạo bình luận.
type CommentCreateInput struct {
	UserID string `json:"userId" validate:"required"`
	Text   string `json:"text" validate:"required,no_xss"`
}

// CommentUpdateInput đầu vào sửa bình luận (chỉ thay text).
type CommentUpdateInput struct {
	Text string `json:"text" validate:"required,no_xss"`
}
