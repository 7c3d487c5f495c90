// Package models định nghĩa Channel và danh sách video nhúng của kênh.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Loại entry video nhúng trong kênh.
const (
	// ChannelVideoKindReference chỉ giữ videoId trỏ sang collection videos.
	ChannelVideoKindReference = "reference"
	// ChannelVideoKindSummary giữ bản tóm tắt tự chứa, không trỏ đi đâu.
	ChannelVideoKindSummary = "summary"
)

// ChannelVideo là một entry trong danh sách videos của kênh.
// Danh sách này không đồng nhất: entry có thể là reference hoặc summary,
// phân biệt bằng trường kind. Entry reference có VideoID; entry summary
// có VideoURL. Các trường hiển thị (title, description, thumbnail) đều
// được denormalize tại thời điểm gắn và không tự đồng bộ lại với
// collection videos.
type ChannelVideo struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Kind         string             `json:"kind" bson:"kind"`
	VideoID      string             `json:"videoId,omitempty" bson:"videoId,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	VideoURL     string             `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	ThumbnailURL string             `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	UploadedAt   int64              `json:"uploadedAt" bson:"uploadedAt"`
}

// Channel đại diện cho một kênh trong collection channels.
// channelId là khóa nghiệp vụ sinh từ tên kênh; owner cũng được dùng
// làm khóa tra cứu cho các thao tác trên video nhúng. Hai khóa này tồn
// tại song song và không thay cho nhau được.
type Channel struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ChannelID         string             `json:"channelId" bson:"channelId" index:"unique"`
	Name              string             `json:"name" bson:"name"`
	Description       string             `json:"description,omitempty" bson:"description,omitempty"`
	Owner             string             `json:"owner" bson:"owner" index:"single"`
	Subscribers       int64              `json:"subscribers" bson:"subscribers"`
	ProfilePictureURL string             `json:"profilePictureUrl" bson:"profilePictureUrl"`
	BannerImageURL    string             `json:"bannerImageUrl" bson:"bannerImageUrl"`
	Videos            []ChannelVideo     `json:"videos" bson:"videos"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}
