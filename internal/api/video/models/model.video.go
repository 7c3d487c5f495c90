// Package models - model Video và Comment thuộc domain video.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment là bình luận nhúng trong document Video.
// CommentID là định danh duy nhất trong phạm vi video, sinh từ ObjectID hex
// (không dùng timestamp vì hai bình luận tạo trong cùng một milli giây sẽ
// trùng định danh).
// Timestamp là thời điểm tạo, không thay đổi khi sửa bình luận.
type Comment struct {
	CommentID string `json:"commentId" bson:"commentId"`
	UserID    string `json:"userId" bson:"userId"`
	Text      string `json:"text" bson:"text"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

// Video định nghĩa mô hình video.
// VideoID là khóa ngoài bất biến, mọi thao tác nghiệp vụ đều tra theo nó
// (không phải _id). Views/Likes/Dislikes là counter chỉ tăng.
// Comments là mảng có thứ tự, ghi lại toàn bộ mỗi lần thay đổi.
type Video struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	VideoID      string             `json:"videoId" bson:"videoId" index:"unique"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	VideoURL     string             `json:"videoUrl" bson:"videoUrl"`
	ThumbnailURL string             `json:"thumbnailUrl" bson:"thumbnailUrl"`
	Duration     string             `json:"duration" bson:"duration"`
	ChannelID    string             `json:"channelId" bson:"channelId" index:"single"`
	Uploader     string             `json:"uploader" bson:"uploader"`
	Views        int64              `json:"views" bson:"views"`
	Likes        int64              `json:"likes" bson:"likes"`
	Dislikes     int64              `json:"dislikes" bson:"dislikes"`
	Comments     []Comment          `json:"comments" bson:"comments"`
	UploadDate   int64              `json:"uploadDate" bson:"uploadDate"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
