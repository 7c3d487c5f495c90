// Package videosvc - service video và bình luận nhúng.
package videosvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/santuguddu/YouTube-clone/internal/api/base/service"
	videodto "github.com/santuguddu/YouTube-clone/internal/api/video/dto"
	models "github.com/santuguddu/YouTube-clone/internal/api/video/models"
	"github.com/santuguddu/YouTube-clone/internal/common"
	"github.com/santuguddu/YouTube-clone/internal/global"
	"github.com/santuguddu/YouTube-clone/internal/utility"
)

// Các counter được phép tăng qua IncrementCounter.
const (
	CounterViews    = "views"
	CounterLikes    = "likes"
	CounterDislikes = "dislikes"
)

// VideoService là cấu trúc chứa các phương thức liên quan đến video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[models.Video]
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Video](videoCollection),
	}, nil
}

// NewCommentID sinh định danh bình luận duy nhất.
// Dùng ObjectID hex thay vì timestamp: hai bình luận tạo trong cùng một
// milli giây vẫn có định danh khác nhau.
func NewCommentID() string {
	return primitive.NewObjectID().Hex()
}

// FindCommentIndex tìm vị trí bình luận theo commentId (định danh, không
// phải vị trí mảng). Trả về -1 nếu không có.
func FindCommentIndex(comments []models.Comment, commentID string) int {
	for i := range comments {
		if comments[i].CommentID == commentID {
			return i
		}
	}
	return -1
}

// CreateVideo tạo video mới. VideoID để trống thì tự sinh.
func (s *VideoService) CreateVideo(ctx context.Context, input *videodto.VideoCreateInput) (*models.Video, error) {
	videoID := input.VideoID
	if videoID == "" {
		videoID = primitive.NewObjectID().Hex()
	}

	video := models.Video{
		VideoID:      videoID,
		Title:        input.Title,
		Description:  input.Description,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
		Duration:     input.Duration,
		ChannelID:    input.ChannelID,
		Uploader:     input.Uploader,
		Comments:     []models.Comment{},
		UploadDate:   utility.CurrentTimeInMilli(),
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, video)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"video_id": created.VideoID}).Info("CreateVideo: Tạo video thành công")
	return &created, nil
}

// FindByVideoId tìm video theo videoId (khóa nghiệp vụ, không phải _id).
func (s *VideoService) FindByVideoId(ctx context.Context, videoID string) (models.Video, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"videoId": videoID}, nil)
}

// IncrementCounter tăng một counter của video lên 1 trong một thao tác
// nguyên tử duy nhất và trả về giá trị mới. Counter chỉ tăng, không có
// thao tác giảm hay đặt lại.
func (s *VideoService) IncrementCounter(ctx context.Context, videoID string, field string) (int64, error) {
	switch field {
	case CounterViews, CounterLikes, CounterDislikes:
	default:
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Counter '%s' không hợp lệ", field),
			common.StatusBadRequest,
			nil,
		)
	}

	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{field: int64(1)},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	video, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, bson.M{"videoId": videoID}, update, opts)
	if err != nil {
		return 0, err
	}

	switch field {
	case CounterViews:
		return video.Views, nil
	case CounterLikes:
		return video.Likes, nil
	default:
		return video.Dislikes, nil
	}
}

// CreateComment tạo bình luận mới trên video.
// Validate đầu vào trước khi chạm vào storage; video không tồn tại thì
// trả về ErrNotFound và không ghi gì.
func (s *VideoService) CreateComment(ctx context.Context, videoID string, input *videodto.CommentCreateInput) (*models.Comment, error) {
	if input.UserID == "" || input.Text == "" {
		return nil, common.ErrRequiredField
	}

	video, err := s.FindByVideoId(ctx, videoID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		CommentID: NewCommentID(),
		UserID:    input.UserID,
		Text:      input.Text,
		Timestamp: utility.CurrentTimeInMilli(),
	}
	video.Comments = append(video.Comments, comment)

	if err := s.persistComments(ctx, videoID, video.Comments); err != nil {
		return nil, err
	}

	return &comment, nil
}

// UpdateComment sửa text của một bình luận, giữ nguyên userId và timestamp.
// Bình luận được định vị bằng commentId, không bao giờ bằng vị trí mảng.
func (s *VideoService) UpdateComment(ctx context.Context, videoID string, commentID string, input *videodto.CommentUpdateInput) (*models.Comment, error) {
	if input.Text == "" {
		return nil, common.ErrRequiredField
	}

	video, err := s.FindByVideoId(ctx, videoID)
	if err != nil {
		return nil, err
	}

	idx := FindCommentIndex(video.Comments, commentID)
	if idx == -1 {
		return nil, common.ErrNotFound
	}

	video.Comments[idx].Text = input.Text

	if err := s.persistComments(ctx, videoID, video.Comments); err != nil {
		return nil, err
	}

	updated := video.Comments[idx]
	return &updated, nil
}

// DeleteComment xóa đúng một bình luận theo commentId, giữ nguyên thứ tự
// các bình luận còn lại.
func (s *VideoService) DeleteComment(ctx context.Context, videoID string, commentID string) error {
	video, err := s.FindByVideoId(ctx, videoID)
	if err != nil {
		return err
	}

	idx := FindCommentIndex(video.Comments, commentID)
	if idx == -1 {
		return common.ErrNotFound
	}

	video.Comments = append(video.Comments[:idx], video.Comments[idx+1:]...)

	return s.persistComments(ctx, videoID, video.Comments)
}

// persistComments ghi đè toàn bộ mảng comments của video.
// Hai request song song trên cùng video thì request ghi sau thắng
// (last-writer-wins): thay đổi của request ghi trước bị mất.
func (s *VideoService) persistComments(ctx context.Context, videoID string, comments []models.Comment) error {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"comments": comments},
	}
	_, err := s.BaseServiceMongoImpl.UpdateOne(ctx, bson.M{"videoId": videoID}, update, nil)
	return err
}
