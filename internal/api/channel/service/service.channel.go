// Package channelsvc - service kênh và danh sách video nhúng.
package channelsvc

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/santuguddu/YouTube-clone/internal/api/base/service"
	channeldto "github.com/santuguddu/YouTube-clone/internal/api/channel/dto"
	models "github.com/santuguddu/YouTube-clone/internal/api/channel/models"
	videomodels "github.com/santuguddu/YouTube-clone/internal/api/video/models"
	"github.com/santuguddu/YouTube-clone/internal/common"
	"github.com/santuguddu/YouTube-clone/internal/global"
	"github.com/santuguddu/YouTube-clone/internal/utility"
)

// Ảnh mặc định khi tạo kênh không kèm ảnh.
const (
	DefaultProfilePictureURL = "/uploads/default-avatar.png"
	DefaultBannerImageURL    = "/uploads/default-banner.png"
)

// ChannelService là cấu trúc chứa các phương thức liên quan đến kênh.
// Giữ thêm một service phụ trên collection videos để tra cứu video thật
// khi gắn entry reference.
type ChannelService struct {
	*basesvc.BaseServiceMongoImpl[models.Channel]
	videoCRUD *basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewChannelService tạo mới ChannelService
func NewChannelService() (*ChannelService, error) {
	channelCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Channels)
	if !exist {
		return nil, fmt.Errorf("failed to get channels collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &ChannelService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Channel](channelCollection),
		videoCRUD:            basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
	}, nil
}

// GenerateChannelID sinh channelId từ tên kênh: slug của tên cộng với
// timestamp milli giây lúc tạo. Timestamp giữ cho hai kênh trùng tên
// vẫn có channelId khác nhau.
func GenerateChannelID(name string) string {
	return utility.Slugify(name) + "_" + strconv.FormatInt(utility.CurrentTimeInMilli(), 10)
}

// FindChannelVideoIndex tìm vị trí entry video nhúng theo _id hex của
// entry. Trả về -1 nếu không có.
func FindChannelVideoIndex(videos []models.ChannelVideo, entryID string) int {
	for i := range videos {
		if videos[i].ID.Hex() == entryID {
			return i
		}
	}
	return -1
}

// CreateChannel tạo kênh mới với channelId sinh từ tên và ảnh mặc định
// khi client không gửi ảnh lên.
func (s *ChannelService) CreateChannel(ctx context.Context, input *channeldto.ChannelCreateInput) (*models.Channel, error) {
	channel := models.Channel{
		ChannelID:         GenerateChannelID(input.Name),
		Name:              input.Name,
		Description:       input.Description,
		Owner:             input.Owner,
		ProfilePictureURL: input.ProfilePictureURL,
		BannerImageURL:    input.BannerImageURL,
		Videos:            []models.ChannelVideo{},
	}
	if channel.ProfilePictureURL == "" {
		channel.ProfilePictureURL = DefaultProfilePictureURL
	}
	if channel.BannerImageURL == "" {
		channel.BannerImageURL = DefaultBannerImageURL
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, channel)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"channel_id": created.ChannelID}).Info("CreateChannel: Tạo kênh thành công")
	return &created, nil
}

// FindByChannelId tìm kênh theo channelId.
func (s *ChannelService) FindByChannelId(ctx context.Context, channelID string) (models.Channel, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"channelId": channelID}, nil)
}

// FindByOwner tìm kênh theo owner. Các thao tác trên video nhúng dùng
// khóa này; các thao tác trên chính kênh dùng channelId. Cả hai đường
// tra cứu đều là API công khai, không gộp lại.
func (s *ChannelService) FindByOwner(ctx context.Context, owner string) (models.Channel, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"owner": owner}, nil)
}

// Subscribe tăng subscribers lên 1 nguyên tử và trả về giá trị mới.
// Không có unsubscribe, counter chỉ tăng.
func (s *ChannelService) Subscribe(ctx context.Context, channelID string) (int64, error) {
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"subscribers": int64(1)},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	channel, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, bson.M{"channelId": channelID}, update, opts)
	if err != nil {
		return 0, err
	}
	return channel.Subscribers, nil
}

// AttachVideoReference gắn một video đã tồn tại vào kênh theo videoId.
// Video phải có thật trong collection videos; title, description và
// thumbnail được chụp lại tại thời điểm gắn.
func (s *ChannelService) AttachVideoReference(ctx context.Context, channelID string, input *channeldto.ChannelVideoReferenceInput) (*models.ChannelVideo, error) {
	channel, err := s.FindByChannelId(ctx, channelID)
	if err != nil {
		return nil, err
	}

	video, err := s.videoCRUD.FindOne(ctx, bson.M{"videoId": input.VideoID}, nil)
	if err != nil {
		return nil, err
	}

	entry := models.ChannelVideo{
		ID:           primitive.NewObjectID(),
		Kind:         models.ChannelVideoKindReference,
		VideoID:      video.VideoID,
		Title:        video.Title,
		Description:  video.Description,
		ThumbnailURL: video.ThumbnailURL,
		UploadedAt:   utility.CurrentTimeInMilli(),
	}
	channel.Videos = append(channel.Videos, entry)

	if err := s.persistVideos(ctx, bson.M{"channelId": channelID}, channel.Videos); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AttachVideoSummary gắn một bản tóm tắt video tự chứa vào kênh.
// Không tra cứu collection videos: entry sống độc lập trong kênh.
func (s *ChannelService) AttachVideoSummary(ctx context.Context, channelID string, input *channeldto.ChannelVideoSummaryInput) (*models.ChannelVideo, error) {
	channel, err := s.FindByChannelId(ctx, channelID)
	if err != nil {
		return nil, err
	}

	entry := models.ChannelVideo{
		ID:           primitive.NewObjectID(),
		Kind:         models.ChannelVideoKindSummary,
		Title:        input.Title,
		Description:  input.Description,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
		UploadedAt:   utility.CurrentTimeInMilli(),
	}
	channel.Videos = append(channel.Videos, entry)

	if err := s.persistVideos(ctx, bson.M{"channelId": channelID}, channel.Videos); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateChannelVideo cập nhật các trường hiển thị của một entry video
// nhúng. Kênh được tra theo OWNER, entry được định vị bằng _id của nó.
func (s *ChannelService) UpdateChannelVideo(ctx context.Context, owner string, entryID string, input *channeldto.ChannelVideoUpdateInput) (*models.ChannelVideo, error) {
	channel, err := s.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	idx := FindChannelVideoIndex(channel.Videos, entryID)
	if idx == -1 {
		return nil, common.ErrNotFound
	}

	if input.Title != "" {
		channel.Videos[idx].Title = input.Title
	}
	if input.Description != "" {
		channel.Videos[idx].Description = input.Description
	}
	if input.ThumbnailURL != "" {
		channel.Videos[idx].ThumbnailURL = input.ThumbnailURL
	}

	if err := s.persistVideos(ctx, bson.M{"owner": owner}, channel.Videos); err != nil {
		return nil, err
	}

	updated := channel.Videos[idx]
	return &updated, nil
}

// DeleteChannelVideo xóa một entry video nhúng, tra kênh theo OWNER.
// Thứ tự các entry còn lại được giữ nguyên.
func (s *ChannelService) DeleteChannelVideo(ctx context.Context, owner string, entryID string) error {
	channel, err := s.FindByOwner(ctx, owner)
	if err != nil {
		return err
	}

	idx := FindChannelVideoIndex(channel.Videos, entryID)
	if idx == -1 {
		return common.ErrNotFound
	}

	channel.Videos = append(channel.Videos[:idx], channel.Videos[idx+1:]...)

	return s.persistVideos(ctx, bson.M{"owner": owner}, channel.Videos)
}

// persistVideos ghi đè toàn bộ mảng videos của kênh.
// Hai request song song trên cùng kênh thì request ghi sau thắng
// (last-writer-wins): thay đổi của request ghi trước bị mất.
func (s *ChannelService) persistVideos(ctx context.Context, filter bson.M, videos []models.ChannelVideo) error {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"videos": videos},
	}
	_, err := s.BaseServiceMongoImpl.UpdateOne(ctx, filter, update, nil)
	return err
}
