// Package channelsvc - test sinh channelId, định vị entry video nhúng và
// các thao tác kênh theo hai khóa channelId/owner. Các test cần MongoDB
// sẽ skip nếu MONGODB_TEST_URI chưa đặt.
package channelsvc

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	channeldto "github.com/santuguddu/YouTube-clone/internal/api/channel/dto"
	models "github.com/santuguddu/YouTube-clone/internal/api/channel/models"
	videomodels "github.com/santuguddu/YouTube-clone/internal/api/video/models"
	"github.com/santuguddu/YouTube-clone/internal/common"
	"github.com/santuguddu/YouTube-clone/internal/global"
)

func TestGenerateChannelID(t *testing.T) {
	id := GenerateChannelID("Tech Reviews")

	if !strings.HasPrefix(id, "tech_reviews_") {
		t.Fatalf("channelId phải bắt đầu bằng slug của tên: %q", id)
	}

	suffix := strings.TrimPrefix(id, "tech_reviews_")
	millis, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || millis <= 0 {
		t.Errorf("Phần đuôi channelId phải là timestamp milli giây, nhận %q", suffix)
	}
}

func TestFindChannelVideoIndex(t *testing.T) {
	e1 := models.ChannelVideo{ID: primitive.NewObjectID(), Kind: models.ChannelVideoKindReference, VideoID: "v1"}
	e2 := models.ChannelVideo{ID: primitive.NewObjectID(), Kind: models.ChannelVideoKindSummary, Title: "tóm tắt"}
	videos := []models.ChannelVideo{e1, e2}

	if idx := FindChannelVideoIndex(videos, e2.ID.Hex()); idx != 1 {
		t.Errorf("FindChannelVideoIndex(e2) = %d, muốn 1", idx)
	}
	if idx := FindChannelVideoIndex(videos, primitive.NewObjectID().Hex()); idx != -1 {
		t.Errorf("Entry lạ phải trả -1, nhận %d", idx)
	}
}

// ============================================
// Các test dưới đây cần MongoDB thật
// ============================================

func setupChannelService(t *testing.T) *ChannelService {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI chưa được đặt, bỏ qua test cần MongoDB")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("Không kết nối được MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("MongoDB không phản hồi ping: %v", err)
	}

	db := client.Database("youtube_clone_test")
	channelCol := db.Collection("channels")
	videoCol := db.Collection("videos")
	_ = channelCol.Drop(ctx)
	_ = videoCol.Drop(ctx)

	global.MongoDB_ColNames.Channels = "channels"
	global.MongoDB_ColNames.Videos = "videos"
	if _, err := global.RegistryCollections.Register("channels", channelCol); err != nil {
		t.Fatalf("Không đăng ký được collection channels: %v", err)
	}
	if _, err := global.RegistryCollections.Register("videos", videoCol); err != nil {
		t.Fatalf("Không đăng ký được collection videos: %v", err)
	}

	svc, err := NewChannelService()
	if err != nil {
		t.Fatalf("NewChannelService lỗi: %v", err)
	}
	return svc
}

func mustCreateChannel(t *testing.T, svc *ChannelService, name, owner string) *models.Channel {
	t.Helper()
	channel, err := svc.CreateChannel(context.Background(), &channeldto.ChannelCreateInput{
		Name:  name,
		Owner: owner,
	})
	if err != nil {
		t.Fatalf("CreateChannel lỗi: %v", err)
	}
	return channel
}

func TestCreateChannel_DefaultsAndDualKeys(t *testing.T) {
	svc := setupChannelService(t)
	ctx := context.Background()

	created := mustCreateChannel(t, svc, "Bob Vlog", "bob")

	if created.ProfilePictureURL != DefaultProfilePictureURL {
		t.Errorf("Kênh không kèm ảnh phải nhận ảnh đại diện mặc định, nhận %q", created.ProfilePictureURL)
	}
	if created.BannerImageURL != DefaultBannerImageURL {
		t.Errorf("Kênh không kèm ảnh phải nhận ảnh bìa mặc định, nhận %q", created.BannerImageURL)
	}

	// Cả hai khóa tra cứu cùng trỏ về một kênh
	byID, err := svc.FindByChannelId(ctx, created.ChannelID)
	if err != nil {
		t.Fatalf("FindByChannelId lỗi: %v", err)
	}
	byOwner, err := svc.FindByOwner(ctx, "bob")
	if err != nil {
		t.Fatalf("FindByOwner lỗi: %v", err)
	}
	if byID.ID != byOwner.ID {
		t.Error("FindByChannelId và FindByOwner phải trả về cùng một kênh")
	}
}

func TestSubscribe_ReturnsNewValueOnly(t *testing.T) {
	svc := setupChannelService(t)
	ctx := context.Background()
	created := mustCreateChannel(t, svc, "Bob Vlog", "bob")

	const n = 3
	var last int64
	for i := 0; i < n; i++ {
		v, err := svc.Subscribe(ctx, created.ChannelID)
		if err != nil {
			t.Fatalf("Subscribe lần %d lỗi: %v", i+1, err)
		}
		last = v
	}
	if last != n {
		t.Fatalf("Subscribe %d lần phải ra %d, nhận %d", n, n, last)
	}

	if _, err := svc.Subscribe(ctx, "khong-ton-tai"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Subscribe kênh không tồn tại phải trả ErrNotFound, nhận %v", err)
	}
}

func TestAttachVideoReference_DenormalizesFromRealVideo(t *testing.T) {
	svc := setupChannelService(t)
	ctx := context.Background()
	created := mustCreateChannel(t, svc, "Bob Vlog", "bob")

	if _, err := svc.videoCRUD.InsertOne(ctx, videomodels.Video{
		VideoID:      "v1",
		Title:        "Video gốc",
		Description:  "Mô tả gốc",
		ThumbnailURL: "/uploads/images/thumb.png",
	}); err != nil {
		t.Fatalf("Insert video test lỗi: %v", err)
	}

	entry, err := svc.AttachVideoReference(ctx, created.ChannelID, &channeldto.ChannelVideoReferenceInput{VideoID: "v1"})
	if err != nil {
		t.Fatalf("AttachVideoReference lỗi: %v", err)
	}
	if entry.Kind != models.ChannelVideoKindReference || entry.VideoID != "v1" {
		t.Fatalf("Entry reference sai: %+v", entry)
	}
	if entry.Title != "Video gốc" || entry.ThumbnailURL != "/uploads/images/thumb.png" {
		t.Errorf("Entry phải denormalize từ video thật, nhận %+v", entry)
	}

	// Gắn videoId không tồn tại phải fail và không ghi gì
	if _, err := svc.AttachVideoReference(ctx, created.ChannelID, &channeldto.ChannelVideoReferenceInput{VideoID: "khong-ton-tai"}); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Gắn video không tồn tại phải trả ErrNotFound, nhận %v", err)
	}
	channel, _ := svc.FindByChannelId(ctx, created.ChannelID)
	if len(channel.Videos) != 1 {
		t.Fatalf("Danh sách video của kênh phải còn đúng 1 entry, nhận %d", len(channel.Videos))
	}
}

// TestChannelVideos_OwnerKeyedUpdateAndDelete: kênh của "bob" có hai video
// nhúng; sửa entry thứ nhất theo định danh của nó với title/description
// mới thì entry thứ hai giữ nguyên; xóa entry thứ hai thì chỉ còn entry
// thứ nhất.
func TestChannelVideos_OwnerKeyedUpdateAndDelete(t *testing.T) {
	svc := setupChannelService(t)
	ctx := context.Background()
	created := mustCreateChannel(t, svc, "Bob Vlog", "bob")

	e1, err := svc.AttachVideoSummary(ctx, created.ChannelID, &channeldto.ChannelVideoSummaryInput{
		Title:    "Tập một",
		VideoURL: "/uploads/videos/ep1.mp4",
	})
	if err != nil {
		t.Fatalf("AttachVideoSummary lỗi: %v", err)
	}
	e2, err := svc.AttachVideoSummary(ctx, created.ChannelID, &channeldto.ChannelVideoSummaryInput{
		Title:       "Tập hai",
		Description: "Mô tả tập hai",
		VideoURL:    "/uploads/videos/ep2.mp4",
	})
	if err != nil {
		t.Fatalf("AttachVideoSummary lỗi: %v", err)
	}

	updated, err := svc.UpdateChannelVideo(ctx, "bob", e1.ID.Hex(), &channeldto.ChannelVideoUpdateInput{
		Title:       "Tập một (bản cắt mới)",
		Description: "Đã dựng lại",
	})
	if err != nil {
		t.Fatalf("UpdateChannelVideo lỗi: %v", err)
	}
	if updated.Title != "Tập một (bản cắt mới)" || updated.Description != "Đã dựng lại" {
		t.Fatalf("Entry thứ nhất không được cập nhật đúng: %+v", updated)
	}

	channel, _ := svc.FindByOwner(ctx, "bob")
	if len(channel.Videos) != 2 {
		t.Fatalf("Kênh phải có 2 entry, nhận %d", len(channel.Videos))
	}
	if channel.Videos[1].Title != "Tập hai" || channel.Videos[1].Description != "Mô tả tập hai" {
		t.Fatalf("Entry thứ hai phải giữ nguyên: %+v", channel.Videos[1])
	}

	if err := svc.DeleteChannelVideo(ctx, "bob", e2.ID.Hex()); err != nil {
		t.Fatalf("DeleteChannelVideo lỗi: %v", err)
	}
	channel, _ = svc.FindByOwner(ctx, "bob")
	if len(channel.Videos) != 1 || channel.Videos[0].ID != e1.ID {
		t.Fatalf("Chỉ entry thứ nhất được còn lại: %+v", channel.Videos)
	}

	// Update/delete với entry không tồn tại phải trả not-found
	ghost := primitive.NewObjectID().Hex()
	if _, err := svc.UpdateChannelVideo(ctx, "bob", ghost, &channeldto.ChannelVideoUpdateInput{Title: "x"}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Update entry lạ phải trả ErrNotFound, nhận %v", err)
	}
	if err := svc.DeleteChannelVideo(ctx, "bob", ghost); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Delete entry lạ phải trả ErrNotFound, nhận %v", err)
	}
}

// TestChannelVideos_LastWriterWins ghi lại hạn chế đã biết: hai request
// song song cùng ghi đè mảng videos của kênh thì bản ghi sau thắng.
func TestChannelVideos_LastWriterWins(t *testing.T) {
	svc := setupChannelService(t)
	ctx := context.Background()
	created := mustCreateChannel(t, svc, "Bob Vlog", "bob")

	copyA, _ := svc.FindByChannelId(ctx, created.ChannelID)
	copyB, _ := svc.FindByChannelId(ctx, created.ChannelID)

	entryA := models.ChannelVideo{ID: primitive.NewObjectID(), Kind: models.ChannelVideoKindSummary, Title: "từ A", VideoURL: "/a.mp4"}
	entryB := models.ChannelVideo{ID: primitive.NewObjectID(), Kind: models.ChannelVideoKindSummary, Title: "từ B", VideoURL: "/b.mp4"}

	filter := bson.M{"channelId": created.ChannelID}
	if err := svc.persistVideos(ctx, filter, append(copyA.Videos, entryA)); err != nil {
		t.Fatalf("persistVideos A lỗi: %v", err)
	}
	if err := svc.persistVideos(ctx, filter, append(copyB.Videos, entryB)); err != nil {
		t.Fatalf("persistVideos B lỗi: %v", err)
	}

	channel, _ := svc.FindByChannelId(ctx, created.ChannelID)
	if len(channel.Videos) != 1 || channel.Videos[0].ID != entryB.ID {
		t.Fatalf("Last-writer-wins: chỉ entry của bản ghi sau được còn lại, nhận %+v", channel.Videos)
	}
}
