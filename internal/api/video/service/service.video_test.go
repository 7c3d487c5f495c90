// Package videosvc - test sinh commentId, định vị theo identity và vòng đời
// bình luận nhúng. Các test cần MongoDB sẽ skip nếu MONGODB_TEST_URI chưa đặt.
package videosvc

import (
	"context"
	"errors"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/santuguddu/YouTube-clone/internal/api/base/service"
	videodto "github.com/santuguddu/YouTube-clone/internal/api/video/dto"
	models "github.com/santuguddu/YouTube-clone/internal/api/video/models"
	"github.com/santuguddu/YouTube-clone/internal/common"
	"github.com/santuguddu/YouTube-clone/internal/global"
)

func TestNewCommentID_UniqueUnderRapidCreation(t *testing.T) {
	const n = 10000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := NewCommentID()
		if id == "" {
			t.Fatal("NewCommentID trả về chuỗi rỗng")
		}
		if seen[id] {
			t.Fatalf("NewCommentID sinh trùng id %q sau %d lần tạo liên tiếp", id, i)
		}
		seen[id] = true
	}
}

func TestFindCommentIndex_ByIdentityNotPosition(t *testing.T) {
	comments := []models.Comment{
		{CommentID: "a", UserID: "u1", Text: "một"},
		{CommentID: "b", UserID: "u2", Text: "hai"},
		{CommentID: "c", UserID: "u3", Text: "ba"},
	}

	if idx := FindCommentIndex(comments, "c"); idx != 2 {
		t.Errorf("FindCommentIndex(c) = %d, muốn 2", idx)
	}

	// Xóa phần tử đầu làm các phần tử sau dồn lên: định vị theo commentId
	// vẫn phải tìm đúng bình luận, không phụ thuộc vị trí cũ
	comments = append(comments[:0], comments[1:]...)
	idx := FindCommentIndex(comments, "c")
	if idx != 1 {
		t.Fatalf("FindCommentIndex(c) sau khi xóa = %d, muốn 1", idx)
	}
	if comments[idx].Text != "ba" {
		t.Errorf("Định vị sai bình luận: text = %q, muốn %q", comments[idx].Text, "ba")
	}

	if idx := FindCommentIndex(comments, "khong-ton-tai"); idx != -1 {
		t.Errorf("FindCommentIndex với id lạ = %d, muốn -1", idx)
	}
}

func TestCreateComment_ValidateBeforeStorage(t *testing.T) {
	// Collection nil: nếu service chạm vào storage trước khi validate thì panic
	svc := &VideoService{BaseServiceMongoImpl: newNilService()}

	if _, err := svc.CreateComment(context.Background(), "v1", &videodto.CommentCreateInput{UserID: "", Text: "hi"}); !errors.Is(err, common.ErrRequiredField) {
		t.Errorf("UserID rỗng phải trả ErrRequiredField, nhận %v", err)
	}
	if _, err := svc.CreateComment(context.Background(), "v1", &videodto.CommentCreateInput{UserID: "alice", Text: ""}); !errors.Is(err, common.ErrRequiredField) {
		t.Errorf("Text rỗng phải trả ErrRequiredField, nhận %v", err)
	}
}

func TestIncrementCounter_RejectsUnknownField(t *testing.T) {
	svc := &VideoService{BaseServiceMongoImpl: newNilService()}

	_, err := svc.IncrementCounter(context.Background(), "v1", "subscribers")
	if err == nil {
		t.Fatal("Counter lạ phải bị từ chối")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("Counter lạ phải trả lỗi validation 400, nhận %v", err)
	}
}

// ============================================
// Các test dưới đây cần MongoDB thật
// ============================================

func setupVideoService(t *testing.T) *VideoService {
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

	collection := client.Database("youtube_clone_test").Collection("videos")
	_ = collection.Drop(ctx)

	global.MongoDB_ColNames.Videos = "videos"
	if _, err := global.RegistryCollections.Register("videos", collection); err != nil {
		t.Fatalf("Không đăng ký được collection: %v", err)
	}

	svc, err := NewVideoService()
	if err != nil {
		t.Fatalf("NewVideoService lỗi: %v", err)
	}
	return svc
}

func mustCreateVideo(t *testing.T, svc *VideoService, videoID string) *models.Video {
	t.Helper()
	video, err := svc.CreateVideo(context.Background(), &videodto.VideoCreateInput{
		VideoID:  videoID,
		Title:    "Video test",
		VideoURL: "/uploads/videos/test.mp4",
		Uploader: "alice",
	})
	if err != nil {
		t.Fatalf("CreateVideo lỗi: %v", err)
	}
	return video
}

func TestVideoCommentLifecycle(t *testing.T) {
	svc := setupVideoService(t)
	ctx := context.Background()
	mustCreateVideo(t, svc, "v1")

	// Video mới: 0 comment, likes = 0
	video, err := svc.FindByVideoId(ctx, "v1")
	if err != nil {
		t.Fatalf("FindByVideoId lỗi: %v", err)
	}
	if len(video.Comments) != 0 || video.Likes != 0 {
		t.Fatalf("Video mới phải có 0 comment và likes=0, nhận %d comment, likes=%d", len(video.Comments), video.Likes)
	}

	// Tạo comment: response phải có commentId và đúng text
	comment, err := svc.CreateComment(ctx, "v1", &videodto.CommentCreateInput{UserID: "alice", Text: "hi"})
	if err != nil {
		t.Fatalf("CreateComment lỗi: %v", err)
	}
	if comment.CommentID == "" || comment.Text != "hi" || comment.UserID != "alice" {
		t.Fatalf("Comment trả về sai: %+v", comment)
	}

	// Tăng like hai lần -> likes == 2, response chỉ là giá trị mới
	if v, err := svc.IncrementCounter(ctx, "v1", CounterLikes); err != nil || v != 1 {
		t.Fatalf("Like lần 1 = %d (err %v), muốn 1", v, err)
	}
	if v, err := svc.IncrementCounter(ctx, "v1", CounterLikes); err != nil || v != 2 {
		t.Fatalf("Like lần 2 = %d (err %v), muốn 2", v, err)
	}

	// Sửa text -> chỉ text thay đổi, userId/timestamp/commentId giữ nguyên
	updated, err := svc.UpdateComment(ctx, "v1", comment.CommentID, &videodto.CommentUpdateInput{Text: "hello"})
	if err != nil {
		t.Fatalf("UpdateComment lỗi: %v", err)
	}
	if updated.Text != "hello" || updated.UserID != comment.UserID || updated.CommentID != comment.CommentID || updated.Timestamp != comment.Timestamp {
		t.Fatalf("UpdateComment chỉ được đổi text: trước %+v, sau %+v", comment, updated)
	}

	video, _ = svc.FindByVideoId(ctx, "v1")
	if len(video.Comments) != 1 || video.Comments[0].Text != "hello" {
		t.Fatalf("Video sau update phải có đúng 1 comment text 'hello', nhận %+v", video.Comments)
	}

	// Xóa comment -> danh sách rỗng
	if err := svc.DeleteComment(ctx, "v1", comment.CommentID); err != nil {
		t.Fatalf("DeleteComment lỗi: %v", err)
	}
	video, _ = svc.FindByVideoId(ctx, "v1")
	if len(video.Comments) != 0 {
		t.Fatalf("Sau khi xóa comment danh sách phải rỗng, nhận %d", len(video.Comments))
	}
}

func TestIncrementCounter_NotFoundLeavesCountersUntouched(t *testing.T) {
	svc := setupVideoService(t)
	ctx := context.Background()
	mustCreateVideo(t, svc, "v1")

	if _, err := svc.IncrementCounter(ctx, "khong-ton-tai", CounterViews); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Increment trên video không tồn tại phải trả ErrNotFound, nhận %v", err)
	}

	video, _ := svc.FindByVideoId(ctx, "v1")
	if video.Views != 0 || video.Likes != 0 || video.Dislikes != 0 {
		t.Fatalf("Counter của video khác không được thay đổi: %+v", video)
	}
}

func TestUpdateComment_NotFoundLeavesSequenceUnchanged(t *testing.T) {
	svc := setupVideoService(t)
	ctx := context.Background()
	mustCreateVideo(t, svc, "v1")

	c1, _ := svc.CreateComment(ctx, "v1", &videodto.CommentCreateInput{UserID: "alice", Text: "một"})

	if _, err := svc.UpdateComment(ctx, "v1", "khong-ton-tai", &videodto.CommentUpdateInput{Text: "x"}); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Update commentId lạ phải trả ErrNotFound, nhận %v", err)
	}
	if err := svc.DeleteComment(ctx, "v1", "khong-ton-tai"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Delete commentId lạ phải trả ErrNotFound, nhận %v", err)
	}

	video, _ := svc.FindByVideoId(ctx, "v1")
	if len(video.Comments) != 1 || video.Comments[0].Text != "một" || video.Comments[0].CommentID != c1.CommentID {
		t.Fatalf("Danh sách comment không được thay đổi: %+v", video.Comments)
	}
}

func TestDeleteComment_PreservesOrderOfRemaining(t *testing.T) {
	svc := setupVideoService(t)
	ctx := context.Background()
	mustCreateVideo(t, svc, "v1")

	c1, _ := svc.CreateComment(ctx, "v1", &videodto.CommentCreateInput{UserID: "u1", Text: "một"})
	c2, _ := svc.CreateComment(ctx, "v1", &videodto.CommentCreateInput{UserID: "u2", Text: "hai"})
	c3, _ := svc.CreateComment(ctx, "v1", &videodto.CommentCreateInput{UserID: "u3", Text: "ba"})

	if err := svc.DeleteComment(ctx, "v1", c2.CommentID); err != nil {
		t.Fatalf("DeleteComment lỗi: %v", err)
	}

	video, _ := svc.FindByVideoId(ctx, "v1")
	if len(video.Comments) != 2 {
		t.Fatalf("Phải còn đúng 2 comment, nhận %d", len(video.Comments))
	}
	if video.Comments[0].CommentID != c1.CommentID || video.Comments[1].CommentID != c3.CommentID {
		t.Fatalf("Thứ tự comment còn lại phải được giữ nguyên: %+v", video.Comments)
	}
}

// TestCommentWrites_LastWriterWins ghi lại hạn chế đã biết: hai request
// song song cùng đọc một bản comments rồi cùng ghi đè cả mảng thì bản
// ghi sau thắng, thay đổi của bản ghi trước bị mất. Không có khóa hay
// version token nào ngăn điều này.
func TestCommentWrites_LastWriterWins(t *testing.T) {
	svc := setupVideoService(t)
	ctx := context.Background()
	mustCreateVideo(t, svc, "v1")

	// Hai "request" cùng đọc trạng thái 0 comment
	copyA, _ := svc.FindByVideoId(ctx, "v1")
	copyB, _ := svc.FindByVideoId(ctx, "v1")

	commentA := models.Comment{CommentID: NewCommentID(), UserID: "a", Text: "từ A"}
	commentB := models.Comment{CommentID: NewCommentID(), UserID: "b", Text: "từ B"}

	if err := svc.persistComments(ctx, "v1", append(copyA.Comments, commentA)); err != nil {
		t.Fatalf("persistComments A lỗi: %v", err)
	}
	if err := svc.persistComments(ctx, "v1", append(copyB.Comments, commentB)); err != nil {
		t.Fatalf("persistComments B lỗi: %v", err)
	}

	video, _ := svc.FindByVideoId(ctx, "v1")
	if len(video.Comments) != 1 {
		t.Fatalf("Last-writer-wins: phải còn đúng 1 comment, nhận %d", len(video.Comments))
	}
	if video.Comments[0].CommentID != commentB.CommentID {
		t.Fatal("Bản ghi sau (B) phải thắng, bản ghi trước (A) bị ghi đè")
	}
}

// TestIncrementCounter_NoUpperBound ghi lại một đơn giản hóa đã biết:
// counter không có trần, không giảm, không chống đếm trùng theo người
// dùng - một caller tăng bao nhiêu lần cũng được.
func TestIncrementCounter_NoUpperBound(t *testing.T) {
	svc := setupVideoService(t)
	ctx := context.Background()
	mustCreateVideo(t, svc, "v1")

	const n = 5
	var last int64
	for i := 0; i < n; i++ {
		v, err := svc.IncrementCounter(ctx, "v1", CounterDislikes)
		if err != nil {
			t.Fatalf("IncrementCounter lần %d lỗi: %v", i+1, err)
		}
		last = v
	}
	if last != n {
		t.Fatalf("Cùng một caller tăng %d lần phải ra %d, nhận %d", n, n, last)
	}
}

func newNilService() *basesvc.BaseServiceMongoImpl[models.Video] {
	return basesvc.NewBaseServiceMongo[models.Video](nil)
}
