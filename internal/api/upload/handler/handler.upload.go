// Package uploadhdl xử lý upload file: video, ảnh đại diện, ảnh bìa.
// File được lưu xuống đĩa dưới UploadDir và phục vụ tĩnh qua /uploads.
package uploadhdl

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/santuguddu/YouTube-clone/internal/api/base/handler"
	"github.com/santuguddu/YouTube-clone/internal/common"
	"github.com/santuguddu/YouTube-clone/internal/global"
	"github.com/santuguddu/YouTube-clone/internal/logger"
	"github.com/santuguddu/YouTube-clone/internal/utility"
)

// Giới hạn upload.
const (
	MaxVideoSize = 100 << 20 // 100MB
	MaxImageSize = 5 << 20   // 5MB
)

var (
	allowedVideoExts = []string{".mp4", ".mkv", ".avi", ".webm"}
	allowedImageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)

// UploadHandler xử lý các request upload file
type UploadHandler struct{}

// NewUploadHandler tạo instance mới của UploadHandler
func NewUploadHandler() (*UploadHandler, error) {
	return &UploadHandler{}, nil
}

// saveFile kiểm tra kích thước, phần mở rộng rồi lưu file với tên sinh
// mới (ObjectID hex) để hai file trùng tên không ghi đè nhau.
// Trả về đường dẫn công khai dạng /uploads/<subdir>/<name>.
func saveFile(c fiber.Ctx, file *multipart.FileHeader, subdir string, maxSize int64, allowedExts []string) (string, error) {
	if file.Size > maxSize {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("File vượt quá kích thước cho phép (%dMB)", maxSize>>20),
			common.StatusBadRequest,
			nil,
		)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !utility.Contains(allowedExts, ext) {
		return "", common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Định dạng file '%s' không được hỗ trợ", ext),
			common.StatusBadRequest,
			nil,
		)
	}

	dir := filepath.Join(global.MongoDB_ServerConfig.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không tạo được thư mục upload", common.StatusInternalServerError, err.Error())
	}

	name := primitive.NewObjectID().Hex() + ext
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không lưu được file upload", common.StatusInternalServerError, err.Error())
	}

	return "/uploads/" + subdir + "/" + name, nil
}

// handleSingle đọc file từ form field "file" và lưu theo cấu hình.
func (h *UploadHandler) handleSingle(c fiber.Ctx, subdir string, maxSize int64, allowedExts []string) error {
	file, err := c.FormFile("file")
	if err != nil {
		basehdl.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}

	url, err := saveFile(c, file, subdir, maxSize, allowedExts)
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAction("upload", subdir, url, c, map[string]interface{}{"filename": file.Filename, "size": file.Size})
	basehdl.HandleResponse(c, fiber.Map{"url": url}, nil)
	return nil
}

// HandleUploadVideo upload một file video (tối đa 100MB)
func (h *UploadHandler) HandleUploadVideo(c fiber.Ctx) error {
	return h.handleSingle(c, "videos", MaxVideoSize, allowedVideoExts)
}

// HandleUploadProfilePicture upload ảnh đại diện
func (h *UploadHandler) HandleUploadProfilePicture(c fiber.Ctx) error {
	return h.handleSingle(c, "profiles", MaxImageSize, allowedImageExts)
}

// HandleUploadBanner upload ảnh bìa kênh
func (h *UploadHandler) HandleUploadBanner(c fiber.Ctx) error {
	return h.handleSingle(c, "banners", MaxImageSize, allowedImageExts)
}

// HandleUploadMultiple upload nhiều ảnh một lần qua form field "files"
func (h *UploadHandler) HandleUploadMultiple(c fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
		return nil
	}

	files := form.File["files"]
	if len(files) == 0 {
		basehdl.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := saveFile(c, file, "images", MaxImageSize, allowedImageExts)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		urls = append(urls, url)
	}

	logger.LogAction("upload_multiple", "images", "", c, map[string]interface{}{"count": len(urls)})
	basehdl.HandleResponse(c, fiber.Map{"urls": urls}, nil)
	return nil
}
