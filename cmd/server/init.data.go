package main

import (
	"os"
	"path/filepath"

	"github.com/santuguddu/YouTube-clone/internal/global"
	"github.com/santuguddu/YouTube-clone/internal/logger"
)

// InitDefaultData chuẩn bị thư mục upload để server sẵn sàng nhận file
// và phục vụ tĩnh ngay lần chạy đầu tiên.
func InitDefaultData() {
	log := logger.GetAppLogger()

	uploadDir := global.MongoDB_ServerConfig.UploadDir
	for _, subdir := range []string{"", "videos", "profiles", "banners", "images"} {
		dir := filepath.Join(uploadDir, subdir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create upload directory %s: %v", dir, err)
		}
	}

	log.WithFields(map[string]interface{}{"upload_dir": uploadDir}).Info("Upload directories ready")
}
