package uploadhdl

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/santuguddu/YouTube-clone/config"
	"github.com/santuguddu/YouTube-clone/internal/common"
	"github.com/santuguddu/YouTube-clone/internal/global"
)

func TestSaveFile_RejectsOversizedVideo(t *testing.T) {
	file := &multipart.FileHeader{Filename: "movie.mp4", Size: MaxVideoSize + 1}

	_, err := saveFile(nil, file, "videos", MaxVideoSize, allowedVideoExts)
	assert.Error(t, err, "File quá 100MB phải bị từ chối")

	var customErr *common.Error
	assert.True(t, errors.As(err, &customErr), "Lỗi phải là *common.Error")
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode, "Lỗi kích thước phải trả 400")
}

func TestSaveFile_RejectsUnsupportedExtension(t *testing.T) {
	cases := []string{"virus.exe", "movie.mov", "script.sh", "noext"}
	for _, name := range cases {
		file := &multipart.FileHeader{Filename: name, Size: 1024}
		_, err := saveFile(nil, file, "videos", MaxVideoSize, allowedVideoExts)
		assert.Errorf(t, err, "File %q không thuộc định dạng cho phép phải bị từ chối", name)
	}
}

func TestSaveFile_ExtensionCheckIsCaseInsensitive(t *testing.T) {
	// Phần mở rộng viết hoa vẫn phải qua được bước kiểm tra định dạng.
	// Trỏ UploadDir vào một file thường để saveFile dừng ở bước tạo thư
	// mục: quan trọng là không fail ở bước kiểm tra định dạng.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("Không tạo được file chặn: %v", err)
	}
	global.MongoDB_ServerConfig = &config.Configuration{UploadDir: blocker}

	file := &multipart.FileHeader{Filename: "MOVIE.MP4", Size: 1024}
	_, err := saveFile(nil, file, "videos", MaxVideoSize, allowedVideoExts)
	assert.Error(t, err)

	var customErr *common.Error
	assert.True(t, errors.As(err, &customErr), "Lỗi phải là *common.Error")
	assert.NotEqual(t, common.ErrCodeValidationFormat.Code, customErr.Code.Code,
		"MOVIE.MP4 không được bị từ chối vì định dạng")
	assert.Equal(t, common.ErrCodeInternalServer.Code, customErr.Code.Code,
		"Lỗi phải nằm ở bước tạo thư mục upload")
}
