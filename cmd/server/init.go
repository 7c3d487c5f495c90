package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/santuguddu/YouTube-clone/config"
	authmodels "github.com/santuguddu/YouTube-clone/internal/api/auth/models"
	channelmodels "github.com/santuguddu/YouTube-clone/internal/api/channel/models"
	videomodels "github.com/santuguddu/YouTube-clone/internal/api/video/models"
	"github.com/santuguddu/YouTube-clone/internal/database"
	"github.com/santuguddu/YouTube-clone/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Channels = "channels"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký các custom validators: no_xss, strong_password)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database và các index
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo index cho các collection từ struct tag `index`
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	// Index unique trên videoId/channelId là bắt buộc, thiếu thì không được phép chạy tiếp
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{}); err != nil {
		logrus.Fatalf("Failed to create indexes for %s: %v", global.MongoDB_ColNames.Users, err)
	}
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Videos), videomodels.Video{}); err != nil {
		logrus.Fatalf("Failed to create indexes for %s: %v", global.MongoDB_ColNames.Videos, err)
	}
	if err := database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Channels), channelmodels.Channel{}); err != nil {
		logrus.Fatalf("Failed to create indexes for %s: %v", global.MongoDB_ColNames.Channels, err)
	}
	logrus.Info("Ensured collection indexes")
}
