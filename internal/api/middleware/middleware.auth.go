package middleware

import (
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "github.com/santuguddu/YouTube-clone/internal/api/auth/models"
	basesvc "github.com/santuguddu/YouTube-clone/internal/api/base/service"
	"github.com/santuguddu/YouTube-clone/internal/common"
	"github.com/santuguddu/YouTube-clone/internal/global"
	"github.com/santuguddu/YouTube-clone/internal/logger"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *basesvc.BaseServiceMongoImpl[models.User]
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, common.ErrNotFound
	}

	return &AuthManager{
		UserCRUD: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Token được resolve bằng cách tra DB: user nào đang giữ token này.
func AuthMiddleware() fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Tìm user có token
		// Ưu tiên query field "token" (token mới nhất) trước vì nó được cập nhật mỗi lần login
		// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid)
		var user models.User
		var err error
		var query bson.M

		// Cách 1: Query field "token" (token mới nhất) - ĐÂY LÀ CÁCH CHÍNH
		query = bson.M{"token": token}
		user, err = authManager.UserCRUD.FindOne(context.Background(), query, nil)

		if err != nil {

			// Cách 2: Query trong array "tokens" với dot notation
			query = bson.M{"tokens.jwtToken": token}
			user, err = authManager.UserCRUD.FindOne(context.Background(), query, nil)

			if err != nil {
				// Cách 3: Query với $elemMatch
				query = bson.M{
					"tokens": bson.M{
						"$elemMatch": bson.M{
							"jwtToken": token,
						},
					},
				}
				user, err = authManager.UserCRUD.FindOne(context.Background(), query, nil)
			}
		}

		if err != nil {
			// Chỉ log khi không tìm thấy token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("username", user.Name)
		c.Locals("user", user)

		return c.Next()
	}
}
