// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/santuguddu/YouTube-clone/internal/api/auth/dto"
	models "github.com/santuguddu/YouTube-clone/internal/api/auth/models"
	basesvc "github.com/santuguddu/YouTube-clone/internal/api/base/service"
	"github.com/santuguddu/YouTube-clone/internal/common"
	"github.com/santuguddu/YouTube-clone/internal/global"
	"github.com/santuguddu/YouTube-clone/internal/utility"
)

// DefaultAvatarURL ảnh đại diện mặc định khi người dùng chưa upload.
const DefaultAvatarURL = "/uploads/default-avatar.png"

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới với email và mật khẩu.
// Mật khẩu được hash bằng bcrypt kèm salt riêng cho từng user.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã tồn tại chưa
	emailFilter := bson.M{"email": input.Email}
	if _, err := s.BaseServiceMongoImpl.FindOne(ctx, emailFilter, nil); err == nil {
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			fmt.Sprintf("Email '%s' đã được sử dụng", input.Email),
			common.StatusConflict,
			nil,
		)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	salt, err := utility.GenerateSalt()
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo salt", common.StatusInternalServerError, err)
	}

	hashed, err := utility.HashPassword(input.Password, salt)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashed,
		Salt:      salt,
		AvatarURL: DefaultAvatarURL,
		Tokens:    []models.Token{},
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(
				common.ErrCodeAuthCredentials,
				fmt.Sprintf("Email '%s' đã được sử dụng", input.Email),
				common.StatusConflict,
				err,
			)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Register: Đăng ký thành công")
	return &created, nil
}

// Login đăng nhập bằng email và mật khẩu, trả về user kèm token mới.
// Mỗi thiết bị (hwid) giữ một token riêng trong mảng tokens; field token
// luôn là token mới nhất.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	emailFilter := bson.M{"email": input.Email}
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, emailFilter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utility.ComparePassword(user.Password, input.Password, user.Salt) {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		user.ID.Hex(),
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
		global.MongoDB_ServerConfig.JwtExpireHours,
	)
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	var idTokenExist int = -1
	for i, _token := range user.Tokens {
		if _token.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("Login: Đăng nhập thành công")
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ.
// Đổi mật khẩu thành công sẽ thu hồi tất cả token hiện có.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if !utility.ComparePassword(user.Password, input.OldPassword, user.Salt) {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không đúng", common.StatusUnauthorized, nil)
	}

	salt, err := utility.GenerateSalt()
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể tạo salt", common.StatusInternalServerError, err)
	}
	hashed, err := utility.HashPassword(input.NewPassword, salt)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": hashed,
			"salt":     salt,
			"token":    "",
			"tokens":   []models.Token{},
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}
