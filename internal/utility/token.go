package utility

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/santuguddu/YouTube-clone/internal/common"
)

// JwtClaims chứa data được mã hóa trong JWT token.
type JwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token (HS256) cho user với thời gian sống expireHours giờ.
// Trả về map chứa token đã ký.
func CreateToken(secret string, userID string, timeHex string, randomNumber string, expireHours int) (map[string]string, error) {
	if expireHours <= 0 {
		expireHours = 1
	}

	claims := JwtClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(expireHours) * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã và xác thực JWT token, trả về claims nếu hợp lệ.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*JwtClaims)
	if !ok || !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
