package utility

import (
	"errors"
	"testing"

	"github.com/santuguddu/YouTube-clone/internal/common"
)

func TestCreateAndParseToken(t *testing.T) {
	result, err := CreateToken("secret", "user-1", "1a2b3c", "42", 1)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	signed := result["token"]
	if signed == "" {
		t.Fatal("CreateToken phải trả về token trong map")
	}

	claims, err := ParseToken("secret", signed)
	if err != nil {
		t.Fatalf("ParseToken lỗi: %v", err)
	}
	if claims.UserID != "user-1" || claims.Time != "1a2b3c" || claims.RandomNumber != "42" {
		t.Errorf("Claims sai: %+v", claims)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	result, _ := CreateToken("secret", "user-1", "1a2b3c", "42", 1)

	if _, err := ParseToken("khac-secret", result["token"]); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Token ký bằng secret khác phải trả ErrTokenInvalid, nhận %v", err)
	}
	if _, err := ParseToken("secret", "khong-phai-jwt"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Chuỗi không phải JWT phải trả ErrTokenInvalid, nhận %v", err)
	}
}
