package utility

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt lỗi: %v", err)
	}
	if salt == "" {
		t.Fatal("GenerateSalt trả về salt rỗng")
	}

	hashed, err := HashPassword("Secret@123", salt)
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hashed == "Secret@123" {
		t.Error("HashPassword không được trả về plaintext")
	}

	if !ComparePassword(hashed, "Secret@123", salt) {
		t.Error("ComparePassword phải khớp với đúng mật khẩu và salt")
	}
	if ComparePassword(hashed, "Secret@124", salt) {
		t.Error("ComparePassword không được khớp với sai mật khẩu")
	}
	if ComparePassword(hashed, "Secret@123", "wrong-salt") {
		t.Error("ComparePassword không được khớp với sai salt")
	}
}

func TestGenerateSaltUnique(t *testing.T) {
	a, _ := GenerateSalt()
	b, _ := GenerateSalt()
	if a == b {
		t.Error("Hai salt sinh liên tiếp không được trùng nhau")
	}
}
