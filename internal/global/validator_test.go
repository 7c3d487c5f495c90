package global

import "testing"

type commentPayload struct {
	UserID string `validate:"required"`
	Text   string `validate:"required,no_xss"`
}

type passwordPayload struct {
	Password string `validate:"required,strong_password"`
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	ok := []string{
		"video hay quá",
		"Comment bình thường với <b>bold</b>",
		"",
	}
	for _, text := range ok {
		if err := Validate.Struct(commentPayload{UserID: "u1", Text: text}); text != "" && err != nil {
			t.Errorf("Text %q phải hợp lệ, nhận lỗi %v", text, err)
		}
	}

	bad := []string{
		"<script>alert(1)</script>",
		"click javascript:void(0)",
		"<img onerror=hack()>",
		"<iframe src=x>",
	}
	for _, text := range bad {
		if err := Validate.Struct(commentPayload{UserID: "u1", Text: text}); err == nil {
			t.Errorf("Text %q chứa XSS phải bị từ chối", text)
		}
	}
}

func TestValidateRequiredFields(t *testing.T) {
	InitValidator()

	if err := Validate.Struct(commentPayload{UserID: "", Text: "hi"}); err == nil {
		t.Error("UserID rỗng phải bị từ chối")
	}
	if err := Validate.Struct(commentPayload{UserID: "alice", Text: ""}); err == nil {
		t.Error("Text rỗng phải bị từ chối")
	}
	if err := Validate.Struct(commentPayload{UserID: "alice", Text: "hi"}); err != nil {
		t.Errorf("Payload hợp lệ không được báo lỗi: %v", err)
	}
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	bad := []string{"short1A", "alllowercase", "12345678"}
	for _, pw := range bad {
		if err := Validate.Struct(passwordPayload{Password: pw}); err == nil {
			t.Errorf("Mật khẩu yếu %q phải bị từ chối", pw)
		}
	}

	good := []string{"Secret123", "Abc@1234", "xYz9!long"}
	for _, pw := range good {
		if err := Validate.Struct(passwordPayload{Password: pw}); err != nil {
			t.Errorf("Mật khẩu %q phải hợp lệ, nhận lỗi %v", pw, err)
		}
	}
}
