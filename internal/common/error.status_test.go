package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, muốn nil", got)
	}

	if got := ConvertMongoError(mongo.ErrNoDocuments); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNoDocuments phải map sang ErrNotFound, nhận %v", got)
	}

	// ErrNotFound đã convert rồi thì giữ nguyên, không bọc thêm lớp nữa
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, nhận %v", got)
	}

	cmdErr := mongo.CommandError{Code: 150, Message: "connection reset"}
	if got := ConvertMongoError(cmdErr); !errors.Is(got, ErrMongoConnection) {
		t.Errorf("CommandError code 150 phải map sang ErrMongoConnection, nhận %v", got)
	}
}

func TestNewErrorFields(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "Thiếu text", StatusBadRequest, map[string]string{"field": "text"})

	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatal("NewError phải trả về *Error")
	}
	if customErr.Code.Code != ErrCodeValidationInput.Code {
		t.Errorf("Code = %q, muốn %q", customErr.Code.Code, ErrCodeValidationInput.Code)
	}
	if customErr.StatusCode != StatusBadRequest {
		t.Errorf("StatusCode = %d, muốn %d", customErr.StatusCode, StatusBadRequest)
	}
	if customErr.Error() != "Thiếu text" {
		t.Errorf("Error() = %q, muốn %q", customErr.Error(), "Thiếu text")
	}
}

func TestErrorStatusCodes(t *testing.T) {
	// Validation trả 400, not-found trả 404, duplicate trả 409
	cases := []struct {
		err  error
		want int
	}{
		{ErrRequiredField, StatusBadRequest},
		{ErrInvalidInput, StatusBadRequest},
		{ErrNotFound, StatusNotFound},
		{ErrDuplicate, StatusConflict},
		{ErrMongoDuplicate, StatusConflict},
		{ErrInvalidCredentials, StatusUnauthorized},
	}
	for _, c := range cases {
		var customErr *Error
		if !errors.As(c.err, &customErr) {
			t.Fatalf("%v không phải *Error", c.err)
		}
		if customErr.StatusCode != c.want {
			t.Errorf("%q có StatusCode %d, muốn %d", customErr.Message, customErr.StatusCode, c.want)
		}
	}
}
