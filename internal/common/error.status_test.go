package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestSentinelErrors(t *testing.T) {
	var e *Error
	if !errors.As(ErrInvalidCredentials, &e) {
		t.Fatal("ErrInvalidCredentials phải là *Error")
	}
	if e.Message != "Invalid credentials" {
		t.Errorf("Message của ErrInvalidCredentials là %q, muốn %q", e.Message, "Invalid credentials")
	}
	if e.StatusCode != StatusUnauthorized {
		t.Errorf("StatusCode của ErrInvalidCredentials là %d, muốn 401", e.StatusCode)
	}

	if !errors.As(ErrStoreUnavailable, &e) {
		t.Fatal("ErrStoreUnavailable phải là *Error")
	}
	if e.Message != "Database not available" {
		t.Errorf("Message của ErrStoreUnavailable là %q, muốn %q", e.Message, "Database not available")
	}
	if e.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode của ErrStoreUnavailable là %d, muốn 500", e.StatusCode)
	}
}

func TestErrorIs(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, "chi tiết")
	if !errors.Is(err, ErrNotFound) {
		t.Error("Lỗi cùng code và message phải khớp qua errors.Is")
	}
	if errors.Is(err, ErrDuplicate) {
		t.Error("Lỗi khác message không được khớp qua errors.Is")
	}
	if errors.Is(err, nil) {
		t.Error("errors.Is với nil phải trả về false")
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) trả về %v, muốn nil", got)
	}
}

func TestConvertMongoError_NotFoundPassthrough(t *testing.T) {
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, nhận được %v", got)
	}
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	if got := ConvertMongoError(dupErr); !errors.Is(got, ErrMongoDuplicate) {
		t.Errorf("Lỗi duplicate key phải thành ErrMongoDuplicate, nhận được %v", got)
	}
}

func TestConvertMongoError_CommandErrorRanges(t *testing.T) {
	cases := []struct {
		code int32
		want error
	}{
		{150, ErrMongoConnection},
		{250, ErrMongoAuth},
		{350, ErrMongoQuery},
		{450, ErrMongoWrite},
		{550, ErrMongoSystem},
	}
	for _, c := range cases {
		got := ConvertMongoError(mongo.CommandError{Code: c.code, Message: "lỗi giả lập"})
		if !errors.Is(got, c.want) {
			t.Errorf("CommandError code %d chuyển thành %v, muốn %v", c.code, got, c.want)
		}
	}
}

func TestConvertMongoError_UnknownWrapped(t *testing.T) {
	src := fmt.Errorf("lỗi không xác định")
	got := ConvertMongoError(src)

	var e *Error
	if !errors.As(got, &e) {
		t.Fatal("Lỗi không xác định phải được bọc thành *Error")
	}
	if e.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode là %d, muốn 500", e.StatusCode)
	}
	if e.Details != src {
		t.Error("Details phải giữ lỗi gốc")
	}
}
