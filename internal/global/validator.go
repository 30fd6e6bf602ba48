package global

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo validator dùng chung.
// Các ràng buộc entity (required, gt, oneof, email, ...) khai báo bằng struct tag
// trên DTO. Tên field trong lỗi validation lấy theo tag json để khớp với tên
// field client gửi lên (capacity_kg thay vì CapacityKg).
func InitValidator() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}
