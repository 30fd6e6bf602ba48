// Package basehdl cung cấp các tiện ích chung cho resource handler:
// parse request body, validate input theo struct tag và chuẩn hóa response.
package basehdl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"gas_manager/internal/common"
	"gas_manager/internal/global"
)

// BaseHandler chứa các hàm dùng chung cho mọi resource handler.
// Domain handler embed struct này.
type BaseHandler struct{}

// ParseRequestBody parse request body JSON vào input.
// Dùng json.Decoder với UseNumber để không mất độ chính xác số lớn.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return fmt.Errorf("request body rỗng")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return err
	}
	return nil
}

// ValidateInput validate input theo struct tag validate.
// Trả về lỗi VAL_001 với details liệt kê TẤT CẢ field vi phạm (không dừng ở field đầu tiên).
func (h *BaseHandler) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		global.InitValidator()
	}

	err := global.Validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	details := make([]map[string]interface{}, 0, len(validationErrors))
	for _, fe := range validationErrors {
		detail := map[string]interface{}{
			"field":   fe.Field(),
			"rule":    fe.Tag(),
			"message": validationMessage(fe),
		}
		if fe.Param() != "" {
			detail["param"] = fe.Param()
		}
		details = append(details, detail)
	}

	return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, details)
}

// validationMessage sinh message dễ đọc cho một lỗi validation
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %s là bắt buộc", fe.Field())
	case "gt":
		return fmt.Sprintf("Field %s phải lớn hơn %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("Field %s phải là một trong: %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("Field %s phải là email hợp lệ", fe.Field())
	case "min":
		return fmt.Sprintf("Field %s phải có tối thiểu %s phần tử", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Field %s không thỏa rule %s", fe.Field(), fe.Tag())
	}
}
