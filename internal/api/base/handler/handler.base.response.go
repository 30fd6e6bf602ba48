package basehdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"gas_manager/internal/common"
	"gas_manager/internal/logger"
)

// JSONResponse ghi response JSON với charset utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleError ghi response lỗi theo format chuẩn {code, message, details, status}.
// Lỗi *common.Error giữ nguyên status code và mã lỗi; lỗi khác trả về 500.
func (h *BaseHandler) HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		body := fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"status":  "error",
		}
		if customErr.Details != nil {
			body["details"] = customErr.Details
		}
		return JSONResponse(c, customErr.StatusCode, body)
	}

	logger.WithRequest(c).WithError(err).Error("Unhandled error")
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeDatabase.Code,
		"message": common.MsgDatabaseError,
		"status":  "error",
	})
}

// HandleResponse ghi response thành công theo format chuẩn, hoặc chuyển cho HandleError
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return h.HandleError(c, err)
	}
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}
