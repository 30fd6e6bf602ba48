// Package authhdl - handler xác thực người dùng.
package authhdl

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authdto "gas_manager/internal/api/auth/dto"
	authsvc "gas_manager/internal/api/auth/service"
	basehdl "gas_manager/internal/api/base/handler"
	"gas_manager/internal/common"
	"gas_manager/internal/logger"
)

// UserHandler xử lý các request xác thực người dùng
type UserHandler struct {
	basehdl.BaseHandler
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler.
// Khi store chưa kết nối, handler vẫn được tạo và mọi route trả về lỗi
// Database not available cho tới khi process khởi động lại.
func NewUserHandler() *UserHandler {
	h := &UserHandler{}
	userService, err := authsvc.NewUserService()
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("User service chưa sẵn sàng, route auth sẽ trả về lỗi store")
		return h
	}
	h.userService = userService
	return h
}

// HandleLogin xử lý đăng nhập demo: so khớp chính xác email + password.
// Thành công trả về {token, user}, token là identity của user dạng chuỗi
// và không được kiểm tra lại ở bất kỳ endpoint nào.
// @Router /auth/login [post]
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	if h.userService == nil {
		return h.HandleError(c, common.ErrStoreUnavailable)
	}

	var input authdto.UserLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
	}
	if err := h.ValidateInput(&input); err != nil {
		return h.HandleError(c, err)
	}

	user, err := h.userService.Login(c.Context(), &input)
	if err != nil {
		logger.GetAuditLogger().WithField("email", input.Email).Warn("Đăng nhập thất bại")
		return h.HandleError(c, err)
	}

	userDoc, err := basehdl.DocumentWithStringID(user)
	if err != nil {
		return h.HandleError(c, err)
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"email":   input.Email,
		"user_id": user.ID.Hex(),
	}).Info("Đăng nhập thành công")

	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"token": user.ID.Hex(),
		"user":  userDoc,
	})
}
