// Package inventoryhdl - handler quản lý kho bình gas.
package inventoryhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "gas_manager/internal/api/base/handler"
	inventorydto "gas_manager/internal/api/inventory/dto"
	models "gas_manager/internal/api/inventory/models"
	inventorysvc "gas_manager/internal/api/inventory/service"
	"gas_manager/internal/common"
	"gas_manager/internal/logger"
	"gas_manager/internal/utility"
)

// CylinderHandler xử lý các request quản lý bình gas
type CylinderHandler struct {
	basehdl.BaseHandler
	cylinderService *inventorysvc.CylinderService
}

// NewCylinderHandler tạo instance mới của CylinderHandler
func NewCylinderHandler() *CylinderHandler {
	h := &CylinderHandler{}
	cylinderService, err := inventorysvc.NewCylinderService()
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("Cylinder service chưa sẵn sàng, route inventory sẽ trả về lỗi store")
		return h
	}
	h.cylinderService = cylinderService
	return h
}

// HandleFind trả về toàn bộ bình gas dưới dạng mảng, identity bị loại bỏ
// khỏi từng phần tử.
// @Router /inventory [get]
func (h *CylinderHandler) HandleFind(c fiber.Ctx) error {
	if h.cylinderService == nil {
		return h.HandleError(c, common.ErrStoreUnavailable)
	}

	cylinders, err := h.cylinderService.ListCylinders(c.Context())
	if err != nil {
		return h.HandleError(c, err)
	}

	docs := make([]map[string]interface{}, 0, len(cylinders))
	for _, cylinder := range cylinders {
		doc, err := basehdl.DocumentWithoutID(cylinder)
		if err != nil {
			return h.HandleError(c, err)
		}
		docs = append(docs, doc)
	}

	return basehdl.JSONResponse(c, common.StatusOK, docs)
}

// HandleInsert nhập kho một bình gas mới, trả về identity được cấp.
// Barcode trùng trả về 400 Barcode already exists.
// @Router /inventory [post]
func (h *CylinderHandler) HandleInsert(c fiber.Ctx) error {
	if h.cylinderService == nil {
		return h.HandleError(c, common.ErrStoreUnavailable)
	}

	var input inventorydto.CylinderCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
	}
	if err := h.ValidateInput(&input); err != nil {
		return h.HandleError(c, err)
	}

	var cylinder models.Cylinder
	if err := utility.ConvertStruct(input, &cylinder); err != nil {
		return h.HandleError(c, common.ErrInvalidFormat)
	}

	created, err := h.cylinderService.CreateCylinder(c.Context(), cylinder)
	if err != nil {
		return h.HandleError(c, err)
	}

	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"id": created.ID.Hex(),
	})
}
