// Package deliveryhdl - handler nhiệm vụ giao hàng.
package deliveryhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "gas_manager/internal/api/base/handler"
	deliverydto "gas_manager/internal/api/delivery/dto"
	models "gas_manager/internal/api/delivery/models"
	deliverysvc "gas_manager/internal/api/delivery/service"
	"gas_manager/internal/common"
	"gas_manager/internal/logger"
	"gas_manager/internal/utility"
)

// DeliveryTaskHandler xử lý các request nhiệm vụ giao hàng
type DeliveryTaskHandler struct {
	basehdl.BaseHandler
	taskService *deliverysvc.DeliveryTaskService
}

// NewDeliveryTaskHandler tạo instance mới của DeliveryTaskHandler
func NewDeliveryTaskHandler() *DeliveryTaskHandler {
	h := &DeliveryTaskHandler{}
	taskService, err := deliverysvc.NewDeliveryTaskService()
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("DeliveryTask service chưa sẵn sàng, route deliveries sẽ trả về lỗi store")
		return h
	}
	h.taskService = taskService
	return h
}

// HandleFind trả về nhiệm vụ giao hàng, lọc exact match theo query param status nếu có
// @Router /deliveries [get]
func (h *DeliveryTaskHandler) HandleFind(c fiber.Ctx) error {
	if h.taskService == nil {
		return h.HandleError(c, common.ErrStoreUnavailable)
	}

	tasks, err := h.taskService.ListTasks(c.Context(), c.Query("status"))
	if err != nil {
		return h.HandleError(c, err)
	}

	docs := make([]map[string]interface{}, 0, len(tasks))
	for _, task := range tasks {
		doc, err := basehdl.DocumentWithStringID(task)
		if err != nil {
			return h.HandleError(c, err)
		}
		docs = append(docs, doc)
	}

	return basehdl.JSONResponse(c, common.StatusOK, docs)
}

// HandleInsert tạo mới nhiệm vụ giao hàng, trả về identity được cấp
// @Router /deliveries [post]
func (h *DeliveryTaskHandler) HandleInsert(c fiber.Ctx) error {
	if h.taskService == nil {
		return h.HandleError(c, common.ErrStoreUnavailable)
	}

	var input deliverydto.DeliveryTaskCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
	}
	if err := h.ValidateInput(&input); err != nil {
		return h.HandleError(c, err)
	}

	var task models.DeliveryTask
	if err := utility.ConvertStruct(input, &task); err != nil {
		return h.HandleError(c, common.ErrInvalidFormat)
	}

	created, err := h.taskService.CreateTask(c.Context(), task)
	if err != nil {
		return h.HandleError(c, err)
	}

	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"id": created.ID.Hex(),
	})
}
