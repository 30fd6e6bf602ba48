// Package orderhdl - handler đơn hàng.
package orderhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "gas_manager/internal/api/base/handler"
	orderdto "gas_manager/internal/api/order/dto"
	models "gas_manager/internal/api/order/models"
	ordersvc "gas_manager/internal/api/order/service"
	"gas_manager/internal/common"
	"gas_manager/internal/logger"
	"gas_manager/internal/utility"
)

// OrderHandler xử lý các request đơn hàng
type OrderHandler struct {
	basehdl.BaseHandler
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() *OrderHandler {
	h := &OrderHandler{}
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("Order service chưa sẵn sàng, route orders sẽ trả về lỗi store")
		return h
	}
	h.orderService = orderService
	return h
}

// HandleFind trả về đơn hàng, lọc exact match theo query param status nếu có
// @Router /orders [get]
func (h *OrderHandler) HandleFind(c fiber.Ctx) error {
	if h.orderService == nil {
		return h.HandleError(c, common.ErrStoreUnavailable)
	}

	orders, err := h.orderService.ListOrders(c.Context(), c.Query("status"))
	if err != nil {
		return h.HandleError(c, err)
	}

	docs := make([]map[string]interface{}, 0, len(orders))
	for _, order := range orders {
		doc, err := basehdl.DocumentWithStringID(order)
		if err != nil {
			return h.HandleError(c, err)
		}
		docs = append(docs, doc)
	}

	return basehdl.JSONResponse(c, common.StatusOK, docs)
}

// HandleInsert tạo mới đơn hàng, trả về identity được cấp
// @Router /orders [post]
func (h *OrderHandler) HandleInsert(c fiber.Ctx) error {
	if h.orderService == nil {
		return h.HandleError(c, common.ErrStoreUnavailable)
	}

	var input orderdto.OrderCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
	}
	if err := h.ValidateInput(&input); err != nil {
		return h.HandleError(c, err)
	}

	var order models.Order
	if err := utility.ConvertStruct(input, &order); err != nil {
		return h.HandleError(c, common.ErrInvalidFormat)
	}

	created, err := h.orderService.CreateOrder(c.Context(), order)
	if err != nil {
		return h.HandleError(c, err)
	}

	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"id": created.ID.Hex(),
	})
}
