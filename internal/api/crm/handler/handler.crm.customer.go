// Package crmhdl - handler khách hàng.
package crmhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "gas_manager/internal/api/base/handler"
	crmdto "gas_manager/internal/api/crm/dto"
	models "gas_manager/internal/api/crm/models"
	crmsvc "gas_manager/internal/api/crm/service"
	"gas_manager/internal/common"
	"gas_manager/internal/logger"
	"gas_manager/internal/utility"
)

// CustomerHandler xử lý các request khách hàng
type CustomerHandler struct {
	basehdl.BaseHandler
	customerService *crmsvc.CustomerService
}

// NewCustomerHandler tạo instance mới của CustomerHandler
func NewCustomerHandler() *CustomerHandler {
	h := &CustomerHandler{}
	customerService, err := crmsvc.NewCustomerService()
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("Customer service chưa sẵn sàng, route customers sẽ trả về lỗi store")
		return h
	}
	h.customerService = customerService
	return h
}

// HandleFind trả về toàn bộ khách hàng, mỗi phần tử kèm _id dạng chuỗi
// @Router /customers [get]
func (h *CustomerHandler) HandleFind(c fiber.Ctx) error {
	if h.customerService == nil {
		return h.HandleError(c, common.ErrStoreUnavailable)
	}

	customers, err := h.customerService.ListCustomers(c.Context())
	if err != nil {
		return h.HandleError(c, err)
	}

	docs := make([]map[string]interface{}, 0, len(customers))
	for _, customer := range customers {
		doc, err := basehdl.DocumentWithStringID(customer)
		if err != nil {
			return h.HandleError(c, err)
		}
		docs = append(docs, doc)
	}

	return basehdl.JSONResponse(c, common.StatusOK, docs)
}

// HandleInsert tạo mới khách hàng, trả về identity được cấp
// @Router /customers [post]
func (h *CustomerHandler) HandleInsert(c fiber.Ctx) error {
	if h.customerService == nil {
		return h.HandleError(c, common.ErrStoreUnavailable)
	}

	var input crmdto.CustomerCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return h.HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error()))
	}
	if err := h.ValidateInput(&input); err != nil {
		return h.HandleError(c, err)
	}

	var customer models.Customer
	if err := utility.ConvertStruct(input, &customer); err != nil {
		return h.HandleError(c, common.ErrInvalidFormat)
	}

	created, err := h.customerService.CreateCustomer(c.Context(), customer)
	if err != nil {
		return h.HandleError(c, err)
	}

	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"id": created.ID.Hex(),
	})
}
