package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "gas_manager/internal/api/auth/models"
	crmmodels "gas_manager/internal/api/crm/models"
	deliverymodels "gas_manager/internal/api/delivery/models"
	inventorymodels "gas_manager/internal/api/inventory/models"
	ordermodels "gas_manager/internal/api/order/models"
	"gas_manager/internal/common"
	"gas_manager/internal/global"
	"gas_manager/internal/schema"
)

// SystemHandler xử lý các route hệ thống: root, diagnostic và health check
type SystemHandler struct {
	BaseHandler
}

// NewSystemHandler tạo một instance mới của SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleRoot trả về message xác nhận backend đang chạy
// @Router / [get]
func (h *SystemHandler) HandleRoot(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"message": "Gas Cylinder Management Backend Running",
	})
}

// HandleTest trả về thông tin chẩn đoán kết nối store.
// Endpoint này không bao giờ fail: lỗi kết nối được hạ cấp thành chuỗi trạng thái mô tả.
// @Router /test [get]
func (h *SystemHandler) HandleTest(c fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if global.MongoDB_Session == nil {
		return JSONResponse(c, common.StatusOK, response)
	}

	cfg := global.MongoDB_ServerConfig
	response["database"] = "✅ Available"
	if cfg.MongoDB_ConnectionURI != "" {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	response["database_name"] = cfg.MongoDB_DBName
	response["connection_status"] = "Connected"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	collections, err := global.MongoDB_Session.Database(cfg.MongoDB_DBName).ListCollectionNames(ctx, bson.D{})
	if err != nil {
		msg := err.Error()
		if len(msg) > 50 {
			msg = msg[:50]
		}
		response["database"] = "⚠️ Connected but Error: " + msg
		return JSONResponse(c, common.StatusOK, response)
	}

	// Chỉ trả về tối đa 10 collection đầu tiên
	if len(collections) > 10 {
		collections = collections[:10]
	}
	response["collections"] = collections
	response["database"] = "✅ Connected & Working"

	return JSONResponse(c, common.StatusOK, response)
}

// HandleSchema trả về tài liệu schema của cả năm entity, key theo tên
// collection. Endpoint này không chạm store nên vẫn hoạt động khi store
// chưa kết nối.
// @Router /schema [get]
func (h *SystemHandler) HandleSchema(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"user":         schema.BuildDocument(authmodels.User{}),
		"cylinder":     schema.BuildDocument(inventorymodels.Cylinder{}),
		"customer":     schema.BuildDocument(crmmodels.Customer{}),
		"order":        schema.BuildDocument(ordermodels.Order{}),
		"deliverytask": schema.BuildDocument(deliverymodels.DeliveryTask{}),
	})
}

// HandleHealth kiểm tra tình trạng hệ thống
// @Success 200 {object} map[string]interface{} "Hệ thống hoạt động bình thường"
// @Failure 503 {object} map[string]interface{} "Hệ thống đang gặp sự cố"
// @Router /system/health [get]
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"api": "ok",
		},
	}

	if global.MongoDB_Session != nil {
		if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
			healthData["status"] = "degraded"
			healthData["services"].(fiber.Map)["database"] = "error"
			healthData["database_error"] = err.Error()
			return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
				"code":    common.StatusServiceUnavailable,
				"message": "Hệ thống đang gặp sự cố",
				"data":    healthData,
				"status":  "error",
			})
		}
		healthData["services"].(fiber.Map)["database"] = "ok"
	} else {
		healthData["status"] = "degraded"
		healthData["services"].(fiber.Map)["database"] = "not_initialized"
	}

	return h.HandleResponse(c, healthData, nil)
}
