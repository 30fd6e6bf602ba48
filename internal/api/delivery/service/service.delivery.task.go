// Package deliverysvc - service nhiệm vụ giao hàng.
package deliverysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "gas_manager/internal/api/base/service"
	models "gas_manager/internal/api/delivery/models"
	"gas_manager/internal/global"
)

// DeliveryTaskService là cấu trúc chứa các phương thức liên quan đến nhiệm vụ giao hàng
type DeliveryTaskService struct {
	basesvc.BaseServiceMongo[models.DeliveryTask]
}

// NewDeliveryTaskService tạo mới DeliveryTaskService trên collection lấy từ registry
func NewDeliveryTaskService() (*DeliveryTaskService, error) {
	taskCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.DeliveryTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliverytask collection: %w", err)
	}
	return NewDeliveryTaskServiceWithStore(basesvc.NewBaseServiceMongo[models.DeliveryTask](taskCollection)), nil
}

// NewDeliveryTaskServiceWithStore tạo DeliveryTaskService trên một store được cung cấp sẵn
func NewDeliveryTaskServiceWithStore(store basesvc.BaseServiceMongo[models.DeliveryTask]) *DeliveryTaskService {
	return &DeliveryTaskService{BaseServiceMongo: store}
}

// CreateTask tạo mới nhiệm vụ giao hàng. OrderID và DriverID là tham chiếu
// mềm, không kiểm tra tồn tại.
func (s *DeliveryTaskService) CreateTask(ctx context.Context, task models.DeliveryTask) (models.DeliveryTask, error) {
	return s.InsertOne(ctx, task)
}

// ListTasks trả về nhiệm vụ giao hàng, lọc exact match theo status khi khác rỗng
func (s *DeliveryTaskService) ListTasks(ctx context.Context, status string) ([]models.DeliveryTask, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return s.Find(ctx, filter, nil)
}
