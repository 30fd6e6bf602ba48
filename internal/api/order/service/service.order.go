// Package ordersvc - service đơn hàng.
package ordersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "gas_manager/internal/api/base/service"
	models "gas_manager/internal/api/order/models"
	"gas_manager/internal/global"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	basesvc.BaseServiceMongo[models.Order]
}

// NewOrderService tạo mới OrderService trên collection lấy từ registry
func NewOrderService() (*OrderService, error) {
	orderCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if err != nil {
		return nil, fmt.Errorf("failed to get order collection: %w", err)
	}
	return NewOrderServiceWithStore(basesvc.NewBaseServiceMongo[models.Order](orderCollection)), nil
}

// NewOrderServiceWithStore tạo OrderService trên một store được cung cấp sẵn
func NewOrderServiceWithStore(store basesvc.BaseServiceMongo[models.Order]) *OrderService {
	return &OrderService{BaseServiceMongo: store}
}

// CreateOrder tạo mới đơn hàng. CustomerID không được kiểm tra tồn tại,
// đơn hàng tham chiếu mồ côi vẫn được chấp nhận.
func (s *OrderService) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	return s.InsertOne(ctx, order)
}

// ListOrders trả về đơn hàng, lọc theo status khi status khác rỗng.
// So khớp status là exact match, giá trị ngoài vòng đời trả về mảng rỗng.
func (s *OrderService) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return s.Find(ctx, filter, nil)
}
