// Package crmsvc - service khách hàng.
package crmsvc

import (
	"context"
	"fmt"

	basesvc "gas_manager/internal/api/base/service"
	models "gas_manager/internal/api/crm/models"
	"gas_manager/internal/global"
)

// CustomerService là cấu trúc chứa các phương thức liên quan đến khách hàng
type CustomerService struct {
	basesvc.BaseServiceMongo[models.Customer]
}

// NewCustomerService tạo mới CustomerService trên collection lấy từ registry
func NewCustomerService() (*CustomerService, error) {
	customerCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer collection: %w", err)
	}
	return NewCustomerServiceWithStore(basesvc.NewBaseServiceMongo[models.Customer](customerCollection)), nil
}

// NewCustomerServiceWithStore tạo CustomerService trên một store được cung cấp sẵn
func NewCustomerServiceWithStore(store basesvc.BaseServiceMongo[models.Customer]) *CustomerService {
	return &CustomerService{BaseServiceMongo: store}
}

// CreateCustomer tạo mới khách hàng. Không kiểm tra trùng: cùng một khách
// có thể được tạo nhiều lần, mỗi lần nhận một identity riêng.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	return s.InsertOne(ctx, customer)
}

// ListCustomers trả về toàn bộ khách hàng
func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Find(ctx, nil, nil)
}
