// Package inventorysvc - service quản lý bình gas trong kho.
package inventorysvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "gas_manager/internal/api/base/service"
	models "gas_manager/internal/api/inventory/models"
	"gas_manager/internal/common"
	"gas_manager/internal/global"
)

// errBarcodeExists trả về khi barcode đã có trong kho, kể cả khi phát hiện
// qua unique index lúc thua race với một insert song song.
var errBarcodeExists = common.NewError(common.ErrCodeBusinessOperation, "Barcode already exists", common.StatusBadRequest, nil)

// CylinderService là cấu trúc chứa các phương thức liên quan đến bình gas
type CylinderService struct {
	basesvc.BaseServiceMongo[models.Cylinder]
}

// NewCylinderService tạo mới CylinderService trên collection lấy từ registry
func NewCylinderService() (*CylinderService, error) {
	cylinderCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Cylinders)
	if err != nil {
		return nil, fmt.Errorf("failed to get cylinder collection: %w", err)
	}
	return NewCylinderServiceWithStore(basesvc.NewBaseServiceMongo[models.Cylinder](cylinderCollection)), nil
}

// NewCylinderServiceWithStore tạo CylinderService trên một store được cung cấp sẵn
func NewCylinderServiceWithStore(store basesvc.BaseServiceMongo[models.Cylinder]) *CylinderService {
	return &CylinderService{BaseServiceMongo: store}
}

// CreateCylinder nhập kho một bình gas mới.
// Kiểm tra barcode trước khi ghi; unique index ở store là chốt chặn cuối
// cho trường hợp hai request cùng barcode ghi đồng thời.
func (s *CylinderService) CreateCylinder(ctx context.Context, cylinder models.Cylinder) (models.Cylinder, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"barcode": cylinder.Barcode})
	if err != nil {
		return models.Cylinder{}, err
	}
	if exists {
		return models.Cylinder{}, errBarcodeExists
	}

	created, err := s.InsertOne(ctx, cylinder)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return models.Cylinder{}, errBarcodeExists
		}
		return models.Cylinder{}, err
	}

	return created, nil
}

// ListCylinders trả về toàn bộ bình gas trong kho
func (s *CylinderService) ListCylinders(ctx context.Context) ([]models.Cylinder, error) {
	return s.Find(ctx, nil, nil)
}
