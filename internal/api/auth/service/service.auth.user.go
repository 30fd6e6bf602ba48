// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	authdto "gas_manager/internal/api/auth/dto"
	models "gas_manager/internal/api/auth/models"
	basesvc "gas_manager/internal/api/base/service"
	"gas_manager/internal/common"
	"gas_manager/internal/global"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	basesvc.BaseServiceMongo[models.User]
}

// NewUserService tạo mới UserService trên collection lấy từ registry
func NewUserService() (*UserService, error) {
	userCollection, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to get user collection: %w", err)
	}
	return NewUserServiceWithStore(basesvc.NewBaseServiceMongo[models.User](userCollection)), nil
}

// NewUserServiceWithStore tạo UserService trên một store được cung cấp sẵn
func NewUserServiceWithStore(store basesvc.BaseServiceMongo[models.User]) *UserService {
	return &UserService{BaseServiceMongo: store}
}

// Login xác thực demo: so khớp chính xác email + password trên collection user.
// Email không tồn tại và sai password trả về cùng một lỗi, không phân biệt được
// từ phía client.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (models.User, error) {
	filter := bson.M{
		"email":    input.Email,
		"password": input.Password,
	}

	user, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.User{}, common.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	return user, nil
}
