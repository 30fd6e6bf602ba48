package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"gas_manager/config"
	"gas_manager/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong database.
// Mỗi entity một collection, tên là chữ thường của tên entity.
type MongoDB_CollectionName struct {
	Users         string
	Cylinders     string
	Customers     string
	Orders        string
	DeliveryTasks string
}

var (
	// Validate là validator dùng chung cho toàn bộ ứng dụng
	Validate *validator.Validate

	// MongoDB_Session là client kết nối MongoDB.
	// Nil khi store chưa được cấu hình hoặc kết nối thất bại lúc khởi động;
	// khi đó các endpoint dữ liệu trả về lỗi store-unavailable cho đến khi restart.
	MongoDB_Session *mongo.Client

	// MongoDB_ServerConfig là cấu hình server
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_ColNames chứa tên các collection
	MongoDB_ColNames MongoDB_CollectionName

	// RegistryCollections lưu các collection đã đăng ký theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)
