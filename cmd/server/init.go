package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"gas_manager/config"
	authmodels "gas_manager/internal/api/auth/models"
	crmmodels "gas_manager/internal/api/crm/models"
	deliverymodels "gas_manager/internal/api/delivery/models"
	inventorymodels "gas_manager/internal/api/inventory/models"
	ordermodels "gas_manager/internal/api/order/models"
	"gas_manager/internal/database"
	"gas_manager/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "user"
	global.MongoDB_ColNames.Cylinders = "cylinder"
	global.MongoDB_ColNames.Customers = "customer"
	global.MongoDB_ColNames.Orders = "order"
	global.MongoDB_ColNames.DeliveryTasks = "deliverytask"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database.
// Kết nối thất bại không làm chết process: session giữ nil cho tới khi
// restart, các route dữ liệu trả về lỗi Database not available, các route
// hệ thống vẫn hoạt động.
func initDatabase_MongoDB() {
	session, err := database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Errorf("Failed to get database instance, continuing without store: %v", err)
		return
	}
	global.MongoDB_Session = session
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	database.CreateIndexes(context.TODO(), session.Database(dbName).Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), session.Database(dbName).Collection(global.MongoDB_ColNames.Cylinders), inventorymodels.Cylinder{})
	database.CreateIndexes(context.TODO(), session.Database(dbName).Collection(global.MongoDB_ColNames.Customers), crmmodels.Customer{})
	database.CreateIndexes(context.TODO(), session.Database(dbName).Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), session.Database(dbName).Collection(global.MongoDB_ColNames.DeliveryTasks), deliverymodels.DeliveryTask{})
}
