package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"gas_manager/config"
	"gas_manager/internal/global"
)

func InitRegistry() {
	// Không có session thì không có collection nào được đăng ký,
	// các service tra registry sẽ báo lỗi và handler trả về lỗi store
	if global.MongoDB_Session == nil {
		logrus.Warn("MongoDB session not available, skipping collection registry")
		return
	}

	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Cylinders,
		global.MongoDB_ColNames.Customers,
		global.MongoDB_ColNames.Orders,
		global.MongoDB_ColNames.DeliveryTasks,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
