package main

import (
	"context"

	authmodels "gas_manager/internal/api/auth/models"
	authsvc "gas_manager/internal/api/auth/service"
	"gas_manager/internal/global"
	"gas_manager/internal/logger"
)

// InitDefaultData seed tài khoản admin mặc định khi collection user còn trống.
// Mật khẩu seed là plaintext theo đúng cơ chế đăng nhập demo.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if global.MongoDB_Session == nil {
		log.Warn("Store not available, skipping default data")
		return
	}

	cfg := global.MongoDB_ServerConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.WithError(err).Error("Failed to create user service for admin seed")
		return
	}

	ctx := context.Background()
	count, err := userService.CountDocuments(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Failed to count users for admin seed")
		return
	}
	if count > 0 {
		log.Info("User collection already has data, skipping admin seed")
		return
	}

	password := cfg.AdminPassword
	admin := authmodels.User{
		Email:    cfg.AdminEmail,
		Name:     cfg.AdminName,
		Role:     "admin",
		Password: &password,
	}

	created, err := userService.InsertOne(ctx, admin)
	if err != nil {
		log.WithError(err).Error("Failed to seed default admin user")
		return
	}

	logger.GetAuditLogger().WithField("user_id", created.ID.Hex()).Info("Seeded default admin user")
}
