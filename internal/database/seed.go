package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/scamshield/scamshield-backend/internal/config"
	"github.com/scamshield/scamshield-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedFirstAdmin creates the initial admin account from FIRST_ADMIN_EMAIL /
// FIRST_ADMIN_PASSWORD when no user with that email exists yet. A no-op when
// the variables are unset.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		slog.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.FirstAdminEmail).First(&existing).Error
	if err == nil {
		slog.Info("admin user already exists, skipping seeding", "email", cfg.FirstAdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.FirstAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		ID:       uuid.New(),
		Name:     cfg.FirstAdminName,
		Email:    cfg.FirstAdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("first admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
