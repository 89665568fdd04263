package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"abq-api/pkg/cache"
	"abq-api/pkg/config"
	"abq-api/pkg/database"
	"abq-api/pkg/logger"
	"abq-api/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	defaultStatuses   = []string{"Lançamento", "Em obras", "Pronto para morar"}
	defaultCategories = []string{"Residencial", "Comercial", "Loteamento"}
	defaultTags       = []string{"Novidades", "Dicas", "Financiamento"}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithOptions(cfg.LogLevel, cfg.LogFormat)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, cfg, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	// Drop cached projections so the new taxonomy shows up immediately.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Skipping cache invalidation: %v", err)
	} else {
		defer redisClient.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cache.NewJSONCache(redisClient, "landing", cfg.CacheTTL).Invalidate(ctx); err != nil {
			log.Warn("Failed to invalidate cache: %v", err)
		}
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	if err := seedAdmin(db, cfg, log); err != nil {
		return err
	}

	for _, name := range defaultStatuses {
		if err := db.Where(models.VentureStatus{Name: name}).FirstOrCreate(&models.VentureStatus{}).Error; err != nil {
			return fmt.Errorf("failed to seed status %q: %w", name, err)
		}
	}
	for _, name := range defaultCategories {
		if err := db.Where(models.VentureCategory{Name: name}).FirstOrCreate(&models.VentureCategory{}).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}
	for _, name := range defaultTags {
		if err := db.Where(models.BlogTag{Name: name}).FirstOrCreate(&models.BlogTag{}).Error; err != nil {
			return fmt.Errorf("failed to seed tag %q: %w", name, err)
		}
	}

	log.Info("Seeded %d statuses, %d categories and %d tags", len(defaultStatuses), len(defaultCategories), len(defaultTags))
	return nil
}

func seedAdmin(db *gorm.DB, cfg *config.Config, log *logger.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	var existing models.AdminUser
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Info("Admin user %s already exists", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.AdminUser{
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info("Created admin user %s", email)
	return nil
}
