package persistent

import (
	"context"

	"abq-api/pkg/models"
	"abq-api/services/landing/internal/entity"

	"gorm.io/gorm"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var row models.AdminUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return ToAdminUserEntity(&row), nil
}
