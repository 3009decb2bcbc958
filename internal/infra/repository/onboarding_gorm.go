package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/models"
)

// OnboardingGormRepository implementa os três colaboradores externos do
// onboarding (perfil, prestador, diretório de categorias) sobre o gorm.
type OnboardingGormRepository struct {
	db *gorm.DB
}

func NewOnboardingGormRepository(db *gorm.DB) *OnboardingGormRepository {
	return &OnboardingGormRepository{db: db}
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *OnboardingGormRepository) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	fullName string,
	phoneNumber string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"full_name":    fullName,
			"phone_number": phoneNumber,
		}).Error
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *OnboardingGormRepository) CreateServiceProvider(
	ctx context.Context,
	record *models.ServiceProvider,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceProvider{}).
		Where("id = ?", record.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrProviderExists
	}

	err := r.db.WithContext(ctx).Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrProviderExists
	}
	return err
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *OnboardingGormRepository) ListServiceCategories(
	ctx context.Context,
) ([]models.ServiceCategory, error) {

	var categories []models.ServiceCategory
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}
