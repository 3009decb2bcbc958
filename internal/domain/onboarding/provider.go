package onboarding

import (
	"github.com/google/uuid"

	"github.com/servicehub/marketplace-api/internal/models"
)

const (
	VerificationPending = "pending"

	DefaultServiceRadiusKm = 10
)

// NewProviderRecord monta o registro de prestador persistido na Fase 2.
// Campos opcionais não coletados no onboarding ficam nulos/default.
func NewProviderRecord(userID uuid.UUID, d ProviderDetails) *models.ServiceProvider {
	return &models.ServiceProvider{
		ID:                  userID,
		CategoryID:          d.CategoryID,
		ExperienceYears:     d.ExperienceYears,
		HourlyRate:          d.HourlyRate,
		VerificationStatus:  VerificationPending,
		ServiceAreaRadiusKm: DefaultServiceRadiusKm,
	}
}
