package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceProvider é 1:1 com User (mesmo ID). Criado uma única vez,
// durante o onboarding de um usuário com papel "provider".
type ServiceProvider struct {
	// ID é o próprio id do usuário (relação 1:1).
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CategoryID uuid.UUID       `gorm:"type:uuid;not null" json:"category_id"`
	Category   ServiceCategory `gorm:"foreignKey:CategoryID" json:"-"`

	ExperienceYears    int     `gorm:"not null" json:"experience_years"`
	HourlyRate         float64 `gorm:"not null" json:"hourly_rate"`
	VerificationStatus string  `gorm:"size:20;default:'pending'" json:"verification_status"`

	// Não coletados no onboarding; preenchidos por fluxos posteriores.
	ServiceDescription    *string `gorm:"size:500" json:"service_description"`
	ServiceAreaRadiusKm   int     `gorm:"default:10" json:"service_area_radius_km"`
	VerificationDocuments *string `gorm:"size:500" json:"verification_documents"`
	IDProofURL            *string `gorm:"size:255" json:"id_proof_url"`
	AddressProofURL       *string `gorm:"size:255" json:"address_proof_url"`
	Certifications        *string `gorm:"size:500" json:"certifications"`
	ResponseTimeMinutes   *int    `json:"response_time_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
