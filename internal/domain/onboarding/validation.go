package onboarding

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/servicehub/marketplace-api/internal/models"
)

const (
	MaxExperienceYears = 50
	MaxHourlyRate      = 10000
)

// ValidationError carrega a única mensagem exibida ao usuário,
// vinda da primeira regra que falhou.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return ValidationError{Message: message}
}

// ===============================
// Form Validation
// ===============================

// Validate classifica o formulário sem mutá-lo. As regras são avaliadas
// em ordem de prioridade e a primeira falha encerra a validação.
func Validate(f Form, role Role, categories []models.ServiceCategory) error {
	if strings.TrimSpace(f.FullName) == "" || strings.TrimSpace(f.Phone) == "" {
		return invalid("Please fill in all fields")
	}

	if !IsValidPhone(f.Phone) {
		return invalid("Phone number must be 10 digits")
	}

	if !role.IsProvider() {
		return nil
	}

	if f.SelectedCategoryID == "" || f.ExperienceYears == "" || f.HourlyRate == "" {
		return invalid("Please complete all provider details")
	}

	if !categoryExists(f.SelectedCategoryID, categories) {
		return invalid("Please choose a valid service category")
	}

	if _, ok := ParseExperienceYears(f.ExperienceYears); !ok {
		return invalid("Experience must be between 0 and 50 years")
	}

	if _, ok := ParseHourlyRate(f.HourlyRate); !ok {
		return invalid("Hourly rate must be between 0 and 10,000")
	}

	return nil
}

// IsValidPhone exige exatamente 10 dígitos, sem separadores.
func IsValidPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseExperienceYears faz o parse do texto cru; texto não numérico e
// valor fora de [0,50] são o mesmo resultado inválido.
func ParseExperienceYears(raw string) (int, bool) {
	years, err := strconv.Atoi(raw)
	if err != nil || years < 0 || years > MaxExperienceYears {
		return 0, false
	}
	return years, true
}

// ParseHourlyRate idem, para o intervalo [0,10000]. ParseFloat aceita
// "NaN", que escaparia das comparações de intervalo.
func ParseHourlyRate(raw string) (float64, bool) {
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(rate) || rate < 0 || rate > MaxHourlyRate {
		return 0, false
	}
	return rate, true
}

func categoryExists(id string, categories []models.ServiceCategory) bool {
	for _, cat := range categories {
		if cat.ID.String() == id {
			return true
		}
	}
	return false
}

// ===============================
// Parsed provider details
// ===============================

type ProviderDetails struct {
	CategoryID      uuid.UUID
	ExperienceYears int
	HourlyRate      float64
}

// ProviderDetailsFrom extrai os valores já sanitizados de um formulário
// que passou por Validate com papel "provider".
func ProviderDetailsFrom(f Form) (ProviderDetails, error) {
	categoryID, err := uuid.Parse(f.SelectedCategoryID)
	if err != nil {
		return ProviderDetails{}, invalid("Please choose a valid service category")
	}

	years, ok := ParseExperienceYears(f.ExperienceYears)
	if !ok {
		return ProviderDetails{}, invalid("Experience must be between 0 and 50 years")
	}

	rate, ok := ParseHourlyRate(f.HourlyRate)
	if !ok {
		return ProviderDetails{}, invalid("Hourly rate must be between 0 and 10,000")
	}

	return ProviderDetails{
		CategoryID:      categoryID,
		ExperienceYears: years,
		HourlyRate:      rate,
	}, nil
}
