package onboarding

import (
	"context"

	"github.com/google/uuid"

	"github.com/servicehub/marketplace-api/internal/httperr"
	"github.com/servicehub/marketplace-api/internal/models"
)

// ErrProviderExists sinaliza que já há registro de prestador para o id.
var ErrProviderExists = httperr.ErrBusiness("provider_already_exists")

// -------- Profile --------

type ProfileStore interface {
	// UpdateProfile deve ser idempotente para escritas repetidas
	// com os mesmos valores.
	UpdateProfile(
		ctx context.Context,
		userID uuid.UUID,
		fullName string,
		phoneNumber string,
	) error
}

// -------- Provider --------

type ProviderStore interface {
	// CreateServiceProvider falha com ErrProviderExists se já houver
	// registro para o id; nunca sobrescreve em silêncio.
	CreateServiceProvider(
		ctx context.Context,
		record *models.ServiceProvider,
	) error
}

// -------- Categories --------

type CategoryDirectory interface {
	ListServiceCategories(
		ctx context.Context,
	) ([]models.ServiceCategory, error)
}
