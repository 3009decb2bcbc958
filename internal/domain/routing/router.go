package routing

import (
	"github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/models"
)

// ===============================
// Destinations & Tabs
// ===============================

type Destination string

const (
	DestinationProviderHome Destination = "provider-home"
	DestinationHome         Destination = "home"
	DestinationPlaceholder  Destination = "unresolved-placeholder"
)

type Tab string

const (
	TabHome     Tab = "home"
	TabSearch   Tab = "search"
	TabBookings Tab = "bookings"
	TabProfile  Tab = "profile"
)

// Decision é o resultado do roteamento: exatamente um destino e o
// conjunto fixo de abas que o acompanha.
type Decision struct {
	Destination Destination `json:"destination"`
	Tabs        []Tab       `json:"tabs"`
}

// ===============================
// Role Router
// ===============================

// Resolve decide a superfície inicial a partir do usuário resolvido.
// nil significa autenticação ainda não resolvida.
func Resolve(user *models.User) Decision {
	if user == nil {
		return Decision{
			Destination: DestinationPlaceholder,
			Tabs:        nil,
		}
	}

	switch onboarding.Role(user.Role) {
	case onboarding.RoleProvider:
		return Decision{
			Destination: DestinationProviderHome,
			Tabs:        []Tab{TabHome, TabBookings, TabProfile},
		}
	default:
		// Qualquer outro papel cai na experiência de cliente.
		return Decision{
			Destination: DestinationHome,
			Tabs:        []Tab{TabHome, TabSearch, TabBookings, TabProfile},
		}
	}
}
