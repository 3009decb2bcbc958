package routing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/servicehub/marketplace-api/internal/models"
)

func TestResolve_Unresolved(t *testing.T) {
	decision := Resolve(nil)

	require.Equal(t, DestinationPlaceholder, decision.Destination)
	require.Empty(t, decision.Tabs)
}

func TestResolve_Provider(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: "provider"}

	decision := Resolve(user)

	require.Equal(t, DestinationProviderHome, decision.Destination)
	require.Equal(t, []Tab{TabHome, TabBookings, TabProfile}, decision.Tabs)
}

func TestResolve_Customer(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: "customer"}

	decision := Resolve(user)

	require.Equal(t, DestinationHome, decision.Destination)
	require.Equal(t, []Tab{TabHome, TabSearch, TabBookings, TabProfile}, decision.Tabs)
}

func TestResolve_UnknownRoleFallsBackToCustomer(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: "moderator"}

	decision := Resolve(user)

	require.Equal(t, DestinationHome, decision.Destination)
	require.Len(t, decision.Tabs, 4)
}
