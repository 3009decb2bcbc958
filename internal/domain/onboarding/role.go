package onboarding

// ===============================
// User Role
// ===============================

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleProvider:
		return Role(s), true
	}
	return "", false
}

// IsProvider centraliza a checagem usada pelo commit e pela validação.
func (r Role) IsProvider() bool {
	return r == RoleProvider
}
