package onboarding

import "github.com/servicehub/marketplace-api/internal/httperr"

// ===============================
// Onboarding Phase
// ===============================

type Phase string

const (
	PhaseLoading    Phase = "loading"
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
)

// ===============================
// Validations
// ===============================

// CanBeginSubmit define se um envio pode iniciar a partir da fase atual.
func CanBeginSubmit(current Phase) error {
	switch current {
	case PhaseEditing:
		return nil
	case PhaseSubmitting:
		return httperr.ErrBusiness("submission_in_flight")
	case PhaseSucceeded:
		return httperr.ErrBusiness("already_completed")
	default:
		return httperr.ErrBusiness("categories_still_loading")
	}
}

func InitialPhase() Phase {
	return PhaseLoading
}
