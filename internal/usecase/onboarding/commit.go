package onboarding

import (
	"context"
	"strings"

	"github.com/servicehub/marketplace-api/internal/audit"
	domain "github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/httperr"
	"github.com/servicehub/marketplace-api/internal/models"
)

// Auditor é o que o protocolo precisa do dispatcher de auditoria.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// USE CASE — two-phase profile commit
// ======================================================

// CommitProfile executa as duas fases de persistência, em ordem estrita
// e sem atomicidade entre elas. Se a Fase 1 falha, a Fase 2 nunca roda.
// Se a Fase 2 falha, a Fase 1 não é desfeita: o usuário pode reenviar e
// a Fase 1 repete como sobrescrita idempotente.
type CommitProfile struct {
	profiles  domain.ProfileStore
	providers domain.ProviderStore
	audit     Auditor
}

func NewCommitProfile(
	profiles domain.ProfileStore,
	providers domain.ProviderStore,
	auditor Auditor,
) *CommitProfile {
	return &CommitProfile{
		profiles:  profiles,
		providers: providers,
		audit:     auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CommitProfile) Execute(
	ctx context.Context,
	user *models.User,
	form domain.Form,
) error {

	// --------------------------------------------------
	// Fase 1 — atualização do perfil
	// --------------------------------------------------
	fullName := strings.TrimSpace(form.FullName)

	if err := uc.profiles.UpdateProfile(ctx, user.ID, fullName, form.Phone); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	if !domain.Role(user.Role).IsProvider() {
		return nil
	}

	// --------------------------------------------------
	// Fase 2 — criação do registro de prestador
	// --------------------------------------------------
	details, err := domain.ProviderDetailsFrom(form)
	if err != nil {
		return err
	}

	record := domain.NewProviderRecord(user.ID, details)

	err = uc.providers.CreateServiceProvider(ctx, record)
	if httperr.IsBusiness(err, "provider_already_exists") {
		// Reenvio após falha parcial: o registro já foi criado com
		// valores validados, então retomamos como sucesso.
		return nil
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "provider_created",
		Entity:   "service_provider",
		EntityID: &record.ID,
		Metadata: map[string]any{
			"category_id":      record.CategoryID,
			"experience_years": record.ExperienceYears,
			"hourly_rate":      record.HourlyRate,
		},
	})

	return nil
}
