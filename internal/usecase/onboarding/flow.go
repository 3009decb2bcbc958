package onboarding

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/httperr"
	"github.com/servicehub/marketplace-api/internal/models"
)

// ======================================================
// USE CASE — onboarding flow (sessions)
// ======================================================

// Flow mantém uma sessão de onboarding por usuário, com a máquina de
// estados da tela. A sessão vive só enquanto a tela existe: Start
// sempre cria uma sessão nova.
type Flow struct {
	categories domain.CategoryDirectory
	commit     *CommitProfile
	log        zerolog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Machine
}

func NewFlow(
	categories domain.CategoryDirectory,
	commit *CommitProfile,
	log zerolog.Logger,
) *Flow {
	return &Flow{
		categories: categories,
		commit:     commit,
		log:        log,
		sessions:   make(map[uuid.UUID]*domain.Machine),
	}
}

// Snapshot é a visão imutável da sessão devolvida aos handlers.
type Snapshot struct {
	Phase      domain.Phase             `json:"phase"`
	Form       domain.Form              `json:"form"`
	Categories []models.ServiceCategory `json:"categories"`
	LastError  string                   `json:"last_error,omitempty"`
}

func snapshotOf(m *domain.Machine) Snapshot {
	return Snapshot{
		Phase:      m.Phase,
		Form:       m.Form,
		Categories: m.Categories,
		LastError:  m.LastError,
	}
}

// ======================================================
// OPERATIONS
// ======================================================

// Start abre uma sessão e carrega o snapshot de categorias. Falha na
// busca não é fatal: loga e segue com conjunto vazio. Com um envio em
// voo a sessão não pode ser substituída, senão o guard de envio único
// seria contornável por um remount da tela.
func (f *Flow) Start(ctx context.Context, user *models.User) (Snapshot, error) {
	m := domain.NewMachine()

	categories, err := f.categories.ListServiceCategories(ctx)
	if err != nil {
		f.log.Warn().Err(err).
			Str("user_id", user.ID.String()).
			Msg("category fetch failed, continuing with empty set")
		categories = nil
	}
	m.CategoriesLoaded(categories)

	f.mu.Lock()
	if existing, ok := f.sessions[user.ID]; ok && existing.Phase == domain.PhaseSubmitting {
		snap := snapshotOf(existing)
		f.mu.Unlock()
		return snap, httperr.ErrBusiness("submission_in_flight")
	}
	f.sessions[user.ID] = m
	f.mu.Unlock()

	return snapshotOf(m), nil
}

// Get devolve o estado atual da sessão, se houver.
func (f *Flow) Get(user *models.User) (Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.sessions[user.ID]
	if !ok {
		return Snapshot{}, false
	}
	return snapshotOf(m), true
}

// Submit valida o formulário, trava a sessão e executa o protocolo de
// commit. Um segundo envio enquanto o primeiro está em voo é rejeitado
// sem disparar nenhuma fase.
func (f *Flow) Submit(
	ctx context.Context,
	user *models.User,
	form domain.Form,
) (Snapshot, error) {

	f.mu.Lock()
	m, ok := f.sessions[user.ID]
	if !ok {
		f.mu.Unlock()
		return Snapshot{}, httperr.ErrBusiness("onboarding_not_started")
	}

	if err := m.BeginSubmit(form, domain.Role(user.Role)); err != nil {
		snap := snapshotOf(m)
		f.mu.Unlock()
		return snap, err
	}
	f.mu.Unlock()

	// Chamadas externas fora do lock: a fase "submitting" é o guard.
	err := f.commit.Execute(ctx, user, form)

	f.mu.Lock()
	if err != nil {
		m.Fail(err)
	} else {
		m.Succeed()
	}
	snap := snapshotOf(m)
	f.mu.Unlock()

	return snap, err
}

// End descarta a sessão (tela desmontada após sucesso de navegação).
func (f *Flow) End(user *models.User) {
	f.mu.Lock()
	delete(f.sessions, user.ID)
	f.mu.Unlock()
}
