package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/servicehub/marketplace-api/internal/audit"
	domain "github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/models"
)

// Recorder registra a ordem das chamadas entre fakes distintos.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *Recorder) Record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// -------- Profile --------

type FakeProfileStore struct {
	mu sync.Mutex

	Err      error
	Recorder *Recorder
	// Block, se não-nulo, segura a chamada até o canal fechar.
	Block chan struct{}

	Calls        int
	LastFullName string
	LastPhone    string
}

func NewFakeProfileStore() *FakeProfileStore {
	return &FakeProfileStore{}
}

func (s *FakeProfileStore) UpdateProfile(
	_ context.Context,
	_ uuid.UUID,
	fullName string,
	phoneNumber string,
) error {
	s.mu.Lock()
	s.Calls++
	s.LastFullName = fullName
	s.LastPhone = phoneNumber
	block := s.Block
	s.mu.Unlock()

	if s.Recorder != nil {
		s.Recorder.Record("phase1")
	}
	if block != nil {
		<-block
	}
	return s.Err
}

func (s *FakeProfileStore) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}

// -------- Provider --------

type FakeProviderStore struct {
	mu sync.Mutex

	Err      error
	Recorder *Recorder

	Calls   int
	Records map[uuid.UUID]*models.ServiceProvider
}

func NewFakeProviderStore() *FakeProviderStore {
	return &FakeProviderStore{
		Records: make(map[uuid.UUID]*models.ServiceProvider),
	}
}

func (s *FakeProviderStore) CreateServiceProvider(
	_ context.Context,
	record *models.ServiceProvider,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls++
	if s.Recorder != nil {
		s.Recorder.Record("phase2")
	}

	if s.Err != nil {
		return s.Err
	}

	if _, exists := s.Records[record.ID]; exists {
		return domain.ErrProviderExists
	}

	s.Records[record.ID] = record
	return nil
}

func (s *FakeProviderStore) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}

func (s *FakeProviderStore) Get(id uuid.UUID) (*models.ServiceProvider, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.Records[id]
	return rec, ok
}

// -------- Categories --------

type FakeCategoryDirectory struct {
	Categories []models.ServiceCategory
	Err        error
}

func (d *FakeCategoryDirectory) ListServiceCategories(
	_ context.Context,
) ([]models.ServiceCategory, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Categories, nil
}

// -------- Audit --------

type FakeAuditor struct {
	mu     sync.Mutex
	Events []audit.Event
}

func (a *FakeAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Events = append(a.Events, ev)
}

func (a *FakeAuditor) Actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.Events))
	for _, ev := range a.Events {
		out = append(out, ev.Action)
	}
	return out
}
