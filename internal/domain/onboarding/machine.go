package onboarding

import "github.com/servicehub/marketplace-api/internal/models"

// Machine é a máquina de estados de uma sessão de onboarding.
// Não é segura para uso concorrente; quem orquestra sincroniza.
type Machine struct {
	Phase      Phase
	Form       Form
	Categories []models.ServiceCategory
	LastError  string
}

func NewMachine() *Machine {
	return &Machine{Phase: InitialPhase()}
}

// CategoriesLoaded conclui a fase de carga. Uma falha na busca entrega
// um conjunto vazio: a tela segue usável para clientes e degradada para
// prestadores, já que nenhuma categoria pode ser legalmente escolhida.
func (m *Machine) CategoriesLoaded(categories []models.ServiceCategory) {
	m.Categories = categories
	m.Phase = PhaseEditing
}

// BeginSubmit valida o formulário e trava a sessão em "submitting".
// Com envio em andamento a chamada é rejeitada sem efeito colateral.
func (m *Machine) BeginSubmit(f Form, role Role) error {
	if err := CanBeginSubmit(m.Phase); err != nil {
		return err
	}

	m.Form = f

	if err := Validate(f, role, m.Categories); err != nil {
		m.LastError = err.Error()
		return err
	}

	m.LastError = ""
	m.Phase = PhaseSubmitting
	return nil
}

func (m *Machine) Succeed() {
	m.Phase = PhaseSucceeded
	m.LastError = ""
}

// Fail devolve a sessão ao modo editável preservando o formulário,
// para que o usuário possa tentar de novo.
func (m *Machine) Fail(err error) {
	m.Phase = PhaseEditing
	m.LastError = err.Error()
}
