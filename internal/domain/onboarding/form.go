package onboarding

// Form guarda a entrada crua da tela de onboarding. Campos numéricos
// permanecem como texto até a validação fazer o parse.
type Form struct {
	FullName           string `json:"full_name"`
	Phone              string `json:"phone"`
	SelectedCategoryID string `json:"selected_category_id"`
	ExperienceYears    string `json:"experience_years"`
	HourlyRate         string `json:"hourly_rate"`
}
