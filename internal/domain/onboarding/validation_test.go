package onboarding

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/servicehub/marketplace-api/internal/models"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"0000000000", true},
		{"98765", false},
		{"98765432100", false},
		{"98765abcde", false},
		{"987654321 ", false},
		{"+919876543", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidPhone(tt.phone))
		})
	}
}

func TestParseExperienceYears(t *testing.T) {
	tests := []struct {
		raw   string
		want  int
		valid bool
	}{
		{"0", 0, true},
		{"50", 50, true},
		{"5", 5, true},
		{"51", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"4.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseExperienceYears(tt.raw)
			require.Equal(t, tt.valid, ok)
			if tt.valid {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseHourlyRate(t *testing.T) {
	tests := []struct {
		raw   string
		want  float64
		valid bool
	}{
		{"0", 0, true},
		{"500", 500, true},
		{"499.99", 499.99, true},
		{"10000", 10000, true},
		{"10000.01", 0, false},
		{"-1", 0, false},
		{"rate", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"nan", 0, false},
		{"Inf", 0, false},
		{"-Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseHourlyRate(tt.raw)
			require.Equal(t, tt.valid, ok)
			if tt.valid {
				require.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func testCategories() []models.ServiceCategory {
	return []models.ServiceCategory{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Plumbing"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Cleaning"},
	}
}

func validProviderForm() Form {
	return Form{
		FullName:           "Asha Rao",
		Phone:              "9123456780",
		SelectedCategoryID: "11111111-1111-1111-1111-111111111111",
		ExperienceYears:    "5",
		HourlyRate:         "500",
	}
}

func TestValidate_Customer(t *testing.T) {
	cats := testCategories()

	tests := []struct {
		name    string
		form    Form
		wantMsg string
	}{
		{
			name: "valid",
			form: Form{FullName: "Asha Rao", Phone: "9123456780"},
		},
		{
			name:    "missing name",
			form:    Form{Phone: "9123456780"},
			wantMsg: "Please fill in all fields",
		},
		{
			name:    "whitespace name",
			form:    Form{FullName: "   ", Phone: "9123456780"},
			wantMsg: "Please fill in all fields",
		},
		{
			name:    "missing phone",
			form:    Form{FullName: "Asha Rao"},
			wantMsg: "Please fill in all fields",
		},
		{
			name:    "bad phone",
			form:    Form{FullName: "Asha Rao", Phone: "98765abcde"},
			wantMsg: "Phone number must be 10 digits",
		},
		{
			name: "provider fields ignored for customer",
			form: Form{
				FullName:        "Asha Rao",
				Phone:           "9123456780",
				ExperienceYears: "999",
				HourlyRate:      "abc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.form, RoleCustomer, cats)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestValidate_Provider(t *testing.T) {
	cats := testCategories()

	tests := []struct {
		name    string
		mutate  func(f *Form)
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(f *Form) {},
		},
		{
			name:    "no category chosen",
			mutate:  func(f *Form) { f.SelectedCategoryID = "" },
			wantMsg: "Please complete all provider details",
		},
		{
			name:    "category outside fetched set",
			mutate:  func(f *Form) { f.SelectedCategoryID = "99999999-9999-9999-9999-999999999999" },
			wantMsg: "Please choose a valid service category",
		},
		{
			name:    "experience too high",
			mutate:  func(f *Form) { f.ExperienceYears = "51" },
			wantMsg: "Experience must be between 0 and 50 years",
		},
		{
			name:    "experience not numeric",
			mutate:  func(f *Form) { f.ExperienceYears = "abc" },
			wantMsg: "Experience must be between 0 and 50 years",
		},
		{
			name:    "rate above cap",
			mutate:  func(f *Form) { f.HourlyRate = "15000" },
			wantMsg: "Hourly rate must be between 0 and 10,000",
		},
		{
			name:    "rate barely above cap",
			mutate:  func(f *Form) { f.HourlyRate = "10000.01" },
			wantMsg: "Hourly rate must be between 0 and 10,000",
		},
		{
			name:    "rate is NaN",
			mutate:  func(f *Form) { f.HourlyRate = "NaN" },
			wantMsg: "Hourly rate must be between 0 and 10,000",
		},
		{
			name: "required rules win over provider rules",
			mutate: func(f *Form) {
				f.Phone = ""
				f.ExperienceYears = "999"
			},
			wantMsg: "Please fill in all fields",
		},
		{
			name: "phone format wins over provider rules",
			mutate: func(f *Form) {
				f.Phone = "123"
				f.HourlyRate = "abc"
			},
			wantMsg: "Phone number must be 10 digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validProviderForm()
			tt.mutate(&form)

			err := Validate(form, RoleProvider, cats)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestValidate_ProviderWithEmptyCategorySet(t *testing.T) {
	// Busca de categorias degradada: nenhuma escolha é legal.
	form := validProviderForm()
	err := Validate(form, RoleProvider, nil)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Please choose a valid service category", verr.Message)
}

func TestValidate_DoesNotMutateForm(t *testing.T) {
	form := validProviderForm()
	before := form

	_ = Validate(form, RoleProvider, testCategories())
	require.Equal(t, before, form)
}

func TestProviderDetailsFrom(t *testing.T) {
	details, err := ProviderDetailsFrom(validProviderForm())
	require.NoError(t, err)
	require.Equal(t, uuid.MustParse("11111111-1111-1111-1111-111111111111"), details.CategoryID)
	require.Equal(t, 5, details.ExperienceYears)
	require.InDelta(t, 500.0, details.HourlyRate, 1e-9)
}
