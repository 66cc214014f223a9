package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fincoach/internal/model"
	"github.com/theirongolddev/fincoach/internal/session"
)

// ProfileValues holds the raw text bound to the profile form fields.
type ProfileValues struct {
	Name       string
	Age        string
	Occupation string
	Income     string
	Experience string
	Goals      string
}

// ValuesFromProfile pre-fills the form from an existing profile.
func ValuesFromProfile(p *model.Profile) ProfileValues {
	if p == nil {
		return ProfileValues{Experience: string(model.ExperienceBeginner)}
	}
	return ProfileValues{
		Name:       p.Name,
		Age:        strconv.Itoa(p.Age),
		Occupation: p.Occupation,
		Income:     p.Income.String(),
		Experience: string(p.Experience),
		Goals:      p.Goals,
	}
}

// Input converts the form values into a validated-ready ProfileInput.
func (v ProfileValues) Input() (session.ProfileInput, error) {
	return session.ParseProfileInput(v.Name, v.Age, v.Occupation, v.Income, v.Experience, v.Goals)
}

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

func validateAge(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("age must be a positive whole number")
	}
	return nil
}

func validateIncome(s string) error {
	s = strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(s), "$"), ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return errors.New("income must be a positive amount")
	}
	return nil
}

// NewProfileForm builds the profile form bound to vals.
func NewProfileForm(vals *ProfileValues) *huh.Form {
	experience := make([]huh.Option[string], len(model.Experiences))
	for i, e := range model.Experiences {
		experience[i] = huh.NewOption(string(e), string(e))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Your financial profile").
				Description("Answers decide whether you get student or professional guidance."),
			huh.NewInput().
				Title("Name").
				Value(&vals.Name).
				Validate(required("name")),
			huh.NewInput().
				Title("Age").
				Value(&vals.Age).
				Validate(validateAge),
			huh.NewInput().
				Title("Occupation").
				Placeholder("student, engineer, nurse...").
				Value(&vals.Occupation).
				Validate(required("occupation")),
			huh.NewInput().
				Title("Monthly income (USD)").
				Placeholder("3500").
				Value(&vals.Income).
				Validate(validateIncome),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Financial experience").
				Options(experience...).
				Value(&vals.Experience),
			huh.NewText().
				Title("Financial goals").
				Placeholder("Pay off loans, build an emergency fund...").
				Value(&vals.Goals).
				Validate(required("goals")),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}
