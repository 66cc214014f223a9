package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fincoach/internal/model"
)

// ErrInvalidProfile is wrapped by every profile validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// ProfileInput is the raw profile form before classification.
type ProfileInput struct {
	Name       string
	Age        int
	Occupation string
	Income     decimal.Decimal
	Experience model.Experience
	Goals      string
}

// ParseProfileInput builds a ProfileInput from text fields as they arrive
// from a form or flags.
func ParseProfileInput(name, age, occupation, income, experience, goals string) (ProfileInput, error) {
	in := ProfileInput{
		Name:       strings.TrimSpace(name),
		Occupation: strings.TrimSpace(occupation),
		Experience: model.Experience(strings.TrimSpace(experience)),
		Goals:      strings.TrimSpace(goals),
	}

	if s := strings.TrimSpace(age); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return ProfileInput{}, fmt.Errorf("%w: age %q is not a whole number", ErrInvalidProfile, age)
		}
		in.Age = n
	}

	if s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(income), "$")); s != "" {
		d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
		if err != nil {
			return ProfileInput{}, fmt.Errorf("%w: income %q is not a number", ErrInvalidProfile, income)
		}
		in.Income = d
	}

	return in, nil
}

// Validate checks that every required field is present.
func (in ProfileInput) Validate() error {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Age <= 0 {
		missing = append(missing, "age")
	}
	if in.Occupation == "" {
		missing = append(missing, "occupation")
	}
	if !in.Income.IsPositive() {
		missing = append(missing, "income")
	}
	if in.Experience == "" {
		missing = append(missing, "experience")
	}
	if in.Goals == "" {
		missing = append(missing, "goals")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidProfile, strings.Join(missing, ", "))
	}
	if !in.Experience.Valid() {
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidProfile, in.Experience)
	}
	return nil
}
