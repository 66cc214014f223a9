// Package content holds the static advice table and sample data that the
// advisor and charts read from.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/fincoach/internal/model"
)

//go:embed content.yaml
var defaultContent []byte

// Table is the read-only content collaborator: canned advice keyed by
// segment and topic name, sample users, and per-category tips.
type Table struct {
	advice      map[model.Segment]map[string]string
	sampleUsers map[model.Segment]SampleUser
	tips        map[model.Category]string
}

// SampleUser is a demo profile with reference spending data.
type SampleUser struct {
	Name       string
	Age        int
	Occupation string
	Income     decimal.Decimal
	Experience model.Experience
	Goals      string
	Budget     model.Allocation
	Spending   model.SpendingSeries
}

type rawAmount struct {
	Category string `yaml:"category"`
	Amount   string `yaml:"amount"`
}

type rawPattern struct {
	Month  string             `yaml:"month"`
	Values map[string]float64 `yaml:"values"`
}

type rawUser struct {
	Name            string       `yaml:"name"`
	Age             int          `yaml:"age"`
	Occupation      string       `yaml:"occupation"`
	Income          string       `yaml:"income"`
	Experience      string       `yaml:"experience"`
	Goals           string       `yaml:"goals"`
	MonthlyBudget   []rawAmount  `yaml:"monthly_budget"`
	TrendCategories []string     `yaml:"trend_categories"`
	Patterns        []rawPattern `yaml:"spending_patterns"`
}

type rawTable struct {
	Advice      map[string]map[string]string `yaml:"advice"`
	SampleUsers map[string]rawUser           `yaml:"sample_users"`
	Tips        map[string]string            `yaml:"optimization_tips"`
}

// Load parses the embedded content document.
func Load() (*Table, error) {
	return Parse(defaultContent)
}

// MustLoad is Load for test setup and other callers with no error path.
// It panics if the embedded document is malformed.
func MustLoad() *Table {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

// Parse decodes a content document and checks that every segment has advice
// and a sample user.
func Parse(data []byte) (*Table, error) {
	var raw rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}

	t := &Table{
		advice:      make(map[model.Segment]map[string]string),
		sampleUsers: make(map[model.Segment]SampleUser),
		tips:        make(map[model.Category]string),
	}

	for seg, entries := range raw.Advice {
		s := model.Segment(seg)
		if !s.Valid() {
			return nil, fmt.Errorf("advice: unknown segment %q", seg)
		}
		m := make(map[string]string, len(entries))
		for key, text := range entries {
			if text == "" {
				return nil, fmt.Errorf("advice %s.%s: empty text", seg, key)
			}
			m[key] = text
		}
		t.advice[s] = m
	}

	for seg, ru := range raw.SampleUsers {
		s := model.Segment(seg)
		if !s.Valid() {
			return nil, fmt.Errorf("sample_users: unknown segment %q", seg)
		}
		u, err := ru.toSampleUser()
		if err != nil {
			return nil, fmt.Errorf("sample_users.%s: %w", seg, err)
		}
		t.sampleUsers[s] = u
	}

	for cat, tip := range raw.Tips {
		t.tips[model.Category(cat)] = tip
	}

	for _, s := range model.Segments {
		if len(t.advice[s]) == 0 {
			return nil, fmt.Errorf("advice: missing segment %q", s)
		}
	}
	for _, s := range model.Segments {
		if _, ok := t.sampleUsers[s]; !ok {
			return nil, fmt.Errorf("sample_users: missing segment %q", s)
		}
	}

	return t, nil
}

func (ru rawUser) toSampleUser() (SampleUser, error) {
	income, err := decimal.NewFromString(ru.Income)
	if err != nil {
		return SampleUser{}, fmt.Errorf("income: %w", err)
	}

	u := SampleUser{
		Name:       ru.Name,
		Age:        ru.Age,
		Occupation: ru.Occupation,
		Income:     income,
		Experience: model.Experience(ru.Experience),
		Goals:      ru.Goals,
		Budget:     model.Allocation{Income: income},
	}
	if !u.Experience.Valid() {
		return SampleUser{}, fmt.Errorf("unknown experience %q", ru.Experience)
	}

	for _, ra := range ru.MonthlyBudget {
		amt, err := decimal.NewFromString(ra.Amount)
		if err != nil {
			return SampleUser{}, fmt.Errorf("monthly_budget.%s: %w", ra.Category, err)
		}
		u.Budget.Expenses = append(u.Budget.Expenses, model.CategoryAmount{
			Category: model.Category(ra.Category),
			Amount:   amt,
		})
	}

	if len(ru.Patterns) == 0 {
		return SampleUser{}, errors.New("spending_patterns: empty")
	}
	for _, c := range ru.TrendCategories {
		u.Spending.Categories = append(u.Spending.Categories, model.Category(c))
	}
	for _, rp := range ru.Patterns {
		p := model.SpendingPoint{Month: rp.Month, Values: make(map[model.Category]float64, len(rp.Values))}
		for c, v := range rp.Values {
			p.Values[model.Category(c)] = v
		}
		u.Spending.Points = append(u.Spending.Points, p)
	}

	return u, nil
}

// Advice returns the canned text for a segment and topic key.
func (t *Table) Advice(s model.Segment, key string) (string, bool) {
	text, ok := t.advice[s][key]
	return text, ok
}

// SampleUser returns the demo profile data for a segment.
func (t *Table) SampleUser(s model.Segment) (SampleUser, bool) {
	u, ok := t.sampleUsers[s]
	return u, ok
}

// Spending returns the sample spending series shown for a segment.
func (t *Table) Spending(s model.Segment) model.SpendingSeries {
	return t.sampleUsers[s].Spending
}

// Tip returns the optimization tip for a category, if any.
func (t *Table) Tip(c model.Category) (string, bool) {
	tip, ok := t.tips[c]
	return tip, ok
}
