package model

import "time"

// Role identifies who authored a conversation entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one message in the conversation log.
type Entry struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Insight is a short observation about the user's budget.
type Insight struct {
	Icon        string
	Title       string
	Description string
}

// SpendingPoint holds one month of sample spending per category.
type SpendingPoint struct {
	Month  string
	Values map[Category]float64
}

// SpendingSeries is an ordered set of monthly spending points for the
// trend chart.
type SpendingSeries struct {
	Categories []Category
	Points     []SpendingPoint
}

// Months returns the month labels in order.
func (s SpendingSeries) Months() []string {
	out := make([]string, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Month
	}
	return out
}

// Values returns one category's values across months.
func (s SpendingSeries) Values(c Category) []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Values[c]
	}
	return out
}
