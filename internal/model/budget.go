package model

import "github.com/shopspring/decimal"

// Category is a budget expense category.
type Category string

const (
	CategoryHousing        Category = "housing"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryTextbooks      Category = "textbooks"
	CategoryInsurance      Category = "insurance"
	CategoryEntertainment  Category = "entertainment"
	CategoryInvestments    Category = "investments"
	CategorySavings        Category = "savings"
)

// Title returns the category name with its first letter upper-cased.
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	b := []byte(c)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// CategoryAmount is one line of an allocation.
type CategoryAmount struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Allocation is the per-category budget derived from a segment and income.
// Expenses keep the segment's fixed category order.
type Allocation struct {
	Income   decimal.Decimal  `json:"income"`
	Expenses []CategoryAmount `json:"expenses"`
}

// Amount returns the allocated amount for a category.
func (a Allocation) Amount(c Category) (decimal.Decimal, bool) {
	for _, e := range a.Expenses {
		if e.Category == c {
			return e.Amount, true
		}
	}
	return decimal.Zero, false
}

// Categories returns the allocation's categories in order.
func (a Allocation) Categories() []Category {
	out := make([]Category, len(a.Expenses))
	for i, e := range a.Expenses {
		out[i] = e.Category
	}
	return out
}

// Total sums every category amount. Because each category is rounded on its
// own, the total may differ slightly from Income.
func (a Allocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range a.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// PercentOfIncome returns a category's amount as a percentage of income.
// Zero income yields zero.
func (a Allocation) PercentOfIncome(c Category) decimal.Decimal {
	if a.Income.IsZero() {
		return decimal.Zero
	}
	amt, _ := a.Amount(c)
	return amt.Div(a.Income).Mul(decimal.NewFromInt(100))
}

// SavingsRate is the savings category as a percentage of income.
func (a Allocation) SavingsRate() decimal.Decimal {
	return a.PercentOfIncome(CategorySavings)
}

// Share returns a category's fraction of the allocation total (0-1).
func (a Allocation) Share(c Category) float64 {
	total := a.Total()
	if total.IsZero() {
		return 0
	}
	amt, _ := a.Amount(c)
	return amt.Div(total).InexactFloat64()
}
