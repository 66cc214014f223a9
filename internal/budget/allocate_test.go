package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/fincoach/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestClassifySegment(t *testing.T) {
	testcases := []struct {
		name       string
		occupation string
		age        int
		income     string
		want       model.Segment
	}{
		{"student token", "student", 40, "9000", model.SegmentStudent},
		{"young", "Engineer", 22, "9000", model.SegmentStudent},
		{"low income", "Teacher", 35, "1500", model.SegmentStudent},
		{"professional", "Teacher", 35, "5000", model.SegmentProfessional},
		{"age boundary", "Engineer", 23, "5000", model.SegmentProfessional},
		{"income boundary", "Engineer", 30, "2000", model.SegmentProfessional},
		{"just under income boundary", "Engineer", 30, "1999.99", model.SegmentStudent},
		{"capitalized token is not exact", "Student", 30, "5000", model.SegmentProfessional},
		{"college student", "College Student", 30, "5000", model.SegmentProfessional},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifySegment(tc.occupation, tc.age, dec(t, tc.income))
			assert.Equal(t, tc.want, got)
		})
	}
}

func amounts(a model.Allocation) map[model.Category]int64 {
	out := make(map[model.Category]int64, len(a.Expenses))
	for _, e := range a.Expenses {
		out[e.Category] = e.Amount.IntPart()
	}
	return out
}

func TestAllocateBudget_Student(t *testing.T) {
	a := AllocateBudget(model.SegmentStudent, decimal.NewFromInt(1200))

	assert.Equal(t, map[model.Category]int64{
		model.CategoryHousing:        396,
		model.CategoryFood:           300,
		model.CategoryTransportation: 96,
		model.CategoryTextbooks:      144,
		model.CategoryEntertainment:  120,
		model.CategorySavings:        144,
	}, amounts(a))
	assert.True(t, a.Income.Equal(decimal.NewFromInt(1200)))
}

func TestAllocateBudget_Professional(t *testing.T) {
	a := AllocateBudget(model.SegmentProfessional, decimal.NewFromInt(7500))
	got := amounts(a)

	assert.Equal(t, int64(1500), got[model.CategoryInvestments])
	assert.Equal(t, int64(1950), got[model.CategorySavings])
	assert.Equal(t, int64(2250), got[model.CategoryHousing])
	assert.Equal(t, int64(600), got[model.CategoryFood])
	assert.Equal(t, int64(375), got[model.CategoryTransportation])
	assert.Equal(t, int64(300), got[model.CategoryInsurance])
	assert.Equal(t, int64(525), got[model.CategoryEntertainment])
}

func TestAllocateBudget_CategorySetIsExact(t *testing.T) {
	want := map[model.Segment][]model.Category{
		model.SegmentStudent: {
			model.CategoryHousing, model.CategoryFood, model.CategoryTransportation,
			model.CategoryTextbooks, model.CategoryEntertainment, model.CategorySavings,
		},
		model.SegmentProfessional: {
			model.CategoryHousing, model.CategoryFood, model.CategoryTransportation,
			model.CategoryInsurance, model.CategoryEntertainment, model.CategoryInvestments,
			model.CategorySavings,
		},
	}

	for _, income := range []string{"0", "0.4", "1", "999.5", "2000", "7500", "1234567.89"} {
		for seg, cats := range want {
			a := AllocateBudget(seg, dec(t, income))
			assert.Equal(t, cats, a.Categories(), "segment=%s income=%s", seg, income)
			for _, e := range a.Expenses {
				assert.False(t, e.Amount.IsNegative(), "negative amount for %s", e.Category)
				assert.True(t, e.Amount.Equal(e.Amount.Round(0)), "non-integral amount %s", e.Amount)
			}
		}
	}
}

func TestAllocateBudget_RoundsHalfAwayFromZero(t *testing.T) {
	// 50 × 0.25 = 12.5 -> 13; 50 × 0.33 = 16.5 -> 17
	a := AllocateBudget(model.SegmentStudent, decimal.NewFromInt(50))
	food, _ := a.Amount(model.CategoryFood)
	housing, _ := a.Amount(model.CategoryHousing)

	assert.Equal(t, "13", food.String())
	assert.Equal(t, "17", housing.String())
}

func TestAllocateBudget_DriftIsNotReconciled(t *testing.T) {
	// Per-category rounding: 17+13+4+6+5+6 = 51 for an income of 50.
	a := AllocateBudget(model.SegmentStudent, decimal.NewFromInt(50))
	assert.Equal(t, "51", a.Total().String())
}

func TestAllocateBudget_Idempotent(t *testing.T) {
	income := dec(t, "3333.33")
	first := AllocateBudget(model.SegmentProfessional, income)
	second := AllocateBudget(model.SegmentProfessional, income)

	require.Len(t, second.Expenses, len(first.Expenses))
	for i := range first.Expenses {
		assert.Equal(t, first.Expenses[i].Category, second.Expenses[i].Category)
		assert.Equal(t, first.Expenses[i].Amount.String(), second.Expenses[i].Amount.String())
	}
}

func TestRules_FractionsSumToOne(t *testing.T) {
	for _, seg := range model.Segments {
		sum := decimal.Zero
		for _, r := range Rules(seg) {
			sum = sum.Add(r.Fraction)
		}
		assert.True(t, sum.Equal(decimal.NewFromInt(1)), "segment %s sums to %s", seg, sum)
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	rules := Rules(model.SegmentStudent)
	rules[0].Fraction = decimal.NewFromInt(1)

	f, ok := Fraction(model.SegmentStudent, model.CategoryHousing)
	require.True(t, ok)
	assert.Equal(t, "0.33", f.String())
}
