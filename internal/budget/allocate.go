// Package budget classifies users into segments and derives their monthly
// budget allocation.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fincoach/internal/model"
)

// studentOccupation is the exact occupation token that forces the
// student segment. Matching is case-sensitive.
const studentOccupation = "student"

var (
	studentAgeCeiling    = 23
	studentIncomeCeiling = decimal.NewFromInt(2000)
)

// ClassifySegment applies the segment rule: occupation "student", or age
// under 23, or income under 2000 makes a Student; everything else is a
// Professional.
func ClassifySegment(occupation string, age int, income decimal.Decimal) model.Segment {
	if occupation == studentOccupation || age < studentAgeCeiling || income.LessThan(studentIncomeCeiling) {
		return model.SegmentStudent
	}
	return model.SegmentProfessional
}

// AllocationRule assigns a fixed fraction of income to one category.
type AllocationRule struct {
	Category model.Category
	Fraction decimal.Decimal
}

func rule(c model.Category, fraction string) AllocationRule {
	return AllocationRule{Category: c, Fraction: decimal.RequireFromString(fraction)}
}

// Fraction tables. Each sums to exactly 1.
var allocationRules = map[model.Segment][]AllocationRule{
	model.SegmentStudent: {
		rule(model.CategoryHousing, "0.33"),
		rule(model.CategoryFood, "0.25"),
		rule(model.CategoryTransportation, "0.08"),
		rule(model.CategoryTextbooks, "0.12"),
		rule(model.CategoryEntertainment, "0.10"),
		rule(model.CategorySavings, "0.12"),
	},
	model.SegmentProfessional: {
		rule(model.CategoryHousing, "0.30"),
		rule(model.CategoryFood, "0.08"),
		rule(model.CategoryTransportation, "0.05"),
		rule(model.CategoryInsurance, "0.04"),
		rule(model.CategoryEntertainment, "0.07"),
		rule(model.CategoryInvestments, "0.20"),
		rule(model.CategorySavings, "0.26"),
	},
}

// Rules returns a copy of the fraction table for a segment. Unknown segments
// use the professional table, matching ClassifySegment's fallthrough.
func Rules(segment model.Segment) []AllocationRule {
	rules, ok := allocationRules[segment]
	if !ok {
		rules = allocationRules[model.SegmentProfessional]
	}
	out := make([]AllocationRule, len(rules))
	copy(out, rules)
	return out
}

// Fraction returns the target fraction for a category within a segment.
func Fraction(segment model.Segment, c model.Category) (decimal.Decimal, bool) {
	for _, r := range Rules(segment) {
		if r.Category == c {
			return r.Fraction, true
		}
	}
	return decimal.Zero, false
}

// AllocateBudget computes round(income × fraction) for each of the segment's
// categories. Rounding is half away from zero and applied per category, so
// the total is allowed to drift from income.
//
// Income must be finite and non-negative; callers validate it first.
func AllocateBudget(segment model.Segment, income decimal.Decimal) model.Allocation {
	rules := Rules(segment)
	expenses := make([]model.CategoryAmount, len(rules))
	for i, r := range rules {
		expenses[i] = model.CategoryAmount{
			Category: r.Category,
			Amount:   income.Mul(r.Fraction).Round(0),
		}
	}
	return model.Allocation{Income: income, Expenses: expenses}
}
