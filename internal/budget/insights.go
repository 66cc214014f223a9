package budget

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fincoach/internal/model"
)

var (
	lowSavingsRate       = decimal.NewFromInt(10)
	excellentSavingsRate = decimal.NewFromInt(15)
	housingRatioCeiling  = decimal.NewFromInt(33)
)

// Insights derives budget observations from a profile's allocation.
// Checks run in a fixed order and the segment tip always comes last.
func Insights(p *model.Profile) []model.Insight {
	if p == nil {
		return nil
	}

	student := p.Segment == model.SegmentStudent
	alloc := p.Budget
	savingsRate := alloc.SavingsRate()

	var out []model.Insight

	if savingsRate.LessThan(lowSavingsRate) {
		desc := "Consider increasing your savings rate to at least 15-20% for optimal financial health."
		if student {
			desc = "Try to save at least 10% of your income, even if it's just $50-100 per month!"
		}
		out = append(out, model.Insight{Icon: "⚠️", Title: "Low Savings Rate", Description: desc})
	}

	if alloc.PercentOfIncome(model.CategoryHousing).GreaterThan(housingRatioCeiling) {
		desc := "Housing costs exceed 33% of income. Consider refinancing, relocating, or increasing income to optimize this ratio."
		if student {
			desc = "Your housing costs are high. Consider finding roommates or cheaper accommodation to free up money for other goals."
		}
		out = append(out, model.Insight{Icon: "🏠", Title: "High Housing Costs", Description: desc})
	}

	if inv, ok := alloc.Amount(model.CategoryInvestments); ok && inv.IsPositive() {
		out = append(out, model.Insight{
			Icon:        "📈",
			Title:       "Great Investment Habits",
			Description: "You're already investing for the future - that puts you ahead of most people your age!",
		})
	}

	if savingsRate.GreaterThanOrEqual(excellentSavingsRate) {
		desc := "Your savings rate demonstrates strong financial discipline. Consider maximizing tax-advantaged accounts next."
		if student {
			desc = "Your savings rate is fantastic! You're building great habits that will pay off big time later."
		}
		out = append(out, model.Insight{Icon: "🎯", Title: "Excellent Savings Rate", Description: desc})
	}

	if student {
		out = append(out, model.Insight{
			Icon:        "💡",
			Title:       "Student Tip",
			Description: "Focus on building an emergency fund of $1,000 first, then start investing small amounts regularly.",
		})
	} else {
		out = append(out, model.Insight{
			Icon:        "💼",
			Title:       "Professional Tip",
			Description: "Maximize your 401(k) match if available, then focus on Roth IRA contributions for tax diversification.",
		})
	}

	return out
}
