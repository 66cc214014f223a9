package advisor

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fincoach/internal/content"
	"github.com/theirongolddev/fincoach/internal/model"
)

// NoProfilePrompt is returned for every message until a profile exists.
const NoProfilePrompt = "I'd love to help you with that! However, I'll need to know more about your financial situation first. Please set up your profile so I can provide personalized advice that's right for you."

// responder is one cell of the topic × segment matrix: either a canned
// content key or a template over the profile.
type responder struct {
	canned   string
	template func(p *model.Profile) string
}

func canned(key string) responder { return responder{canned: key} }

func templated(fn func(p *model.Profile) string) responder { return responder{template: fn} }

func fixed(text string) responder {
	return templated(func(*model.Profile) string { return text })
}

var professionalSavingsRate = decimal.RequireFromString("0.2")

// dispatch must hold a cell for every (topic, segment) pair; New rejects a
// matrix with holes.
var dispatch = map[Topic]map[model.Segment]responder{
	TopicBudget: {
		model.SegmentStudent:      canned("budgeting"),
		model.SegmentProfessional: canned("budgeting"),
	},
	TopicSavings: {
		model.SegmentStudent:      canned("saving"),
		model.SegmentProfessional: templated(professionalSavings),
	},
	TopicInvestment: {
		model.SegmentStudent:      fixed(studentInvestment),
		model.SegmentProfessional: canned("investing"),
	},
	TopicRetirement: {
		model.SegmentStudent:      fixed(studentRetirement),
		model.SegmentProfessional: canned("retirement"),
	},
	TopicDebt: {
		model.SegmentStudent:      canned("credit"),
		model.SegmentProfessional: fixed(professionalDebt),
	},
	TopicTax: {
		model.SegmentStudent:      fixed(studentTax),
		model.SegmentProfessional: canned("tax_optimization"),
	},
	TopicGeneral: {
		model.SegmentStudent:      fixed(studentGeneral),
		model.SegmentProfessional: fixed(professionalGeneral),
	},
}

const (
	studentInvestment = "Great question! As a student, start simple: consider low-cost index funds or robo-advisors with small monthly contributions ($25-50). Focus on building the investing habit first. Once you graduate and increase your income, you can explore more sophisticated strategies. The key is starting early - even small amounts compound over time! 📈"

	studentRetirement = "Retirement might seem super far away, but starting to think about it now is brilliant! 🌟 Even contributing $25/month to a Roth IRA while you're a student can grow to hundreds of thousands by retirement thanks to compound interest. Start small, think long-term, and increase contributions as your income grows!"

	professionalDebt = "Debt management is crucial for wealth building. Prioritize high-interest debt first (credit cards), maintain good credit (keep utilization under 30%), and consider strategic debt like mortgages that can build equity. For student loans, evaluate refinancing options carefully, considering the loss of federal protections."

	studentTax = "Taxes as a student can be pretty straightforward! Make sure you're claiming education credits if eligible, and keep track of any work-related expenses. If you're working part-time, you might get most of your taxes back. Don't stress too much about complex tax strategies yet - focus on building good record-keeping habits! 📋"

	studentGeneral = "That's a great question! 🤔 As a college student, you're in such a good position to build strong financial habits. Whether it's about budgeting, saving, building credit, or planning for the future, I'm here to help break things down in ways that make sense for your situation. \n\n" +
		`What specific area would you like to dive into? I can help with budgeting tips, savings strategies, or even just figuring out how to make your money stretch further! 💪`

	professionalGeneral = `Thank you for that question. Given your professional background and income level, I can provide detailed analysis and strategic recommendations across various financial domains.

I specialize in comprehensive financial planning including investment portfolio optimization, tax-efficient strategies, retirement planning, and wealth accumulation techniques. Would you like me to focus on a specific area of your financial planning, or would you prefer a comprehensive analysis of your current financial position?`
)

func professionalSavings(p *model.Profile) string {
	target := p.Income.Mul(professionalSavingsRate).Round(0)
	return fmt.Sprintf("Building wealth requires a systematic savings approach. I recommend maintaining 6 months of expenses in a high-yield savings account for emergencies, then focusing on tax-advantaged investments. Given your income of $%s, aim to save at least 20%% monthly - that's approximately $%s.",
		FormatAmount(p.Income), FormatAmount(target))
}

// FormatAmount renders a money amount with thousands separators and no
// trailing zeros, e.g. 7500 -> "7,500", 1234.5 -> "1,234.5".
func FormatAmount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return humanize.Comma(d.IntPart())
	}
	return humanize.Commaf(d.Round(3).InexactFloat64())
}

// Advisor selects replies from the content table.
type Advisor struct {
	table *content.Table
}

// New returns an Advisor after checking that every (topic, segment) cell
// resolves to either existing canned text or a template.
func New(table *content.Table) (*Advisor, error) {
	if err := checkDispatch(table); err != nil {
		return nil, err
	}
	return &Advisor{table: table}, nil
}

func checkDispatch(table *content.Table) error {
	for _, topic := range Topics {
		row, ok := dispatch[topic]
		if !ok {
			return fmt.Errorf("advice matrix: no row for topic %q", topic)
		}
		for _, seg := range model.Segments {
			cell, ok := row[seg]
			if !ok {
				return fmt.Errorf("advice matrix: no cell for %s/%s", topic, seg)
			}
			switch {
			case cell.canned != "":
				if _, ok := table.Advice(seg, cell.canned); !ok {
					return fmt.Errorf("advice matrix: %s/%s references missing content %q", topic, seg, cell.canned)
				}
			case cell.template == nil:
				return fmt.Errorf("advice matrix: %s/%s has neither content nor template", topic, seg)
			}
		}
	}
	return nil
}

// SelectAdvice returns the reply for a message. Without a profile it always
// returns NoProfilePrompt.
func (a *Advisor) SelectAdvice(text string, p *model.Profile) string {
	if p == nil {
		return NoProfilePrompt
	}
	return a.Respond(MatchTopic(text), p)
}

// Respond resolves a topic for the profile's segment. Unknown segments are
// answered as professionals, matching the classifier's fallthrough.
func (a *Advisor) Respond(topic Topic, p *model.Profile) string {
	if p == nil {
		return NoProfilePrompt
	}
	seg := p.Segment
	if !seg.Valid() {
		seg = model.SegmentProfessional
	}
	row, ok := dispatch[topic]
	if !ok {
		row = dispatch[TopicGeneral]
	}
	cell := row[seg]
	if cell.canned != "" {
		text, _ := a.table.Advice(seg, cell.canned)
		return text
	}
	return cell.template(p)
}
