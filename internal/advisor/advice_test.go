package advisor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/fincoach/internal/content"
	"github.com/theirongolddev/fincoach/internal/model"
)

func newAdvisor(t *testing.T) (*Advisor, *content.Table) {
	t.Helper()
	tbl, err := content.Load()
	require.NoError(t, err)
	a, err := New(tbl)
	require.NoError(t, err)
	return a, tbl
}

func studentProfile() *model.Profile {
	return &model.Profile{Name: "Alex", Segment: model.SegmentStudent, Income: decimal.NewFromInt(1200)}
}

func professionalProfile() *model.Profile {
	return &model.Profile{Name: "Sarah", Segment: model.SegmentProfessional, Income: decimal.NewFromInt(7500)}
}

func cannedText(t *testing.T, tbl *content.Table, seg model.Segment, key string) string {
	t.Helper()
	text, ok := tbl.Advice(seg, key)
	require.True(t, ok, "%s.%s", seg, key)
	return text
}

func TestMatchTopic(t *testing.T) {
	testcases := []struct {
		msg  string
		want Topic
	}{
		{"Can you help me budget?", TopicBudget},
		{"I need a SPENDING PLAN", TopicBudget},
		{"how do I save more", TopicSavings},
		{"building an emergency fund", TopicSavings},
		{"tell me about investing", TopicInvestment},
		{"review my portfolio", TopicInvestment},
		{"when can I retire", TopicRetirement},
		{"student loan questions", TopicDebt},
		{"is my credit score ok", TopicDebt},
		{"do I owe taxes", TopicTax},
		{"hello there", TopicGeneral},
		{"", TopicGeneral},
	}

	for _, tc := range testcases {
		t.Run(tc.msg, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchTopic(tc.msg))
		})
	}
}

func TestMatchTopic_PrecedenceOrder(t *testing.T) {
	// Messages hitting several keyword sets resolve by rule order, not specificity.
	testcases := []struct {
		msg  string
		want Topic
	}{
		{"budget for my retirement savings", TopicBudget},
		{"invest my savings", TopicSavings},
		{"save on taxes", TopicSavings},
		{"investment loan", TopicInvestment},
		{"retirement tax", TopicRetirement},
		{"tax on debt", TopicDebt},
		// "saving" does not contain "save"
		{"How much should I be saving?", TopicGeneral},
	}

	for _, tc := range testcases {
		t.Run(tc.msg, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchTopic(tc.msg))
		})
	}
}

func TestNew_DispatchIsTotal(t *testing.T) {
	a, _ := newAdvisor(t)
	for _, topic := range Topics {
		for _, seg := range model.Segments {
			p := &model.Profile{Segment: seg, Income: decimal.NewFromInt(3000)}
			assert.NotEmpty(t, a.Respond(topic, p), "%s/%s", topic, seg)
		}
	}
}

func TestNew_RejectsMissingCannedText(t *testing.T) {
	tbl, err := content.Parse([]byte(`
advice:
  student:
    budgeting: x
  professional:
    budgeting: y
sample_users:
  student:
    income: "1"
    experience: Beginner
    spending_patterns: [{month: Jan, values: {food: 1}}]
  professional:
    income: "1"
    experience: Beginner
    spending_patterns: [{month: Jan, values: {food: 1}}]
`))
	require.NoError(t, err)

	_, err = New(tbl)
	assert.ErrorContains(t, err, "references missing content")
}

func TestSelectAdvice_NoProfile(t *testing.T) {
	a, _ := newAdvisor(t)
	for _, msg := range []string{"budget", "invest", "", "anything at all"} {
		assert.Equal(t, NoProfilePrompt, a.SelectAdvice(msg, nil))
	}
}

func TestSelectAdvice_BudgetIsCannedForBothSegments(t *testing.T) {
	a, tbl := newAdvisor(t)

	assert.Equal(t, cannedText(t, tbl, model.SegmentStudent, "budgeting"),
		a.SelectAdvice("Can you help me budget?", studentProfile()))
	assert.Equal(t, cannedText(t, tbl, model.SegmentProfessional, "budgeting"),
		a.SelectAdvice("Can you help me budget?", professionalProfile()))
}

func TestSelectAdvice_StudentInvestmentIsTemplated(t *testing.T) {
	a, tbl := newAdvisor(t)

	got := a.SelectAdvice("tell me about investing", studentProfile())
	assert.Equal(t, studentInvestment, got)
	assert.NotEqual(t, cannedText(t, tbl, model.SegmentProfessional, "investing"), got)
}

func TestSelectAdvice_CannedCells(t *testing.T) {
	a, tbl := newAdvisor(t)

	testcases := []struct {
		msg     string
		profile *model.Profile
		key     string
	}{
		{"how can I save", studentProfile(), "saving"},
		{"credit cards?", studentProfile(), "credit"},
		{"invest", professionalProfile(), "investing"},
		{"retirement", professionalProfile(), "retirement"},
		{"taxes", professionalProfile(), "tax_optimization"},
	}

	for _, tc := range testcases {
		t.Run(tc.key, func(t *testing.T) {
			want := cannedText(t, tbl, tc.profile.Segment, tc.key)
			assert.Equal(t, want, a.SelectAdvice(tc.msg, tc.profile))
		})
	}
}

func TestSelectAdvice_ProfessionalSavingsInterpolatesIncome(t *testing.T) {
	a, _ := newAdvisor(t)

	got := a.SelectAdvice("emergency fund tips", professionalProfile())
	assert.Contains(t, got, "Given your income of $7,500, aim to save at least 20% monthly - that's approximately $1,500.")

	p := professionalProfile()
	p.Income = decimal.RequireFromString("12345.5")
	got = a.SelectAdvice("savings", p)
	assert.Contains(t, got, "income of $12,345.5,")
	assert.Contains(t, got, "approximately $2,469.")
}

func TestSelectAdvice_TemplatedCells(t *testing.T) {
	a, _ := newAdvisor(t)

	assert.Equal(t, studentRetirement, a.SelectAdvice("retire early", studentProfile()))
	assert.Equal(t, professionalDebt, a.SelectAdvice("my debt", professionalProfile()))
	assert.Equal(t, studentTax, a.SelectAdvice("tax season", studentProfile()))
}

func TestSelectAdvice_GeneralFallbackIgnoresContent(t *testing.T) {
	a, _ := newAdvisor(t)

	for _, msg := range []string{"hi", "what's the weather", "help"} {
		assert.Equal(t, studentGeneral, a.SelectAdvice(msg, studentProfile()))
		assert.Equal(t, professionalGeneral, a.SelectAdvice(msg, professionalProfile()))
	}
}

func TestFormatAmount(t *testing.T) {
	testcases := map[string]string{
		"0":       "0",
		"999":     "999",
		"7500":    "7,500",
		"1234567": "1,234,567",
		"1234.5":  "1,234.5",
		"7500.00": "7,500",
		"2469.1":  "2,469.1",
	}
	for in, want := range testcases {
		assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)), in)
	}
}

func TestPersonalizedWelcome(t *testing.T) {
	p := studentProfile()
	p.Occupation = "College Student"
	got := PersonalizedWelcome(p)
	assert.Contains(t, got, "Hey Alex! 👋")
	assert.Contains(t, got, "you're a college student -")
	assert.Contains(t, got, "good financial habits! \n\nI'm here")
	assert.Contains(t, got, "I've got your back! \n\nWhat would you like")

	p = professionalProfile()
	p.Occupation = "Software Engineer"
	got = PersonalizedWelcome(p)
	assert.Contains(t, got, "Welcome, Sarah.")
	assert.Contains(t, got, "As a software engineer,")

	assert.Empty(t, PersonalizedWelcome(nil))
}

func TestLookupQuickAction(t *testing.T) {
	qa, ok := LookupQuickAction("investment")
	require.True(t, ok)
	assert.Equal(t, TopicInvestment, MatchTopic(qa.Prompt))

	_, ok = LookupQuickAction("nope")
	assert.False(t, ok)
}

func TestStudentGeneralKeepsParagraphBreak(t *testing.T) {
	assert.Contains(t, studentGeneral, "for your situation. \n\nWhat specific area")
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"budget", "spending plan"}, Keywords(TopicBudget))
	assert.Nil(t, Keywords(TopicGeneral))

	for _, topic := range Topics {
		for _, kw := range Keywords(topic) {
			assert.Equal(t, topic, MatchTopic("tell me about "+kw), kw)
		}
	}

	kws := Keywords(TopicTax)
	kws[0] = "mutated"
	assert.Equal(t, "tax", Keywords(TopicTax)[0], "Keywords returns a copy")
}
