// Package advisor matches free-text messages to advice topics and selects
// canned or templated replies for the user's segment.
package advisor

import "strings"

// Topic is an advice category matched from a message.
type Topic string

const (
	TopicBudget     Topic = "budget"
	TopicSavings    Topic = "savings"
	TopicInvestment Topic = "investment"
	TopicRetirement Topic = "retirement"
	TopicDebt       Topic = "debt"
	TopicTax        Topic = "tax"
	TopicGeneral    Topic = "general"
)

// Topics lists every topic, general last.
var Topics = []Topic{
	TopicBudget, TopicSavings, TopicInvestment, TopicRetirement, TopicDebt, TopicTax, TopicGeneral,
}

type intentRule struct {
	topic    Topic
	keywords []string
}

// intentRules are evaluated in order and the first rule with a keyword
// contained in the message wins. Order matters: "save on taxes" is savings,
// "invest my savings" is savings, "credit card debt budget" is budget.
var intentRules = []intentRule{
	{TopicBudget, []string{"budget", "spending plan"}},
	{TopicSavings, []string{"save", "savings", "emergency fund"}},
	{TopicInvestment, []string{"invest", "investment", "portfolio"}},
	{TopicRetirement, []string{"retire", "retirement"}},
	{TopicDebt, []string{"debt", "loan", "credit"}},
	{TopicTax, []string{"tax", "taxes"}},
}

func (r intentRule) matches(lower string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// MatchTopic returns the first topic whose keywords appear in text
// (case-insensitive substring match), or TopicGeneral.
func MatchTopic(text string) Topic {
	lower := strings.ToLower(text)
	for _, r := range intentRules {
		if r.matches(lower) {
			return r.topic
		}
	}
	return TopicGeneral
}

// Keywords returns the keyword set for a topic. General has none.
func Keywords(t Topic) []string {
	for _, r := range intentRules {
		if r.topic == t {
			out := make([]string, len(r.keywords))
			copy(out, r.keywords)
			return out
		}
	}
	return nil
}
