package advisor

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fincoach/internal/model"
)

// WelcomeMessage greets a session that has no profile yet.
const WelcomeMessage = `Hello! I'm your AI-powered personal finance assistant. I'm here to help you with budgeting, investments, savings, and all your financial questions.

To provide you with personalized advice, please set up your profile first. I'll adapt my responses based on whether you're a student or a working professional.`

// PersonalizedWelcome greets a user right after their profile is saved.
func PersonalizedWelcome(p *model.Profile) string {
	if p == nil {
		return ""
	}
	occupation := strings.ToLower(p.Occupation)

	if p.Segment == model.SegmentStudent {
		return fmt.Sprintf("Hey %s! 👋 Awesome to meet you! I can see you're a %s - that's such an exciting time to start building good financial habits! \n\n"+
			`I'm here to help you navigate money management in a way that makes sense for your lifestyle. Whether you want to stretch your budget further, start building credit, or just figure out this whole "adulting with money" thing, I've got your back! `+"\n\n"+
			"What would you like to talk about first? 💰", p.Name, occupation)
	}

	return fmt.Sprintf(`Welcome, %s. It's a pleasure to assist you with your financial planning needs.

As a %s, you're in an excellent position to build substantial wealth through strategic financial planning. I'll provide you with comprehensive analysis and sophisticated strategies tailored to your professional status and income level.

I'm equipped to help you with advanced investment strategies, tax optimization, retirement planning, and comprehensive portfolio management. How may I assist you today?`, p.Name, occupation)
}

// QuickAction is a canned prompt offered as a shortcut.
type QuickAction struct {
	Name   string
	Label  string
	Prompt string
}

// QuickActions lists the shortcut prompts in menu order.
var QuickActions = []QuickAction{
	{Name: "budget", Label: "Budget Summary", Prompt: "Can you create a budget summary for me?"},
	{Name: "spending", Label: "Spending Analysis", Prompt: "Please analyze my spending patterns and suggest improvements."},
	{Name: "investment", Label: "Investment Advice", Prompt: "What are some good investment options for me?"},
	{Name: "savings", Label: "Savings Goal", Prompt: "How much should I be saving and what are some good strategies?"},
}

// LookupQuickAction finds a quick action by name.
func LookupQuickAction(name string) (QuickAction, bool) {
	for _, qa := range QuickActions {
		if qa.Name == name {
			return qa, true
		}
	}
	return QuickAction{}, false
}
