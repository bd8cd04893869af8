// Package chat answers free-form career questions. It prefers the LLM when
// one is configured and falls back to keyword-routed canned answers, so the
// endpoint never fails on generation errors.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/types"
)

const fallbackAnswer = "That's a great question! I'm here to help you navigate your career journey. Based on your profile and goals, I can provide personalized advice on skills development, career transitions, and growth strategies. What specific aspect would you like to explore?"

// Service routes questions to the LLM or the canned answer table.
type Service struct {
	client llm.Client
}

// NewService returns a chat service. A nil client disables generation and
// serves canned answers only.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Answer responds to a question in the context of a profile. Generation
// failures are swallowed; the canned answer is always available.
func (s *Service) Answer(ctx context.Context, profile *types.Profile, question string) string {
	if s.client != nil {
		prompt := llm.BuildChatPrompt(profile, question)
		if text, err := s.client.GenerateContent(ctx, prompt, llm.TierLite); err == nil && strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text)
		}
	}
	return cannedAnswer(profile, question)
}

// cannedAnswer picks a response by keyword. The first matching bucket wins;
// bucket order is fixed.
func cannedAnswer(profile *types.Profile, question string) string {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, "salary", "pay"):
		return "Salaries vary by location and experience. Data Scientists typically earn ₹8L-₹25L, while Full Stack Developers earn ₹6L-₹18L. Focus on building strong skills first, and the compensation will follow!"
	case containsAny(q, "interview", "preparation"):
		return "For interview prep, I recommend: 1) Practice coding problems on LeetCode/HackerRank, 2) Prepare STAR method stories for behavioral questions, 3) Research the company and role thoroughly, 4) Practice explaining your projects clearly. Would you like specific tips for any career?"
	case containsAny(q, "skill", "learn"):
		return fmt.Sprintf("Based on your profile, I'd recommend focusing on %s first. Start with foundational concepts, then move to hands-on projects. Consistency is key - even 30 minutes daily makes a big difference!", firstInterest(profile))
	case containsAny(q, "project", "portfolio"):
		return "Great question! For your portfolio: 1) Choose projects that solve real problems, 2) Include a variety of skills, 3) Document your process and learnings, 4) Deploy your projects live, 5) Write clear README files. Quality over quantity!"
	case containsAny(q, "time", "long"):
		return fmt.Sprintf("Career transitions typically take 6-12 months with consistent effort. The key is setting realistic milestones and celebrating small wins. Your current skills in %s are already valuable!", firstSkill(profile))
	default:
		return fallbackAnswer
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func firstInterest(profile *types.Profile) string {
	if profile != nil && len(profile.Interests) > 0 {
		return profile.Interests[0]
	}
	return "your interests"
}

func firstSkill(profile *types.Profile) string {
	if profile != nil && len(profile.Skills) > 0 {
		return profile.Skills[0]
	}
	return "your field"
}
