// Package llm - prompts.go builds the prompts used to enrich reasoning and
// answer career questions. The generated text is advisory only; callers fall
// back to canned templates when generation fails.
package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// BuildReasoningPrompt asks the model to explain a career match in two or
// three sentences grounded in the profile.
func BuildReasoningPrompt(profile *types.Profile, careerTitle string, strengths, missing []string) string {
	var sb strings.Builder

	sb.WriteString("You are a career counselor. Explain in 2-3 sentences why the career below suits this person.\n")
	sb.WriteString("Be specific and encouraging. Reference their actual skills and interests. Plain text only, no markdown.\n\n")

	fmt.Fprintf(&sb, "Career: %s\n", careerTitle)
	if len(profile.Skills) > 0 {
		fmt.Fprintf(&sb, "Their skills: %s\n", strings.Join(profile.Skills, ", "))
	}
	if len(profile.Interests) > 0 {
		fmt.Fprintf(&sb, "Their interests: %s\n", strings.Join(profile.Interests, ", "))
	}
	if profile.Education != "" {
		fmt.Fprintf(&sb, "Education: %s\n", profile.Education)
	}
	if len(strengths) > 0 {
		fmt.Fprintf(&sb, "Matching skills: %s\n", strings.Join(strengths, ", "))
	}
	if len(missing) > 0 {
		fmt.Fprintf(&sb, "Skills still to learn: %s\n", strings.Join(missing, ", "))
	}

	return sb.String()
}

// BuildChatPrompt frames a free-form career question with profile context so
// answers stay personal rather than generic.
func BuildChatPrompt(profile *types.Profile, question string) string {
	var sb strings.Builder

	sb.WriteString("You are a friendly career guidance assistant for users in India.\n")
	sb.WriteString("Answer the question below concisely and practically. Plain text only, no markdown.\n\n")

	if profile != nil {
		if len(profile.Skills) > 0 {
			fmt.Fprintf(&sb, "The user's skills: %s\n", strings.Join(profile.Skills, ", "))
		}
		if len(profile.Interests) > 0 {
			fmt.Fprintf(&sb, "The user's interests: %s\n", strings.Join(profile.Interests, ", "))
		}
		if profile.Kind == types.KindStudent && profile.Class != "" {
			fmt.Fprintf(&sb, "The user is a class %s student.\n", profile.Class)
		}
	}

	fmt.Fprintf(&sb, "\nQuestion: %s\n", question)
	return sb.String()
}
