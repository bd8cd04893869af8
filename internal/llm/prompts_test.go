package llm

import (
	"strings"
	"testing"

	"github.com/jonathan/career-compass/internal/types"
)

func TestBuildReasoningPrompt_IncludesProfileContext(t *testing.T) {
	profile := &types.Profile{
		Kind:      types.KindGeneral,
		Skills:    []string{"Python", "SQL"},
		Interests: []string{"data analysis"},
		Education: "B.Tech Computer Science",
	}

	prompt := BuildReasoningPrompt(profile, "Data Scientist", []string{"Python"}, []string{"Machine Learning"})

	for _, want := range []string{"Data Scientist", "Python, SQL", "data analysis", "B.Tech Computer Science", "Machine Learning"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildReasoningPrompt_SparseProfile(t *testing.T) {
	prompt := BuildReasoningPrompt(&types.Profile{Kind: types.KindGeneral}, "UX Designer", nil, nil)

	if !strings.Contains(prompt, "UX Designer") {
		t.Errorf("prompt missing career title:\n%s", prompt)
	}
	if strings.Contains(prompt, "Their skills:") {
		t.Errorf("empty skill list should be omitted:\n%s", prompt)
	}
}

func TestBuildChatPrompt_StudentContext(t *testing.T) {
	profile := &types.Profile{Kind: types.KindStudent, Class: "12", Interests: []string{"medicine"}}

	prompt := BuildChatPrompt(profile, "How long does MBBS take?")

	for _, want := range []string{"class 12 student", "medicine", "How long does MBBS take?"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildChatPrompt_NilProfile(t *testing.T) {
	prompt := BuildChatPrompt(nil, "What pays well?")

	if !strings.Contains(prompt, "What pays well?") {
		t.Errorf("prompt missing question:\n%s", prompt)
	}
}
