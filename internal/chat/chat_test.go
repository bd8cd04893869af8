package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/types"
)

// stubClient returns a fixed answer or error for every prompt.
type stubClient struct {
	text string
	err  error
}

func (c *stubClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return c.text, c.err
}

func (c *stubClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return c.text, c.err
}

func (c *stubClient) GetModel(llm.ModelTier) string { return "stub" }
func (c *stubClient) Close() error                  { return nil }

func TestAnswerPrefersLLM(t *testing.T) {
	svc := NewService(&stubClient{text: "Ask me anything about careers."})

	got := svc.Answer(context.Background(), nil, "what should I do?")
	assert.Equal(t, "Ask me anything about careers.", got)
}

func TestAnswerFallsBackOnGenerationError(t *testing.T) {
	svc := NewService(&stubClient{err: errors.New("quota exceeded")})

	got := svc.Answer(context.Background(), nil, "tell me about salary expectations")
	assert.Contains(t, got, "Salaries vary by location and experience")
}

func TestCannedAnswerKeywordRouting(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	cases := []struct {
		question string
		want     string
	}{
		{"How much do they pay?", "Salaries vary"},
		{"Any interview tips?", "interview prep"},
		{"Which skill should I learn?", "foundational concepts"},
		{"What goes in a portfolio?", "portfolio"},
		{"How long does a transition take?", "6-12 months"},
		{"Tell me something", "career journey"},
	}
	for _, tc := range cases {
		assert.Contains(t, svc.Answer(ctx, nil, tc.question), tc.want, tc.question)
	}
}

func TestCannedAnswersPersonalized(t *testing.T) {
	svc := NewService(nil)
	profile := &types.Profile{
		Kind:      types.KindGeneral,
		Skills:    []string{"Python"},
		Interests: []string{"machine learning"},
	}

	got := svc.Answer(context.Background(), profile, "what should I learn next?")
	assert.Contains(t, got, "machine learning")

	got = svc.Answer(context.Background(), profile, "how long will this take?")
	assert.Contains(t, got, "Python")
}
