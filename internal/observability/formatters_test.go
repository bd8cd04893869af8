package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/types"
)

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := []types.Recommendation{
		{
			Career:         &types.Career{Title: "Data Scientist"},
			MatchScore:     0.82,
			StrengthSkills: []string{"Python", "SQL"},
			MissingSkills:  []string{"Statistics"},
		},
	}

	p.PrintRecommendations(recs)
	output := buf.String()

	assert.Contains(t, output, "CAREER RECOMMENDATIONS")
	assert.Contains(t, output, "Data Scientist")
	assert.Contains(t, output, "82%")
	assert.Contains(t, output, "Python, SQL")
	assert.Contains(t, output, "Statistics")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	stages := []types.RoadmapStage{
		{
			ID:       1,
			Title:    "Master Python",
			Duration: "4-6 weeks",
			Priority: types.PriorityHigh,
			Type:     types.StageSkill,
			Resources: []types.Resource{
				{Title: "Python for Everybody"},
			},
		},
		{ID: 2, Title: "Build a Portfolio Project", Duration: "6-8 weeks", Priority: types.PriorityHigh, Type: types.StageProject},
	}

	p.PrintRoadmap(stages)
	output := buf.String()

	assert.Contains(t, output, "LEARNING ROADMAP")
	assert.Contains(t, output, "Master Python")
	assert.Contains(t, output, "4-6 weeks")
	assert.Contains(t, output, "Python for Everybody")
}

func TestPrintStudentRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	stages := []types.StudentStage{
		{Stage: "Higher Education", Duration: "4 years", Description: "Complete B.Tech"},
		{Stage: "Career Start", Duration: "1-2 years", Description: "Begin as Developer"},
	}

	p.PrintStudentRoadmap(stages)
	output := buf.String()

	assert.Contains(t, output, "CAREER PLAN")
	assert.Contains(t, output, "Higher Education")
	assert.Contains(t, output, "Begin as Developer")
}

func TestPrintComparison(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	comparison := &types.Comparison{
		First:  &types.CareerPath{Title: "Software Engineer"},
		Second: &types.CareerPath{Title: "Doctor"},
		Fields: types.ComparisonFields{
			Duration:       "4 years is shorter than 5 years",
			Difficulty:     "First option is easier",
			Cost:           "Software Engineer is generally more affordable",
			JobDemand:      "Both have similar job demand: high",
			Salary:         "Both have similar salary ranges",
			Recommendation: "Both careers are excellent choices.",
		},
	}

	p.PrintComparison(comparison)
	output := buf.String()

	assert.Contains(t, output, "CAREER COMPARISON")
	assert.Contains(t, output, "Software Engineer vs Doctor")
	assert.Contains(t, output, "similar job demand")
}

func TestPrintComparison_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintComparison(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSchemes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	schemes := []types.Scheme{
		{Name: "National Scholarship Portal", Amount: "₹10,000 - ₹2,00,000 per year"},
	}

	p.PrintSchemes(schemes)
	output := buf.String()

	assert.Contains(t, output, "GOVERNMENT SCHEMES")
	assert.Contains(t, output, "National Scholarship Portal")
}
