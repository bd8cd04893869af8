package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelsOverlap_BidirectionalContainment(t *testing.T) {
	assert.True(t, LabelsOverlap("Python", "python"))
	assert.True(t, LabelsOverlap("SQL", "Advanced SQL"))
	assert.True(t, LabelsOverlap("Advanced SQL", "SQL"))
	assert.True(t, LabelsOverlap("machine learning", "Machine Learning Engineer"))
	assert.False(t, LabelsOverlap("Java", "Python"))
}

func TestLabelsOverlap_EmptyLabels(t *testing.T) {
	assert.False(t, LabelsOverlap("", "Python"))
	assert.False(t, LabelsOverlap("Python", ""))
	assert.False(t, LabelsOverlap("", ""))
	assert.False(t, LabelsOverlap("   ", "Python"))
}

func TestTextContainsLabel(t *testing.T) {
	overview := "Analyze complex data to help businesses make informed decisions."
	assert.True(t, TextContainsLabel(overview, "data"))
	assert.True(t, TextContainsLabel(overview, "Complex Data"))
	assert.False(t, TextContainsLabel(overview, "medicine"))
	assert.False(t, TextContainsLabel(overview, ""))
}

func TestFilterOverlapping_PreservesOrder(t *testing.T) {
	got := FilterOverlapping(
		[]string{"Python", "Java", "SQL"},
		[]string{"sql databases", "python scripting"},
	)
	assert.Equal(t, []string{"Python", "SQL"}, got)
}

func TestPartitionSkills_DisjointAndComplete(t *testing.T) {
	required := []string{"Python", "Statistics", "Machine Learning", "SQL"}
	possessed := []string{"python", "sql"}

	strengths, missing := PartitionSkills(required, possessed)

	assert.Equal(t, []string{"Python", "SQL"}, strengths)
	assert.Equal(t, []string{"Statistics", "Machine Learning"}, missing)
	assert.Len(t, append(strengths, missing...), len(required))
}

func TestPartitionSkills_EmptyPossessed(t *testing.T) {
	required := []string{"Go", "Kubernetes"}

	strengths, missing := PartitionSkills(required, nil)

	assert.Empty(t, strengths)
	assert.Equal(t, required, missing)
}

func TestParseSalaryExpectation_Buckets(t *testing.T) {
	assert.Equal(t, float64(1_000_000), ParseSalaryExpectation("high"))
	assert.Equal(t, float64(1_000_000), ParseSalaryExpectation("10+ LPA"))
	assert.Equal(t, float64(500_000), ParseSalaryExpectation("medium"))
	assert.Equal(t, float64(500_000), ParseSalaryExpectation("5-10 lakhs"))
	assert.Equal(t, float64(300_000), ParseSalaryExpectation("low"))
	assert.Equal(t, float64(300_000), ParseSalaryExpectation("3-5"))
}

func TestParseSalaryExpectation_Default(t *testing.T) {
	assert.Equal(t, float64(400_000), ParseSalaryExpectation(""))
	assert.Equal(t, float64(400_000), ParseSalaryExpectation("whatever pays the bills"))
}
