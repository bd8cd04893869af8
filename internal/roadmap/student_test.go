package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func engineeringPath() *types.CareerPath {
	return &types.CareerPath{
		ID:       "software-engineer",
		Title:    "Software Engineer",
		Overview: "Build software systems.",
		Eligibility: types.Eligibility{
			Streams:      []string{"science"},
			Subjects:     []string{"Mathematics", "Physics", "Computer Science"},
			MinimumMarks: 60,
		},
		JobOpportunities: []string{"Software Developer", "Backend Engineer", "Engineering Manager"},
		EntranceExams:    []string{"JEE Main", "JEE Advanced", "BITSAT"},
		Qualifications:   []string{"B.Tech Computer Science", "B.E."},
		Duration:         "4 years (B.Tech)",
	}
}

func TestStudent_ClassTenGetsPreparationStage(t *testing.T) {
	gen := NewGenerator(testStore())
	profile := &types.Profile{Kind: types.KindStudent, Class: "10"}

	stages := gen.Student(profile, engineeringPath())

	require.Len(t, stages, 5)
	assert.Equal(t, "Class 11-12", stages[0].Stage)
	assert.Contains(t, stages[0].Description, "science stream")
	assert.Contains(t, stages[0].Requirements[1], "Mathematics and Physics")
}

func TestStudent_ClassTwelveSkipsPreparationStage(t *testing.T) {
	gen := NewGenerator(testStore())
	profile := &types.Profile{Kind: types.KindStudent, Class: "12"}

	stages := gen.Student(profile, engineeringPath())

	require.Len(t, stages, 4)
	assert.Equal(t, "Entrance Preparation", stages[0].Stage)
	assert.Contains(t, stages[0].Description, "JEE Main or JEE Advanced")
	assert.Contains(t, stages[0].Requirements[0], "60%+")
}

func TestStudent_NoEntranceExamSentinelSkipsStage(t *testing.T) {
	gen := NewGenerator(testStore())
	path := engineeringPath()
	path.EntranceExams = []string{"No specific entrance exams required"}
	profile := &types.Profile{Kind: types.KindStudent, Class: "12"}

	stages := gen.Student(profile, path)

	require.Len(t, stages, 3)
	assert.Equal(t, "Higher Education", stages[0].Stage)
	assert.Equal(t, "Career Start", stages[1].Stage)
	assert.Equal(t, "Career Growth", stages[2].Stage)
}

func TestStudent_MandatoryStagesTemplatedFromCareer(t *testing.T) {
	gen := NewGenerator(testStore())
	profile := &types.Profile{Kind: types.KindStudent, Class: "12"}

	stages := gen.Student(profile, engineeringPath())

	higherEd := stages[1]
	assert.Equal(t, "4 years (B.Tech)", higherEd.Duration)
	assert.Contains(t, higherEd.Description, "B.Tech Computer Science")

	start := stages[2]
	assert.Contains(t, start.Description, "Begin as Software Developer")

	growth := stages[3]
	assert.Contains(t, growth.Description, "Advance to Engineering Manager")
	assert.Equal(t, "5+ years", growth.Duration)
}
