package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func makeCareers(n int) []types.Career {
	careers := make([]types.Career, 0, n)
	for i := 0; i < n; i++ {
		careers = append(careers, types.Career{
			ID:             fmt.Sprintf("career-%d", i),
			Title:          fmt.Sprintf("Career %d", i),
			Description:    "A generic role.",
			RequiredSkills: []string{"Skill A", "Skill B"},
			Industry:       "Industry",
		})
	}
	return careers
}

func TestRecommendCareers_TopThree(t *testing.T) {
	profile := &types.Profile{Kind: types.KindGeneral, Skills: []string{"Skill A"}}

	recs := noRandom().RecommendCareers(profile, makeCareers(10))

	require.Len(t, recs, TopN)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}
}

func TestRecommendCareers_SmallCatalogReturnsAll(t *testing.T) {
	profile := &types.Profile{Kind: types.KindGeneral}

	recs := noRandom().RecommendCareers(profile, makeCareers(2))

	assert.Len(t, recs, 2)
}

func TestRecommendCareers_TiesKeepCatalogOrder(t *testing.T) {
	profile := &types.Profile{Kind: types.KindGeneral, Skills: []string{"Skill A"}}

	// Identical careers score identically; stable sort keeps input order.
	recs := noRandom().RecommendCareers(profile, makeCareers(5))

	require.Len(t, recs, TopN)
	assert.Equal(t, "career-0", recs[0].Career.ID)
	assert.Equal(t, "career-1", recs[1].Career.ID)
	assert.Equal(t, "career-2", recs[2].Career.ID)
}

func TestRecommendCareers_ReasoningNeverEmpty(t *testing.T) {
	profile := &types.Profile{Kind: types.KindGeneral}

	recs := noRandom().RecommendCareers(profile, makeCareers(3))

	for _, rec := range recs {
		assert.NotEmpty(t, rec.Reasoning)
	}
}

func TestRecommendCareers_EndToEndScenario(t *testing.T) {
	profile := &types.Profile{
		Kind:      types.KindGeneral,
		Skills:    []string{"Python", "SQL"},
		Interests: []string{"Data Science"},
		Education: "B.Tech Computer Science",
	}
	career := dataScientist()

	recs := noRandom().RecommendCareers(profile, []types.Career{career})

	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Contains(t, rec.StrengthSkills, "Python")
	assert.Contains(t, rec.StrengthSkills, "SQL")
	assert.Contains(t, rec.MissingSkills, "Statistics")
	assert.Contains(t, rec.MissingSkills, "Machine Learning")
	assert.Contains(t, rec.Reasoning, "Your skills in Python and SQL")
	assert.Contains(t, rec.Reasoning, "technical education background")
}

func TestRecommendPaths_EligibilityGateExcludesRegardlessOfScore(t *testing.T) {
	artsOnly := types.CareerPath{
		ID:       "fine-arts",
		Title:    "Fine Arts",
		Overview: "Perfect match for every possible interest a student could have.",
		Eligibility: types.Eligibility{
			Streams:      []string{"arts"},
			Subjects:     []string{"Fine Arts"},
			MinimumMarks: 0,
		},
		KeySkills:   []string{"Creativity"},
		SalaryRange: types.SalaryRange{India: types.SalaryBounds{Min: 100000, Max: 500000}},
	}
	profile := &types.Profile{
		Kind:          types.KindStudent,
		CurrentStream: "science",
		Marks:         &types.Marks{Overall: 99},
		Interests:     []string{"Creativity", "Fine Arts"},
	}

	recs := noRandom().RecommendPaths(profile, []types.CareerPath{artsOnly})

	assert.Empty(t, recs)
}

func TestRecommendPaths_SortedAndTruncated(t *testing.T) {
	paths := make([]types.CareerPath, 0, 5)
	for i := 0; i < 5; i++ {
		p := sciencePath()
		p.ID = fmt.Sprintf("path-%d", i)
		paths = append(paths, p)
	}
	profile := &types.Profile{
		Kind:          types.KindStudent,
		CurrentStream: "science",
		Marks:         &types.Marks{Overall: 80},
		Interests:     []string{"Programming"},
	}

	recs := noRandom().RecommendPaths(profile, paths)

	require.Len(t, recs, TopN)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}
}

func TestRecommendPaths_EmptyWhenNothingEligible(t *testing.T) {
	path := sciencePath()
	profile := &types.Profile{
		Kind:  types.KindStudent,
		Marks: &types.Marks{Overall: 30},
	}

	recs := noRandom().RecommendPaths(profile, []types.CareerPath{path})

	assert.Empty(t, recs)
}
