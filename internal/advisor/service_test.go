package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/govdata"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/logging"
	"github.com/jonathan/career-compass/internal/ranking"
	"github.com/jonathan/career-compass/internal/types"
)

func testStore() catalog.Store {
	careers := []types.Career{
		{
			ID:             "data-scientist",
			Title:          "Data Scientist",
			Description:    "Analyze data to find insights",
			RequiredSkills: []string{"Python", "SQL", "Statistics"},
			Industry:       "Technology",
		},
		{
			ID:             "ux-designer",
			Title:          "UX Designer",
			Description:    "Design user experiences",
			RequiredSkills: []string{"Figma", "User Research"},
			Industry:       "Design",
		},
	}
	paths := []types.CareerPath{
		{
			ID:       "software-engineer",
			Title:    "Software Engineer",
			Overview: "Build software systems with programming and problem solving",
			Eligibility: types.Eligibility{
				Streams:      []string{"science"},
				Subjects:     []string{"Mathematics", "Physics"},
				MinimumMarks: 60,
			},
			KeySkills:        []string{"programming", "problem solving"},
			JobOpportunities: []string{"Developer", "Tech Lead"},
			Qualifications:   []string{"B.Tech"},
			EntranceExams:    []string{"JEE Main"},
			Duration:         "4 years",
			Difficulty:       types.DifficultyMedium,
			JobDemand:        types.TierHigh,
			SalaryRange: types.SalaryRange{
				India: types.SalaryBounds{Min: 400_000, Max: 2_000_000},
			},
		},
	}
	resources := []types.Resource{
		{ID: "python-basics", Title: "Python for Everybody", Type: "course"},
		{ID: "aws-cert", Title: "AWS Certified Cloud Practitioner", Type: types.ResourceTypeCertification},
	}
	return catalog.NewMemoryStore(careers, paths, resources)
}

func generalProfile() *types.Profile {
	return &types.Profile{
		Kind:      types.KindGeneral,
		Name:      "Asha",
		Email:     "asha@example.com",
		Education: "B.Tech Computer Science",
		Skills:    []string{"Python", "SQL"},
		Interests: []string{"data"},
	}
}

func studentProfile() *types.Profile {
	return &types.Profile{
		Kind:          types.KindStudent,
		Name:          "Ravi",
		Email:         "ravi@example.com",
		Class:         "12",
		CurrentStream: "science",
		Subjects:      []string{"Mathematics", "Physics"},
		Marks:         &types.Marks{Overall: 88},
		Interests:     []string{"programming"},
	}
}

func newTestAdvisor(opts ...Option) *Advisor {
	return New(testStore(), &ranking.FixedSource{Values: []float64{0}}, logging.Nop(), opts...)
}

type stubLLM struct {
	text string
	err  error
}

func (c *stubLLM) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return c.text, c.err
}

func (c *stubLLM) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return c.text, c.err
}

func (c *stubLLM) GetModel(llm.ModelTier) string { return "stub" }
func (c *stubLLM) Close() error                  { return nil }

type stubProvider struct {
	demand *types.DemandData
	err    error
}

func (p *stubProvider) Schemes(ctx context.Context, profile *types.Profile) ([]types.Scheme, error) {
	return govdata.NewStaticProvider().Schemes(ctx, profile)
}

func (p *stubProvider) MarketData(ctx context.Context) ([]types.MarketData, error) {
	return govdata.NewStaticProvider().MarketData(ctx)
}

func (p *stubProvider) CareerDemand(context.Context, string) (*types.DemandData, error) {
	return p.demand, p.err
}

func TestRecommendCareersValidatesProfile(t *testing.T) {
	advisor := newTestAdvisor()

	_, err := advisor.RecommendCareers(context.Background(), &types.Profile{Kind: types.KindGeneral, Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestRecommendCareersCannedReasoning(t *testing.T) {
	advisor := newTestAdvisor()

	recs, err := advisor.RecommendCareers(context.Background(), generalProfile())
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	assert.Equal(t, "data-scientist", recs[0].Career.ID)
	assert.Contains(t, recs[0].Reasoning, "Python and SQL")
}

func TestRecommendCareersLLMEnrichment(t *testing.T) {
	advisor := newTestAdvisor(WithLLM(&stubLLM{text: "A hand-written explanation."}))

	recs, err := advisor.RecommendCareers(context.Background(), generalProfile())
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "A hand-written explanation.", recs[0].Reasoning)
}

func TestRecommendCareersLLMFailureKeepsCannedReasoning(t *testing.T) {
	advisor := newTestAdvisor(WithLLM(&stubLLM{err: errors.New("quota exceeded")}))

	recs, err := advisor.RecommendCareers(context.Background(), generalProfile())
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0].Reasoning, "Python and SQL")
}

func TestRecommendPathsAttachesEnrichment(t *testing.T) {
	demand := &types.DemandData{Career: "Software Engineer", DemandScore: 90}
	advisor := newTestAdvisor(WithDataProvider(&stubProvider{demand: demand}))

	recs, err := advisor.RecommendPaths(context.Background(), studentProfile())
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "software-engineer", rec.CareerPath.ID)
	assert.NotEmpty(t, rec.Roadmap)
	assert.Equal(t, "Entrance Preparation", rec.Roadmap[0].Stage)

	names := make([]string, 0, len(rec.Scholarships))
	for _, s := range rec.Scholarships {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "National Merit Scholarship")
	assert.Contains(t, names, "AICTE Pragati Scholarship")

	require.NotNil(t, rec.Demand)
	assert.Equal(t, 90, rec.Demand.DemandScore)
}

func TestRecommendPathsDemandFailureIsSoft(t *testing.T) {
	advisor := newTestAdvisor(WithDataProvider(&stubProvider{err: errors.New("portal down")}))

	recs, err := advisor.RecommendPaths(context.Background(), studentProfile())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].Demand)
	assert.NotEmpty(t, recs[0].Roadmap, "core result unaffected by enrichment failure")
}

func TestRoadmapUnknownCareer(t *testing.T) {
	advisor := newTestAdvisor()

	_, err := advisor.Roadmap(context.Background(), generalProfile(), "astronaut")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRoadmapForKnownCareer(t *testing.T) {
	advisor := newTestAdvisor()

	stages, err := advisor.Roadmap(context.Background(), generalProfile(), "data-scientist")
	require.NoError(t, err)

	// Statistics is missing from the profile, so one skill stage precedes
	// the three mandatory stages.
	require.Len(t, stages, 4)
	assert.Equal(t, "Master Statistics", stages[0].Title)
	assert.Equal(t, types.StageExperience, stages[3].Type)
}

func TestCompareThroughAdvisor(t *testing.T) {
	advisor := newTestAdvisor()

	_, err := advisor.Compare(context.Background(), "software-engineer", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestParentExplanation(t *testing.T) {
	advisor := newTestAdvisor()

	recs, err := advisor.RecommendPaths(context.Background(), studentProfile())
	require.NoError(t, err)

	note := ParentExplanation(recs)
	assert.Contains(t, note, "**Dear Parents,**")
	assert.Contains(t, note, "Software Engineer")
	assert.Contains(t, note, "₹4.0 - ₹20.0 lakhs per year")
	assert.Contains(t, note, "Job demand: HIGH")

	assert.Empty(t, ParentExplanation(nil))
}
