package types

// Tier levels shared by difficulty and job demand fields.
const (
	TierLow    = "low"
	TierMedium = "medium"
	TierHigh   = "high"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Career is a catalog entry for the general-user flow. Catalog entries are
// static and never mutated at runtime.
type Career struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	AverageSalary   string   `json:"average_salary"`
	GrowthRate      string   `json:"growth_rate"`
	Industry        string   `json:"industry"`
	ExperienceLevel string   `json:"experience_level"`
	Education       []string `json:"education"`
	WorkEnvironment string   `json:"work_environment,omitempty"`
	JobOutlook      string   `json:"job_outlook,omitempty"`
}

// CareerPath is a catalog entry for the student flow. It carries the
// eligibility and economic attributes the student scorer and comparator need.
type CareerPath struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Overview        string      `json:"overview"`
	Eligibility     Eligibility `json:"eligibility"`
	FutureScope     string      `json:"future_scope"`
	JobOpportunities []string   `json:"job_opportunities"`
	SalaryRange     SalaryRange `json:"salary_range"`
	KeySkills       []string    `json:"key_skills"`
	EntranceExams   []string    `json:"entrance_exams"`
	Qualifications  []string    `json:"qualifications"`
	RecommendedCourses []Course `json:"recommended_courses,omitempty"`
	Duration        string      `json:"duration"`
	Difficulty      string      `json:"difficulty"`
	JobDemand       string      `json:"job_demand"`
	EmergingField   bool        `json:"emerging_field"`
	// CostTier is the explicit education cost bucket (1 cheap .. 3 expensive).
	// Zero means unset; consumers fall back to an id-based estimate.
	CostTier int `json:"cost_tier,omitempty"`
}

// Eligibility is the hard admission gate for a student career path.
// Thresholds are inclusive: marks equal to MinimumMarks pass.
type Eligibility struct {
	Streams      []string `json:"stream"`
	Subjects     []string `json:"subjects"`
	MinimumMarks float64  `json:"minimum_marks"`
}

// SalaryRange holds region-specific salary bounds.
type SalaryRange struct {
	India    SalaryBounds `json:"india"`
	Abroad   SalaryBounds `json:"abroad"`
	Currency string       `json:"currency"`
}

// SalaryBounds is a min/max pair in the range's currency.
type SalaryBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IndiaMidpoint returns the midpoint of the India salary range.
func (r SalaryRange) IndiaMidpoint() float64 {
	return (r.India.Min + r.India.Max) / 2
}

// Course is an embedded recommended course on a career path.
type Course struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Provider string  `json:"provider"`
	Type     string  `json:"type"`
	Cost     string  `json:"cost"`
	Duration string  `json:"duration"`
	URL      string  `json:"url"`
	Rating   float64 `json:"rating"`
}

// Resource is a learning resource attachable to roadmap stages.
type Resource struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Type       string  `json:"type"`
	Provider   string  `json:"provider"`
	Duration   string  `json:"duration"`
	Cost       string  `json:"cost"`
	Rating     float64 `json:"rating"`
	Difficulty string  `json:"difficulty"`
}

// ResourceTypeCertification marks resources eligible for the certification stage.
const ResourceTypeCertification = "certification"
