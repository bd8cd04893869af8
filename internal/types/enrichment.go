package types

// Scheme is a government support program surfaced as best-effort enrichment.
type Scheme struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Eligibility    []string `json:"eligibility"`
	Amount         string   `json:"amount"`
	Deadline       string   `json:"deadline"`
	ApplicationURL string   `json:"application_url"`
	Category       string   `json:"category"`
	TargetAudience []string `json:"target_audience"`
}

// Scheme categories.
const (
	SchemeScholarship      = "scholarship"
	SchemeSkillDevelopment = "skill_development"
	SchemeEmployment       = "employment"
)

// MarketData is one skill's labor-market snapshot.
type MarketData struct {
	Skill            string   `json:"skill"`
	DemandTrend      float64  `json:"demand_trend"`
	AverageSalary    string   `json:"average_salary"`
	JobOpenings      int      `json:"job_openings"`
	GrowthProjection string   `json:"growth_projection"`
	TopCompanies     []string `json:"top_companies"`
	Locations        []string `json:"locations"`
}

// DemandData is demand enrichment for a single career.
type DemandData struct {
	Career                string       `json:"career"`
	DemandScore           int          `json:"demand_score"`
	SalaryRange           SalaryBounds `json:"salary_range"`
	Currency              string       `json:"currency"`
	JobGrowth             float64      `json:"job_growth"`
	SkillsInDemand        []string     `json:"skills_in_demand"`
	TopLocations          []string     `json:"top_locations"`
	GovernmentInitiatives []string     `json:"government_initiatives"`
}
