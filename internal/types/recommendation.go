package types

// Score holds the output of a single profile-to-career scoring pass.
type Score struct {
	MatchScore     float64  `json:"match_score"`
	MissingSkills  []string `json:"missing_skills"`
	StrengthSkills []string `json:"strength_skills"`
	// SkillMatches and InterestMatches are the profile labels that matched,
	// kept for reasoning generation.
	SkillMatches    []string `json:"-"`
	InterestMatches []string `json:"-"`
}

// Recommendation is one ranked career suggestion for a general profile.
// Recommendations are recomputed on every scoring run and never persisted
// independently of the profile that produced them.
type Recommendation struct {
	Career         *Career  `json:"career"`
	MatchScore     float64  `json:"match_score"`
	MissingSkills  []string `json:"missing_skills"`
	StrengthSkills []string `json:"strength_skills"`
	Reasoning      string   `json:"reasoning"`
}

// StudentRecommendation is one ranked career path suggestion for a student
// profile, enriched with a roadmap and matching scholarships.
type StudentRecommendation struct {
	CareerPath   *CareerPath    `json:"career_path"`
	MatchScore   float64        `json:"match_score"`
	Reasoning    string         `json:"reasoning"`
	Roadmap      []StudentStage `json:"roadmap"`
	Scholarships []Scholarship  `json:"scholarships"`
	// Demand is best-effort market enrichment; nil when unavailable.
	Demand *DemandData `json:"demand,omitempty"`
}

// RoadmapStage is one ordered unit of a general-user learning plan.
// Completed is the only field mutated after creation, and by the caller,
// never by the generator.
type RoadmapStage struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Priority    string     `json:"priority"`
	Type        string     `json:"type"`
	Resources   []Resource `json:"resources"`
	Completed   bool       `json:"completed"`
}

// Stage type tags for the general-user roadmap.
const (
	StageSkill         = "skill"
	StageProject       = "project"
	StageCertification = "certification"
	StageExperience    = "experience"
)

// Stage priority tiers.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// StudentStage is one ordered unit of a student career plan. Stage names are
// free text templated from career metadata.
type StudentStage struct {
	Stage        string   `json:"stage"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	NextOptions  []string `json:"next_options"`
	Completed    bool     `json:"completed"`
}

// Scholarship is a financial-aid record matched against a student profile.
type Scholarship struct {
	Name           string   `json:"name"`
	Eligibility    []string `json:"eligibility"`
	Amount         string   `json:"amount"`
	Deadline       string   `json:"deadline"`
	ApplicationURL string   `json:"application_url"`
	// MeritCutoff is the minimum overall percentage required; zero means no
	// merit requirement.
	MeritCutoff float64 `json:"merit_cutoff,omitempty"`
}
