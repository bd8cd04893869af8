// Package ranking scores a profile against the career catalog and produces
// ranked recommendations.
package ranking

import (
	"strings"

	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/types"
)

// Weights for the general-user score components.
const (
	skillWeight    = 0.6
	interestWeight = 0.4
	// interestBaseline is the expected interest-match count used to normalize
	// the denominator; profiles rarely list more than two matching interests.
	interestBaseline = 2.0
	// generalPerturbation bounds the random factor added to general scores.
	generalPerturbation = 0.2
)

// Weights for the student four-factor score. They sum to 1.0.
const (
	interestFactorWeight    = 0.4
	personalityFactorWeight = 0.3
	subjectFactorWeight     = 0.2
	goalFactorWeight        = 0.1
	// studentPerturbation bounds the random factor added to student scores.
	studentPerturbation = 0.1
)

// Engine computes match scores. The injected RandomSource is its only state.
// Limit caps how many recommendations the ranker returns; zero means the
// TopN default.
type Engine struct {
	rand  RandomSource
	Limit int
}

// NewEngine creates a scoring engine with the given randomness source.
func NewEngine(rand RandomSource) *Engine {
	return &Engine{rand: rand}
}

// ScoreCareer scores a general profile against one career. Profiles with no
// skills or interests are legal: the score trends toward zero and every
// required skill lands in MissingSkills.
func (e *Engine) ScoreCareer(profile *types.Profile, career *types.Career) types.Score {
	skillMatches := matching.FilterOverlapping(profile.Skills, career.RequiredSkills)

	interestMatches := make([]string, 0, len(profile.Interests))
	for _, interest := range profile.Interests {
		if matching.LabelsOverlap(interest, career.Title) ||
			matching.LabelsOverlap(interest, career.Description) ||
			matching.LabelsOverlap(interest, career.Industry) {
			interestMatches = append(interestMatches, interest)
		}
	}

	denominator := float64(len(career.RequiredSkills))*skillWeight + interestBaseline*interestWeight
	if denominator < 1 {
		denominator = 1
	}
	raw := (float64(len(skillMatches))*skillWeight + float64(len(interestMatches))*interestWeight) / denominator

	strengths, missing := matching.PartitionSkills(career.RequiredSkills, profile.Skills)

	return types.Score{
		MatchScore:      clamp(raw + e.rand.Next()*generalPerturbation),
		MissingSkills:   missing,
		StrengthSkills:  strengths,
		SkillMatches:    skillMatches,
		InterestMatches: interestMatches,
	}
}

// Eligible applies the hard pre-filter for student career paths. Ineligible
// paths are never scored and never shown. Thresholds are inclusive.
func Eligible(profile *types.Profile, path *types.CareerPath) bool {
	if profile.CurrentStream != "" && !contains(path.Eligibility.Streams, profile.CurrentStream) {
		return false
	}
	if profile.OverallMarks() < path.Eligibility.MinimumMarks {
		return false
	}
	return true
}

// ScorePath scores a student profile against one career path using the
// weighted four-factor model. Callers must check Eligible first.
func (e *Engine) ScorePath(profile *types.Profile, path *types.CareerPath) types.Score {
	interestMatches := make([]string, 0, len(profile.Interests))
	for _, interest := range profile.Interests {
		if matching.LabelMatchesAny(interest, path.KeySkills) ||
			matching.LabelsOverlap(interest, path.Title) ||
			matching.LabelsOverlap(interest, path.Overview) {
			interestMatches = append(interestMatches, interest)
		}
	}
	score := ratio(len(interestMatches), len(profile.Interests)) * interestFactorWeight

	joinedSkills := joinLower(path.KeySkills)
	personalityMatches := make([]string, 0, len(profile.PersonalityTraits))
	for _, trait := range profile.PersonalityTraits {
		if matching.TextContainsLabel(path.Overview, trait) || matching.TextContainsLabel(joinedSkills, trait) {
			personalityMatches = append(personalityMatches, trait)
		}
	}
	score += ratio(len(personalityMatches), len(profile.PersonalityTraits)) * personalityFactorWeight

	subjectMatches := matching.FilterOverlapping(profile.Subjects, path.Eligibility.Subjects)
	score += ratio(len(subjectMatches), len(path.Eligibility.Subjects)) * subjectFactorWeight

	score += e.goalAlignment(profile, path) * goalFactorWeight

	strengths, missing := matching.PartitionSkills(path.KeySkills, profile.Skills)

	return types.Score{
		MatchScore:      clamp(score + e.rand.Next()*studentPerturbation),
		MissingSkills:   missing,
		StrengthSkills:  strengths,
		SkillMatches:    subjectMatches,
		InterestMatches: interestMatches,
	}
}

// goalAlignment returns a value in [0, 1]: half for a salary expectation the
// career can meet in India, half for study-abroad ambitions the career
// supports.
func (e *Engine) goalAlignment(profile *types.Profile, path *types.CareerPath) float64 {
	var goal float64
	if profile.Goals.SalaryExpectation != "" {
		expected := matching.ParseSalaryExpectation(profile.Goals.SalaryExpectation)
		if expected <= path.SalaryRange.India.Max {
			goal += 0.5
		}
	}
	if profile.Goals.StudyAbroad && path.SalaryRange.Abroad.Max > 0 {
		goal += 0.5
	}
	return goal
}

func ratio(matches, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(matches) / float64(total)
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func joinLower(labels []string) string {
	return strings.ToLower(strings.Join(labels, " "))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
