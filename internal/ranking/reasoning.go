package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Fallback sentences when no template applies. Reasoning is never empty.
const (
	generalFallback = "This career path offers good growth opportunities and matches your profile."
	studentFallback = "This career path matches your profile and offers good growth opportunities."
)

// generalReasoning assembles the canned explanation for a general
// recommendation. Sentence order is fixed; wording is never randomized.
func generalReasoning(profile *types.Profile, score types.Score) string {
	var reasons []string

	if len(score.SkillMatches) > 0 {
		cited := score.SkillMatches
		if len(cited) > 2 {
			cited = cited[:2]
		}
		reasons = append(reasons, fmt.Sprintf("Your skills in %s align well with this role.", strings.Join(cited, " and ")))
	}

	if len(score.InterestMatches) > 0 {
		reasons = append(reasons, fmt.Sprintf("Your interest in %s matches this career path.", score.InterestMatches[0]))
	}

	education := strings.ToLower(profile.Education)
	if strings.Contains(education, "computer science") || strings.Contains(education, "engineering") {
		reasons = append(reasons, "Your technical education background is relevant for this field.")
	}

	if len(reasons) == 0 {
		return generalFallback
	}
	return strings.Join(reasons, " ")
}

// studentReasoning assembles the canned explanation for a student
// recommendation.
func studentReasoning(profile *types.Profile, path *types.CareerPath, score types.Score) string {
	var reasons []string

	if len(score.InterestMatches) > 0 {
		cited := score.InterestMatches
		if len(cited) > 2 {
			cited = cited[:2]
		}
		reasons = append(reasons, fmt.Sprintf("Your interests in %s align perfectly with this career.", strings.Join(cited, " and ")))
	}

	for _, trait := range profile.PersonalityTraits {
		if traitMatchesPath(trait, path) {
			reasons = append(reasons, fmt.Sprintf("Your %s personality trait is ideal for this field.", trait))
			break
		}
	}

	if profile.OverallMarks() >= path.Eligibility.MinimumMarks+10 {
		reasons = append(reasons, fmt.Sprintf("Your academic performance (%.0f%%) exceeds the typical requirements.", profile.OverallMarks()))
	}

	if path.EmergingField {
		reasons = append(reasons, "This is an emerging field with excellent future prospects and high demand.")
	}

	if profile.Goals.StudyAbroad && path.SalaryRange.Abroad.Max > 5_000_000 {
		reasons = append(reasons, "This career offers excellent opportunities for working abroad.")
	}

	if len(reasons) == 0 {
		return studentFallback
	}
	return strings.Join(reasons, " ")
}

func traitMatchesPath(trait string, path *types.CareerPath) bool {
	lower := strings.ToLower(trait)
	return strings.Contains(strings.ToLower(path.Overview), lower) ||
		strings.Contains(joinLower(path.KeySkills), lower)
}
