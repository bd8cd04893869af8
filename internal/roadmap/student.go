package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Student builds the student career plan from the career path's own metadata
// rather than from missing skills. The three trailing stages are always
// present; the class 11-12 and entrance-preparation stages are conditional.
func (g *Generator) Student(profile *types.Profile, path *types.CareerPath) []types.StudentStage {
	stages := make([]types.StudentStage, 0, 5)

	if profile.Class == "10" {
		stages = append(stages, types.StudentStage{
			Stage:       "Class 11-12",
			Duration:    "2 years",
			Description: fmt.Sprintf("Choose %s stream with subjects: %s", firstOr(path.Eligibility.Streams, "science"), strings.Join(path.Eligibility.Subjects, ", ")),
			Requirements: []string{
				"Minimum 75% in Class 10",
				fmt.Sprintf("Focus on %s", joinFirst(path.Eligibility.Subjects, 2, " and ")),
			},
			NextOptions: []string{"Entrance exam preparation", "Skill development courses"},
		})
	}

	if hasRealEntranceExams(path.EntranceExams) {
		stages = append(stages, types.StudentStage{
			Stage:       "Entrance Preparation",
			Duration:    "1-2 years",
			Description: fmt.Sprintf("Prepare for %s", joinFirst(path.EntranceExams, 2, " or ")),
			Requirements: []string{
				fmt.Sprintf("Class 12 with %.0f%%+", path.Eligibility.MinimumMarks),
				"Coaching/Self-study",
			},
			NextOptions: []string{"College admission", "Backup options"},
		})
	}

	stages = append(stages, types.StudentStage{
		Stage:        "Higher Education",
		Duration:     path.Duration,
		Description:  fmt.Sprintf("Complete %s", firstOr(path.Qualifications, path.Title)),
		Requirements: []string{"Regular attendance", "Good academic performance", "Practical experience"},
		NextOptions:  []string{"Job placement", "Higher studies", "Entrepreneurship"},
	})
	stages = append(stages, types.StudentStage{
		Stage:        "Career Start",
		Duration:     "1-2 years",
		Description:  fmt.Sprintf("Begin as %s", firstOr(path.JobOpportunities, path.Title)),
		Requirements: []string{"Internships", "Portfolio/Projects", "Networking"},
		NextOptions:  []string{"Specialization", "Leadership roles", "Freelancing"},
	})
	stages = append(stages, types.StudentStage{
		Stage:        "Career Growth",
		Duration:     "5+ years",
		Description:  fmt.Sprintf("Advance to %s", lastOr(path.JobOpportunities, path.Title)),
		Requirements: []string{"Continuous learning", "Professional certifications", "Leadership skills"},
		NextOptions:  []string{"Senior management", "Consulting", "Teaching/Training"},
	})

	return stages
}

// hasRealEntranceExams filters out the "No specific entrance exams" style
// sentinel entries the catalog uses for careers without exams.
func hasRealEntranceExams(exams []string) bool {
	if len(exams) == 0 {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(exams[0]), "no ")
}

func firstOr(list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return list[0]
}

func lastOr(list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return list[len(list)-1]
}

func joinFirst(list []string, n int, sep string) string {
	if len(list) > n {
		list = list[:n]
	}
	return strings.Join(list, sep)
}
