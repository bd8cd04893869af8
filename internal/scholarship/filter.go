// Package scholarship matches financial-aid records to a student profile
// and chosen career path.
package scholarship

import (
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// nationalMeritCutoff is the marks threshold for merit scholarships.
const nationalMeritCutoff = 85

// ForPath returns the scholarships a student qualifies for on a given
// career path. Merit awards gate on overall marks; the rest gate on the
// career family.
func ForPath(profile *types.Profile, path *types.CareerPath) []types.Scholarship {
	var out []types.Scholarship

	if profile.OverallMarks() >= nationalMeritCutoff {
		out = append(out, types.Scholarship{
			Name:           "National Merit Scholarship",
			Eligibility:    []string{"85%+ in Class 12", "Indian citizen", "Family income < 8 LPA"},
			Amount:         "₹50,000 - ₹2,00,000 per year",
			Deadline:       "September 30, 2026",
			ApplicationURL: "https://scholarships.gov.in/",
			MeritCutoff:    nationalMeritCutoff,
		})
	}

	if strings.Contains(path.ID, "engineer") || strings.Contains(path.ID, "software") {
		out = append(out, types.Scholarship{
			Name:           "AICTE Pragati Scholarship",
			Eligibility:    []string{"Girl students", "Technical courses", "Family income < 8 LPA"},
			Amount:         "₹30,000 per year",
			Deadline:       "October 31, 2026",
			ApplicationURL: "https://aicte-india.org/",
		})
	}

	if path.ID == "doctor" {
		out = append(out, types.Scholarship{
			Name:           "Central Sector Scholarship",
			Eligibility:    []string{"NEET qualified", "Top 20,000 rank", "Family income < 8 LPA"},
			Amount:         "₹20,000 per year",
			Deadline:       "November 15, 2026",
			ApplicationURL: "https://scholarships.gov.in/",
		})
	}

	return out
}
