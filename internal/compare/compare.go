// Package compare produces the side-by-side analysis of two career paths.
// Inputs are symmetric; the textual output references the two options in
// argument order.
package compare

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

// defaultYears is assumed when a duration string carries no number.
const defaultYears = 4

// salarySignificance is the India-midpoint gap below which the two
// salaries do not differentiate the recommendation.
const salarySignificance = 200_000

var leadingNumber = regexp.MustCompile(`(\d+)`)

var difficultyOrder = map[string]int{
	types.DifficultyEasy:   1,
	types.DifficultyMedium: 2,
	types.DifficultyHard:   3,
}

var demandOrder = map[string]int{
	types.TierLow:    1,
	types.TierMedium: 2,
	types.TierHigh:   3,
}

// ByID resolves both career paths from the store and compares them.
func ByID(store catalog.Store, firstID, secondID string) (*types.Comparison, error) {
	first, err := store.StudentPath(firstID)
	if err != nil {
		return nil, fmt.Errorf("compare: resolving first career: %w", err)
	}
	second, err := store.StudentPath(secondID)
	if err != nil {
		return nil, fmt.Errorf("compare: resolving second career: %w", err)
	}
	return Paths(first, second), nil
}

// Paths compares two resolved career paths.
func Paths(first, second *types.CareerPath) *types.Comparison {
	return &types.Comparison{
		First:  first,
		Second: second,
		Fields: types.ComparisonFields{
			Duration:       compareDuration(first.Duration, second.Duration),
			Difficulty:     compareDifficulty(first.Difficulty, second.Difficulty),
			Cost:           compareCost(first, second),
			JobDemand:      compareDemand(first.JobDemand, second.JobDemand),
			Salary:         compareSalary(first.SalaryRange, second.SalaryRange),
			Recommendation: recommendation(first, second),
		},
	}
}

func compareDuration(first, second string) string {
	years1 := extractYears(first)
	years2 := extractYears(second)
	switch {
	case years1 < years2:
		return fmt.Sprintf("%s is shorter than %s", first, second)
	case years1 > years2:
		return fmt.Sprintf("%s is longer than %s", first, second)
	default:
		return fmt.Sprintf("Both have similar duration: %s", first)
	}
}

// extractYears pulls the first number out of a free-text duration such as
// "4 years (B.Tech)". Strings without a number count as four years.
func extractYears(duration string) int {
	match := leadingNumber.FindString(duration)
	if match == "" {
		return defaultYears
	}
	years, err := strconv.Atoi(match)
	if err != nil {
		return defaultYears
	}
	return years
}

func compareDifficulty(first, second string) string {
	level1 := difficultyOrder[first]
	level2 := difficultyOrder[second]
	switch {
	case level1 < level2:
		return fmt.Sprintf("First option is easier (%s vs %s)", first, second)
	case level1 > level2:
		return fmt.Sprintf("Second option is easier (%s vs %s)", second, first)
	default:
		return fmt.Sprintf("Both have similar difficulty level: %s", first)
	}
}

func compareCost(first, second *types.CareerPath) string {
	tier1 := costTier(first)
	tier2 := costTier(second)
	switch {
	case tier1 < tier2:
		return fmt.Sprintf("%s is generally more affordable", first.Title)
	case tier1 > tier2:
		return fmt.Sprintf("%s is generally more affordable", second.Title)
	default:
		return "Both have similar cost structures"
	}
}

// costTier prefers the catalog's explicit cost_tier field. Older catalog
// entries without one fall back to an id-based estimate.
func costTier(path *types.CareerPath) int {
	if path.CostTier != 0 {
		return path.CostTier
	}
	switch {
	case path.ID == "doctor":
		return 3
	case strings.Contains(path.ID, "engineer"):
		return 2
	case path.ID == "digital-marketing" || path.ID == "graphic-designer":
		return 1
	default:
		return 2
	}
}

func compareDemand(first, second string) string {
	level1 := demandOrder[first]
	level2 := demandOrder[second]
	switch {
	case level1 > level2:
		return fmt.Sprintf("First option has higher job demand (%s vs %s)", first, second)
	case level1 < level2:
		return fmt.Sprintf("Second option has higher job demand (%s vs %s)", second, first)
	default:
		return fmt.Sprintf("Both have similar job demand: %s", first)
	}
}

func compareSalary(first, second types.SalaryRange) string {
	mid1 := first.IndiaMidpoint()
	mid2 := second.IndiaMidpoint()
	switch {
	case mid1 > mid2:
		return fmt.Sprintf("First option has higher average salary (%s vs %s)", lakhs(mid1), lakhs(mid2))
	case mid1 < mid2:
		return fmt.Sprintf("Second option has higher average salary (%s vs %s)", lakhs(mid2), lakhs(mid1))
	default:
		return "Both have similar salary ranges"
	}
}

func lakhs(amount float64) string {
	return fmt.Sprintf("₹%.1fL", amount/100_000)
}

// recommendation concatenates the factors that differentiate the two
// careers. When nothing does, it falls back to a neutral sentence.
func recommendation(first, second *types.CareerPath) string {
	var factors []string

	if first.JobDemand == types.TierHigh && second.JobDemand != types.TierHigh {
		factors = append(factors, fmt.Sprintf("%s has better job prospects", first.Title))
	} else if second.JobDemand == types.TierHigh && first.JobDemand != types.TierHigh {
		factors = append(factors, fmt.Sprintf("%s has better job prospects", second.Title))
	}

	if first.EmergingField && !second.EmergingField {
		factors = append(factors, fmt.Sprintf("%s is in an emerging field with future growth", first.Title))
	} else if second.EmergingField && !first.EmergingField {
		factors = append(factors, fmt.Sprintf("%s is in an emerging field with future growth", second.Title))
	}

	mid1 := first.SalaryRange.IndiaMidpoint()
	mid2 := second.SalaryRange.IndiaMidpoint()
	if math.Abs(mid1-mid2) > salarySignificance {
		if mid1 > mid2 {
			factors = append(factors, fmt.Sprintf("%s offers higher earning potential", first.Title))
		} else {
			factors = append(factors, fmt.Sprintf("%s offers higher earning potential", second.Title))
		}
	}

	if len(factors) == 0 {
		return "Both careers are excellent choices. Consider your personal interests and long-term goals."
	}
	return fmt.Sprintf("Recommendation: %s.", strings.Join(factors, ", "))
}
