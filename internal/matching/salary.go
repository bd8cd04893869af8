package matching

import "strings"

// Representative INR values for the free-text salary expectation buckets.
const (
	salaryHigh    = 1_000_000
	salaryMedium  = 500_000
	salaryLow     = 300_000
	salaryDefault = 400_000
)

// ParseSalaryExpectation maps a free-text salary expectation bucket to a
// representative annual INR figure. Unrecognized or empty input gets the
// default bucket.
func ParseSalaryExpectation(expectation string) float64 {
	e := strings.ToLower(expectation)
	switch {
	case strings.Contains(e, "high") || strings.Contains(e, "10+"):
		return salaryHigh
	case strings.Contains(e, "medium") || strings.Contains(e, "5-10"):
		return salaryMedium
	case strings.Contains(e, "low") || strings.Contains(e, "3-5"):
		return salaryLow
	default:
		return salaryDefault
	}
}
