package types

// Comparison is the structured side-by-side analysis of two career paths.
// The inputs are symmetric; the textual fields reference "first option" and
// "second option" in argument order.
type Comparison struct {
	First  *CareerPath      `json:"career1"`
	Second *CareerPath      `json:"career2"`
	Fields ComparisonFields `json:"comparison"`
}

// ComparisonFields holds the six textual analysis fields.
type ComparisonFields struct {
	Duration       string `json:"duration"`
	Difficulty     string `json:"difficulty"`
	Cost           string `json:"cost"`
	JobDemand      string `json:"job_demand"`
	Salary         string `json:"salary"`
	Recommendation string `json:"recommendation"`
}
