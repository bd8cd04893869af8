package advisor

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// ParentExplanation renders a markdown note addressed to a student's parents
// explaining the top recommendation. Returns an empty string when there are
// no recommendations.
func ParentExplanation(recs []types.StudentRecommendation) string {
	if len(recs) == 0 {
		return ""
	}
	top := recs[0]
	path := top.CareerPath

	fieldOutlook := "This is a stable field with consistent demand."
	if path.EmergingField {
		fieldOutlook = "This is an emerging field with excellent growth prospects."
	}

	var sb strings.Builder
	sb.WriteString("**Dear Parents,**\n\n")
	fmt.Fprintf(&sb, "Based on your child's profile, we recommend **%s** as the top career option. Here's why this is a smart choice:\n\n", path.Title)

	sb.WriteString("**Future Demand & Job Security:**\n")
	fmt.Fprintf(&sb, "- %s\n", path.FutureScope)
	fmt.Fprintf(&sb, "- Job demand: %s\n", strings.ToUpper(path.JobDemand))
	fmt.Fprintf(&sb, "- %s\n\n", fieldOutlook)

	sb.WriteString("**Earning Potential:**\n")
	fmt.Fprintf(&sb, "- Starting salary: ₹%.1f - ₹%.1f lakhs per year\n",
		path.SalaryRange.India.Min/100_000, path.SalaryRange.India.Max/100_000)
	fmt.Fprintf(&sb, "- International opportunities: $%.0fk - $%.0fk per year\n\n",
		path.SalaryRange.Abroad.Min/100_000, path.SalaryRange.Abroad.Max/100_000)

	sb.WriteString("**Why This Matches Your Child:**\n")
	fmt.Fprintf(&sb, "%s\n\n", top.Reasoning)

	sb.WriteString("**Common Myths vs Reality:**\n")
	sb.WriteString("- Myth: \"Only engineering and medicine are good careers\"\n")
	fmt.Fprintf(&sb, "- Reality: Modern careers like %s offer excellent growth and stability\n", path.Title)
	sb.WriteString("- Myth: \"New fields are risky\"\n")
	sb.WriteString("- Reality: Emerging fields often provide the best opportunities for early career growth\n\n")

	sb.WriteString("**Investment Required:**\n")
	fmt.Fprintf(&sb, "- Duration: %s\n", path.Duration)
	fmt.Fprintf(&sb, "- Difficulty level: %s\n", path.Difficulty)
	sb.WriteString("- Multiple scholarship opportunities available\n\n")

	sb.WriteString("This recommendation is based on scientific analysis of your child's interests, academic performance, and market trends. We encourage you to support their passion while ensuring practical career success.\n")

	return sb.String()
}
