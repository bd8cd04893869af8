// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecommendations outputs the ranked career recommendations with
// scores and skill partitions.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Career.Title))
		sb.WriteString(fmt.Sprintf("    Match: %.0f%%\n", rec.MatchScore*100))
		if len(rec.StrengthSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Strengths: %s\n", truncateList(rec.StrengthSkills, 40)))
		}
		if len(rec.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    To learn:  %s\n", truncateList(rec.MissingSkills, 40)))
		}
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CAREER RECOMMENDATIONS", sb.String())
}

// PrintStudentRecommendations outputs the ranked student career paths with
// scholarship counts and demand when available.
func (p *Printer) PrintStudentRecommendations(recs []types.StudentRecommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.CareerPath.Title))
		sb.WriteString(fmt.Sprintf("    Match: %.0f%%  Demand: %s\n", rec.MatchScore*100, rec.CareerPath.JobDemand))
		if len(rec.Scholarships) > 0 {
			sb.WriteString(fmt.Sprintf("    Scholarships: %d available\n", len(rec.Scholarships)))
		}
		if rec.Demand != nil {
			sb.WriteString(fmt.Sprintf("    Market score: %d/100\n", rec.Demand.DemandScore))
		}
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STUDENT CAREER PATHS", sb.String())
}

// PrintRoadmap outputs the generated learning plan stage by stage.
func (p *Printer) PrintRoadmap(stages []types.RoadmapStage) {
	if len(stages) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(stages), maxItemsToShow)
	for i := 0; i < count; i++ {
		stage := stages[i]
		sb.WriteString(fmt.Sprintf("%d. %s\n", stage.ID, stage.Title))
		sb.WriteString(fmt.Sprintf("   %s, priority %s\n", stage.Duration, stage.Priority))
		if len(stage.Resources) > 0 {
			for _, res := range stage.Resources {
				title := res.Title
				if len(title) > 45 {
					title = title[:42] + "..."
				}
				sb.WriteString(fmt.Sprintf("   • %s\n", title))
			}
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(stages) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more stages", len(stages)-maxItemsToShow))
	}

	p.printBox("LEARNING ROADMAP", sb.String())
}

// PrintStudentRoadmap outputs the student career plan.
func (p *Printer) PrintStudentRoadmap(stages []types.StudentStage) {
	if len(stages) == 0 {
		return
	}

	var sb strings.Builder
	for i, stage := range stages {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, stage.Stage, stage.Duration))
		desc := stage.Description
		if len(desc) > 50 {
			desc = desc[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("   %s\n", desc))
		if i < len(stages)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CAREER PLAN", sb.String())
}

// PrintComparison outputs the side-by-side career analysis.
func (p *Printer) PrintComparison(comparison *types.Comparison) {
	if comparison == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s vs %s\n\n", comparison.First.Title, comparison.Second.Title))
	sb.WriteString(fmt.Sprintf("Duration:   %s\n", comparison.Fields.Duration))
	sb.WriteString(fmt.Sprintf("Difficulty: %s\n", comparison.Fields.Difficulty))
	sb.WriteString(fmt.Sprintf("Cost:       %s\n", comparison.Fields.Cost))
	sb.WriteString(fmt.Sprintf("Demand:     %s\n", comparison.Fields.JobDemand))
	sb.WriteString(fmt.Sprintf("Salary:     %s\n", comparison.Fields.Salary))
	sb.WriteString(fmt.Sprintf("\n%s", comparison.Fields.Recommendation))

	p.printBox("CAREER COMPARISON", sb.String())
}

// PrintSchemes outputs matching government schemes.
func (p *Printer) PrintSchemes(schemes []types.Scheme) {
	if len(schemes) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(schemes), maxItemsToShow)
	for i := 0; i < count; i++ {
		scheme := schemes[i]
		sb.WriteString(fmt.Sprintf("• %s\n", scheme.Name))
		sb.WriteString(fmt.Sprintf("  %s\n", scheme.Amount))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(schemes) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more schemes", len(schemes)-maxItemsToShow))
	}

	p.printBox("GOVERNMENT SCHEMES", sb.String())
}

func truncateList(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}
