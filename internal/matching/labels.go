// Package matching isolates the loose label-matching semantics used by the
// scoring engine. Skill and interest labels are free text with no canonical
// vocabulary: two labels match when either contains the other,
// case-insensitively. This rule is load-bearing for the scoring thresholds,
// so every component goes through this package instead of comparing strings
// directly.
package matching

import "strings"

// LabelsOverlap reports whether two free-text labels match under the loose
// containment rule: case-insensitive substring in either direction.
func LabelsOverlap(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// LabelMatchesAny reports whether label overlaps any entry of candidates.
func LabelMatchesAny(label string, candidates []string) bool {
	for _, c := range candidates {
		if LabelsOverlap(label, c) {
			return true
		}
	}
	return false
}

// TextContainsLabel reports whether the label appears inside a longer text,
// case-insensitively. Unlike LabelsOverlap this is one-directional: a
// personality trait matches a career overview, not the other way around.
func TextContainsLabel(text, label string) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), l)
}

// FilterOverlapping returns the labels that overlap at least one candidate,
// preserving input order.
func FilterOverlapping(labels, candidates []string) []string {
	matched := make([]string, 0, len(labels))
	for _, l := range labels {
		if LabelMatchesAny(l, candidates) {
			matched = append(matched, l)
		}
	}
	return matched
}

// PartitionSkills splits required into the entries covered by possessed
// (strengths) and the rest (missing), preserving the required order.
// The two slices are disjoint and together cover required exactly.
func PartitionSkills(required, possessed []string) (strengths, missing []string) {
	strengths = make([]string, 0, len(required))
	missing = make([]string, 0, len(required))
	for _, skill := range required {
		if LabelMatchesAny(skill, possessed) {
			strengths = append(strengths, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return strengths, missing
}
