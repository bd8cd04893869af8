// Package roadmap generates ordered learning plans toward a chosen career.
// Roadmaps are derived data: regenerate requests rebuild them wholesale, and
// callers that want to keep completion state across a rebuild use
// MergeCompletion.
package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/types"
)

// maxSkillStages caps the number of skill stages emitted for missing skills.
const maxSkillStages = 3

// maxStageResources caps the resources attached to any single stage.
const maxStageResources = 2

// skillDurations maps well-known skills to expected learning durations.
// Skills not listed get defaultSkillDuration.
var skillDurations = map[string]string{
	"Python":             "4-6 weeks",
	"JavaScript":         "6-8 weeks",
	"React":              "3-4 weeks",
	"Node.js":            "3-4 weeks",
	"SQL":                "2-3 weeks",
	"Machine Learning":   "8-12 weeks",
	"Statistics":         "6-8 weeks",
	"Data Visualization": "2-3 weeks",
	"HTML":               "1-2 weeks",
	"CSS":                "2-3 weeks",
	"Git":                "1-2 weeks",
}

const defaultSkillDuration = "3-4 weeks"

// Generator builds roadmaps, pulling stage resources from the catalog.
type Generator struct {
	store catalog.Store
}

// NewGenerator creates a roadmap generator backed by the given catalog.
func NewGenerator(store catalog.Store) *Generator {
	return &Generator{store: store}
}

// General builds the general-user roadmap: one stage per missing skill (first
// three only, in the order received), then fixed project, certification, and
// experience stages. It never fails: with no missing skills the three
// trailing stages still come back.
func (g *Generator) General(careerTitle string, missingSkills []string) []types.RoadmapStage {
	skills := missingSkills
	if len(skills) > maxSkillStages {
		skills = skills[:maxSkillStages]
	}

	stages := make([]types.RoadmapStage, 0, len(skills)+3)
	for i, skill := range skills {
		priority := types.PriorityMedium
		if i < 2 {
			priority = types.PriorityHigh
		}
		stages = append(stages, types.RoadmapStage{
			ID:          len(stages) + 1,
			Title:       fmt.Sprintf("Master %s", skill),
			Description: fmt.Sprintf("Learn the fundamentals of %s through structured courses and hands-on practice.", skill),
			Duration:    skillDuration(skill),
			Priority:    priority,
			Type:        types.StageSkill,
			Resources:   g.skillResources(skill),
		})
	}

	lowerTitle := strings.ToLower(careerTitle)
	stages = append(stages, types.RoadmapStage{
		ID:          len(stages) + 1,
		Title:       "Build Portfolio Projects",
		Description: fmt.Sprintf("Create 2-3 projects that showcase your new skills in %s.", lowerTitle),
		Duration:    "6-8 weeks",
		Priority:    types.PriorityHigh,
		Type:        types.StageProject,
		Resources:   []types.Resource{},
	})
	stages = append(stages, types.RoadmapStage{
		ID:          len(stages) + 1,
		Title:       "Get Industry Certification",
		Description: fmt.Sprintf("Pursue relevant certifications to validate your expertise in %s.", lowerTitle),
		Duration:    "2-3 months",
		Priority:    types.PriorityMedium,
		Type:        types.StageCertification,
		Resources:   g.certificationResources(),
	})
	stages = append(stages, types.RoadmapStage{
		ID:          len(stages) + 1,
		Title:       "Gain Practical Experience",
		Description: "Apply for internships, freelance projects, or contribute to open source projects.",
		Duration:    "3-6 months",
		Priority:    types.PriorityHigh,
		Type:        types.StageExperience,
		Resources:   []types.Resource{},
	})

	return stages
}

func skillDuration(skill string) string {
	if d, ok := skillDurations[skill]; ok {
		return d
	}
	return defaultSkillDuration
}

func (g *Generator) skillResources(skill string) []types.Resource {
	matched := make([]types.Resource, 0, maxStageResources)
	for _, r := range g.store.Resources() {
		if matching.LabelsOverlap(r.Title, skill) {
			matched = append(matched, r)
			if len(matched) == maxStageResources {
				break
			}
		}
	}
	return matched
}

func (g *Generator) certificationResources() []types.Resource {
	matched := make([]types.Resource, 0, maxStageResources)
	for _, r := range g.store.Resources() {
		if r.Type == types.ResourceTypeCertification {
			matched = append(matched, r)
			if len(matched) == maxStageResources {
				break
			}
		}
	}
	return matched
}

// MergeCompletion carries completed flags from a previous roadmap onto a
// regenerated one, matching stages by title. Stages with no counterpart keep
// their fresh (uncompleted) state.
func MergeCompletion(previous, regenerated []types.RoadmapStage) []types.RoadmapStage {
	done := make(map[string]bool, len(previous))
	for _, stage := range previous {
		if stage.Completed {
			done[stage.Title] = true
		}
	}
	merged := make([]types.RoadmapStage, len(regenerated))
	copy(merged, regenerated)
	for i := range merged {
		if done[merged[i].Title] {
			merged[i].Completed = true
		}
	}
	return merged
}
