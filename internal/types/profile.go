// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ProfileKind discriminates between the two profile variants the engine understands.
type ProfileKind string

const (
	// KindGeneral is a working-professional or graduate profile scored against the general career catalog
	KindGeneral ProfileKind = "general"
	// KindStudent is a school-student profile scored against the student career paths with eligibility gating
	KindStudent ProfileKind = "student"
)

// Profile is the normalized self-reported input produced by the onboarding
// collaborator. The engine only reads it; re-submitting an updated profile
// triggers a full re-scoring run.
type Profile struct {
	ID    string      `json:"id,omitempty"`
	Kind  ProfileKind `json:"kind" validate:"required,oneof=general student"`
	Name  string      `json:"name" validate:"required,min=1"`
	Email string      `json:"email" validate:"required,email"`

	// General-variant fields
	Education   string   `json:"education,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	CareerGoals string   `json:"career_goals,omitempty"`

	// Student-variant fields
	Class             string   `json:"class,omitempty" validate:"omitempty,oneof=10 12 graduate"`
	CurrentStream     string   `json:"current_stream,omitempty" validate:"omitempty,oneof=science commerce arts vocational"`
	Subjects          []string `json:"subjects,omitempty"`
	Marks             *Marks   `json:"marks,omitempty"`
	PersonalityTraits []string `json:"personality_traits,omitempty"`
	Goals             Goals    `json:"goals,omitempty"`
}

// Marks holds academic performance figures as percentages.
type Marks struct {
	Overall     float64            `json:"overall" validate:"min=0,max=100"`
	SubjectWise map[string]float64 `json:"subject_wise,omitempty"`
}

// Goals captures the profile's structured preferences.
type Goals struct {
	SalaryExpectation string `json:"salary_expectation,omitempty"`
	StudyAbroad       bool   `json:"study_abroad,omitempty"`
	PreferredLocation string `json:"preferred_location,omitempty"`
	WorkLifeBalance   string `json:"work_life_balance,omitempty" validate:"omitempty,oneof=high medium low"`
}

// OverallMarks returns the overall percentage, or 0 when no marks were reported.
func (p *Profile) OverallMarks() float64 {
	if p.Marks == nil {
		return 0
	}
	return p.Marks.Overall
}

// Validate validates the profile using struct tags. Missing skills or
// interests are not an error: the scoring engine tolerates sparse profiles
// and lets the score trend toward zero instead.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
