// Package catalog provides read-only access to the static career, student
// career path, and learning resource collections. Data is loaded once at
// construction time and never mutated afterwards; every accessor hands out
// the same backing slices, so callers must treat them as immutable.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

//go:embed *.json
var dataFiles embed.FS

// ErrNotFound is returned when a career or career path id is unknown.
// Callers use this to distinguish "career doesn't exist" from "no data".
var ErrNotFound = errors.New("not found in catalog")

// Store is the read-only catalog contract consumed by the scoring, roadmap,
// and comparison components.
type Store interface {
	Careers() []types.Career
	StudentPaths() []types.CareerPath
	Resources() []types.Resource
	Career(id string) (*types.Career, error)
	StudentPath(id string) (*types.CareerPath, error)
}

// MemoryStore is a Store backed by in-memory slices.
type MemoryStore struct {
	careers   []types.Career
	paths     []types.CareerPath
	resources []types.Resource
}

// NewEmbedded loads the embedded catalog files, validating each against its
// JSON Schema before decoding.
func NewEmbedded() (*MemoryStore, error) {
	var s MemoryStore
	if err := loadValidated("careers.json", "careers.schema.json", &s.careers); err != nil {
		return nil, err
	}
	if err := loadValidated("student_paths.json", "student_paths.schema.json", &s.paths); err != nil {
		return nil, err
	}
	if err := loadValidated("resources.json", "resources.schema.json", &s.resources); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewMemoryStore builds a Store from caller-supplied collections. Used by
// tests and by the Postgres loader.
func NewMemoryStore(careers []types.Career, paths []types.CareerPath, resources []types.Resource) *MemoryStore {
	return &MemoryStore{careers: careers, paths: paths, resources: resources}
}

func loadValidated(dataFile, schemaFile string, out any) error {
	data, err := dataFiles.ReadFile(dataFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded catalog file %s: %w", dataFile, err)
	}
	schema, err := dataFiles.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema file %s: %w", schemaFile, err)
	}
	if err := schemas.ValidateBytes(dataFile, schema, data); err != nil {
		return fmt.Errorf("catalog file %s failed schema validation: %w", dataFile, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", dataFile, err)
	}
	return nil
}

// Careers returns all general-flow careers in catalog order.
func (s *MemoryStore) Careers() []types.Career {
	return s.careers
}

// StudentPaths returns all student career paths in catalog order.
func (s *MemoryStore) StudentPaths() []types.CareerPath {
	return s.paths
}

// Resources returns all learning resources.
func (s *MemoryStore) Resources() []types.Resource {
	return s.resources
}

// Career looks up a general career by id.
func (s *MemoryStore) Career(id string) (*types.Career, error) {
	for i := range s.careers {
		if s.careers[i].ID == id {
			return &s.careers[i], nil
		}
	}
	return nil, fmt.Errorf("career %q: %w", id, ErrNotFound)
}

// StudentPath looks up a student career path by id.
func (s *MemoryStore) StudentPath(id string) (*types.CareerPath, error) {
	for i := range s.paths {
		if s.paths[i].ID == id {
			return &s.paths[i], nil
		}
	}
	return nil, fmt.Errorf("career path %q: %w", id, ErrNotFound)
}
