package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbedded_LoadsAllCollections(t *testing.T) {
	store, err := NewEmbedded()
	require.NoError(t, err)

	assert.NotEmpty(t, store.Careers())
	assert.NotEmpty(t, store.StudentPaths())
	assert.NotEmpty(t, store.Resources())
}

func TestNewEmbedded_CareersHaveRequiredSkills(t *testing.T) {
	store, err := NewEmbedded()
	require.NoError(t, err)

	for _, c := range store.Careers() {
		assert.NotEmpty(t, c.RequiredSkills, "career %s must declare required skills", c.ID)
	}
}

func TestNewEmbedded_StudentPathsHaveEligibility(t *testing.T) {
	store, err := NewEmbedded()
	require.NoError(t, err)

	for _, p := range store.StudentPaths() {
		assert.NotEmpty(t, p.Eligibility.Streams, "path %s must declare eligible streams", p.ID)
		assert.GreaterOrEqual(t, p.Eligibility.MinimumMarks, float64(0))
	}
}

func TestCareer_Lookup(t *testing.T) {
	store, err := NewEmbedded()
	require.NoError(t, err)

	career, err := store.Career("data-scientist")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", career.Title)
}

func TestCareer_NotFound(t *testing.T) {
	store, err := NewEmbedded()
	require.NoError(t, err)

	_, err = store.Career("astronaut")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "astronaut")
}

func TestStudentPath_Lookup(t *testing.T) {
	store, err := NewEmbedded()
	require.NoError(t, err)

	path, err := store.StudentPath("doctor")
	require.NoError(t, err)
	assert.Equal(t, "Doctor (MBBS)", path.Title)
	assert.Equal(t, 3, path.CostTier)

	_, err = store.StudentPath("pilot")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewEmbedded_CatalogOrderStable(t *testing.T) {
	first, err := NewEmbedded()
	require.NoError(t, err)
	second, err := NewEmbedded()
	require.NoError(t, err)

	require.Equal(t, len(first.Careers()), len(second.Careers()))
	for i := range first.Careers() {
		assert.Equal(t, first.Careers()[i].ID, second.Careers()[i].ID)
	}
}
