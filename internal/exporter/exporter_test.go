package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentscout/pkg/models"
)

func exportedCandidate() *models.CandidateRecord {
	return &models.CandidateRecord{
		Name:            "Jane Doe",
		Email:           "jane@company.com",
		Phone:           "+14155550000",
		Position:        "Backend Engineer",
		Experience:      "4 years",
		Location:        "Berlin",
		TechStack:       []string{"Go", "Postgres"},
		Responses:       []models.QA{{Question: "Why this role?", Answer: "Growth."}},
		Evaluation:      "Strong candidate, 8/10.",
		ScreeningResult: "PROCEED TO NEXT ROUND",
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	exp := New(dir)

	paths, err := exp.Export(exportedCandidate())
	require.NoError(t, err)

	t.Run("file names carry the sanitized candidate name", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(filepath.Base(paths.JSON), "Jane_Doe_"))
		assert.True(t, strings.HasPrefix(filepath.Base(paths.PDF), "Jane_Doe_"))
		assert.True(t, strings.HasSuffix(paths.JSON, ".json"))
		assert.True(t, strings.HasSuffix(paths.PDF, ".pdf"))
	})

	t.Run("json file round-trips the record", func(t *testing.T) {
		data, err := os.ReadFile(paths.JSON)
		require.NoError(t, err)

		var got models.CandidateRecord
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, []string{"Go", "Postgres"}, got.TechStack)
		assert.Equal(t, "PROCEED TO NEXT ROUND", got.ScreeningResult)
		require.Len(t, got.Responses, 1)
		assert.Equal(t, "Why this role?", got.Responses[0].Question)
	})

	t.Run("pdf file is a rendered document", func(t *testing.T) {
		data, err := os.ReadFile(paths.PDF)
		require.NoError(t, err)
		require.Greater(t, len(data), 4)
		assert.Equal(t, "%PDF", string(data[:4]))
	})
}

func TestExportCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "candidates")
	exp := New(dir)

	paths, err := exp.Export(exportedCandidate())
	require.NoError(t, err)
	assert.FileExists(t, paths.JSON)
	assert.FileExists(t, paths.PDF)
}

func TestExportPartialRecord(t *testing.T) {
	// An explicit exit can leave most fields blank; export must still work.
	exp := New(t.TempDir())

	paths, err := exp.Export(&models.CandidateRecord{Name: "Early Exit"})
	require.NoError(t, err)
	assert.FileExists(t, paths.JSON)
	assert.FileExists(t, paths.PDF)
}

func TestExportUnnamedRecord(t *testing.T) {
	exp := New(t.TempDir())

	paths, err := exp.Export(&models.CandidateRecord{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(paths.JSON), "unknown_"))
}
