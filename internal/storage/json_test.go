package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetrun/internal/config"
	"sheetrun/internal/domain"
)

func sampleResults() []domain.CaseResult {
	return []domain.CaseResult{
		{ID: "Pos_Fun_01", Verdict: domain.VerdictPass},
		{ID: "Pos_Fun_02", Verdict: domain.VerdictFail},
		{ID: "Neg_Fun_01", Verdict: domain.VerdictFail, ExpectedFailure: true},
		{ID: "Neg_UI_01", Verdict: domain.VerdictDocumented},
	}
}

func TestBuildOutput(t *testing.T) {
	output := BuildOutput(sampleResults(), 1500*time.Millisecond, "cases.xlsx", "http://x/")

	meta := output.Meta
	_, err := uuid.Parse(meta.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 4, meta.TotalCases)
	assert.Equal(t, 1, meta.PassedCases)
	assert.Equal(t, 2, meta.FailedCases)
	assert.Equal(t, 1, meta.ExpectedFailures)
	assert.Equal(t, 1, meta.DocumentedCases)
	assert.Equal(t, 1.5, meta.DurationSeconds)
	assert.Equal(t, "cases.xlsx", meta.Spreadsheet)
}

func TestBuildOutput_NoResults(t *testing.T) {
	output := BuildOutput(nil, 0, "", "")
	assert.NotNil(t, output.Details)
	assert.Empty(t, output.Details)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ResultsDir = filepath.Join(t.TempDir(), "test-results")
	st := NewJSONStorage(cfg)

	saved, err := st.Save(sampleResults(), time.Second)
	require.NoError(t, err)
	assert.FileExists(t, cfg.GetOutputPath())

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, saved.Meta, loaded.Meta)
	assert.Equal(t, saved.Details, loaded.Details)

	loaded.Details[1].Resolved = true
	require.NoError(t, st.SaveOutput(loaded))

	reloaded, err := st.Load()
	require.NoError(t, err)
	assert.True(t, reloaded.Details[1].Resolved)
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.ResultsDir = t.TempDir()

	_, err := NewJSONStorage(cfg).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFailedIDs(t *testing.T) {
	ids := FailedIDs(BuildOutput(sampleResults(), 0, "", ""))
	assert.Equal(t, map[string]struct{}{"Pos_Fun_02": {}, "Neg_Fun_01": {}}, ids)
	assert.Empty(t, FailedIDs(nil))
}
