package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("CI", "")
	cfg := New()

	assert.Equal(t, DefaultSpreadsheetPath, cfg.SpreadsheetPath)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultCaseTimeout, cfg.CaseTimeout)
	assert.Equal(t, DefaultRetries, cfg.Retries)
	assert.True(t, cfg.Headless)
	assert.Equal(t, -1, cfg.Flags.Retries)
}

func TestNew_CIRetries(t *testing.T) {
	t.Setenv("CI", "true")
	cfg := New()
	assert.Equal(t, DefaultCIRetries, cfg.Retries)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("SHEETRUN_BASE_URL", "http://localhost:8080/")
	t.Setenv("SHEETRUN_HEADLESS", "false")

	dir := t.TempDir()
	path := filepath.Join(dir, "sheetrun.yaml")
	content := []byte("spreadsheet: cases.xlsx\nbase_url: http://ignored/\ncase_timeout: 30s\nretries: 1\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cases.xlsx", cfg.SpreadsheetPath)
	assert.Equal(t, "http://localhost:8080/", cfg.BaseURL, "environment wins over the file")
	assert.Equal(t, 30*time.Second, cfg.CaseTimeout)
	assert.Equal(t, 1, cfg.Retries)
	assert.False(t, cfg.Headless)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("SHEETRUN_BASE_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheetrun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retries: [not a number"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_ApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		flags  Flags
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name:  "no overrides",
			flags: Flags{Retries: -1},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultSpreadsheetPath, cfg.SpreadsheetPath)
				assert.Equal(t, 0, cfg.Retries)
				assert.True(t, cfg.Headless)
			},
		},
		{
			name:  "file and base url",
			flags: Flags{SpreadsheetPath: "x.xlsx", BaseURL: "http://x/", Retries: -1},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "x.xlsx", cfg.SpreadsheetPath)
				assert.Equal(t, "http://x/", cfg.BaseURL)
			},
		},
		{
			name:  "headed, retries and timeout",
			flags: Flags{Headed: true, Retries: 3, Timeout: 5 * time.Second},
			verify: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Headless)
				assert.Equal(t, 3, cfg.Retries)
				assert.Equal(t, 5*time.Second, cfg.CaseTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", "")
			cfg := New()
			cfg.ApplyFlags(tt.flags)
			tt.verify(t, cfg)
		})
	}
}

func TestConfig_Paths(t *testing.T) {
	cfg := &Config{ResultsDir: "/tmp/results", ResultsFile: "results.json", ScreenshotsDir: "screenshots"}

	assert.Equal(t, "/tmp/results/results.json", cfg.GetOutputPath())
	assert.Equal(t, "/tmp/results/screenshots", cfg.GetScreenshotsDir())
}
