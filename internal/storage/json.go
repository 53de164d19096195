package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"sheetrun/internal/domain"
)

// BuildOutput assembles the results document of a run
func BuildOutput(results []domain.CaseResult, duration time.Duration, spreadsheet, baseURL string) *domain.RunResultsOutput {
	meta := domain.RunResultsMeta{
		RunID:           uuid.NewString(),
		Spreadsheet:     spreadsheet,
		BaseURL:         baseURL,
		TotalCases:      len(results),
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	for _, r := range results {
		switch r.Verdict {
		case domain.VerdictPass:
			meta.PassedCases++
		case domain.VerdictFail:
			meta.FailedCases++
			if r.ExpectedFailure {
				meta.ExpectedFailures++
			}
		default:
			meta.DocumentedCases++
		}
	}

	details := results
	if details == nil {
		details = []domain.CaseResult{}
	}
	return &domain.RunResultsOutput{Meta: meta, Details: details}
}

// Save writes the results of a run to the configured JSON output file, replacing the previous run.
func (s *JSONStorage) Save(results []domain.CaseResult, duration time.Duration) (*domain.RunResultsOutput, error) {
	output := BuildOutput(results, duration, s.cfg.SpreadsheetPath, s.cfg.BaseURL)
	if err := s.SaveOutput(output); err != nil {
		return nil, err
	}
	return output, nil
}

// Load reads the last run's results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunResultsOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunResultsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunResultsOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// FailedIDs returns the IDs of cases that failed in output
func FailedIDs(output *domain.RunResultsOutput) map[string]struct{} {
	ids := make(map[string]struct{})
	if output == nil {
		return ids
	}
	for _, d := range output.Details {
		if d.Failed() {
			ids[d.ID] = struct{}{}
		}
	}
	return ids
}
