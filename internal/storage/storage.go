package storage

import (
	"time"

	"sheetrun/internal/config"
	"sheetrun/internal/domain"
)

// Storage persists and loads the results of the last run (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.CaseResult, duration time.Duration) (*domain.RunResultsOutput, error)
	Load() (*domain.RunResultsOutput, error)
	// SaveOutput writes the full output (e.g. after marking failures resolved).
	SaveOutput(output *domain.RunResultsOutput) error
}

// JSONStorage stores results in a JSON file under the configured results directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
