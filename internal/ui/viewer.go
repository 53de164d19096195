package ui

import "sheetrun/internal/domain"

// Viewer displays run results interactively
type Viewer interface {
	View(results *domain.RunResultsOutput) error
}
