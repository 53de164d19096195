package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sheetrun/internal/domain"
)

func TestFailedIndexes(t *testing.T) {
	assert.Equal(t, []int{1}, FailedIndexes(sampleOutput()))
	assert.Nil(t, FailedIndexes(&domain.RunResultsOutput{}))
}

func TestFormatFailureDetails(t *testing.T) {
	d := &domain.CaseResult{
		ID:              "Neg_Fun_02",
		Title:           "Neg_Fun_02: Garbled [input]",
		Category:        "negative-functional",
		Input:           "xyz123",
		Actual:          "xyz123",
		Attempts:        1,
		WaitMs:          4000,
		ExpectedFailure: true,
		Message:         "assertion failed: text_equals",
		Screenshots:     []string{"shots/Neg_Fun_02_system_failure.png"},
	}

	text := FormatFailureDetails(d)

	assert.Contains(t, text, "Documents a known system failure")
	assert.Contains(t, text, "[yellow]Expected:[white]\n(empty)")
	assert.Contains(t, text, "shots/Neg_Fun_02_system_failure.png")
	// brackets in user text must not be read as color tags
	assert.Contains(t, text, "Garbled [input[]")
}

func TestFormatFailureStats(t *testing.T) {
	stats := FormatFailureStats(&domain.CaseResult{ID: "Pos_Fun_01"}, domain.RunResultsMeta{RunID: "abc"})
	assert.Contains(t, stats, "abc")
	assert.Contains(t, stats, "Pos_Fun_01")
}

type saveOutputStorage struct {
	err   error
	saved *domain.RunResultsOutput
}

func (s *saveOutputStorage) Save(results []domain.CaseResult, duration time.Duration) (*domain.RunResultsOutput, error) {
	return nil, s.err
}

func (s *saveOutputStorage) Load() (*domain.RunResultsOutput, error) {
	return s.saved, s.err
}

func (s *saveOutputStorage) SaveOutput(output *domain.RunResultsOutput) error {
	if s.err != nil {
		return s.err
	}
	s.saved = output
	return nil
}

func TestPersistResolved(t *testing.T) {
	output := sampleOutput()

	t.Run("saved", func(t *testing.T) {
		st := &saveOutputStorage{}
		assert.Empty(t, persistResolved(st, output))
		assert.Same(t, output, st.saved)
	})

	t.Run("save error is shown", func(t *testing.T) {
		st := &saveOutputStorage{err: errors.New("disk full [sda]")}
		msg := persistResolved(st, output)
		assert.Contains(t, msg, "Resolved flag not saved")
		assert.Contains(t, msg, "disk full [sda[]")
		assert.Nil(t, st.saved)
	})
}
