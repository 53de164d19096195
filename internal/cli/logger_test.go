package cli

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, logrus.WarnLevel, NewLogger().GetLevel())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, logrus.InfoLevel, NewLogger().GetLevel())

	t.Setenv("LOG_LEVEL", "")
	log := NewLogger()
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	SetVerbose(log, true)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestFlags_ToConfigFlags(t *testing.T) {
	f := Flags{
		SpreadsheetPath: "cases.xlsx",
		Categories:      []string{"positive-ui"},
		Retries:         2,
		Timeout:         time.Minute,
		Headed:          true,
	}

	cf := f.ToConfigFlags()
	assert.Equal(t, "cases.xlsx", cf.SpreadsheetPath)
	assert.Equal(t, []string{"positive-ui"}, cf.Categories)
	assert.Equal(t, 2, cf.Retries)
	assert.Equal(t, time.Minute, cf.Timeout)
	assert.True(t, cf.Headed)
}
