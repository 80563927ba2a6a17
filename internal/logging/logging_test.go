package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestLineFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelInfo)
	l.now = fixedClock

	l.Info("disk %s full", "sda")

	assert.Equal(t, "[2025-01-02T03:04:05+0000]: disk sda full\n", buf.String())
}

func TestLevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelInfo)
	l.now = fixedClock

	l.Debug("suppressed")
	assert.Empty(t, buf.String())

	l.Error("reported")
	assert.Contains(t, buf.String(), "reported")
}

func TestDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug)
	l.now = fixedClock

	l.Debug("no perfdata this cycle")
	assert.Equal(t, "[2025-01-02T03:04:05+0000]: no perfdata this cycle\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))

	// Unknown values fall back to info instead of failing startup.
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}
