package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar_KnownTotal(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, NewRenderer(&buf, true))

	bar.Start("SDelete.zip", 1000)
	for i := 0; i < 10; i++ {
		bar.Add(100)
	}
	bar.Finish()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\rSDelete.zip"))
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "1000 B/1000 B")
	assert.True(t, strings.HasSuffix(out, "\n"))
	// Start, ten percentage changes, Finish
	assert.Equal(t, 12, strings.Count(out, "\r"))
}

func TestProgressBar_SkipsRedrawWithoutPercentChange(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, NewRenderer(&buf, true))

	bar.Start("x", 1_000_000)
	bar.Add(1)
	bar.Add(1)

	assert.Equal(t, 1, strings.Count(buf.String(), "\r"))
}

func TestProgressBar_UnknownTotal(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, NewRenderer(&buf, true))

	bar.Start("SDelete.zip", -1)
	bar.Add(unknownStep)
	bar.Finish()

	out := buf.String()
	assert.Contains(t, out, "SDelete.zip 256.0 KiB")
	assert.NotContains(t, out, "%")
}

func TestProgressBar_IgnoresCallsOutsideTransfer(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, NewRenderer(&buf, true))

	bar.Add(10)
	bar.Finish()

	assert.Empty(t, buf.String())
}
