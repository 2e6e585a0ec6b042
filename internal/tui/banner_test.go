package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBannerLines_ShortMessageUsesMinWidth(t *testing.T) {
	lines := BannerLines("hi", BannerMinWidth)

	assert.Equal(t, strings.Repeat("■", 40), lines[0])
	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, 40, lipgloss.Width(lines[1]))
	assert.True(t, strings.HasPrefix(lines[1], "■"))
	assert.True(t, strings.HasSuffix(lines[1], "■"))
	assert.Contains(t, lines[1], " hi ")
}

func TestBannerLines_LongMessageWidensFrame(t *testing.T) {
	msg := `Cleaning up free space on drive C:\, please wait...`

	lines := BannerLines(msg, BannerMinWidth)

	want := len(msg) + 4
	assert.Equal(t, want, lipgloss.Width(lines[0]))
	assert.Equal(t, "■ "+msg+" ■", lines[1])
}

func TestBannerLines_WideRunesCountDouble(t *testing.T) {
	msg := "正在清理磁盘" // 6 runes, 12 columns

	lines := BannerLines(msg, 10)

	assert.Equal(t, 16, lipgloss.Width(lines[0]))
	assert.Equal(t, 16, lipgloss.Width(lines[1]))
}

func TestBannerLines_OddPaddingStaysAligned(t *testing.T) {
	lines := BannerLines("abc", 10)

	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
	assert.Equal(t, "■  abc   ■", lines[1])
}
