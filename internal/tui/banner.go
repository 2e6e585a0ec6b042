package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BannerMinWidth is the narrowest banner frame.
const BannerMinWidth = 40

// bannerRune frames banners.
const bannerRune = "■"

// BannerLines lays out msg inside a frame at least minWidth columns wide.
// Wide (CJK) runes count as two columns. The result is the top border, the
// framed message and the bottom border.
func BannerLines(msg string, minWidth int) [3]string {
	msgWidth := lipgloss.Width(msg)
	frameWidth := max(msgWidth+4, minWidth)

	inner := frameWidth - msgWidth - 2
	left := inner / 2
	right := inner - left

	border := strings.Repeat(bannerRune, frameWidth)
	return [3]string{
		border,
		bannerRune + strings.Repeat(" ", left) + msg + strings.Repeat(" ", right) + bannerRune,
		border,
	}
}
