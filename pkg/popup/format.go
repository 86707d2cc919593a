package popup

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// cells added to the widest line
	noticePadding = 10
	// rough pixel width of one monospace cell
	cellWidthPx = 11
	// rough pixel height of a line and the window chrome
	lineHeightPx = 13
	chromePx     = 60
)

// FormatNoticeText centers every line of raw in a block wide enough for the
// longest one, under a blank lead line. It returns the block, the number of
// lines in raw and a suggested window width in pixels.
func FormatNoticeText(raw string) (string, int, int) {
	lines := splitLines(raw)

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	width += noticePadding

	out := make([]string, 0, len(lines)+1)
	out = append(out, "  ")
	for _, l := range lines {
		out = append(out, center(l, width))
	}

	return strings.Join(out, "\n"), len(lines), width * cellWidthPx
}

func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// splitLines breaks on \n, \r\n and \r without yielding a trailing empty line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func windowHeight(lines int) int {
	return lines*lineHeightPx + chromePx
}
