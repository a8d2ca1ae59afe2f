package ui

import (
	"fmt"
	"time"

	"golang.org/x/text/width"
)

// FormatStopwatch formats d as HH:MM:SS.cc. Hours are not wrapped and grow
// beyond two digits, minutes and seconds are wrapped at 60. Negative
// durations are shown as zero.
func FormatStopwatch(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	sec := uint64(d / time.Second)
	centis := uint64(d%time.Second) / uint64(10*time.Millisecond)

	hours := sec / 3600
	mins := sec / 60 % 60
	sec %= 60

	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, mins, sec, centis)
}

// DisplayWidth returns the number of terminal cells needed to display s
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		w += displayRuneWidth(r)
	}

	return w
}

func displayRuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianNarrow, width.EastAsianHalfwidth, width.EastAsianAmbiguous, width.Neutral:
		// variation selectors and other combining marks take no cell
		if r >= 0xFE00 && r <= 0xFE0F {
			return 0
		}
		return 1
	default:
		return 0
	}
}

// Truncate s to fit in width (number of terminal cells) w.
// If w is negative, returns the empty string.
func Truncate(s string, w int) string {
	if len(s) <= w {
		// no rune is wider than its UTF-8 encoding is long
		return s
	}

	for i, r := range s {
		w -= displayRuneWidth(r)
		if w < 0 {
			return s[:i]
		}
	}

	return s
}
