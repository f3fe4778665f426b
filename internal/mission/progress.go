package mission

import (
	"strconv"
	"strings"
)

// Separator splits the current and total counts in a progress text.
const Separator = "/"

// Progress is a mission's completion state as a current/total pair.
// Values are derived on demand and never mutated in place.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Percentage returns the completion percentage clamped to [0, 100].
func (p Progress) Percentage() float64 {
	return Percentage(p.Current, p.Total)
}

// Complete reports whether Current has reached Total.
func (p Progress) Complete() bool {
	return IsComplete(p.Current, p.Total)
}

// Advance returns a copy with Current moved by n. The result is not clamped.
func (p Progress) Advance(n int) Progress {
	return Progress{Current: p.Current + n, Total: p.Total}
}

func (p Progress) String() string {
	return FormatProgress(p.Current, p.Total)
}

// Percentage converts a current/total pair into a percentage in [0, 100].
// A non-positive total yields 0.
func Percentage(current, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(current) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ParseProgress reads a "<current>/<total>" string. Segments that are
// missing or not integers become 0; anything after a second separator
// is ignored.
func ParseProgress(text string) Progress {
	parts := strings.SplitN(text, Separator, 3)
	var p Progress
	p.Current = atoiOrZero(parts[0])
	if len(parts) > 1 {
		p.Total = atoiOrZero(parts[1])
	}
	return p
}

// IsComplete compares the raw counts; it does not look at the clamped
// percentage, so an overshoot is still complete.
func IsComplete(current, total int) bool {
	return current >= total
}

// FormatProgress renders the pair verbatim as "<current>/<total>".
func FormatProgress(current, total int) string {
	return strconv.Itoa(current) + Separator + strconv.Itoa(total)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
