package mission

import (
	"math"
	"testing"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected float64
	}{
		{"partial", 3, 10, 30},
		{"exact", 10, 10, 100},
		{"overshoot clamps", 12, 10, 100},
		{"negative current clamps", -4, 10, 0},
		{"zero total", 5, 0, 0},
		{"negative total", 5, -3, 0},
		{"zero both", 0, 0, 0},
		{"fraction", 1, 3, 100.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(tt.current, tt.total)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Percentage(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.expected)
			}
		})
	}
}

func TestPercentageBounds(t *testing.T) {
	for total := -3; total <= 12; total++ {
		for current := -20; current <= 40; current++ {
			got := Percentage(current, total)
			if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 || got > 100 {
				t.Fatalf("Percentage(%d, %d) = %v, out of [0, 100]", current, total, got)
			}
			if total <= 0 && got != 0 {
				t.Fatalf("Percentage(%d, %d) = %v, want 0 for non-positive total", current, total, got)
			}
		}
	}
}

func TestParseProgress(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Progress
	}{
		{"well formed", "3/10", Progress{3, 10}},
		{"complete", "10/10", Progress{10, 10}},
		{"overshoot", "12/10", Progress{12, 10}},
		{"no separator", "bad", Progress{0, 0}},
		{"number without separator", "7", Progress{7, 0}},
		{"empty", "", Progress{0, 0}},
		{"missing total", "5/", Progress{5, 0}},
		{"missing current", "/8", Progress{0, 8}},
		{"non-numeric total", "2/abc", Progress{2, 0}},
		{"extra segments ignored", "1/2/3", Progress{1, 2}},
		{"negative current", "-2/5", Progress{-2, 5}},
		{"whitespace not trimmed", " 3/10", Progress{0, 10}},
		{"overflow coerces", "99999999999999999999/4", Progress{0, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseProgress(tt.text); got != tt.expected {
				t.Errorf("ParseProgress(%q) = %+v, want %+v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected bool
	}{
		{"below", 3, 10, false},
		{"equal", 10, 10, true},
		{"overshoot", 12, 10, true},
		{"zero requirement", 0, 0, true},
		{"negative total", -1, -5, true},
		{"negative current", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsComplete(tt.current, tt.total); got != tt.expected {
				t.Errorf("IsComplete(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.expected)
			}
		})
	}
}

func TestFormatProgressRoundTrip(t *testing.T) {
	for c := 0; c <= 30; c++ {
		for total := 0; total <= 30; total++ {
			text := FormatProgress(c, total)
			if got := ParseProgress(text); got != (Progress{c, total}) {
				t.Fatalf("ParseProgress(FormatProgress(%d, %d)) = %+v", c, total, got)
			}
		}
	}

	if got := FormatProgress(12, 10); got != "12/10" {
		t.Errorf("FormatProgress(12, 10) = %q, want %q", got, "12/10")
	}
	if got := FormatProgress(-1, 0); got != "-1/0" {
		t.Errorf("FormatProgress(-1, 0) = %q, want %q", got, "-1/0")
	}
}

func TestProgressScenarios(t *testing.T) {
	tests := []struct {
		text     string
		percent  float64
		complete bool
	}{
		{"3/10", 30, false},
		{"10/10", 100, true},
		{"12/10", 100, true},
		{"5/0", 0, true},
		{"bad", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			p := ParseProgress(tt.text)
			if got := p.Percentage(); got != tt.percent {
				t.Errorf("%q percentage = %v, want %v", tt.text, got, tt.percent)
			}
			if got := p.Complete(); got != tt.complete {
				t.Errorf("%q complete = %v, want %v", tt.text, got, tt.complete)
			}
		})
	}
}

func TestProgressAdvance(t *testing.T) {
	p := Progress{Current: 9, Total: 10}
	next := p.Advance(3)
	if p.Current != 9 {
		t.Errorf("Advance mutated receiver: %+v", p)
	}
	if next != (Progress{12, 10}) {
		t.Errorf("Advance(3) = %+v, want {12 10}", next)
	}
	if next.String() != "12/10" {
		t.Errorf("String() = %q", next.String())
	}
}
