package similarity

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScore_Identity(t *testing.T) {
	for _, s := range []string{"Alps", "Mont Blanc", "Überblick über die Alpen", "K2"} {
		if got := Score(s, s); got != 1.0 {
			t.Errorf("Score(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestScore_EmptyVsNonEmpty(t *testing.T) {
	if got := Score("", "Alps"); got != 0.0 {
		t.Errorf("Score(empty, non-empty) = %v, want 0.0", got)
	}
	if got := Score("Alps", ""); got != 0.0 {
		t.Errorf("Score(non-empty, empty) = %v, want 0.0", got)
	}
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Alps", "Alps Overview"},
		{"Matterhorn", "Matterhorn Peak"},
		{"Glacier", "Glaciers"},
		{"completely different", "nothing alike"},
	}
	for _, pair := range pairs {
		ab := Score(pair[0], pair[1])
		ba := Score(pair[1], pair[0])
		if !almostEqual(ab, ba) {
			t.Errorf("Score(%q, %q) = %v but Score(%q, %q) = %v", pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

func TestScore_SubstringContainment(t *testing.T) {
	// "alps" (4 chars) contained in "alps overview" (13 chars)
	want := 4.0 / 13.0
	if got := Score("Alps", "Alps Overview"); !almostEqual(got, want) {
		t.Errorf("Score(Alps, Alps Overview) = %v, want %v", got, want)
	}
}

func TestScore_NormalizationEquality(t *testing.T) {
	// punctuation stripped, whitespace collapsed, case-insensitive
	if got := Score("  The ALPS!  ", "the alps"); got != 1.0 {
		t.Errorf("Score with normalization differences = %v, want 1.0", got)
	}
}

func TestScore_EditDistanceBranch(t *testing.T) {
	// "hut" vs "hat": distance 1 over max length 3
	want := 1.0 - 1.0/3.0
	if got := Score("hut", "hat"); !almostEqual(got, want) {
		t.Errorf("Score(hut, hat) = %v, want %v", got, want)
	}
}

func TestScore_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "completely unrelated very long title"},
		{"Zermatt", "Grindelwald"},
		{"x", "y"},
	}
	for _, pair := range pairs {
		got := Score(pair[0], pair[1])
		if got < 0.0 || got > 1.0 {
			t.Errorf("Score(%q, %q) = %v, out of [0,1]", pair[0], pair[1], got)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"gipfel", "gipfel", 0},
	}
	for _, tt := range tests {
		if got := levenshtein([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Alps", "alps"},
		{"  The   ALPS!  ", "the alps"},
		{"Mont-Blanc (4810m)", "montblanc 4810m"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
