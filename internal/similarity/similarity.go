// Package similarity scores how alike two content titles are and finds
// existing wiki items that look like duplicates of a proposed one.
package similarity

import (
	"strings"
	"unicode"
)

// Score returns a normalized similarity between a and b in [0,1].
// It is symmetric, 1.0 for equal (normalized) inputs and 0.0 when only
// one side is empty. Containment is rewarded before falling back to
// Levenshtein distance, so "Alps" vs "Alps Overview" scores 4/13 rather
// than the much lower edit-distance ratio.
func Score(a, b string) float64 {
	na, nb := normalize(a), normalize(b)
	if na == nb {
		return 1.0
	}
	if na == "" || nb == "" {
		return 0.0
	}

	ra, rb := []rune(na), []rune(nb)
	shorter, longer := na, nb
	if len(ra) > len(rb) {
		shorter, longer = nb, na
		ra, rb = rb, ra
	}
	if strings.Contains(longer, shorter) {
		return float64(len(ra)) / float64(len(rb))
	}

	distance := levenshtein(ra, rb)
	return 1.0 - float64(distance)/float64(len(rb))
}

// normalize lowercases, drops everything that is not a letter, digit or
// whitespace, and collapses whitespace runs to single spaces.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// levenshtein computes the classic edit distance (insert/delete/substitute
// at cost 1) over rune slices, keeping two rows of the DP table.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
