package textutil

import "strings"

// SimilarityRatio computes an edit-distance based similarity between two
// strings in the range [0, 1]. Equal strings score 1; the score decreases with
// the Levenshtein distance relative to the longer string.
func SimilarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	distance := levenshtein(a, b)
	return (float64(longer) - float64(distance)) / float64(longer)
}

// WordJaccard computes the Jaccard overlap of the lower-cased word sets of two
// strings. Returns 0 when either side has no words.
func WordJaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	common := 0
	for word := range setA {
		if _, ok := setB[word]; ok {
			common++
		}
	}
	union := len(setA) + len(setB) - common
	return float64(common) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}

func levenshtein(a, b string) int {
	// Single-row dynamic programming over bytes; titles are normalized ASCII
	// by the time they reach comparison.
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
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(values ...int) int {
	out := values[0]
	for _, v := range values[1:] {
		if v < out {
			out = v
		}
	}
	return out
}
