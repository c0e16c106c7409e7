package textsim

import "strings"

// DefaultShingleSizes are the character window sizes used when callers do not
// supply their own. Word tokens capture coarse topical overlap cheaply; the
// character n-grams catch near-duplicate phrasing and tolerate minor spelling
// or word-order differences that word-only matching would miss.
var DefaultShingleSizes = []int{3, 4, 5}

// minWordLength excludes single-character tokens from fingerprints.
const minWordLength = 2

// Shingles returns the similarity tokens of text for one window size k:
// every whitespace-delimited word of length >= 2 from the normalized text,
// plus every contiguous k-rune substring (sliding by one rune, spaces
// included). Empty input yields an empty set.
func Shingles(text string, k int) map[string]struct{} {
	normalized := Normalize(text)
	set := make(map[string]struct{})
	if normalized == "" {
		return set
	}

	for _, word := range strings.Fields(normalized) {
		if len(word) >= minWordLength {
			set[word] = struct{}{}
		}
	}

	if k < 1 {
		return set
	}
	runes := []rune(normalized)
	for i := 0; i+k <= len(runes); i++ {
		set[string(runes[i:i+k])] = struct{}{}
	}
	return set
}

// Fingerprint builds the similarity fingerprint of text as the union of
// Shingles across all the given window sizes. With no sizes supplied,
// DefaultShingleSizes apply.
func Fingerprint(text string, sizes ...int) map[string]struct{} {
	if len(sizes) == 0 {
		sizes = DefaultShingleSizes
	}

	set := make(map[string]struct{})
	for _, k := range sizes {
		for token := range Shingles(text, k) {
			set[token] = struct{}{}
		}
	}
	return set
}
