package textsim

import "testing"

func set(tokens ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		s[tok] = struct{}{}
	}
	return s
}

func TestJaccardSpecialCases(t *testing.T) {
	if got := Jaccard(set(), set()); got != 1 {
		t.Errorf("Jaccard of two empty sets = %v, want 1", got)
	}
	if got := Jaccard(set("a"), set()); got != 0 {
		t.Errorf("Jaccard with one empty set = %v, want 0", got)
	}
	if got := Jaccard(set("a", "b"), set("c", "d")); got != 0 {
		t.Errorf("Jaccard of disjoint sets = %v, want 0", got)
	}
	if got := Jaccard(set("a", "b", "c"), set("a", "b", "c")); got != 1 {
		t.Errorf("Jaccard of identical sets = %v, want 1", got)
	}
}

func TestJaccardOverlap(t *testing.T) {
	a := set("a", "b", "c")
	b := set("b", "c", "d")
	// intersection 2, union 4
	if got := Jaccard(a, b); got != 0.5 {
		t.Errorf("Jaccard = %v, want 0.5", got)
	}
}

func TestJaccardSymmetricAndBounded(t *testing.T) {
	pairs := [][2]map[string]struct{}{
		{set("a", "b"), set("b", "c", "d")},
		{set("x"), set("x", "y")},
		{Fingerprint("hemorrhage risk rises"), Fingerprint("hemorrhage risk falls")},
	}

	for i, p := range pairs {
		ab := Jaccard(p[0], p[1])
		ba := Jaccard(p[1], p[0])
		if ab != ba {
			t.Errorf("pair %d: Jaccard not symmetric: %v != %v", i, ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Errorf("pair %d: Jaccard out of bounds: %v", i, ab)
		}
	}
}

func TestShingles(t *testing.T) {
	got := Shingles("ab cd", 3)

	for _, want := range []string{"ab", "cd", "ab ", "b c", " cd"} {
		if _, ok := got[want]; !ok {
			t.Errorf("Shingles missing token %q, got %v", want, got)
		}
	}
	if len(got) != 5 {
		t.Errorf("Shingles returned %d tokens, want 5: %v", len(got), got)
	}
}

func TestShinglesSkipsShortWords(t *testing.T) {
	got := Shingles("a big one", 0)
	if _, ok := got["a"]; ok {
		t.Error("single-character word should not appear in shingle set")
	}
	for _, want := range []string{"big", "one"} {
		if _, ok := got[want]; !ok {
			t.Errorf("Shingles missing word token %q", want)
		}
	}
}

func TestShinglesEmptyInput(t *testing.T) {
	if got := Shingles("", 3); len(got) != 0 {
		t.Errorf("Shingles of empty input = %v, want empty set", got)
	}
	if got := Fingerprint(""); len(got) != 0 {
		t.Errorf("Fingerprint of empty input = %v, want empty set", got)
	}
}

func TestFingerprintUnionAcrossSizes(t *testing.T) {
	text := "market update"
	union := Fingerprint(text, 3, 4)

	for k := range Shingles(text, 3) {
		if _, ok := union[k]; !ok {
			t.Errorf("Fingerprint missing 3-gram token %q", k)
		}
	}
	for k := range Shingles(text, 4) {
		if _, ok := union[k]; !ok {
			t.Errorf("Fingerprint missing 4-gram token %q", k)
		}
	}
}

func TestFingerprintToleratesSpellingVariants(t *testing.T) {
	a := Fingerprint("Haemorrhage risk rises after surgery")
	b := Fingerprint("Hemorrhage risk rises after surgery")
	if got := Jaccard(a, b); got != 1 {
		t.Errorf("variant titles should produce identical fingerprints, Jaccard = %v", got)
	}
}
