package soundchange

import (
	"testing"

	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

func phoneme(glyph string, index int) *phono.Phoneme {
	return &phono.Phoneme{Glyph: glyph, Index: index}
}

func TestDescribeUsesExplicitDescription(t *testing.T) {
	c := &SoundChange{Description: "lenition"}
	if got := c.Describe(); got != "lenition" {
		t.Fatalf("Describe() = %q, want %q", got, "lenition")
	}
}

func TestDescribeFallsBackToSourceTargetRendering(t *testing.T) {
	p, b := phoneme("p", 0), phoneme("b", 1)
	c := &SoundChange{
		Source: &Pattern{Segments: []Segment{{Phoneme: p}}},
		Target: Target{Kind: TargetPhonemes, Phonemes: []*phono.Phoneme{b}},
	}
	if got, want := c.Describe(), "p > b"; got != want {
		t.Fatalf("Describe() = %q, want %q", got, want)
	}
}

func TestRewriteSimpleSubstitution(t *testing.T) {
	p, b := phoneme("p", 0), phoneme("b", 1)
	a := phoneme("a", 2)
	c := &SoundChange{
		Source: &Pattern{Segments: []Segment{{Phoneme: p}}},
		Target: Target{Kind: TargetPhonemes, Phonemes: []*phono.Phoneme{b}},
	}
	word := []*phono.Phoneme{a, p, a}
	out := Rewrite(c, word, nil)

	if len(out) != 3 || out[0] != a || out[1] != b || out[2] != a {
		t.Fatalf("Rewrite() = %v, want [a b a]", glyphs(out))
	}
}

func TestRewriteDeletion(t *testing.T) {
	p := phoneme("p", 0)
	a := phoneme("a", 1)
	c := &SoundChange{
		Source: &Pattern{Segments: []Segment{{Phoneme: p}}},
		Target: Target{Kind: TargetEmpty},
	}
	out := Rewrite(c, []*phono.Phoneme{a, p, a}, nil)
	if len(out) != 2 || out[0] != a || out[1] != a {
		t.Fatalf("Rewrite() = %v, want [a a]", glyphs(out))
	}
}

func TestRewriteRespectsEnvironment(t *testing.T) {
	p, b, a, i := phoneme("p", 0), phoneme("b", 1), phoneme("a", 2), phoneme("i", 3)
	c := &SoundChange{
		Source:      &Pattern{Segments: []Segment{{Phoneme: p}}},
		Target:      Target{Kind: TargetPhonemes, Phonemes: []*phono.Phoneme{b}},
		Environment: &Environment{Before: []Segment{{Phoneme: a}}},
	}

	// p between vowels a_a: environment satisfied.
	out := Rewrite(c, []*phono.Phoneme{a, p, a}, nil)
	if out[1] != b {
		t.Fatalf("expected p to lenite after a, got %v", glyphs(out))
	}

	// p after i: environment not satisfied, word unchanged.
	out = Rewrite(c, []*phono.Phoneme{i, p, a}, nil)
	if out[1] != p {
		t.Fatalf("expected p to survive after i, got %v", glyphs(out))
	}
}

func TestAppliesSkipsOutOfTagOverlap(t *testing.T) {
	lang := &langtree.Language{ID: "l"}
	p := phoneme("p", 0)
	c := &SoundChange{
		Source: &Pattern{Segments: []Segment{{Phoneme: p}}},
		Target: Target{Kind: TargetEmpty},
		Tag:    langtree.Tag{Start: 100, End: 200, Language: lang},
	}
	w := &lexicon.Word{
		Gloss:    "test",
		Phonemes: []*phono.Phoneme{p},
		Tag:      langtree.Tag{Start: 0, End: 50, Language: lang},
	}
	if Applies(c, w) {
		t.Fatal("expected change not to apply when its tag does not overlap the word's tag")
	}
}

func TestApplyIfApplicablePreservesOriginalWord(t *testing.T) {
	lang := &langtree.Language{ID: "l"}
	p, b := phoneme("p", 0), phoneme("b", 1)
	c := &SoundChange{
		Source: &Pattern{Segments: []Segment{{Phoneme: p}}},
		Target: Target{Kind: TargetPhonemes, Phonemes: []*phono.Phoneme{b}},
		Tag:    langtree.Tag{Start: 0, End: 100, Language: lang},
	}
	original := &lexicon.Word{
		Gloss:    "water",
		Phonemes: []*phono.Phoneme{p},
		Tag:      langtree.Tag{Start: 0, End: 100, Language: lang},
	}

	next := ApplyIfApplicable(c, original, nil)

	if len(original.Phonemes) != 1 || original.Phonemes[0] != p {
		t.Fatal("expected the original word's phoneme slice to be untouched")
	}
	if len(next.Phonemes) != 1 || next.Phonemes[0] != b {
		t.Fatalf("expected the new word to carry /b/, got %v", glyphs(next.Phonemes))
	}
	if len(next.Etymology) != 1 || next.Etymology[0].Predecessor != original || next.Etymology[0].Change != c {
		t.Fatal("expected a single etymology step recording the original word and the change")
	}
}

func TestApplyIfApplicableNoOpReturnsSameWord(t *testing.T) {
	lang := &langtree.Language{ID: "l"}
	x := phoneme("x", 0)
	c := &SoundChange{
		Source: &Pattern{Segments: []Segment{{Phoneme: phoneme("q", 99)}}},
		Target: Target{Kind: TargetEmpty},
		Tag:    langtree.Tag{Start: 0, End: 100, Language: lang},
	}
	w := &lexicon.Word{
		Gloss:    "unchanged",
		Phonemes: []*phono.Phoneme{x},
		Tag:      langtree.Tag{Start: 0, End: 100, Language: lang},
	}
	next := ApplyIfApplicable(c, w, nil)
	if next != w {
		t.Fatal("expected a non-matching change to return the same Word value")
	}
}

func glyphs(ps []*phono.Phoneme) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Glyph
	}
	return out
}
