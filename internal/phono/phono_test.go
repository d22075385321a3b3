package phono

import "testing"

func buildVoicingTrait() (*Trait, *Feature, *Feature) {
	voiced := &Feature{Labels: []Label{{Text: "voiced"}}}
	voiceless := &Feature{Labels: []Label{{Text: "voiceless"}}}
	trait := &Trait{Name: "voicing", Features: []*Feature{voiceless, voiced}, Default: voiceless}
	voiced.Trait = trait
	voiceless.Trait = trait
	return trait, voiced, voiceless
}

func TestFeatureByLabel(t *testing.T) {
	trait, voiced, _ := buildVoicingTrait()
	if got := trait.FeatureByLabel("voiced"); got != voiced {
		t.Fatalf("FeatureByLabel(voiced) = %v, want %v", got, voiced)
	}
	if got := trait.FeatureByLabel("nasal"); got != nil {
		t.Fatalf("FeatureByLabel(nasal) = %v, want nil", got)
	}
}

func TestNonDefaultFeature(t *testing.T) {
	trait, voiced, voiceless := buildVoicingTrait()
	if got := trait.NonDefaultFeature(voiceless); got != voiced {
		t.Fatalf("NonDefaultFeature(voiceless) = %v, want %v", got, voiced)
	}
}

func TestPhonemeSameFeatures(t *testing.T) {
	trait, voiced, voiceless := buildVoicingTrait()
	b := &Phoneme{Glyph: "b", Features: map[*Trait]*Feature{trait: voiced}}
	p := &Phoneme{Glyph: "p", Features: map[*Trait]*Feature{trait: voiceless}}

	if !b.SameFeatures(map[*Trait]*Feature{trait: voiced}) {
		t.Fatal("expected b to match its own feature map")
	}
	if b.SameFeatures(p.Features) {
		t.Fatal("expected b not to match p's feature map")
	}
}

func TestModifierMatchesAndNegation(t *testing.T) {
	trait, voiced, voiceless := buildVoicingTrait()
	b := &Phoneme{Glyph: "b", Features: map[*Trait]*Feature{trait: voiced}}
	p := &Phoneme{Glyph: "p", Features: map[*Trait]*Feature{trait: voiceless}}

	positive := Modifier{Feature: voiced, Sign: Positive}
	if !positive.Matches(b) {
		t.Fatal("expected +voiced to match b")
	}
	if positive.Matches(p) {
		t.Fatal("expected +voiced not to match p")
	}

	negative := Modifier{Feature: voiced, Sign: Negative}
	if negative.Matches(b) {
		t.Fatal("expected -voiced not to match b")
	}
	if !negative.Matches(p) {
		t.Fatal("expected -voiced to match p")
	}
}

func TestCategoryBaseAndModifiers(t *testing.T) {
	trait, voiced, voiceless := buildVoicingTrait()
	b := &Phoneme{Glyph: "b", Features: map[*Trait]*Feature{trait: voiced}}
	p := &Phoneme{Glyph: "p", Features: map[*Trait]*Feature{trait: voiceless}}
	m := &Phoneme{Glyph: "m", Features: map[*Trait]*Feature{trait: voiced}}

	stops := &Class{Name: "stops", Phonemes: []*Phoneme{b, p}}

	voicedStops := &Category{Base: stops, Modifiers: []Modifier{{Feature: voiced, Sign: Positive}}}
	if !voicedStops.Matches(b) {
		t.Fatal("expected voiced stop b to match")
	}
	if voicedStops.Matches(p) {
		t.Fatal("expected voiceless stop p not to match")
	}
	if voicedStops.Matches(m) {
		t.Fatal("expected m outside the base class not to match even though voiced")
	}
}

func TestCategoryComplementIsExhaustive(t *testing.T) {
	trait, voiced, voiceless := buildVoicingTrait()
	b := &Phoneme{Glyph: "b", Features: map[*Trait]*Feature{trait: voiced}}
	p := &Phoneme{Glyph: "p", Features: map[*Trait]*Feature{trait: voiceless}}
	stops := &Class{Name: "stops", Phonemes: []*Phoneme{b, p}}

	voicedStops := &Category{Base: stops, Modifiers: []Modifier{{Feature: voiced, Sign: Positive}}}
	voicelessStops := &Category{Base: stops, Modifiers: []Modifier{{Feature: voiced, Sign: Negative}}}

	for _, ph := range stops.Phonemes {
		if voicedStops.Matches(ph) == voicelessStops.Matches(ph) {
			t.Fatalf("phoneme %q should match exactly one of the complementary categories", ph.Glyph)
		}
	}
}

func TestSeriesListAndCategoryMembership(t *testing.T) {
	trait, voiced, _ := buildVoicingTrait()
	b := &Phoneme{Glyph: "b", Features: map[*Trait]*Feature{trait: voiced}}
	d := &Phoneme{Glyph: "d", Features: map[*Trait]*Feature{trait: voiced}}

	list := &Series{Name: "voicedPair", List: []*Phoneme{b, d}}
	if !list.Contains(b) || !list.Contains(d) {
		t.Fatal("expected list series to contain both its members")
	}

	other := &Phoneme{Glyph: "g", Features: map[*Trait]*Feature{trait: voiced}}
	if list.Contains(other) {
		t.Fatal("expected list series not to contain a phoneme absent from its list")
	}

	cat := &Series{Name: "voiced", Category: &Category{Modifiers: []Modifier{{Feature: voiced, Sign: Positive}}}}
	if !cat.Contains(other) {
		t.Fatal("expected category series to match by feature, independent of base class membership")
	}
}
