package snapshot

import (
	"testing"

	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/phono"
	"github.com/conlangtools/chronlang-engine/internal/soundchange"
)

func TestBuildInheritsWordsFromAncestorLanguage(t *testing.T) {
	proto := &langtree.Language{ID: "proto"}
	daughter := &langtree.Language{ID: "daughter", Parent: proto}

	m := module.New("test")
	m.Languages["proto"] = proto
	m.Languages["daughter"] = daughter
	m.Words["water"] = &lexicon.Word{
		Gloss: "water",
		Tag:   langtree.Tag{Start: 0, End: langtree.Unbounded, Language: proto},
	}

	snap := Build(m, daughter, 10)
	if len(snap.Words) != 1 || snap.Words[0].Gloss != "water" {
		t.Fatalf("expected a word declared on proto to be visible in daughter, got %v", snap.Words)
	}
}

func TestBuildExcludesWordsOutsideTimeWindow(t *testing.T) {
	lang := &langtree.Language{ID: "l"}
	m := module.New("test")
	m.Languages["l"] = lang
	m.Words["old"] = &lexicon.Word{Gloss: "old", Tag: langtree.Tag{Start: 0, End: 50, Language: lang}}
	m.Words["new"] = &lexicon.Word{Gloss: "new", Tag: langtree.Tag{Start: 100, End: langtree.Unbounded, Language: lang}}

	snap := Build(m, lang, 25)
	if len(snap.Words) != 1 || snap.Words[0].Gloss != "old" {
		t.Fatalf("expected only \"old\" in scope at t=25, got %v", snap.Words)
	}
}

func TestBuildExcludesUnrelatedLanguage(t *testing.T) {
	a := &langtree.Language{ID: "a"}
	b := &langtree.Language{ID: "b"}
	m := module.New("test")
	m.Languages["a"] = a
	m.Languages["b"] = b
	m.Words["foo"] = &lexicon.Word{Gloss: "foo", Tag: langtree.Tag{Start: 0, End: langtree.Unbounded, Language: a}}

	snap := Build(m, b, 0)
	if len(snap.Words) != 0 {
		t.Fatalf("expected no words from an unrelated language's lexicon, got %v", snap.Words)
	}
}

func TestBuildRecordsWarningOnUnresolvableModification(t *testing.T) {
	lang := &langtree.Language{ID: "l"}

	voiced := &phono.Feature{Labels: []phono.Label{{Text: "voiced"}}}
	vTrait := &phono.Trait{Name: "voicing", Features: []*phono.Feature{voiced}, Default: voiced}
	voiced.Trait = vTrait

	// p is a phoneme with no class, so the modification can never find a
	// replacement phoneme and must fall back to a warning.
	p := &phono.Phoneme{Glyph: "p", Features: map[*phono.Trait]*phono.Feature{vTrait: voiced}, Class: nil}

	mod := module.New("test")
	mod.Languages["l"] = lang
	mod.Words["test"] = &lexicon.Word{Gloss: "test", Phonemes: []*phono.Phoneme{p}, Tag: langtree.Tag{Start: 0, End: langtree.Unbounded, Language: lang}}
	mod.SoundChanges = append(mod.SoundChanges, &soundchange.SoundChange{
		Source: &soundchange.Pattern{Segments: []soundchange.Segment{{Phoneme: p}}},
		Target: soundchange.Target{Kind: soundchange.TargetModification, Modifiers: []phono.Modifier{{Feature: voiced, Sign: phono.Negative}}},
		Tag:    langtree.Tag{Start: 0, End: langtree.Unbounded, Language: lang},
	})

	snap := Build(mod, lang, 0)
	if len(snap.Warnings) == 0 {
		t.Fatal("expected a warning when a feature modification matches no phoneme in its class")
	}
}
