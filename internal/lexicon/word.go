// Package lexicon holds the Word value type: words with a gloss, a
// phoneme sequence, definitions, a tag, and an etymology chain.
package lexicon

import (
	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// Definition is one (part of speech, gloss text) pair. PartOfSpeech may
// be empty.
type Definition struct {
	PartOfSpeech string
	Text         string
}

// Change is the minimal view of a sound change that an etymology step
// needs. It is satisfied implicitly by soundchange.SoundChange; lexicon
// never imports the soundchange package, avoiding the natural import
// cycle between "a word's etymology names the change that produced it"
// and "applying a change produces a new word".
type Change interface {
	// Describe returns a short human-readable label, e.g. the change's
	// Description field or a rendering of its source/target/environment.
	Describe() string
}

// EtymologyStep records one rewrite that produced a word: the word it
// was rewritten from, and the change that did it.
type EtymologyStep struct {
	Predecessor *Word
	Change      Change
}

// Word is an immutable lexicon entry. Applying a sound change produces a
// new Word whose Etymology prepends the prior word and the change
//; the original Word value is never mutated.
type Word struct {
	Gloss          string
	Phonemes       []*phono.Phoneme
	Definitions    []Definition
	Tag            langtree.Tag
	DefinitionSite ast.Span
	Etymology      []EtymologyStep
}

// Render concatenates the glyphs of the word's phonemes, producing the
// IPA-like string the word would be transcribed from").
func (w *Word) Render() string {
	out := make([]byte, 0, len(w.Phonemes)*2)
	for _, p := range w.Phonemes {
		out = append(out, p.Glyph...)
	}
	return string(out)
}

// WithPhonemes returns a new Word, identical to w except for its phoneme
// sequence and an etymology entry recording the change that produced it.
// w itself is never modified.
func (w *Word) WithPhonemes(phonemes []*phono.Phoneme, change Change) *Word {
	next := &Word{
		Gloss:          w.Gloss,
		Phonemes:       phonemes,
		Definitions:    w.Definitions,
		Tag:            w.Tag,
		DefinitionSite: w.DefinitionSite,
	}
	next.Etymology = make([]EtymologyStep, 0, len(w.Etymology)+1)
	next.Etymology = append(next.Etymology, EtymologyStep{Predecessor: w, Change: change})
	next.Etymology = append(next.Etymology, w.Etymology...)
	return next
}
