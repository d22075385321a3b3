// Package soundchange implements the sound change value type and the
// diachronic rewrite engine: pattern matching (including natural-class
// matching), environment testing, and rewriting (including feature
// modification re-resolved to concrete phonemes). This is the core of
// the core.
package soundchange

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// Segment is one position within a source pattern or an environment
// list: either a specific phoneme or a category predicate. A zero
// Segment (both fields nil) never matches.
type Segment struct {
	Phoneme  *phono.Phoneme
	Category *phono.Category
}

// Matches reports whether phoneme p satisfies this segment: phoneme
// equality by reference, or category membership.
func (s Segment) Matches(p *phono.Phoneme) bool {
	switch {
	case s.Phoneme != nil:
		return s.Phoneme == p
	case s.Category != nil:
		return s.Category.Matches(p)
	default:
		return false
	}
}

// Pattern is an ordered list of source segments. A nil *Pattern
// represents the empty source, which matches every gap between phonemes
// rather than any segment.
type Pattern struct {
	Segments []Segment
}

// TargetKind distinguishes the three target shapes of a sound change.
type TargetKind int

const (
	TargetEmpty TargetKind = iota
	TargetPhonemes
	TargetModification
)

// Target is a sound change's target.
type Target struct {
	Kind      TargetKind
	Phonemes  []*phono.Phoneme // set iff Kind == TargetPhonemes
	Modifiers []phono.Modifier // set iff Kind == TargetModification
}

// Environment constrains where a source match may apply. A nil
// *Environment matches unconditionally.
type Environment struct {
	Before      []Segment
	After       []Segment
	AnchorStart bool
	AnchorEnd   bool
}

// SoundChange is a time- and language-tagged rewrite rule:
// source -> target / environment.
type SoundChange struct {
	Source         *Pattern // nil means the empty source
	Target         Target
	Environment    *Environment // nil means unconstrained
	Description    string
	Tag            langtree.Tag
	DefinitionSite ast.Span
}

// Describe returns the change's human-readable label: its declared
// description if any, otherwise a rendering of source/target. It
// satisfies lexicon.Change so a *SoundChange can be recorded directly in
// a Word's etymology without lexicon importing this package.
func (c *SoundChange) Describe() string {
	if c.Description != "" {
		return c.Description
	}
	return fmt.Sprintf("%s > %s", describeSource(c.Source), describeTarget(c.Target))
}

func describeSource(p *Pattern) string {
	if p == nil || len(p.Segments) == 0 {
		return "∅" // empty set, matching the "empty source" concept
	}
	out := ""
	for _, seg := range p.Segments {
		switch {
		case seg.Phoneme != nil:
			out += seg.Phoneme.Glyph
		case seg.Category != nil:
			out += "[C]"
		}
	}
	return out
}

func describeTarget(t Target) string {
	switch t.Kind {
	case TargetEmpty:
		return "∅"
	case TargetPhonemes:
		out := ""
		for _, p := range t.Phonemes {
			out += p.Glyph
		}
		return out
	case TargetModification:
		return "[modified]"
	default:
		return "?"
	}
}
