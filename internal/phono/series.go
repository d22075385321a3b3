package phono

import "github.com/conlangtools/chronlang-engine/internal/ast"

// Series is a named grouping of phonemes: either an explicit ordered list
// of phoneme references, or a category (base class/series plus signed
// feature modifiers).
type Series struct {
	Name     string
	List     []*Phoneme // set iff Category == nil
	Category *Category  // set iff List == nil
	Span     ast.Span
}

func (s *Series) isEntity() {}

// EntityName reports the name this series occupies in the shared
// sound-entity namespace.
func (s *Series) EntityName() string { return s.Name }

// Contains reports whether p belongs to this series: list membership for
// a list series, or category membership for a category series.
func (s *Series) Contains(p *Phoneme) bool {
	if s.Category != nil {
		return s.Category.Matches(p)
	}
	for _, member := range s.List {
		if member == p {
			return true
		}
	}
	return false
}

// Sign distinguishes a positive modifier ("require this feature") from a
// negative one ("forbid this feature").
type Sign int

const (
	Positive Sign = iota
	Negative
)

// Modifier pairs a feature with a sign: phoneme p matches iff
// p.Features[feature.Trait] == feature, or its negation for Negative.
type Modifier struct {
	Feature *Feature
	Sign    Sign
	Span    ast.Span
}

// Matches reports whether phoneme p satisfies this single modifier.
func (m Modifier) Matches(p *Phoneme) bool {
	have, ok := p.Features[m.Feature.Trait]
	positive := ok && have == m.Feature
	if m.Sign == Negative {
		return !positive
	}
	return positive
}

// Category is an inline predicate over phonemes: a nullable base
// class/series plus a list of modifiers. It is not a declared entity on
// its own; it is embedded in sound-change patterns and category series.
type Category struct {
	Base      Entity // *Class or *Series, or nil
	Modifiers []Modifier
	Span      ast.Span
}

// Matches reports whether phoneme p is a member of the category,
// implementing base membership (if any base is set) AND
// every modifier required.
func (c *Category) Matches(p *Phoneme) bool {
	if c.Base != nil {
		switch base := c.Base.(type) {
		case *Class:
			inClass := false
			for _, member := range base.Phonemes {
				if member == p {
					inClass = true
					break
				}
			}
			if !inClass {
				return false
			}
		case *Series:
			if !base.Contains(p) {
				return false
			}
		}
	}
	for _, m := range c.Modifiers {
		if !m.Matches(p) {
			return false
		}
	}
	return true
}
