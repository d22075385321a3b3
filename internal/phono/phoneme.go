package phono

import "github.com/conlangtools/chronlang-engine/internal/ast"

// Class is a named set of phonemes that all share the same trait
// dimensions. Phonemes declared under a class list their feature values
// positionally, one per entry in Encodes, in the same order.
type Class struct {
	Name     string
	Encodes  []*Trait
	Phonemes []*Phoneme
	Span     ast.Span

	// Annotates is declared in the model but never populated or consumed
	// by the engine; reserved.
	Annotates []string
}

func (c *Class) isEntity() {}

// EntityName reports the name this entity is registered under in a module's
// shared sound-entity namespace (classes, series and phoneme glyphs).
func (c *Class) EntityName() string { return c.Name }

// Phoneme is a reference-identified phonological unit: a glyph and a
// total map from each of its class's encoded traits to a feature.
type Phoneme struct {
	Glyph    string
	Features map[*Trait]*Feature
	Class    *Class
	// Index is assigned in Module-wide declaration order and is strictly
	// increasing across a module's declared phonemes.
	Index int
	Span  ast.Span
}

func (p *Phoneme) isEntity() {}

// EntityName reports the glyph, which occupies the shared sound-entity
// namespace alongside class and series names.
func (p *Phoneme) EntityName() string { return p.Glyph }

// SameFeatures reports whether p and other specify identical features for
// every trait in p's feature map. Used during feature-modification
// re-resolution to find the concrete phoneme a modified feature map
// names within its class.
func (p *Phoneme) SameFeatures(other map[*Trait]*Feature) bool {
	if len(p.Features) != len(other) {
		return false
	}
	for trait, feat := range p.Features {
		if other[trait] != feat {
			return false
		}
	}
	return true
}

// Entity is the shared-namespace marker interface implemented by Class,
// Series and Phoneme: classes, series and phoneme glyphs all occupy one
// conflict-detection namespace.
type Entity interface {
	isEntity()
	EntityName() string
}
