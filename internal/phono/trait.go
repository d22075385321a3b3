// Package phono holds the phonology model: traits, features, classes,
// phonemes, series, categories and modifiers. All entities
// are value types with identity by reference within one compiled module;
// the compiler driver (internal/compiler) constructs them while
// populating the module (internal/module) that holds them.
package phono

import "github.com/conlangtools/chronlang-engine/internal/ast"

// Label is one synonymous name for a feature, or one glyph in a list
// series, carrying the span where it was declared.
type Label struct {
	Text string
	Span ast.Span
}

// Trait is a named phonological dimension with an ordered, non-empty list
// of features and exactly one default feature.
type Trait struct {
	Name     string
	Features []*Feature
	Default  *Feature
	Span     ast.Span
}

// FeatureByLabel returns the feature within this trait carrying the given
// label, or nil if no feature of this trait has that label.
func (t *Trait) FeatureByLabel(label string) *Feature {
	for _, f := range t.Features {
		for _, l := range f.Labels {
			if l.Text == label {
				return f
			}
		}
	}
	return nil
}

// NonDefaultFeature returns the first feature of the trait whose value is
// not want, or the trait's default if every feature equals want (can only
// happen for a single-feature trait). Used when a negative feature
// modifier needs a concrete replacement feature other than want.
func (t *Trait) NonDefaultFeature(want *Feature) *Feature {
	for _, f := range t.Features {
		if f != want {
			return f
		}
	}
	return t.Default
}

// Feature is one value of a trait, identified by one or more synonymous
// labels. It is owned by exactly one trait; Trait is a logical back
// reference, not ownership.
type Feature struct {
	Labels []Label
	Trait  *Trait
}

// HasLabel reports whether label names this feature.
func (f *Feature) HasLabel(label string) bool {
	for _, l := range f.Labels {
		if l.Text == label {
			return true
		}
	}
	return false
}
