// Package module holds the Module type: the compilation unit and symbol
// table described by — the in-memory collection of everything
// declared or imported, with cross-namespace uniqueness checks. It
// depends on every lower-level data-model package (phono, lexicon,
// soundchange, langtree) but is depended on by none of them, and by
// nothing below internal/compiler.
package module

import (
	"sort"

	"go.uber.org/multierr"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/phono"
	"github.com/conlangtools/chronlang-engine/internal/soundchange"
)

// Module is the compilation unit produced by compileModule: languages,
// traits, classes, series and words by name, plus the ordered lists of
// milestones, sound changes, errors and warnings.
type Module struct {
	SourceName string

	Languages map[string]*langtree.Language
	Traits    map[string]*phono.Trait
	Classes   map[string]*phono.Class
	Series    map[string]*phono.Series
	Words     map[string]*lexicon.Word

	// PhonemesByGlyph indexes every declared phoneme by glyph. Glyphs
	// share a conflict-detection namespace with class and series names
	//.
	PhonemesByGlyph map[string]*phono.Phoneme

	// Labels indexes every feature by every one of its labels, across
	// all traits, enforcing "no label may name two features".
	Labels map[string]*phono.Feature

	Milestones   []langtree.Milestone
	SoundChanges []*soundchange.SoundChange
	Errors       []Diagnostic
	Warnings     []Diagnostic

	sortedPhonemes []*phono.Phoneme // memoized longest-match order, see ListPhonemes
}

// New returns an empty Module ready for the compiler driver to populate.
func New(sourceName string) *Module {
	return &Module{
		SourceName:      sourceName,
		Languages:       make(map[string]*langtree.Language),
		Traits:          make(map[string]*phono.Trait),
		Classes:         make(map[string]*phono.Class),
		Series:          make(map[string]*phono.Series),
		Words:           make(map[string]*lexicon.Word),
		PhonemesByGlyph: make(map[string]*phono.Phoneme),
		Labels:          make(map[string]*phono.Feature),
	}
}

// AddError records a compile error into the module. The compiler never
// raises errors out; it records them here.
func (m *Module) AddError(d Diagnostic) { m.Errors = append(m.Errors, d) }

// AddWarning records a snapshot-time warning.
func (m *Module) AddWarning(d Diagnostic) { m.Warnings = append(m.Warnings, d) }

// Err combines every recorded error into a single error value, or nil
// if the module compiled cleanly. Callers that only care whether
// compilation succeeded can use this instead of checking len(Errors).
func (m *Module) Err() error {
	var combined error
	for _, d := range m.Errors {
		combined = multierr.Append(combined, d)
	}
	return combined
}

// HasEntity reports whether name is bound to any declared member —
// language, trait, class, series or word — used by imports to detect a
// name that is already taken in the importing module.
func (m *Module) HasEntity(name string) bool {
	if _, ok := m.Languages[name]; ok {
		return true
	}
	if _, ok := m.Traits[name]; ok {
		return true
	}
	if _, ok := m.Classes[name]; ok {
		return true
	}
	if _, ok := m.Series[name]; ok {
		return true
	}
	if _, ok := m.Words[name]; ok {
		return true
	}
	return false
}

// GetFeatures returns the module's label -> feature index, spanning every
// trait declared so far.
func (m *Module) GetFeatures() map[string]*phono.Feature { return m.Labels }

// GetPhonemes returns every declared phoneme, ordered by declaration
// index.
func (m *Module) GetPhonemes() []*phono.Phoneme {
	out := make([]*phono.Phoneme, 0, len(m.PhonemesByGlyph))
	for _, p := range m.PhonemesByGlyph {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// ListPhonemes returns every declared phoneme sorted by (glyph length
// descending, index ascending) — the order the transcription matcher
// requires. The result is memoized; it must be
// recomputed (by clearing the cache) whenever new phonemes are declared.
func (m *Module) ListPhonemes() []*phono.Phoneme {
	if m.sortedPhonemes != nil {
		return m.sortedPhonemes
	}
	all := m.GetPhonemes()
	sort.SliceStable(all, func(i, j int) bool {
		li, lj := len(all[i].Glyph), len(all[j].Glyph)
		if li != lj {
			return li > lj
		}
		return all[i].Index < all[j].Index
	})
	m.sortedPhonemes = all
	return all
}

// InvalidatePhonemeOrder clears the memoized ListPhonemes order; the
// compiler calls this after registering new phonemes.
func (m *Module) InvalidatePhonemeOrder() { m.sortedPhonemes = nil }
