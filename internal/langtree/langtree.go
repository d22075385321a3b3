// Package langtree holds the diachronic tree utilities: the Language/Milestone/Tag value types, the language
// inheritance test, the tag-overlap test, and tag ordering. None of these
// depend on phonology or lexicon, so lower-level packages (phono,
// lexicon) can depend on this package for Tag without creating a cycle
// with the module package that owns the symbol table.
package langtree

import "github.com/conlangtools/chronlang-engine/internal/ast"

// Language is a node in the language family tree.
type Language struct {
	ID         string
	Name       string
	Parent     *Language
	Milestones []Milestone
	Span       ast.Span
}

// IsAncestor reports whether lang is ancestor (the same language, or a
// descendant of ancestor), implementing "isAncestor(lang, A)
// iff lang == A or lang.parent != null and isAncestor(lang.parent, A)".
func IsAncestor(lang, ancestor *Language) bool {
	for l := lang; l != nil; l = l.Parent {
		if l == ancestor {
			return true
		}
	}
	return false
}

// Unbounded marks an open-ended milestone or tag end.
const Unbounded = int(^uint(0) >> 1) // +inf surrogate: math.MaxInt

// Milestone is a (starts, ends, language) triple produced by driver
// contexts; Ends may be Unbounded.
type Milestone struct {
	Starts   int
	Ends     int
	Language *Language
}

// Equal reports whether m and other share the same (starts, ends,
// language) identity, used to deduplicate a language's milestone list.
func (m Milestone) Equal(other Milestone) bool {
	return m.Starts == other.Starts && m.Ends == other.Ends && m.Language == other.Language
}

// Tag is the (language, time-window, index) attached to every word and
// sound change. Index is assigned at materialization time and is
// strictly increasing across a module's materialized tags, tie-breaking
// identically timed rules.
type Tag struct {
	Start    int
	End      int
	Language *Language
	Index    int
}

// Overlaps implements "a.start < b.end AND b.start <
// a.end" (half-open, exclusive at both ends).
func (a Tag) Overlaps(b Tag) bool {
	return a.Start < b.End && b.Start < a.End
}

// Less implements the stable lexicographic order on (start, index) that
// sortByTag uses: ties on start are broken by index.
func Less(a, b Tag) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.Index < b.Index
}
