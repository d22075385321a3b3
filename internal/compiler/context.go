// Package compiler implements the semantic analyzer and compiler driver:
// it walks an ordered sequence of parsed statements, maintaining the
// "current tag" context (language x time window), and populates a
// Module, reporting errors with source spans rather than raising them.
package compiler

import "github.com/conlangtools/chronlang-engine/internal/langtree"

// Context is the driver's small per-compilation state: the current
// language (nullable), the current time window (nullable), and the
// monotonic tagIndex/phonemeIndex counters. It is an explicit value
// threaded through statement handlers, never process-wide.
type Context struct {
	Language *langtree.Language

	HasWindow   bool
	WindowStart int
	WindowEnd   int

	tagIndex     int
	phonemeIndex int
}

// NewContext returns an empty context: no language, no time window.
func NewContext() *Context { return &Context{} }

// CanMaterializeTag reports whether language, start and end are all set.
func (c *Context) CanMaterializeTag() bool {
	return c.Language != nil && c.HasWindow
}

// MaterializeTag assigns the next tagIndex and returns a Tag built from
// the current context. Calling this when CanMaterializeTag is false is a
// programmer error, not an input error — callers must
// guard with CanMaterializeTag first and report an input diagnostic
// instead of calling this.
func (c *Context) MaterializeTag() langtree.Tag {
	if !c.CanMaterializeTag() {
		panic("compiler: MaterializeTag called without a materializable context")
	}
	tag := langtree.Tag{
		Start:    c.WindowStart,
		End:      c.WindowEnd,
		Language: c.Language,
		Index:    c.tagIndex,
	}
	c.tagIndex++
	return tag
}

// NextPhonemeIndex returns the next phoneme declaration index, assigned
// in document order across the entire module.
func (c *Context) NextPhonemeIndex() int {
	idx := c.phonemeIndex
	c.phonemeIndex++
	return idx
}

// CurrentMilestone builds the (starts, ends, language) triple the
// context currently represents, for appending to milestone lists. Only
// meaningful when CanMaterializeTag is true.
func (c *Context) CurrentMilestone() langtree.Milestone {
	return langtree.Milestone{Starts: c.WindowStart, Ends: c.WindowEnd, Language: c.Language}
}
