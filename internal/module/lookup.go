package module

import (
	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// GetSoundEntity resolves name against the shared class/series/phoneme
// namespace, consulting all three in a fixed order. Conflict detection
// (declaring a new class/series/phoneme) goes through it via
// SoundEntityConflict.
func (m *Module) GetSoundEntity(name string) (phono.Entity, ast.Span, bool) {
	if c, ok := m.Classes[name]; ok {
		return c, c.Span, true
	}
	if s, ok := m.Series[name]; ok {
		return s, s.Span, true
	}
	if p, ok := m.PhonemesByGlyph[name]; ok {
		return p, p.Span, true
	}
	return nil, ast.Span{}, false
}

// SoundEntityConflict reports whether name is already taken in the
// shared class/series/phoneme namespace, returning the span of the
// existing declaration.
func (m *Module) SoundEntityConflict(name string) (ast.Span, bool) {
	_, span, ok := m.GetSoundEntity(name)
	return span, ok
}
