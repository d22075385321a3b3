package compiler

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// handleSeries declares a list series or a category series.
func handleSeries(ctx *Context, m *module.Module, s *ast.SeriesStmt) bool {
	if span, taken := m.SoundEntityConflict(s.Name); taken {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("%q already declared (at %s)", s.Name, span), Span: s.Span})
		return true
	}

	series := &phono.Series{Name: s.Name, Span: s.Span}

	switch {
	case s.List != nil:
		for _, glyph := range s.List.Glyphs {
			p, ok := m.PhonemesByGlyph[glyph.Label]
			if !ok {
				m.AddError(module.Diagnostic{Message: fmt.Sprintf("series %q: unresolved phoneme %q", s.Name, glyph.Label), Span: glyph.Span})
				continue
			}
			series.List = append(series.List, p)
		}
	case s.Category != nil:
		series.Category = compileCategory(m, s.Category)
	}

	m.Series[s.Name] = series
	return true
}
