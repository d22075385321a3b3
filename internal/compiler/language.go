package compiler

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/module"
)

// handleLanguage declares a language, resolving its parent if named.
// Conflict on language id is an error.
func handleLanguage(ctx *Context, m *module.Module, s *ast.LanguageStmt) bool {
	if _, exists := m.Languages[s.ID]; exists {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("language %q already declared", s.ID), Span: s.Span})
		return true
	}

	var parent *langtree.Language
	if s.Parent != "" {
		p, ok := m.Languages[s.Parent]
		if !ok {
			m.AddError(module.Diagnostic{Message: fmt.Sprintf("language %q: unresolved parent %q", s.ID, s.Parent), Span: s.Span})
		} else {
			parent = p
		}
	}

	m.Languages[s.ID] = &langtree.Language{
		ID:     s.ID,
		Name:   s.Name,
		Parent: parent,
		Span:   s.Span,
	}
	return true
}
