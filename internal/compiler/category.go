package compiler

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// compileCategory resolves an ast.CategoryDecl into a *phono.Category:
// an optional base class/series, plus signed feature modifiers resolved
// against the module's global label index. Used both by category series
// declarations and by sound-change source/environment segments.
func compileCategory(m *module.Module, decl *ast.CategoryDecl) *phono.Category {
	cat := &phono.Category{Span: decl.Span}

	if decl.Base != "" {
		if class, ok := m.Classes[decl.Base]; ok {
			cat.Base = class
		} else if series, ok := m.Series[decl.Base]; ok {
			cat.Base = series
		} else {
			m.AddError(module.Diagnostic{Message: fmt.Sprintf("unresolved class or series %q", decl.Base), Span: decl.BaseSpan})
		}
	}

	for _, md := range decl.Modifiers {
		feat, ok := m.Labels[md.Label]
		if !ok {
			m.AddError(module.Diagnostic{Message: fmt.Sprintf("unresolved feature label %q", md.Label), Span: md.Span})
			continue
		}
		sign := phono.Positive
		if md.Negative {
			sign = phono.Negative
		}
		cat.Modifiers = append(cat.Modifiers, phono.Modifier{Feature: feat, Sign: sign, Span: md.Span})
	}

	return cat
}
