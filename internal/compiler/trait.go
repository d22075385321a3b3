package compiler

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// handleTrait declares a trait and its features. Label
// uniqueness is enforced across every feature of every trait declared so
// far in the module; at most one feature may be marked default, and
// absent any marker the first declared feature becomes the default.
func handleTrait(ctx *Context, m *module.Module, s *ast.TraitStmt) bool {
	if _, exists := m.Traits[s.Name]; exists {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("trait %q already declared", s.Name), Span: s.Span})
		return true
	}

	trait := &phono.Trait{Name: s.Name, Span: s.Span}

	defaultCount := 0
	for _, fd := range s.Features {
		feature := &phono.Feature{Trait: trait}
		for _, ld := range fd.Labels {
			if existing, taken := m.Labels[ld.Label]; taken {
				m.AddError(module.Diagnostic{
					Message: fmt.Sprintf("label %q already names a feature of trait %q", ld.Label, existing.Trait.Name),
					Span:    ld.Span,
				})
				continue
			}
			feature.Labels = append(feature.Labels, phono.Label{Text: ld.Label, Span: ld.Span})
			m.Labels[ld.Label] = feature
		}
		trait.Features = append(trait.Features, feature)

		if fd.Default {
			defaultCount++
			if defaultCount > 1 {
				m.AddError(module.Diagnostic{Message: fmt.Sprintf("trait %q: more than one default feature", s.Name), Span: fd.Span})
				continue
			}
			trait.Default = feature
		}
	}

	if trait.Default == nil && len(trait.Features) > 0 {
		trait.Default = trait.Features[0]
	}

	m.Traits[s.Name] = trait
	return true
}
