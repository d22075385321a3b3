package compiler

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// handleClass declares a class and its phonemes.
func handleClass(ctx *Context, m *module.Module, s *ast.ClassStmt) bool {
	if span, taken := m.SoundEntityConflict(s.Name); taken {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("%q already declared (at %s)", s.Name, span), Span: s.Span})
		return true
	}

	traits := make([]*phono.Trait, 0, len(s.Encodes))
	for _, name := range s.Encodes {
		t, ok := m.Traits[name]
		if !ok {
			m.AddError(module.Diagnostic{Message: fmt.Sprintf("class %q: unresolved trait %q", s.Name, name), Span: s.Span})
			return true // unresolved encoded trait aborts the class
		}
		traits = append(traits, t)
	}

	class := &phono.Class{Name: s.Name, Encodes: traits, Span: s.Span}

	for _, pd := range s.Phonemes {
		if span, taken := m.SoundEntityConflict(pd.Glyph); taken {
			m.AddError(module.Diagnostic{Message: fmt.Sprintf("phoneme %q already declared (at %s)", pd.Glyph, span), Span: pd.Span})
			continue
		}

		if len(pd.Features) != len(class.Encodes) {
			m.AddError(module.Diagnostic{
				Message: fmt.Sprintf("phoneme %q: expected %d feature(s) for class %q, got %d", pd.Glyph, len(class.Encodes), s.Name, len(pd.Features)),
				Span:    pd.Span,
			})
		}

		features := make(map[*phono.Trait]*phono.Feature, len(class.Encodes))
		for i, trait := range class.Encodes {
			if i >= len(pd.Features) {
				break
			}
			label := pd.Features[i]
			feat := trait.FeatureByLabel(label.Label)
			if feat == nil {
				m.AddError(module.Diagnostic{
					Message: fmt.Sprintf("phoneme %q: %q is not a feature of trait %q", pd.Glyph, label.Label, trait.Name),
					Span:    label.Span,
				})
				continue
			}
			features[trait] = feat
		}

		phoneme := &phono.Phoneme{
			Glyph:    pd.Glyph,
			Features: features,
			Class:    class,
			Index:    ctx.NextPhonemeIndex(),
			Span:     pd.Span,
		}
		class.Phonemes = append(class.Phonemes, phoneme)
		m.PhonemesByGlyph[pd.Glyph] = phoneme
		m.InvalidatePhonemeOrder()
	}

	m.Classes[s.Name] = class
	return true
}
