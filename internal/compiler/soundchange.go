package compiler

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/phono"
	"github.com/conlangtools/chronlang-engine/internal/soundchange"
)

// handleSoundChange declares a sound change rule, resolving its
// source pattern, target, and environment against the module's
// current phonemes, classes, series, and feature labels. Like words,
// a sound change is tagged to the milestone window in effect at its
// declaration site.
func handleSoundChange(ctx *Context, m *module.Module, s *ast.SoundChangeStmt) bool {
	if !ctx.CanMaterializeTag() {
		m.AddError(module.Diagnostic{Message: "sound change cannot be defined before a milestone", Span: s.Span})
		return true
	}
	tag := ctx.MaterializeTag()

	pattern := compilePattern(m, s.Source)
	target := compileTarget(m, s.Target)
	env := compileEnvironment(m, s.Environment)

	m.SoundChanges = append(m.SoundChanges, &soundchange.SoundChange{
		Source:         pattern,
		Target:         target,
		Environment:    env,
		Description:    s.Description,
		Tag:            tag,
		DefinitionSite: s.Span,
	})
	return true
}

func compilePattern(m *module.Module, decl *ast.PatternDecl) *soundchange.Pattern {
	if decl == nil {
		return nil
	}
	pat := &soundchange.Pattern{}
	for _, sd := range decl.Segments {
		seg, ok := compileSegment(m, sd)
		if ok {
			pat.Segments = append(pat.Segments, seg)
		}
	}
	return pat
}

func compileSegment(m *module.Module, sd ast.SegmentDecl) (soundchange.Segment, bool) {
	if sd.SyllableBreak {
		return soundchange.Segment{}, false
	}
	if sd.Category != nil {
		return soundchange.Segment{Category: compileCategory(m, sd.Category)}, true
	}
	p, ok := m.PhonemesByGlyph[sd.Phoneme]
	if !ok {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("unresolved phoneme %q", sd.Phoneme), Span: sd.Span})
		return soundchange.Segment{}, false
	}
	return soundchange.Segment{Phoneme: p}, true
}

func compileTarget(m *module.Module, decl ast.TargetDecl) soundchange.Target {
	if decl.Empty {
		return soundchange.Target{Kind: soundchange.TargetEmpty}
	}

	if len(decl.Modifiers) > 0 {
		target := soundchange.Target{Kind: soundchange.TargetModification}
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
			target.Modifiers = append(target.Modifiers, phono.Modifier{Feature: feat, Sign: sign, Span: md.Span})
		}
		return target
	}

	target := soundchange.Target{Kind: soundchange.TargetPhonemes}
	for _, ph := range decl.Phonemes {
		p, ok := m.PhonemesByGlyph[ph.Label]
		if !ok {
			m.AddError(module.Diagnostic{Message: fmt.Sprintf("unresolved phoneme %q", ph.Label), Span: ph.Span})
			continue
		}
		target.Phonemes = append(target.Phonemes, p)
	}
	return target
}

func compileEnvironment(m *module.Module, decl *ast.EnvironmentDecl) *soundchange.Environment {
	if decl == nil {
		return nil
	}
	env := &soundchange.Environment{AnchorStart: decl.AnchorStart, AnchorEnd: decl.AnchorEnd}
	for _, sd := range decl.Before {
		if seg, ok := compileSegment(m, sd); ok {
			env.Before = append(env.Before, seg)
		}
	}
	for _, sd := range decl.After {
		if seg, ok := compileSegment(m, sd); ok {
			env.After = append(env.After, seg)
		}
	}
	return env
}
