package compiler

import (
	"fmt"
	"log/slog"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// handleImport resolves another module by scope or by local path and
// merges its entities into m. Resolution and cycle detection are the
// resolver's responsibility; handleImport only interprets the Result
// it gets back.
func handleImport(ctx *Context, m *module.Module, s *ast.ImportStmt, resolver Resolver, logger *slog.Logger) bool {
	var result Result
	if s.Scoped {
		result = resolver.ResolveScoped(s.Scope, s.Path)
	} else {
		result = resolver.ResolveLocal(s.Path, s.Absolute)
	}

	if !result.Ok {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("import failed: %s", result.Err), Span: s.Span})
		logger.Warn("import failed", slog.String("path", s.Path), slog.String("error", result.Err))
		return true
	}
	imported := result.Module

	for _, d := range imported.Errors {
		inner := d.Span
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("in imported module %q: %s", imported.SourceName, d.Message), Span: s.Span, SourceSpan: &inner})
	}
	for _, d := range imported.Warnings {
		inner := d.Span
		m.AddWarning(module.Diagnostic{Message: fmt.Sprintf("in imported module %q: %s", imported.SourceName, d.Message), Span: s.Span, SourceSpan: &inner})
	}

	if s.Wildcard && len(s.Names) > 0 {
		m.AddError(module.Diagnostic{Message: "import cannot combine a wildcard with named members", Span: s.Span})
	}

	if s.Wildcard {
		importAll(m, imported, s.Span)
		return true
	}

	for _, name := range s.Names {
		importNamed(m, imported, name)
	}
	return true
}

func importAll(m *module.Module, imported *module.Module, at ast.Span) {
	for name, lang := range imported.Languages {
		mergeLanguage(m, name, lang, at)
	}
	for name, trait := range imported.Traits {
		mergeTrait(m, name, trait, at)
	}
	for name, class := range imported.Classes {
		mergeClass(m, name, class, at)
	}
	for name, series := range imported.Series {
		mergeSeries(m, name, series, at)
	}
	for name, word := range imported.Words {
		mergeWord(m, name, word, at)
	}
}

func importNamed(m *module.Module, imported *module.Module, name ast.ImportName) {
	if class, ok := imported.Classes[name.Name]; ok {
		mergeClass(m, name.Name, class, name.Span)
		return
	}
	if series, ok := imported.Series[name.Name]; ok {
		mergeSeries(m, name.Name, series, name.Span)
		return
	}
	if p, ok := imported.PhonemesByGlyph[name.Name]; ok {
		mergePhoneme(m, p, name.Span)
		return
	}
	if trait, ok := imported.Traits[name.Name]; ok {
		mergeTrait(m, name.Name, trait, name.Span)
		return
	}
	if lang, ok := imported.Languages[name.Name]; ok {
		mergeLanguage(m, name.Name, lang, name.Span)
		return
	}
	if word, ok := imported.Words[name.Name]; ok {
		mergeWord(m, name.Name, word, name.Span)
		return
	}
	m.AddError(module.Diagnostic{Message: fmt.Sprintf("import: %q is not declared in the imported module", name.Name), Span: name.Span})
}

func mergeLanguage(m *module.Module, name string, lang *langtree.Language, at ast.Span) {
	if m.HasEntity(name) {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("import: %q already declared", name), Span: at})
		return
	}
	m.Languages[name] = lang
	for _, ms := range lang.Milestones {
		appendMilestoneDedup(&m.Milestones, ms)
	}
}

func mergeTrait(m *module.Module, name string, trait *phono.Trait, at ast.Span) {
	if m.HasEntity(name) {
		if _, isTrait := m.Traits[name]; !isTrait {
			m.AddError(module.Diagnostic{Message: fmt.Sprintf("import: %q already declared", name), Span: at})
		}
		return
	}
	m.Traits[name] = trait
	for _, feature := range trait.Features {
		for _, label := range feature.Labels {
			if _, taken := m.Labels[label.Text]; !taken {
				m.Labels[label.Text] = feature
			}
		}
	}
}

func mergeClass(m *module.Module, name string, class *phono.Class, at ast.Span) {
	for _, trait := range class.Encodes {
		mergeTrait(m, trait.Name, trait, at)
	}
	if m.HasEntity(name) {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("import: %q already declared", name), Span: at})
		return
	}
	m.Classes[name] = class
	for _, p := range class.Phonemes {
		mergePhoneme(m, p, at)
	}
}

func mergeSeries(m *module.Module, name string, series *phono.Series, at ast.Span) {
	if m.HasEntity(name) {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("import: %q already declared", name), Span: at})
		return
	}
	m.Series[name] = series
}

func mergeWord(m *module.Module, gloss string, word *lexicon.Word, at ast.Span) {
	if _, taken := m.Words[gloss]; taken {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("import: word %q already declared", gloss), Span: at})
		return
	}
	m.Words[gloss] = word
}

func mergePhoneme(m *module.Module, p *phono.Phoneme, at ast.Span) {
	if _, taken := m.PhonemesByGlyph[p.Glyph]; taken {
		return
	}
	m.PhonemesByGlyph[p.Glyph] = p
	m.InvalidatePhonemeOrder()
}
