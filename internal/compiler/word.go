package compiler

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/phono"
	"github.com/conlangtools/chronlang-engine/internal/transcribe"
)

// handleWord declares a lexicon entry. Its pronunciation is segmented
// into phonemes drawn from the module's current inventory using
// longest-match transcription; the resulting word is tagged to the
// milestone window in effect at the declaration site.
func handleWord(ctx *Context, m *module.Module, s *ast.WordStmt) bool {
	if _, exists := m.Words[s.Gloss]; exists {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("word %q already declared", s.Gloss), Span: s.GlossSpan})
		return true
	}

	if !ctx.CanMaterializeTag() {
		m.AddError(module.Diagnostic{Message: fmt.Sprintf("word %q cannot be defined before a milestone", s.Gloss), Span: s.Span})
		return true
	}
	tag := ctx.MaterializeTag()

	result := transcribe.Match(s.Pronunciation, m.ListPhonemes())
	if !result.Ok {
		m.AddError(module.Diagnostic{
			Message: fmt.Sprintf("word %q: cannot segment %q at offset %d: %s", s.Gloss, s.Pronunciation, result.Offset, result.Message),
			Span:    s.PronSpan,
		})
		return true
	}

	phonemes := make([]*phono.Phoneme, 0, len(result.Matches))
	for _, match := range result.Matches {
		phonemes = append(phonemes, match.Phoneme)
	}

	definitions := make([]lexicon.Definition, 0, len(s.Definitions))
	for _, d := range s.Definitions {
		definitions = append(definitions, lexicon.Definition{PartOfSpeech: d.PartOfSpeech, Text: d.Text})
	}

	word := &lexicon.Word{
		Gloss:          s.Gloss,
		Phonemes:       phonemes,
		Definitions:    definitions,
		Tag:            tag,
		DefinitionSite: s.Span,
	}

	m.Words[s.Gloss] = word
	return true
}
