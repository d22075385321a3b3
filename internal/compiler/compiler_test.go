package compiler

import (
	"testing"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/snapshot"
	"github.com/conlangtools/chronlang-engine/internal/testutil"
)

// buildModule compiles a small but complete language definition: one
// language, one voicing trait, one stop class (p/b), a milestone at
// t=0 with one word, and a milestone at t=1 with one intervocalic
// lenition sound change.
func buildModule(t *testing.T) (*module.Module, *Context) {
	t.Helper()

	stmts := []ast.Statement{
		&ast.LanguageStmt{ID: "proto", Name: "Proto-Tongue"},
		&ast.TraitStmt{Name: "voicing", Features: []ast.FeatureDecl{
			{Labels: []ast.LabelDecl{{Label: "voiceless"}}, Default: true},
			{Labels: []ast.LabelDecl{{Label: "voiced"}}},
		}},
		&ast.ClassStmt{
			Name:    "stops",
			Encodes: []string{"voicing"},
			Phonemes: []ast.PhonemeDecl{
				{Glyph: "p", Features: []ast.LabelDecl{{Label: "voiceless"}}},
				{Glyph: "b", Features: []ast.LabelDecl{{Label: "voiced"}}},
			},
		},
		&ast.ClassStmt{
			Name:    "vowels",
			Encodes: nil,
			Phonemes: []ast.PhonemeDecl{
				{Glyph: "a"},
			},
		},
		&ast.MilestoneStmt{HasLanguage: true, Language: "proto", TimeKind: ast.MilestoneInstant, Start: 0},
		&ast.WordStmt{
			Gloss:         "water",
			Pronunciation: "apa",
			Definitions:   []ast.DefinitionDecl{{Text: "water"}},
		},
		&ast.MilestoneStmt{TimeKind: ast.MilestoneInstant, Start: 1},
		&ast.SoundChangeStmt{
			Description: "intervocalic lenition",
			Source:      &ast.PatternDecl{Segments: []ast.SegmentDecl{{Phoneme: "p"}}},
			Target:      ast.TargetDecl{Phonemes: []ast.LabelDecl{{Label: "b"}}},
			Environment: &ast.EnvironmentDecl{
				Before: []ast.SegmentDecl{{Phoneme: "a"}},
				After:  []ast.SegmentDecl{{Phoneme: "a"}},
			},
		},
	}

	m := module.New("test")
	ctx := NewContext()
	logger := testutil.NewTestLogger(t)
	for _, s := range stmts {
		dispatch(ctx, m, s, nil, logger)
	}
	return m, ctx
}

func TestCompileStatementsProducesCleanModule(t *testing.T) {
	m, _ := buildModule(t)
	if err := m.Err(); err != nil {
		t.Fatalf("expected a clean compile, got errors: %v", err)
	}
	if len(m.Words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(m.Words))
	}
	if len(m.SoundChanges) != 1 {
		t.Fatalf("expected 1 sound change, got %d", len(m.SoundChanges))
	}
}

func TestCompileWordTranscription(t *testing.T) {
	m, _ := buildModule(t)
	w := m.Words["water"]
	if w == nil {
		t.Fatal("expected word \"water\" to be compiled")
	}
	if got, want := w.Render(), "apa"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestCompileAndSnapshotAppliesSoundChange(t *testing.T) {
	m, _ := buildModule(t)
	lang := m.Languages["proto"]

	before := snapshot.Build(m, lang, 0)
	if len(before.Words) != 1 || before.Words[0].Render() != "apa" {
		t.Fatalf("expected unchanged word at t=0, got %v", before.Words)
	}

	after := snapshot.Build(m, lang, 1)
	if len(after.Words) != 1 || after.Words[0].Render() != "aba" {
		t.Fatalf("expected lenited word /aba/ at t=1, got %v", after.Words)
	}
}

func TestDuplicateLanguageIsAnError(t *testing.T) {
	m := module.New("test")
	ctx := NewContext()
	logger := testutil.NewTestLogger(t)
	dispatch(ctx, m, &ast.LanguageStmt{ID: "proto", Name: "Proto"}, nil, logger)
	dispatch(ctx, m, &ast.LanguageStmt{ID: "proto", Name: "Proto again"}, nil, logger)

	if len(m.Errors) != 1 {
		t.Fatalf("expected exactly 1 error for duplicate language, got %d: %v", len(m.Errors), m.Errors)
	}
}

func TestWordBeforeMilestoneIsAnError(t *testing.T) {
	m := module.New("test")
	ctx := NewContext()
	dispatch(ctx, m, &ast.WordStmt{Gloss: "orphan", Pronunciation: "a"}, nil, testutil.NewTestLogger(t))

	if len(m.Errors) != 1 {
		t.Fatalf("expected exactly 1 error for a word declared before any milestone, got %d", len(m.Errors))
	}
}
