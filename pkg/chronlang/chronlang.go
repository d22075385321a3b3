// Package chronlang is the public API surface of the engine: compile
// source text into a Module, then take named snapshots of its lexicon.
package chronlang

import (
	"log/slog"
	"sort"

	"github.com/conlangtools/chronlang-engine/internal/compiler"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/snapshot"
)

// Module re-exports the compiler's symbol table type so callers never
// need to import internal/module directly.
type Module = module.Module

// Diagnostic re-exports the compiler's error/warning shape.
type Diagnostic = module.Diagnostic

// Snapshot re-exports the point-in-time lexicon view.
type Snapshot = snapshot.Snapshot

// Parser re-exports the external surface-syntax parser collaborator
// interface the compiler depends on.
type Parser = compiler.Parser

// Resolver re-exports the module resolver collaborator interface.
type Resolver = compiler.Resolver

// Compile parses and compiles source into a Module, resolving any
// imports through resolver. Parser failures and semantic errors are
// both recorded on the returned Module rather than returned as a Go
// error; check Module.Errors before trusting the result.
func Compile(source, sourceName string, parser Parser, resolver Resolver, logger *slog.Logger) *Module {
	return compiler.CompileModule(source, sourceName, parser, resolver, logger)
}

// Languages lists every language declared or imported into m, sorted
// by id.
func Languages(m *Module) []*langtree.Language {
	names := make([]string, 0, len(m.Languages))
	for id := range m.Languages {
		names = append(names, id)
	}
	sort.Strings(names)
	out := make([]*langtree.Language, 0, len(names))
	for _, id := range names {
		out = append(out, m.Languages[id])
	}
	return out
}

// SnapshotAt builds the lexicon of lang as of time, applying every
// sound change declared on or before that point.
func SnapshotAt(m *Module, lang *langtree.Language, time int) Snapshot {
	return snapshot.Build(m, lang, time)
}

