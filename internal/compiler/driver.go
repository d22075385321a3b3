package compiler

import (
	"log/slog"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/google/uuid"
)

// Parser is the out-of-scope surface-syntax parser collaborator: it
// turns source text into an ordered sequence of statements, or fails
// with a single top-level error.
type Parser interface {
	Parse(source, sourceName string) ([]ast.Statement, error)
}

// Result is what a Resolver returns for one import attempt:
// either an already-compiled Module, or an error string.
type Result struct {
	Module *module.Module
	Ok     bool
	Err    string
}

// Ok returns a successful Result.
func Ok(m *module.Module) Result { return Result{Module: m, Ok: true} }

// Err returns a failed Result.
func Err(message string) Result { return Result{Err: message} }

// Resolver is the module resolver collaborator: it locates
// and compiles an imported source by scope+path or by local path.
type Resolver interface {
	ResolveScoped(scope, path string) Result
	ResolveLocal(path string, absolute bool) Result
}

// CompileModule is the public compiler entry point:
// compileModule(source, sourceName, resolver) -> Module. Parsing is
// delegated to parser, an external collaborator; a parser error is
// recorded as the module's single error and compilation stops there.
func CompileModule(source, sourceName string, parser Parser, resolver Resolver, logger *slog.Logger) *module.Module {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	runID := uuid.NewString()
	logger = logger.With(slog.String("compilation", runID), slog.String("source", sourceName))

	m := module.New(sourceName)

	stmts, err := parser.Parse(source, sourceName)
	if err != nil {
		m.AddError(module.Diagnostic{Message: err.Error()})
		logger.Error("parse failed", slog.String("error", err.Error()))
		return m
	}

	CompileStatements(m, stmts, resolver, logger)
	return m
}

// CompileStatements runs the driver over an already-parsed statement
// sequence, populating m, for callers that already hold statements and
// need no external parser.
func CompileStatements(m *module.Module, stmts []ast.Statement, resolver Resolver, logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx := NewContext()
	for _, stmt := range stmts {
		dispatch(ctx, m, stmt, resolver, logger)
	}
}

// dispatch routes one statement to its handler. Every
// handler's continue signal is currently always true; it is reserved for
// a future fatal-abort mechanism and is otherwise ignored.
func dispatch(ctx *Context, m *module.Module, stmt ast.Statement, resolver Resolver, logger *slog.Logger) bool {
	switch s := stmt.(type) {
	case *ast.ImportStmt:
		return handleImport(ctx, m, s, resolver, logger)
	case *ast.LanguageStmt:
		return handleLanguage(ctx, m, s)
	case *ast.MilestoneStmt:
		return handleMilestone(ctx, m, s)
	case *ast.TraitStmt:
		return handleTrait(ctx, m, s)
	case *ast.ClassStmt:
		return handleClass(ctx, m, s)
	case *ast.SeriesStmt:
		return handleSeries(ctx, m, s)
	case *ast.WordStmt:
		return handleWord(ctx, m, s)
	case *ast.SoundChangeStmt:
		return handleSoundChange(ctx, m, s)
	default:
		m.AddError(module.Diagnostic{Message: "unknown statement kind", Span: stmt.Pos()})
		return true
	}
}
