package resolver

import (
	"fmt"
	"log/slog"

	"github.com/conlangtools/chronlang-engine/internal/compiler"
)

// Mock resolves imports against an in-memory map of source text,
// keyed the same way a real resolver keys its lookups: "@scope/path"
// for scoped imports, and the bare path for local ones. It exists for
// tests that need multi-module compilation without touching disk.
type Mock struct {
	Parser  compiler.Parser
	Sources map[string]string
	Logger  *slog.Logger

	chain *chain
}

// NewMock builds a Mock resolver over sources.
func NewMock(parser compiler.Parser, sources map[string]string, logger *slog.Logger) *Mock {
	return &Mock{Parser: parser, Sources: sources, Logger: noopLogger(logger), chain: newChain()}
}

func (r *Mock) ResolveScoped(scope, path string) compiler.Result {
	return r.resolve(fmt.Sprintf("@%s/%s", scope, path))
}

func (r *Mock) ResolveLocal(path string, absolute bool) compiler.Result {
	return r.resolve(path)
}

func (r *Mock) resolve(key string) compiler.Result {
	if cached, ok := r.chain.cache[key]; ok {
		return cached
	}

	source, ok := r.Sources[key]
	if !ok {
		return compiler.Err(fmt.Sprintf("no such module %q", key))
	}

	cyclic, errMsg, done := r.chain.enter(key)
	if cyclic {
		return compiler.Err(errMsg)
	}
	defer done()

	m := compiler.CompileModule(source, key, r.Parser, r, r.Logger)
	result := compiler.Ok(m)
	r.chain.cache[key] = result
	return result
}
