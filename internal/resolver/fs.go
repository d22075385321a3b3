package resolver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/conlangtools/chronlang-engine/internal/compiler"
)

// FSResolver resolves imports against source files on disk. Scoped
// imports ("@scope/path") are looked up under the directories the
// manifest binds to scope; local imports are resolved relative to
// Root, or treated as filesystem-absolute when the import says so.
type FSResolver struct {
	Root     string
	Manifest Manifest
	Parser   compiler.Parser
	Logger   *slog.Logger
	Ext      string // source file extension, including the dot; defaults to ".chron"

	chain *chain
}

// NewFSResolver builds a resolver rooted at root, using manifest for
// scope lookups.
func NewFSResolver(root string, manifest Manifest, parser compiler.Parser, logger *slog.Logger) *FSResolver {
	return &FSResolver{Root: root, Manifest: manifest, Parser: parser, Logger: noopLogger(logger), Ext: ".chron", chain: newChain()}
}

// ResolveScoped tries every root bound to scope, in manifest order, and
// returns the first that resolves. If every root fails, the errors from
// all of them are combined with multierr so the caller sees every
// attempted path instead of just the last one.
func (r *FSResolver) ResolveScoped(scope, path string) compiler.Result {
	roots, ok := r.Manifest.Scopes[scope]
	if !ok || len(roots) == 0 {
		return compiler.Err(fmt.Sprintf("unknown scope %q", scope))
	}

	var combined error
	for _, dir := range roots {
		full := filepath.Join(dir, path+r.extension())
		key := fmt.Sprintf("@%s/%s", scope, path)
		result := r.resolve(key, full)
		if result.Ok {
			return result
		}
		combined = multierr.Append(combined, fmt.Errorf("tried scope root %s: %s", dir, result.Err))
	}
	return compiler.Err(combined.Error())
}

func (r *FSResolver) ResolveLocal(path string, absolute bool) compiler.Result {
	full := path + r.extension()
	if !absolute {
		full = filepath.Join(r.Root, full)
	}
	return r.resolve(full, full)
}

func (r *FSResolver) extension() string {
	if r.Ext == "" {
		return ".chron"
	}
	return r.Ext
}

func (r *FSResolver) resolve(key, diskPath string) compiler.Result {
	if cached, ok := r.chain.cache[key]; ok {
		return cached
	}

	data, err := os.ReadFile(diskPath)
	if err != nil {
		return compiler.Err(fmt.Sprintf("reading %s: %s", diskPath, err))
	}

	cyclic, errMsg, done := r.chain.enter(key)
	if cyclic {
		return compiler.Err(errMsg)
	}
	defer done()

	m := compiler.CompileModule(string(data), diskPath, r.Parser, r, r.Logger)
	result := compiler.Ok(m)
	r.chain.cache[key] = result
	return result
}
