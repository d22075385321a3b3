package module

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
)

// Diagnostic is the wire shape of an error or warning:
// { message, span, sourceSpan? }. SourceSpan is set only when a
// diagnostic is re-emitted from an imported module, carrying both the
// import span and the original inner span for source attribution.
type Diagnostic struct {
	Message    string
	Span       ast.Span
	SourceSpan *ast.Span
}

// Error satisfies the error interface so a Diagnostic can be folded
// into a combined error with multierr.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Span, d.Message)
}
