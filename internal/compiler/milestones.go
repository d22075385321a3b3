package compiler

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/module"
)

// handleMilestone sets the driver's current language and/or time window.
// Either may be absent; the context's tag is only
// materialized when a later statement requires one.
func handleMilestone(ctx *Context, m *module.Module, s *ast.MilestoneStmt) bool {
	if s.HasLanguage {
		lang, ok := m.Languages[s.Language]
		if !ok {
			m.AddError(module.Diagnostic{Message: fmt.Sprintf("milestone: unresolved language %q", s.Language), Span: s.Span})
		} else {
			ctx.Language = lang
		}
	}

	switch s.TimeKind {
	case ast.MilestoneInstant:
		ctx.HasWindow = true
		ctx.WindowStart = s.Start
		ctx.WindowEnd = langtree.Unbounded
	case ast.MilestoneRange:
		if s.Start >= s.End {
			m.AddError(module.Diagnostic{Message: fmt.Sprintf("milestone: inverted range [%d, %d)", s.Start, s.End), Span: s.Span})
		} else {
			ctx.HasWindow = true
			ctx.WindowStart = s.Start
			ctx.WindowEnd = s.End
		}
	case ast.MilestoneTimeNone:
		// nothing to update
	}

	if ctx.CanMaterializeTag() {
		ms := ctx.CurrentMilestone()
		appendMilestoneDedup(&m.Milestones, ms)
		appendMilestoneDedup(&ctx.Language.Milestones, ms)
	}

	return true
}

// appendMilestoneDedup appends ms to *list unless an identical
// (starts, ends, language) milestone is already present.
func appendMilestoneDedup(list *[]langtree.Milestone, ms langtree.Milestone) {
	for _, existing := range *list {
		if existing.Equal(ms) {
			return
		}
	}
	*list = append(*list, ms)
}
