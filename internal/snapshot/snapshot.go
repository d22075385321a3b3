// Package snapshot builds a point-in-time view of a module's lexicon:
// every word that exists for a given language at a given time, with
// every sound change up to that time applied in order.
package snapshot

import (
	"sort"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/soundchange"
)

// Snapshot is the lexicon of one language as of one point in time.
type Snapshot struct {
	Language *langtree.Language
	Time     int
	Words    []*lexicon.Word
	Warnings []module.Diagnostic
	Ok       bool
}

// Build selects every word whose declaring language is lang or an
// ancestor of lang and whose tag covers time, then applies every sound
// change tagged on or before time, in (start, index) order, folding
// left to right over each selected word.
func Build(m *module.Module, lang *langtree.Language, time int) Snapshot {
	snap := Snapshot{Language: lang, Time: time, Ok: true}

	changes := make([]*soundchange.SoundChange, 0, len(m.SoundChanges))
	for _, c := range m.SoundChanges {
		if c.Tag.Start <= time {
			changes = append(changes, c)
		}
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return langtree.Less(changes[i].Tag, changes[j].Tag)
	})

	glosses := make([]string, 0, len(m.Words))
	for gloss := range m.Words {
		glosses = append(glosses, gloss)
	}
	sort.Strings(glosses)

	warn := func(message string, span ast.Span) {
		snap.Warnings = append(snap.Warnings, module.Diagnostic{Message: message, Span: span})
	}

	for _, gloss := range glosses {
		w := m.Words[gloss]
		if !inScope(w, lang, time) {
			continue
		}
		for _, c := range changes {
			w = soundchange.ApplyIfApplicable(c, w, warn)
		}
		snap.Words = append(snap.Words, w)
	}

	return snap
}

func inScope(w *lexicon.Word, lang *langtree.Language, time int) bool {
	if w.Tag.Language != lang && !langtree.IsAncestor(lang, w.Tag.Language) {
		return false
	}
	return w.Tag.Start <= time && time <= w.Tag.End
}
