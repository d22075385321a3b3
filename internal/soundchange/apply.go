package soundchange

import (
	"github.com/conlangtools/chronlang-engine/internal/lexicon"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// Applies implements change.tag overlaps word.tag AND at
// least one range exists that passes both the source-match and
// environment tests.
func Applies(c *SoundChange, w *lexicon.Word) bool {
	if !c.Tag.Overlaps(w.Tag) {
		return false
	}
	return len(ApplicableRanges(c, w.Phonemes)) > 0
}

// ApplyIfApplicable applies c to w if it applies, returning a new Word
// with an etymology step prepended. If c does not apply, or rewriting
// leaves the phoneme sequence unchanged (e.g. every matched range
// resolved back to the same phonemes), w itself is returned unmodified —
// sound changes are never fatal and never mutate their input.
func ApplyIfApplicable(c *SoundChange, w *lexicon.Word, warn Warn) *lexicon.Word {
	if !Applies(c, w) {
		return w
	}
	rewritten := Rewrite(c, w.Phonemes, warn)
	if samePhonemes(w.Phonemes, rewritten) {
		return w
	}
	return w.WithPhonemes(rewritten, c)
}

func samePhonemes(a, b []*phono.Phoneme) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
