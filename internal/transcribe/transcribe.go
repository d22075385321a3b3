// Package transcribe segments a raw pronunciation string into the
// phoneme inventory of a module using longest-match scanning.
package transcribe

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// Match pairs a recognized phoneme with the rune offset in the
// NFC-normalized input at which its glyph began.
type Match struct {
	Phoneme *phono.Phoneme
	Offset  int
}

// Result is the outcome of segmenting one pronunciation string.
type Result struct {
	Ok      bool
	Matches []Match
	Offset  int
	Message string
}

// Match scans text left to right, at each position choosing the
// longest candidate glyph from inventory that matches at that
// position. inventory must already be ordered longest-glyph-first,
// ties broken by ascending declaration index (Module.ListPhonemes
// provides this order) so that multi-glyph phonemes are preferred
// over single-glyph prefixes of themselves.
//
// Input is normalized to NFC before matching so precomposed and
// decomposed IPA diacritics compare equal to however the inventory's
// glyphs were declared.
func Match(text string, inventory []*phono.Phoneme) Result {
	normalized := norm.NFC.String(text)
	runes := []rune(normalized)

	var matches []Match
	pos := 0
	for pos < len(runes) {
		p, length := longestAt(runes, pos, inventory)
		if p == nil {
			return Result{
				Ok:      false,
				Offset:  pos,
				Message: fmt.Sprintf("no phoneme matches %q", string(runes[pos:])),
			}
		}
		matches = append(matches, Match{Phoneme: p, Offset: pos})
		pos += length
	}

	return Result{Ok: true, Matches: matches}
}

func longestAt(runes []rune, pos int, inventory []*phono.Phoneme) (*phono.Phoneme, int) {
	for _, p := range inventory {
		glyph := []rune(norm.NFC.String(p.Glyph))
		n := len(glyph)
		if pos+n > len(runes) {
			continue
		}
		match := true
		for i := 0; i < n; i++ {
			if runes[pos+i] != glyph[i] {
				match = false
				break
			}
		}
		if match {
			return p, n
		}
	}
	return nil, 0
}
