package soundchange

import "github.com/conlangtools/chronlang-engine/internal/phono"

// Range is a half-open [Start, End) range over a phoneme sequence where a
// source pattern (or the empty source, as a zero-width gap) matched.
type Range struct {
	Start, End int
}

// findSourceMatches implements given word phonemes P and
// a source of k segments, either every gap is a zero-width match (empty
// source), or every positionally-matching window of length k is a match.
// Overlapping matches are allowed at discovery time.
func findSourceMatches(source *Pattern, phonemes []*phono.Phoneme) []Range {
	if source == nil || len(source.Segments) == 0 {
		ranges := make([]Range, 0, len(phonemes)+1)
		for i := 0; i <= len(phonemes); i++ {
			ranges = append(ranges, Range{i, i})
		}
		return ranges
	}

	k := len(source.Segments)
	var ranges []Range
	for i := 0; i+k <= len(phonemes); i++ {
		ok := true
		for j, seg := range source.Segments {
			if !seg.Matches(phonemes[i+j]) {
				ok = false
				break
			}
		}
		if ok {
			ranges = append(ranges, Range{i, i + k})
		}
	}
	return ranges
}

// testEnvironment reports whether the phonemes surrounding [start, end)
// satisfy env's before/after context and anchors.
func testEnvironment(env *Environment, phonemes []*phono.Phoneme, start, end int) bool {
	if env == nil {
		return true
	}
	if env.AnchorStart && start-len(env.Before) != 0 {
		return false
	}
	if env.AnchorEnd && end+len(env.After) != len(phonemes) {
		return false
	}
	if n := len(env.Before); n > 0 {
		if start-n < 0 {
			return false
		}
		for i, seg := range env.Before {
			if !seg.Matches(phonemes[start-n+i]) {
				return false
			}
		}
	}
	if n := len(env.After); n > 0 {
		if end+n > len(phonemes) {
			return false
		}
		for i, seg := range env.After {
			if !seg.Matches(phonemes[end+i]) {
				return false
			}
		}
	}
	return true
}

// ApplicableRanges returns the ranges that pass both the source-matching
// test and the environment test, in ascending start order (the order in
// which findSourceMatches already produces them).
func ApplicableRanges(c *SoundChange, phonemes []*phono.Phoneme) []Range {
	candidates := findSourceMatches(c.Source, phonemes)
	ranges := make([]Range, 0, len(candidates))
	for _, r := range candidates {
		if testEnvironment(c.Environment, phonemes, r.Start, r.End) {
			ranges = append(ranges, r)
		}
	}
	return ranges
}
