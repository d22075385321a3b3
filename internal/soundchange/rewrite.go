package soundchange

import (
	"fmt"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/phono"
)

// Warn receives a re-resolution failure warning: a
// feature modification produced a feature map with no matching phoneme
// in the source phoneme's class.
type Warn func(message string, span ast.Span)

// Rewrite splices the resolved target into phonemes for every applicable
// range, consuming matches left-to-right without re-scanning replaced
// regions.
func Rewrite(c *SoundChange, phonemes []*phono.Phoneme, warn Warn) []*phono.Phoneme {
	ranges := ApplicableRanges(c, phonemes)
	if len(ranges) == 0 {
		return phonemes
	}

	out := make([]*phono.Phoneme, 0, len(phonemes))
	pos := 0
	for _, r := range ranges {
		if r.Start < pos {
			// Falls inside a region already consumed by an earlier
			// replacement in this same rewrite; not re-scanned.
			continue
		}
		out = append(out, phonemes[pos:r.Start]...)
		out = append(out, resolveTarget(c, phonemes[r.Start:r.End], warn)...)
		pos = r.End
	}
	out = append(out, phonemes[pos:]...)
	return out
}

// resolveTarget implements step 1.
func resolveTarget(c *SoundChange, source []*phono.Phoneme, warn Warn) []*phono.Phoneme {
	switch c.Target.Kind {
	case TargetEmpty:
		return nil
	case TargetPhonemes:
		return c.Target.Phonemes
	case TargetModification:
		result := make([]*phono.Phoneme, len(source))
		for i, p := range source {
			result[i] = resolveModification(c, p, warn)
		}
		return result
	default:
		return source
	}
}

// resolveModification applies every modifier whose trait is present in
// p's feature map to a copy of that map, then searches p.Class.Phonemes
// for a phoneme whose entire feature map matches the result. If none
// exists, warns (attaching c.DefinitionSite) and retains p.
func resolveModification(c *SoundChange, p *phono.Phoneme, warn Warn) *phono.Phoneme {
	next := make(map[*phono.Trait]*phono.Feature, len(p.Features))
	for trait, feat := range p.Features {
		next[trait] = feat
	}

	for _, m := range c.Target.Modifiers {
		trait := m.Feature.Trait
		current, present := p.Features[trait]
		if !present {
			continue
		}
		if m.Sign == phono.Positive {
			next[trait] = m.Feature
			continue
		}
		// Negative sign: — if the trait's current feature
		// is the trait's default, set to the first non-m.feature
		// feature of the trait; else set to the trait's default.
		if current == trait.Default {
			next[trait] = trait.NonDefaultFeature(m.Feature)
		} else {
			next[trait] = trait.Default
		}
	}

	if p.Class != nil {
		for _, candidate := range p.Class.Phonemes {
			if candidate.SameFeatures(next) {
				return candidate
			}
		}
	}

	if warn != nil {
		warn(fmt.Sprintf("feature modification on /%s/ matches no phoneme in class %q; phoneme unchanged", p.Glyph, className(p)), c.DefinitionSite)
	}
	return p
}

func className(p *phono.Phoneme) string {
	if p.Class == nil {
		return "<none>"
	}
	return p.Class.Name
}
