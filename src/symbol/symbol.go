// Package symbol builds the virtual symbols used as the alphabet of the regex
// toolchain. A virtual symbol is an equivalence class of code points; the
// parser accumulates include/exclude ranges into a Builder and finalizes them
// into one immutable VirtualSymbol per literal or bracket expression.
package symbol

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

type (
	// CodePointRange is an inclusive range of code points. A range whose Low
	// exceeds its High contains nothing and is dropped during Finalize.
	CodePointRange struct {
		Low  rune
		High rune
	}
	// VirtualSymbol is an immutable equivalence class of code points, stored
	// as sorted non-overlapping non-adjacent ranges.
	VirtualSymbol struct {
		ranges []CodePointRange
	}
	// Factory hands out builders. Each call yields an independent builder so
	// that literals and bracket expressions never interfere.
	Factory interface {
		NewSymbol() Builder
	}
	// Builder accumulates member and excluded ranges and finalizes them into
	// a VirtualSymbol. Include and Exclude return the receiver for chaining.
	// A builder is single use; it must not be touched after Finalize.
	Builder interface {
		Include(CodePointRange) Builder
		Exclude(CodePointRange) Builder
		Finalize() VirtualSymbol
	}

	rangeFactory struct{}
	rangeBuilder struct {
		includes  []CodePointRange
		excludes  []CodePointRange
		finalized bool
	}
)

// Range returns the inclusive range [lo, hi].
func Range(lo, hi rune) CodePointRange {
	return CodePointRange{Low: lo, High: hi}
}

// Single returns the range containing only r.
func Single(r rune) CodePointRange {
	return CodePointRange{Low: r, High: r}
}

func (r CodePointRange) empty() bool {
	return r.Low > r.High
}

func (r CodePointRange) String() string {
	if r.Low == r.High {
		return string(r.Low)
	}
	return fmt.Sprintf("%v-%v", string(r.Low), string(r.High))
}

// NewFactory returns the default symbol factory.
func NewFactory() Factory {
	return rangeFactory{}
}

func (rangeFactory) NewSymbol() Builder {
	return &rangeBuilder{}
}

func (b *rangeBuilder) Include(r CodePointRange) Builder {
	if b.finalized {
		panic("symbol: builder used after Finalize")
	}
	b.includes = append(b.includes, r)
	return b
}

func (b *rangeBuilder) Exclude(r CodePointRange) Builder {
	if b.finalized {
		panic("symbol: builder used after Finalize")
	}
	b.excludes = append(b.excludes, r)
	return b
}

// Finalize normalizes the accumulated state into a VirtualSymbol. A builder
// holding only exclusions is read against the full code point range, so an
// inverted class matches everything outside its members. A builder with no
// accumulated ranges at all yields the empty symbol.
func (b *rangeBuilder) Finalize() VirtualSymbol {
	if b.finalized {
		panic("symbol: builder used after Finalize")
	}
	b.finalized = true
	includes := b.includes
	if len(includes) == 0 && len(b.excludes) > 0 {
		includes = []CodePointRange{{Low: 0, High: unicode.MaxRune}}
	}
	ranges := merge(includes)
	for _, ex := range b.excludes {
		ranges = subtract(ranges, ex)
	}
	return VirtualSymbol{ranges: ranges}
}

// merge sorts the ranges and coalesces overlapping and adjacent ones.
func merge(ranges []CodePointRange) []CodePointRange {
	kept := make([]CodePointRange, 0, len(ranges))
	for _, r := range ranges {
		if !r.empty() {
			kept = append(kept, r)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Low != kept[j].Low {
			return kept[i].Low < kept[j].Low
		}
		return kept[i].High < kept[j].High
	})
	merged := make([]CodePointRange, 0, len(kept))
	for _, r := range kept {
		if last := len(merged) - 1; last >= 0 && r.Low <= merged[last].High+1 {
			if r.High > merged[last].High {
				merged[last].High = r.High
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// subtract removes ex from every range in the sorted set, splitting ranges
// that straddle it.
func subtract(ranges []CodePointRange, ex CodePointRange) []CodePointRange {
	if ex.empty() {
		return ranges
	}
	out := make([]CodePointRange, 0, len(ranges))
	for _, r := range ranges {
		if r.High < ex.Low || r.Low > ex.High {
			out = append(out, r)
			continue
		}
		if r.Low < ex.Low {
			out = append(out, CodePointRange{Low: r.Low, High: ex.Low - 1})
		}
		if r.High > ex.High {
			out = append(out, CodePointRange{Low: ex.High + 1, High: r.High})
		}
	}
	return out
}

// Ranges returns a copy of the symbol's normalized ranges in ascending order.
func (vs VirtualSymbol) Ranges() []CodePointRange {
	out := make([]CodePointRange, len(vs.ranges))
	copy(out, vs.ranges)
	return out
}

// Contains reports whether ch belongs to the symbol's equivalence class.
func (vs VirtualSymbol) Contains(ch rune) bool {
	i := sort.Search(len(vs.ranges), func(i int) bool { return vs.ranges[i].High >= ch })
	return i < len(vs.ranges) && vs.ranges[i].Low <= ch
}

// Empty reports whether the symbol matches no code point at all.
func (vs VirtualSymbol) Empty() bool {
	return len(vs.ranges) == 0
}

func (vs VirtualSymbol) String() string {
	if len(vs.ranges) == 1 && vs.ranges[0].Low == vs.ranges[0].High {
		return string(vs.ranges[0].Low)
	}
	var str strings.Builder
	str.WriteByte('[')
	for _, r := range vs.ranges {
		str.WriteString(r.String())
	}
	str.WriteByte(']')
	return str.String()
}
