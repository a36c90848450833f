// Package gs1128go encodes GS1-128 barcodes restricted to Code Set C:
// payloads of decimal digit pairs, optionally interleaved with FNC1
// separators, turned into the flat dark/light module sequence a renderer
// draws.
package gs1128go

import "strconv"

// Symbology identifies a barcode symbology variant.
type Symbology int

// SymbologyGS1128 is Code 128 in Code Set C with GS1 FNC1 semantics,
// symbology identifier "D1".
const SymbologyGS1128 Symbology = iota

// String returns the symbology identifier.
func (s Symbology) String() string {
	switch s {
	case SymbologyGS1128:
		return "D1"
	default:
		return "UNKNOWN"
	}
}

// Element is one atom of a Code Set C payload: a decimal digit character
// or one of the symbolic function-code tags below.
type Element rune

// Symbolic function-code tags. Only FNC1 is encodable in Code Set C; the
// others exist so that callers passing one are rejected by name. The tags
// are negative so no payload string can spell them.
const (
	FNC1 Element = -(iota + 1)
	FNC2
	FNC3
	FNC4
)

// IsDigit reports whether e is a decimal digit character.
func (e Element) IsDigit() bool {
	return e >= '0' && e <= '9'
}

// String returns the tag name for function codes and the quoted character
// otherwise.
func (e Element) String() string {
	switch e {
	case FNC1:
		return "FNC1"
	case FNC2:
		return "FNC2"
	case FNC3:
		return "FNC3"
	case FNC4:
		return "FNC4"
	}
	return strconv.QuoteRune(rune(e))
}

// Elements converts a payload string into canonical elements, one per rune,
// preserving order. The string form cannot carry function-code tags; build
// the element slice directly for GS1 payloads with FNC1 separators.
func Elements(contents string) []Element {
	elements := make([]Element, 0, len(contents))
	for _, r := range contents {
		elements = append(elements, Element(r))
	}
	return elements
}

// Symbol is an encoded barcode symbol: the symbology identifier paired with
// the flattened module sequence, 1 for a dark module and 0 for a light one,
// quiet zones included.
type Symbol struct {
	Symbology Symbology
	Modules   []int
}

// Width returns the symbol width in modules, quiet zones included.
func (s *Symbol) Width() int {
	return len(s.Modules)
}
