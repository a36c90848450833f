package gs1128go

import "fmt"

// quietZone is the light margin, in modules, on each side of the symbol.
const quietZone = 10

// validate scans the elements in order, confirming each is a decimal digit
// or FNC1. It stops at the first violation and names the element.
func validate(elements []Element) error {
	for _, e := range elements {
		switch {
		case e.IsDigit() || e == FNC1:
		case e == FNC2 || e == FNC3 || e == FNC4:
			return fmt.Errorf("%w: %s", ErrUnknownToken, e)
		default:
			return fmt.Errorf("%w: %s", ErrInvalidCharacter, e)
		}
	}
	return nil
}

// mapCodewords converts validated elements into Code Set C codewords,
// consuming digits two at a time and FNC1 tags singly, and prefixes the
// result with Start Code C.
func mapCodewords(elements []Element) ([]int, error) {
	codewords := make([]int, 1, 1+len(elements))
	codewords[0] = codeStartC
	for i := 0; i < len(elements); {
		if elements[i] == FNC1 {
			codewords = append(codewords, codeFNC1)
			i++
			continue
		}
		// FNC1 never pairs with a digit, so a digit needs a digit next.
		if i+1 >= len(elements) || !elements[i+1].IsDigit() {
			return nil, fmt.Errorf("%w: digit %s has no pair", ErrOddDigitCount, elements[i])
		}
		codewords = append(codewords, int(elements[i]-'0')*10+int(elements[i+1]-'0'))
		i += 2
	}
	return codewords, nil
}

// checksum computes the Modulo-103 check codeword over a codeword sequence
// beginning with the start codeword. The start codeword has weight 1; the
// i-th codeword after it (1-based) has weight i+1.
func checksum(codewords []int) int {
	sum := codewords[0]
	for i, cw := range codewords[1:] {
		sum += cw * (i + 2)
	}
	return sum % 103
}

// moduleSequence expands codewords into the flat 0/1 module sequence,
// terminated by the stop pattern and framed by a quiet zone on each side.
// The width table is total over the legal codeword domain; a codeword
// outside it means an upstream invariant was broken and panics.
func moduleSequence(codewords []int) []int {
	patterns := make([][]int, 0, len(codewords)+1)
	for _, cw := range codewords {
		if cw < 0 || cw > codeStartC {
			panic(fmt.Sprintf("gs1128go: codeword %d out of range", cw))
		}
		patterns = append(patterns, code128Widths[cw])
	}
	patterns = append(patterns, code128Widths[codeStop])

	width := 2 * quietZone
	for _, pattern := range patterns {
		for _, w := range pattern {
			width += w
		}
	}

	modules := make([]int, width)
	pos := quietZone
	for _, pattern := range patterns {
		pos += appendPattern(modules, pos, pattern, true)
	}
	return modules
}

// appendPattern writes a bar/space widths pattern into modules at pos,
// alternating dark and light runs. startDark sets the colour of the first
// run. Returns the number of modules written.
func appendPattern(modules []int, pos int, widths []int, startDark bool) int {
	dark := startDark
	numAdded := 0
	for _, w := range widths {
		for j := 0; j < w; j++ {
			if dark {
				modules[pos] = 1
			}
			pos++
			numAdded++
		}
		dark = !dark
	}
	return numAdded
}

// Encode encodes a canonical element sequence as a GS1-128 symbol in Code
// Set C. Digits must appear in pairs; FNC1 tags may appear anywhere,
// including adjacent to each other or at either end. An empty sequence is
// legal and encodes to start, checksum, stop and quiet zones alone.
func Encode(elements []Element) (*Symbol, error) {
	if err := validate(elements); err != nil {
		return nil, err
	}
	codewords, err := mapCodewords(elements)
	if err != nil {
		return nil, err
	}
	codewords = append(codewords, checksum(codewords))
	return &Symbol{
		Symbology: SymbologyGS1128,
		Modules:   moduleSequence(codewords),
	}, nil
}

// EncodeString encodes a payload of decimal digit characters. The string
// form cannot carry FNC1; use Encode with an element slice for GS1
// payloads with separators.
func EncodeString(contents string) (*Symbol, error) {
	return Encode(Elements(contents))
}

// MustEncode is like Encode but panics on invalid input.
func MustEncode(elements []Element) *Symbol {
	symbol, err := Encode(elements)
	if err != nil {
		panic(err)
	}
	return symbol
}

// MustEncodeString is like EncodeString but panics on invalid input.
func MustEncodeString(contents string) *Symbol {
	symbol, err := EncodeString(contents)
	if err != nil {
		panic(err)
	}
	return symbol
}
