package gs1128go

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// modulesString flattens a module sequence for comparison in failures.
func modulesString(modules []int) string {
	var sb strings.Builder
	for _, m := range modules {
		if m == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func TestEncodeKnownModules(t *testing.T) {
	quiet := strings.Repeat("0", 10)
	stop := "1100011101011"

	tests := []struct {
		name     string
		elements []Element
		want     string
	}{
		{
			// Codewords 105, 12, 34, 56, checksum 43.
			name:     "123456",
			elements: Elements("123456"),
			want: quiet +
				"11010011100" + // start C
				"10110011100" + // 12
				"10001011000" + // 34
				"11100010110" + // 56
				"10110001110" + // 43
				stop + quiet,
		},
		{
			// Codewords 105, checksum 105 mod 103 = 2.
			name:     "empty",
			elements: nil,
			want: quiet +
				"11010011100" + // start C
				"11001100110" + // 2
				stop + quiet,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			symbol, err := Encode(tc.elements)
			if err != nil {
				t.Fatalf("encode error: %v", err)
			}
			if symbol.Symbology != SymbologyGS1128 {
				t.Errorf("symbology = %v, want %v", symbol.Symbology, SymbologyGS1128)
			}
			if got := modulesString(symbol.Modules); got != tc.want {
				t.Errorf("modules mismatch:\ngot  %s\nwant %s", got, tc.want)
			}
		})
	}
}

func TestMapCodewords(t *testing.T) {
	tests := []struct {
		name     string
		elements []Element
		want     []int
	}{
		{"digits", Elements("123456"), []int{105, 12, 34, 56}},
		{"leading fnc1", append([]Element{FNC1}, Elements("123456")...), []int{105, 102, 12, 34, 56}},
		{"interleaved fnc1", []Element{FNC1, '1', '2', '3', '4', FNC1, '5', '6'}, []int{105, 102, 12, 34, 102, 56}},
		{"adjacent fnc1", []Element{FNC1, FNC1}, []int{105, 102, 102}},
		{"trailing fnc1", []Element{'0', '7', FNC1}, []int{105, 7, 102}},
		{"empty", nil, []int{105}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mapCodewords(tc.elements)
			if err != nil {
				t.Fatalf("mapCodewords error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("mapCodewords = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		name      string
		codewords []int
		want      int
	}{
		// 105 + 12*2 + 34*3 + 56*4 = 455; 455 mod 103 = 43.
		{"digits", []int{105, 12, 34, 56}, 43},
		// FNC1 carries weight 2: 105 + 102*2 + 12*3 + 34*4 + 56*5 = 761.
		{"leading fnc1", []int{105, 102, 12, 34, 56}, 40},
		{"interleaved fnc1", []int{105, 102, 12, 34, 102, 56}, 91},
		{"start only", []int{105}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := checksum(tc.codewords); got != tc.want {
				t.Errorf("checksum(%v) = %d, want %d", tc.codewords, got, tc.want)
			}
		})
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name     string
		elements []Element
		sentinel error
		contains string
	}{
		{"letter", Elements("12a4"), ErrInvalidCharacter, "'a'"},
		{"space", Elements("12 34"), ErrInvalidCharacter, "' '"},
		{"fnc2", []Element{'1', '2', FNC2}, ErrUnknownToken, "FNC2"},
		{"fnc3", []Element{FNC3}, ErrUnknownToken, "FNC3"},
		{"fnc4", []Element{FNC4}, ErrUnknownToken, "FNC4"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.elements)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tc.sentinel) {
				t.Errorf("error %v does not match %v", err, tc.sentinel)
			}
			// Every rejection is an invalid-character failure at root.
			if !errors.Is(err, ErrInvalidCharacter) {
				t.Errorf("error %v does not match ErrInvalidCharacter", err)
			}
			if !strings.Contains(err.Error(), tc.contains) {
				t.Errorf("error %q does not name %q", err, tc.contains)
			}
		})
	}
}

func TestOddDigitCount(t *testing.T) {
	tests := []struct {
		name     string
		elements []Element
	}{
		{"odd string", Elements("12345")},
		{"single digit", Elements("7")},
		{"digit split by fnc1", []Element{'1', FNC1, '2', '3'}},
		{"odd after fnc1", []Element{FNC1, '1'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.elements)
			if !errors.Is(err, ErrOddDigitCount) {
				t.Errorf("error = %v, want ErrOddDigitCount", err)
			}
		})
	}
}

func TestPairingInvariant(t *testing.T) {
	// Digit-only payloads succeed iff the digit count is even.
	for n := 0; n <= 9; n++ {
		payload := strings.Repeat("4", n)
		_, err := EncodeString(payload)
		if n%2 == 0 && err != nil {
			t.Errorf("EncodeString(%q) = %v, want success", payload, err)
		}
		if n%2 == 1 && !errors.Is(err, ErrOddDigitCount) {
			t.Errorf("EncodeString(%q) = %v, want ErrOddDigitCount", payload, err)
		}
	}
}

func TestLengthFormula(t *testing.T) {
	tests := []struct {
		name     string
		elements []Element
	}{
		{"empty", nil},
		{"one pair", Elements("00")},
		{"three pairs", Elements("123456")},
		{"gs1", append([]Element{FNC1}, Elements("0112345678901231")...)},
		{"two separators", []Element{FNC1, '1', '2', '3', '4', FNC1, '5', '6'}},
		{"fnc1 only", []Element{FNC1, FNC1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pairs, fncs := 0, 0
			for _, e := range tc.elements {
				if e == FNC1 {
					fncs++
				} else {
					pairs++
				}
			}
			pairs /= 2

			symbol, err := Encode(tc.elements)
			if err != nil {
				t.Fatalf("encode error: %v", err)
			}
			want := 10 + 11*(2+pairs+fncs) + 13 + 10
			if symbol.Width() != want {
				t.Errorf("width = %d, want %d", symbol.Width(), want)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	elements := []Element{FNC1, '0', '1', '1', '2', '3', '4'}
	first := MustEncode(elements)
	for i := 0; i < 3; i++ {
		again := MustEncode(elements)
		if !reflect.DeepEqual(first.Modules, again.Modules) {
			t.Fatalf("encode is not deterministic:\nfirst %s\nagain %s",
				modulesString(first.Modules), modulesString(again.Modules))
		}
	}
}

func TestWidthsTable(t *testing.T) {
	for cw, widths := range code128Widths {
		total := 0
		for _, w := range widths {
			total += w
		}
		want := 11
		if cw == codeStop {
			want = 13
		}
		if total != want {
			t.Errorf("codeword %d spans %d modules, want %d", cw, total, want)
		}
	}
}

func TestMustEncodeStringPanics(t *testing.T) {
	symbol, err := EncodeString("12345")
	if symbol != nil || err == nil {
		t.Fatal("expected EncodeString to fail")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		perr, ok := r.(error)
		if !ok || perr.Error() != err.Error() {
			t.Errorf("panic value %v, want error %v", r, err)
		}
	}()
	MustEncodeString("12345")
}

func TestSymbologyString(t *testing.T) {
	if got := SymbologyGS1128.String(); got != "D1" {
		t.Errorf("SymbologyGS1128.String() = %q, want %q", got, "D1")
	}
}

func TestElementString(t *testing.T) {
	tests := []struct {
		e    Element
		want string
	}{
		{FNC1, "FNC1"},
		{FNC2, "FNC2"},
		{'7', "'7'"},
		{'x', "'x'"},
	}
	for _, tc := range tests {
		if got := tc.e.String(); got != tc.want {
			t.Errorf("Element.String() = %q, want %q", got, tc.want)
		}
	}
}
