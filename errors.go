package gs1128go

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is returned when a payload element is neither a
	// decimal digit nor the FNC1 tag.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrOddDigitCount is returned when the digits of a payload cannot be
	// fully paired.
	ErrOddDigitCount = errors.New("odd digit count")
)

// ErrUnknownToken is returned when a symbolic tag other than FNC1 appears
// in a payload. It is a variant of ErrInvalidCharacter and matches it under
// errors.Is.
var ErrUnknownToken = fmt.Errorf("%w: unsupported function code", ErrInvalidCharacter)
