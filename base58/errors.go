package base58

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter matches every *InvalidCharacterError with errors.Is.
var ErrInvalidCharacter = errors.New("invalid base58 character")

// InvalidCharacterError is returned by Decode for input outside the alphabet.
type InvalidCharacterError struct {
	// Zero-based character (rune) index in the input.
	Position int
	// The offending character; utf8.RuneError for malformed UTF-8.
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidCharacter, e.Char, e.Position)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
