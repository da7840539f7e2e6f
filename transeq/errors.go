package transeq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol is matched by every *InvalidSymbolError
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrMisalignedSequence is matched by every *MisalignedSequenceError
	ErrMisalignedSequence = errors.New("misaligned sequence")
)

// InvalidSymbolError is returned when a character is not one of the
// four nucleotides accepted in the active mode.
type InvalidSymbolError struct {
	Symbol rune
	Mode   Mode
	// Position is the index of the symbol once whitespace is removed,
	// or -1 if unknown
	Position int
}

func (e *InvalidSymbolError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid symbol %q for %s, expected one of %s", e.Symbol, e.Mode, e.Mode.alphabet())
	}
	return fmt.Sprintf("invalid symbol %q at position %d for %s, expected one of %s", e.Symbol, e.Position, e.Mode, e.Mode.alphabet())
}

// Is makes errors.Is(err, ErrInvalidSymbol) work
func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// MisalignedSequenceError is returned when the number of bases
// can't be split in codons
type MisalignedSequenceError struct {
	Length int
}

func (e *MisalignedSequenceError) Error() string {
	return fmt.Sprintf("sequence of %d bases is not a multiple of 3 (%d extra)", e.Length, e.Length%3)
}

// Is makes errors.Is(err, ErrMisalignedSequence) work
func (e *MisalignedSequenceError) Is(target error) bool {
	return target == ErrMisalignedSequence
}
