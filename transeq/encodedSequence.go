package transeq

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/feliixx/gocodon/ncbicode"
)

// Mode selects the alphabet of the input sequence
type Mode uint8

const (
	// RNA reads A, U, C and G as is
	RNA Mode = iota
	// DNA reads A, T, C and G and transcribes each of them
	// to the messenger RNA base
	DNA
)

func (m Mode) String() string {
	if m == DNA {
		return "DNA"
	}
	return "RNA"
}

func (m Mode) alphabet() string {
	if m == DNA {
		return "ATCG"
	}
	return "AUCG"
}

// ParseMode returns the mode named s, case insensitive
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "RNA":
		return RNA, nil
	case "DNA":
		return DNA, nil
	}
	return RNA, fmt.Errorf("unknown mode %q, expected DNA or RNA", s)
}

// MapSymbol returns the base for a single character, upper or lower case.
//
// In DNA mode, the character is read as a base of the template strand, so
// the base returned is its complement in messenger RNA:
//
//	A -> U
//	T -> A
//	C -> G
//	G -> C
func MapSymbol(ch rune, mode Mode) (ncbicode.Base, error) {
	b, ok := mapSymbol(ch, mode)
	if !ok {
		return b, &InvalidSymbolError{Symbol: ch, Mode: mode, Position: -1}
	}
	return b, nil
}

func mapSymbol(ch rune, mode Mode) (ncbicode.Base, bool) {

	if mode == DNA {
		switch ch {
		case 'A', 'a':
			return ncbicode.Uracil, true
		case 'T', 't':
			return ncbicode.Adenine, true
		case 'C', 'c':
			return ncbicode.Guanine, true
		case 'G', 'g':
			return ncbicode.Cytosine, true
		}
		return 0, false
	}

	switch ch {
	case 'A', 'a':
		return ncbicode.Adenine, true
	case 'U', 'u':
		return ncbicode.Uracil, true
	case 'C', 'c':
		return ncbicode.Cytosine, true
	case 'G', 'g':
		return ncbicode.Guanine, true
	}
	return 0, false
}

// encode converts a raw sequence to bases. Whitespace is skipped, any
// other invalid character makes the whole sequence invalid
func encode(data string, mode Mode) ([]ncbicode.Base, error) {

	bases := make([]ncbicode.Base, 0, len(data))
	for _, ch := range data {

		if unicode.IsSpace(ch) {
			continue
		}
		b, ok := mapSymbol(ch, mode)
		if !ok {
			return nil, &InvalidSymbolError{Symbol: ch, Mode: mode, Position: len(bases)}
		}
		bases = append(bases, b)
	}
	return bases, nil
}
