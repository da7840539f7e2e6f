package transeq

import (
	"fmt"
	"strings"

	"github.com/feliixx/gocodon/ncbicode"
)

// Style selects how amino acids are rendered
type Style uint8

const (
	// StyleAbbreviation renders three letters codes, for example "Met"
	StyleAbbreviation Style = iota
	// StyleName renders full names, for example "Methionine"
	StyleName
	// StyleLetter renders one letter codes, for example "M"
	StyleLetter
)

// ParseStyle returns the style named s
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "abbreviation", "abbrev", "three":
		return StyleAbbreviation, nil
	case "name", "full":
		return StyleName, nil
	case "letter", "single", "one":
		return StyleLetter, nil
	}
	return StyleAbbreviation, fmt.Errorf("unknown style %q", s)
}

func (s Style) String() string {
	switch s {
	case StyleName:
		return "name"
	case StyleLetter:
		return "letter"
	}
	return "abbreviation"
}

// Render returns the rendering of a single amino acid
func (s Style) Render(aa ncbicode.AminoAcid) string {
	switch s {
	case StyleName:
		return aa.Name()
	case StyleLetter:
		return string(aa.Letter())
	}
	return aa.Abbreviation()
}

// separator between two rendered amino acids
func (s Style) separator() string {
	if s == StyleLetter {
		return ""
	}
	return ", "
}

// Protein is a sequence of amino acids, in codon order
type Protein []ncbicode.AminoAcid

// Translate reads bases three by three and returns the amino acid coded
// by each codon. len(bases) has to be a multiple of 3, the sequence is
// never truncated nor padded
func Translate(bases []ncbicode.Base) (Protein, error) {

	if len(bases)%3 != 0 {
		return nil, &MisalignedSequenceError{Length: len(bases)}
	}

	p := make(Protein, 0, len(bases)/3)
	for pos := 2; pos < len(bases); pos += 3 {
		p = append(p, ncbicode.Lookup(bases[pos-2], bases[pos-1], bases[pos]))
	}
	return p, nil
}

// NewProtein strips whitespace from data, maps each remaining character
// to a base according to mode and translates the result. Either the whole
// data is translated, or an error is returned
func NewProtein(data string, mode Mode) (Protein, error) {

	bases, err := encode(data, mode)
	if err != nil {
		return nil, err
	}
	return Translate(bases)
}

// Letters returns the one letter codes, not separated
func (p Protein) Letters() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, aa := range p {
		sb.WriteRune(aa.Letter())
	}
	return sb.String()
}

// Abbreviations returns the three letters code of each amino acid
func (p Protein) Abbreviations() []string {
	return p.tokens(StyleAbbreviation)
}

// Names returns the full name of each amino acid
func (p Protein) Names() []string {
	return p.tokens(StyleName)
}

func (p Protein) tokens(style Style) []string {
	tokens := make([]string, len(p))
	for i, aa := range p {
		tokens[i] = style.Render(aa)
	}
	return tokens
}

// Render returns the protein as a single line: one letter codes are
// concatenated, names and abbreviations are separated by ", "
func (p Protein) Render(style Style) string {
	if style == StyleLetter {
		return p.Letters()
	}
	return strings.Join(p.tokens(style), style.separator())
}

func (p Protein) String() string {
	return p.Render(StyleAbbreviation)
}
