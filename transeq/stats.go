package transeq

import (
	"github.com/gedex/inflector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats describes a run of the translation
type Stats struct {
	// kind of unit translated: "line", "record" or "input"
	Unit string
	// number of units read
	Units int
	// number of units that could not be translated
	Rejected int
	// number of codons translated, in accepted units only
	Codons int
}

func (s *Stats) accept(p Protein) {
	s.Units++
	s.Codons += len(p)
}

func (s *Stats) reject() {
	s.Units++
	s.Rejected++
}

// Summary returns a human readable report, for example
//
//	translated 1,254 codons from 3 records, 1 record rejected
func (s Stats) Summary() string {

	// used for adding commas every 3 digits
	p := message.NewPrinter(language.English)

	unit := s.Unit
	if unit == "" {
		unit = "unit"
	}
	summary := p.Sprintf("translated %d %s from %d %s", s.Codons, plural("codon", s.Codons), s.Units, plural(unit, s.Units))
	if s.Rejected > 0 {
		summary += p.Sprintf(", %d %s rejected", s.Rejected, plural(unit, s.Rejected))
	}
	return summary
}

func plural(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return inflector.Pluralize(noun)
}
