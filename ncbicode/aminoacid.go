package ncbicode

// AminoAcid is one of the 20 standard amino acids, or Stop
type AminoAcid uint8

const (
	Alanine AminoAcid = iota
	Glycine
	Methionine
	Serine
	Cysteine
	Histidine
	Asparagine
	Threonine
	AsparticAcid
	Isoleucine
	Proline
	Valine
	GlutamicAcid
	Lysine
	Glutamine
	Tryptophan
	Phenylalanine
	Leucine
	Arginine
	Tyrosine
	Stop

	nbAminoAcid = int(Stop) + 1
)

// StopGlyph is used for Stop in every rendering. It is not a
// letter, so it can't be mistaken for an amino acid code
const StopGlyph = "■"

type rendering struct {
	letter rune
	abbrev string
	name   string
}

var renderings = [nbAminoAcid]rendering{
	Alanine:       {'A', "Ala", "Alanine"},
	Glycine:       {'G', "Gly", "Glycine"},
	Methionine:    {'M', "Met", "Methionine"},
	Serine:        {'S', "Ser", "Serine"},
	Cysteine:      {'C', "Cys", "Cysteine"},
	Histidine:     {'H', "His", "Histidine"},
	Asparagine:    {'N', "Asn", "Asparagine"},
	Threonine:     {'T', "Thr", "Threonine"},
	AsparticAcid:  {'D', "Asp", "Aspartic acid"},
	Isoleucine:    {'I', "Ile", "Isoleucine"},
	Proline:       {'P', "Pro", "Proline"},
	Valine:        {'V', "Val", "Valine"},
	GlutamicAcid:  {'E', "Glu", "Glutamic acid"},
	Lysine:        {'K', "Lys", "Lysine"},
	Glutamine:     {'Q', "Gln", "Glutamine"},
	Tryptophan:    {'W', "Trp", "Tryptophan"},
	Phenylalanine: {'F', "Phe", "Phenylalanine"},
	Leucine:       {'L', "Leu", "Leucine"},
	Arginine:      {'R', "Arg", "Arginine"},
	Tyrosine:      {'Y', "Tyr", "Tyrosine"},
	Stop:          {'■', StopGlyph, StopGlyph},
}

// reverse lookups, built from renderings
var byLetter, byAbbrev, byName = indexRenderings()

func indexRenderings() (map[rune]AminoAcid, map[string]AminoAcid, map[string]AminoAcid) {

	letters := make(map[rune]AminoAcid, nbAminoAcid)
	abbrevs := make(map[string]AminoAcid, nbAminoAcid)
	names := make(map[string]AminoAcid, nbAminoAcid)

	for i, r := range renderings {
		aa := AminoAcid(i)
		letters[r.letter] = aa
		abbrevs[r.abbrev] = aa
		names[r.name] = aa
	}
	return letters, abbrevs, names
}

func (aa AminoAcid) valid() bool {
	return int(aa) < nbAminoAcid
}

// Letter returns the one letter code of the amino acid
func (aa AminoAcid) Letter() rune {
	if !aa.valid() {
		return '?'
	}
	return renderings[aa].letter
}

// Abbreviation returns the three letters code of the amino acid,
// for example "Asp"
func (aa AminoAcid) Abbreviation() string {
	if !aa.valid() {
		return "???"
	}
	return renderings[aa].abbrev
}

// Name returns the full name of the amino acid, for example "Aspartic acid"
func (aa AminoAcid) Name() string {
	if !aa.valid() {
		return "unknown"
	}
	return renderings[aa].name
}

func (aa AminoAcid) String() string {
	return aa.Name()
}

// IsStop reports whether aa is the stop marker
func (aa AminoAcid) IsStop() bool {
	return aa == Stop
}

// FromLetter returns the amino acid with the one letter code l.
// Lowercase letters are not accepted
func FromLetter(l rune) (AminoAcid, bool) {
	aa, ok := byLetter[l]
	return aa, ok
}

// FromAbbreviation returns the amino acid with the three letters code abbrev
func FromAbbreviation(abbrev string) (AminoAcid, bool) {
	aa, ok := byAbbrev[abbrev]
	return aa, ok
}

// FromName returns the amino acid with the full name name
func FromName(name string) (AminoAcid, bool) {
	aa, ok := byName[name]
	return aa, ok
}

// AminoAcids returns every amino acid, Stop included
func AminoAcids() []AminoAcid {
	all := make([]AminoAcid, nbAminoAcid)
	for i := range all {
		all[i] = AminoAcid(i)
	}
	return all
}
