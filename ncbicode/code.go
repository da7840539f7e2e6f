// Package ncbicode stores codon <-> AA
// translation for the standard genetic code.
//
// Relevant documentation:
//
//	https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
package ncbicode

import (
	"fmt"
	"io"
)

// Base is a nucleotide in its RNA form.
//
// Values follow the TCAG order used by NCBI tables, so that
// 16*first + 4*second + third is the position of a codon in
// StandardTable.
type Base uint8

const (
	Uracil Base = iota
	Cytosine
	Adenine
	Guanine

	nbBase = 4
)

const baseLetters = "UCAG"

func (b Base) String() string {
	if b >= nbBase {
		return "?"
	}
	return baseLetters[b : b+1]
}

// StandardTable is the standard code (NCBI table 1) in NCBIeaa format.
//
// Base
//
//	1  UUUUUUUUUUUUUUUUCCCCCCCCCCCCCCCCAAAAAAAAAAAAAAAAGGGGGGGGGGGGGGGG
//	2  UUUUCCCCAAAAGGGGUUUUCCCCAAAAGGGGUUUUCCCCAAAAGGGGUUUUCCCCAAAAGGGG
//	3  UCAGUCAGUCAGUCAGUCAGUCAGUCAGUCAGUCAGUCAGUCAGUCAGUCAGUCAGUCAGUCAG
const StandardTable = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

// ncbiStop is the stop residue in NCBIeaa strings
const ncbiStop = '*'

const nbCodon = nbBase * nbBase * nbBase

var codes = mustLoadTable(StandardTable)

func loadTable(table string) ([nbCodon]AminoAcid, error) {

	var t [nbCodon]AminoAcid
	if len(table) != nbCodon {
		return t, fmt.Errorf("invalid table length: %d, expected %d", len(table), nbCodon)
	}
	for i := 0; i < nbCodon; i++ {

		letter := rune(table[i])
		if letter == ncbiStop {
			t[i] = Stop
			continue
		}
		aa, ok := FromLetter(letter)
		if !ok {
			return t, fmt.Errorf("invalid residue %q for codon %s", letter, codonAt(i))
		}
		t[i] = aa
	}
	return t, nil
}

func mustLoadTable(table string) [nbCodon]AminoAcid {
	t, err := loadTable(table)
	if err != nil {
		panic(err)
	}
	return t
}

// Codon is an ordered triplet of bases
type Codon [3]Base

func codonAt(index int) Codon {
	return Codon{Base(index >> 4), Base(index >> 2 & 3), Base(index & 3)}
}

func (c Codon) index() int {
	return int(c[0])<<4 | int(c[1])<<2 | int(c[2])
}

// AminoAcid returns the amino acid the codon is translated to. Every
// codon maps to exactly one amino acid or to Stop
func (c Codon) AminoAcid() AminoAcid {
	return codes[c.index()&(nbCodon-1)]
}

func (c Codon) String() string {
	return c[0].String() + c[1].String() + c[2].String()
}

// Lookup returns the amino acid coded by the three bases
func Lookup(first, second, third Base) AminoAcid {
	return Codon{first, second, third}.AminoAcid()
}

// Codons returns the 64 codons in table order
func Codons() []Codon {
	all := make([]Codon, nbCodon)
	for i := range all {
		all[i] = codonAt(i)
	}
	return all
}

// PrintTable writes one tab-delimited line per codon:
//
//	<codon>	<rendered amino acid>
func PrintTable(w io.Writer, render func(AminoAcid) string) error {

	for _, c := range Codons() {
		_, err := fmt.Fprintf(w, "%s\t%s\n", c, render(c.AminoAcid()))
		if err != nil {
			return err
		}
	}
	return nil
}
