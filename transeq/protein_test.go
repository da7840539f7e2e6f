package transeq

import (
	"errors"
	"testing"

	"github.com/feliixx/gocodon/ncbicode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProtein(t *testing.T) {

	tests := []struct {
		name     string
		mode     Mode
		input    string
		expected Protein
	}{
		{"start codon", RNA, "AUG", Protein{ncbicode.Methionine}},
		{"stop codon", RNA, "UAA", Protein{ncbicode.Stop}},
		{"three codons", RNA, "AUGGCCUAA", Protein{ncbicode.Methionine, ncbicode.Alanine, ncbicode.Stop}},
		{"internal space", RNA, "AUGGCC UAA", Protein{ncbicode.Methionine, ncbicode.Alanine, ncbicode.Stop}},
		{"lower case", RNA, "auggccuaa\n", Protein{ncbicode.Methionine, ncbicode.Alanine, ncbicode.Stop}},
		{"dna", DNA, "TACGCCATT", Protein{ncbicode.Methionine, ncbicode.Arginine, ncbicode.Stop}},
		{"dna across lines", DNA, "TAC\nGCC\nATT\n", Protein{ncbicode.Methionine, ncbicode.Arginine, ncbicode.Stop}},
		{"empty", RNA, "", Protein{}},
		{"only whitespace", DNA, " \t\n", Protein{}},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			p, err := NewProtein(test.input, test.mode)
			require.NoError(t, err)
			assert.Equal(t, test.expected, p)
		})
	}
}

func TestNewProteinErrors(t *testing.T) {

	_, err := NewProtein("AUGXCC", RNA)
	var symbolErr *InvalidSymbolError
	require.True(t, errors.As(err, &symbolErr))
	assert.Equal(t, 'X', symbolErr.Symbol)
	assert.Equal(t, 3, symbolErr.Position)

	// an invalid symbol is reported even if the length is wrong
	_, err = NewProtein("AUGX", RNA)
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	p, err := NewProtein("AUGC", RNA)
	assert.Nil(t, p)
	var lenErr *MisalignedSequenceError
	require.True(t, errors.As(err, &lenErr))
	assert.Equal(t, 4, lenErr.Length)
	assert.ErrorIs(t, err, ErrMisalignedSequence)
}

func TestTranslateAllCodons(t *testing.T) {

	for _, c := range ncbicode.Codons() {

		p, err := Translate(c[:])
		require.NoError(t, err, "codon %s", c)
		require.Len(t, p, 1)
		assert.Equal(t, c.AminoAcid(), p[0])

		again, err := Translate(c[:])
		require.NoError(t, err)
		assert.Equal(t, p, again)
	}
}

func TestTranslateMisaligned(t *testing.T) {

	for _, n := range []int{1, 2, 4, 5, 7, 100} {
		p, err := Translate(make([]ncbicode.Base, n))
		assert.Nil(t, p)
		assert.EqualError(t, err, (&MisalignedSequenceError{Length: n}).Error())
	}

	p, err := Translate(nil)
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestTranslateKeepsOrder(t *testing.T) {

	all := ncbicode.Codons()
	bases := make([]ncbicode.Base, 0, 3*len(all))
	for _, c := range all {
		bases = append(bases, c[:]...)
	}

	p, err := Translate(bases)
	require.NoError(t, err)
	require.Len(t, p, 64)

	for i, c := range all {
		assert.Equal(t, c.AminoAcid(), p[i], "codon %d: %s", i, c)
	}
	assert.Equal(t, ncbicode.StandardTable, replaceStop(p.Letters()))
}

func replaceStop(s string) string {
	out := []rune{}
	for _, r := range s {
		if string(r) == ncbicode.StopGlyph {
			r = '*'
		}
		out = append(out, r)
	}
	return string(out)
}

func TestProteinRender(t *testing.T) {

	p, err := NewProtein("AUGGAUUAA", RNA)
	require.NoError(t, err)

	assert.Equal(t, "MD■", p.Letters())
	assert.Equal(t, []string{"Met", "Asp", "■"}, p.Abbreviations())
	assert.Equal(t, []string{"Methionine", "Aspartic acid", "■"}, p.Names())

	assert.Equal(t, "MD■", p.Render(StyleLetter))
	assert.Equal(t, "Met, Asp, ■", p.Render(StyleAbbreviation))
	assert.Equal(t, "Methionine, Aspartic acid, ■", p.Render(StyleName))
	assert.Equal(t, "Met, Asp, ■", p.String())

	assert.Equal(t, "", Protein{}.Render(StyleName))
}

func TestParseStyle(t *testing.T) {

	tests := map[string]Style{
		"full":         StyleName,
		"Name":         StyleName,
		"single":       StyleLetter,
		"letter":       StyleLetter,
		"abbreviation": StyleAbbreviation,
		"three":        StyleAbbreviation,
	}
	for name, expected := range tests {
		s, err := ParseStyle(name)
		require.NoError(t, err)
		assert.Equal(t, expected, s)

		again, err := ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, again)
	}

	_, err := ParseStyle("fancy")
	assert.Error(t, err)
}

func TestOptionsStyle(t *testing.T) {
	assert.Equal(t, StyleAbbreviation, Options{}.Style())
	assert.Equal(t, StyleName, Options{Full: true}.Style())
	assert.Equal(t, StyleLetter, Options{Single: true}.Style())
	assert.Equal(t, StyleName, Options{Full: true, Single: true}.Style())

	assert.Equal(t, RNA, Options{}.Mode())
	assert.Equal(t, DNA, Options{DNA: true}.Mode())
}
