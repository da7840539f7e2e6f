package ncbicode

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestRenderings(t *testing.T) {

	tests := []struct {
		aa     AminoAcid
		letter rune
		abbrev string
		name   string
	}{
		{Methionine, 'M', "Met", "Methionine"},
		{AsparticAcid, 'D', "Asp", "Aspartic acid"},
		{GlutamicAcid, 'E', "Glu", "Glutamic acid"},
		{Histidine, 'H', "His", "Histidine"},
		{Tryptophan, 'W', "Trp", "Tryptophan"},
		{Stop, '■', "■", "■"},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.letter, test.aa.Letter())
			assert.Equal(t, test.abbrev, test.aa.Abbreviation())
			assert.Equal(t, test.name, test.aa.Name())
			assert.Equal(t, test.name, test.aa.String())
		})
	}
}

func TestRenderingsRoundTrip(t *testing.T) {

	all := AminoAcids()
	assert.Len(t, all, 21)

	for _, aa := range all {

		fromLetter, ok := FromLetter(aa.Letter())
		assert.True(t, ok)
		assert.Equal(t, aa, fromLetter)

		fromAbbrev, ok := FromAbbreviation(aa.Abbreviation())
		assert.True(t, ok)
		assert.Equal(t, aa, fromAbbrev)

		fromName, ok := FromName(aa.Name())
		assert.True(t, ok)
		assert.Equal(t, aa, fromName)
	}
}

func TestRenderingsAreUnique(t *testing.T) {

	letters := map[rune]AminoAcid{}
	abbrevs := map[string]AminoAcid{}
	names := map[string]AminoAcid{}

	for _, aa := range AminoAcids() {

		if other, ok := letters[aa.Letter()]; ok {
			t.Errorf("%s and %s share letter %c", aa, other, aa.Letter())
		}
		if other, ok := abbrevs[aa.Abbreviation()]; ok {
			t.Errorf("%s and %s share abbreviation %s", aa, other, aa.Abbreviation())
		}
		if other, ok := names[aa.Name()]; ok {
			t.Errorf("%s and %s share name %s", aa, other, aa.Name())
		}
		letters[aa.Letter()] = aa
		abbrevs[aa.Abbreviation()] = aa
		names[aa.Name()] = aa

		if aa.IsStop() {
			assert.False(t, unicode.IsLetter(aa.Letter()))
			continue
		}
		assert.True(t, unicode.IsUpper(aa.Letter()), "%s", aa)
		assert.Len(t, aa.Abbreviation(), 3)
	}
}

func TestUnknownAminoAcid(t *testing.T) {

	unknown := AminoAcid(42)
	assert.Equal(t, '?', unknown.Letter())
	assert.Equal(t, "???", unknown.Abbreviation())
	assert.Equal(t, "unknown", unknown.Name())

	_, ok := FromLetter('X')
	assert.False(t, ok)
	_, ok = FromLetter('m')
	assert.False(t, ok)
	_, ok = FromAbbreviation("Xaa")
	assert.False(t, ok)
	_, ok = FromName("Selenocysteine")
	assert.False(t, ok)
}
