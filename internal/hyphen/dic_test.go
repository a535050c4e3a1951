package hyphen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, content string) *Dictionary {
	t.Helper()
	d, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	return d
}

func TestInserted_BasicPatterns(t *testing.T) {
	d := mustParse(t, "UTF-8\nl1m\n1ma\n")

	tests := []struct {
		word string
		want string
	}{
		{"alma", "al-ma"},
		{"mama", "ma-ma"},
		{"ALMA", "AL-MA"},
		{"ma", "ma"},
		{"", ""},
		{"tata", "tata"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Inserted(tt.word, "-"))
		})
	}
}

func TestInserted_EvenValuesInhibit(t *testing.T) {
	d := mustParse(t, "UTF-8\nl1m\nal2m\n")

	assert.Equal(t, "alma", d.Inserted("alma", "-"))
	assert.Equal(t, "ol-ma", d.Inserted("olma", "-"))
}

func TestInserted_LeftRightMinimum(t *testing.T) {
	d := mustParse(t, "UTF-8\nl1m\n1ma\n")
	assert.Equal(t, "al-ma", d.Inserted("alma", "-"))

	d.Left = 3
	assert.Equal(t, "alma", d.Inserted("alma", "-"))

	d.Left, d.Right = 2, 3
	assert.Equal(t, "alma", d.Inserted("alma", "-"))
}

func TestParse_SkipsCommentsAndKeywords(t *testing.T) {
	content := strings.Join([]string{
		"UTF-8",
		"% a comment",
		"# another comment",
		"LEFTHYPHENMIN 2",
		"RIGHTHYPHENMIN 2",
		"COMPOUNDLEFTHYPHENMIN 2",
		"COMPOUNDRIGHTHYPHENMIN 2",
		"NOHYPHEN -,'",
		"",
		"l1m",
		"NEXTLEVEL",
		"1ma",
		"abc",
	}, "\n")
	d := mustParse(t, content)

	assert.Len(t, d.patterns, 2)
	assert.Equal(t, "ma-ma", d.Inserted("mama", "-"))
}

func TestParse_HexEscapes(t *testing.T) {
	d := mustParse(t, "UTF-8\nl1^^e1\n")
	assert.Equal(t, "kal-ács", d.Inserted("kalács", "-"))
}

func TestParse_Latin2Charset(t *testing.T) {
	// ő is 0xF5 in ISO-8859-2
	d := mustParse(t, "ISO8859-2\n\xf51\n")
	assert.Equal(t, "tő-ke", d.Inserted("tőke", "-"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unsupported charset", "KLINGON-1\na1b\n"},
		{"no patterns", "UTF-8\n% nothing here\n"},
		{"empty file", ""},
		{"malformed alternative", "UTF-8\ns1sz/sz=sz\n"},
		{"bad alternative index", "UTF-8\ns1sz/sz=sz,x,3\n"},
		{"two digits in a row", "UTF-8\na12b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPattern), "got %v", err)
		})
	}
}

func TestNonStandardHyphenation(t *testing.T) {
	// Hungarian writes a doubled digraph once: "asszony" breaks as asz-szony.
	d := mustParse(t, "UTF-8\ns1sz/sz=sz,1,3\n")

	assert.Equal(t, "asz-szony", d.Inserted("asszony", "-"))
	assert.Equal(t, "ASZ-SZONY", d.Inserted("ASSZONY", "-"))
}

func TestNonStandardHyphenation_WordStart(t *testing.T) {
	// A leading dot shifts the index by one.
	d := mustParse(t, "UTF-8\n.cc1s/cs=cs,1,3\n")
	assert.Equal(t, "cs-csa", d.Inserted("ccsa", "-"))
}

func TestInserted_MultipleBreaks(t *testing.T) {
	d := mustParse(t, "UTF-8\n1ma\nl1m\n")

	assert.Equal(t, "al-ma-ma", d.Inserted("almama", "-"))
	assert.Equal(t, "tata", d.Inserted("tata", "-"))
}

func TestInserted_CustomHyphen(t *testing.T) {
	d := mustParse(t, "UTF-8\nl1m\n")
	assert.Equal(t, "al\u00adma", d.Inserted("alma", "\u00ad"))
}
