package testutil

import (
	"fmt"
	"strings"
)

// HungarianPatterns is a tiny pattern set that splits open syllables such as
// "ma-ma" and Hungarian doubled digraphs such as "asz-szony"
var HungarianPatterns = []string{
	"1ma", "1ta", "1sa", "1la", "1ka",
	"l1m",
	"s1sz/sz=sz,1,3",
}

// MockHyphenator returns canned hyphenations, using '-' as the break marker,
// and echoes unknown words
type MockHyphenator struct {
	Hyphenations map[string]string
	Calls        []string
}

// Inserted mocks the pattern engine
func (m *MockHyphenator) Inserted(word, hyphen string) string {
	m.Calls = append(m.Calls, fmt.Sprintf("Inserted: %s", word))

	if out, ok := m.Hyphenations[word]; ok {
		return strings.ReplaceAll(out, "-", hyphen)
	}
	return word
}
