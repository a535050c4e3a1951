package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultPath is the word list used when none is configured.
const DefaultPath = "magyar-szavak.txt"

// ErrInvalidUTF8 is returned when a line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Dictionary is an ordered list of trimmed words.
type Dictionary []string

// Load reads the word list at path.
func Load(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	dict, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return dict, nil
}

// Read parses one word per line. Lines are trimmed and normalised to NFC so
// that decomposed accents compare equal to the precomposed letters; blank
// lines are skipped.
func Read(r io.Reader) (Dictionary, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var dict Dictionary
	for i, line := range splitLines(string(content)) {
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w on line %d", ErrInvalidUTF8, i+1)
		}
		if word := normalize(line); word != "" {
			dict = append(dict, word)
		}
	}
	return dict, nil
}

// splitLines splits on \n and drops a trailing \r.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func normalize(word string) string {
	return norm.NFC.String(strings.TrimSpace(word))
}
