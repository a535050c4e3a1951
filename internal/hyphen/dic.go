// Hyphenation with Frank Liang's algorithm over LibreOffice/hunspell style
// hyph_*.dic pattern files, including the non-standard hyphenation
// extension ("pattern/change,index,cut") that Hungarian relies on for
// doubled digraphs such as "ssz" -> "sz-sz".
package hyphen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidPattern is returned for pattern files that cannot be parsed.
var ErrInvalidPattern = errors.New("invalid hyphenation pattern")

// Default minimum fragment lengths, as used by LibreOffice.
const (
	DefaultLeft  = 2
	DefaultRight = 2
)

var skipPrefixes = []string{
	"%", "#",
	"LEFTHYPHENMIN", "RIGHTHYPHENMIN",
	"COMPOUNDLEFTHYPHENMIN", "COMPOUNDRIGHTHYPHENMIN",
	"NEXTLEVEL", "NOHYPHEN",
}

var hexEscape = regexp.MustCompile(`\^\^([0-9a-f]{2})`)

// alternative describes a non-standard break: the letters at
// [position+index, position+index+cut) are replaced by change, in which '='
// marks the hyphen.
type alternative struct {
	change string
	index  int
	cut    int
}

type value struct {
	n   int
	alt *alternative
}

type pattern struct {
	offset int
	values []value
}

// Dictionary is a parsed set of hyphenation patterns.
type Dictionary struct {
	// Left and Right are the minimum number of letters kept before the
	// first and after the last hyphen.
	Left, Right int

	patterns map[string]pattern
	maxLen   int
}

// Parse reads a .dic pattern file. The first line names the charset.
func Parse(r io.Reader) (*Dictionary, error) {
	br := bufio.NewReader(r)
	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	enc, err := lookupCharset(strings.TrimSpace(first))
	if err != nil {
		return nil, err
	}

	d := &Dictionary{
		Left:     DefaultLeft,
		Right:    DefaultRight,
		patterns: make(map[string]pattern),
	}

	scanner := bufio.NewScanner(enc.NewDecoder().Reader(br))
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || hasSkipPrefix(line) {
			continue
		}
		if err := d.addPattern(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(d.patterns) == 0 {
		return nil, fmt.Errorf("%w: no patterns found", ErrInvalidPattern)
	}

	return d, nil
}

func hasSkipPrefix(line string) bool {
	for _, p := range skipPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// lookupCharset resolves the charset line. Hunspell files use spellings
// such as "ISO8859-2" or "microsoft-cp1251" next to IANA names.
func lookupCharset(name string) (encoding.Encoding, error) {
	if name == "" || strings.EqualFold(name, "UTF-8") {
		return unicode.UTF8, nil
	}
	if rest, ok := strings.CutPrefix(strings.ToLower(name), "microsoft-cp"); ok {
		name = "windows-" + rest
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: unsupported charset %q", ErrInvalidPattern, name)
}

func (d *Dictionary) addPattern(line string) error {
	line = hexEscape.ReplaceAllStringFunc(line, func(m string) string {
		n, _ := strconv.ParseUint(m[2:], 16, 8)
		return string(rune(n))
	})

	var alt *alternative
	if strings.Contains(line, "/") && strings.Contains(line, "=") {
		var rule string
		line, rule, _ = strings.Cut(line, "/")
		a, err := parseAlternative(line, rule)
		if err != nil {
			return err
		}
		alt = a
	}

	letters, values, err := splitPattern(line, alt)
	if err != nil {
		return err
	}

	start, end := 0, len(values)
	for start < end && values[start].n == 0 {
		start++
	}
	if start == end {
		// only zeros
		return nil
	}
	for values[end-1].n == 0 {
		end--
	}

	key := string(letters)
	d.patterns[key] = pattern{offset: start, values: values[start:end]}
	if len(letters) > d.maxLen {
		d.maxLen = len(letters)
	}
	return nil
}

func parseAlternative(pat, rule string) (*alternative, error) {
	parts := strings.Split(rule, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pat+"/"+rule)
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: index in %q", ErrInvalidPattern, rule)
	}
	cut, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: cut in %q", ErrInvalidPattern, rule)
	}
	if strings.HasPrefix(pat, ".") {
		index++
	}
	return &alternative{change: parts[0], index: index, cut: cut}, nil
}

// splitPattern separates "a1b2c" into letters "abc" and the values that sit
// between them; there is always one more value than letters.
func splitPattern(p string, alt *alternative) ([]rune, []value, error) {
	var letters []rune
	var values []value
	index := 0
	if alt != nil {
		index = alt.index
	}

	pending := 0
	emit := func() {
		index--
		v := value{n: pending}
		if alt != nil && pending%2 == 1 {
			v.alt = &alternative{change: alt.change, index: index, cut: alt.cut}
		}
		values = append(values, v)
		pending = 0
	}

	sawDigit := false
	for _, r := range p {
		if r >= '0' && r <= '9' {
			if sawDigit {
				return nil, nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
			}
			pending = int(r - '0')
			sawDigit = true
			continue
		}
		emit()
		letters = append(letters, r)
		sawDigit = false
	}
	emit()

	return letters, values, nil
}

type point struct {
	pos int
	alt *alternative
}

func (d *Dictionary) points(word string) []point {
	runes := []rune(word)
	framed := make([]rune, 0, len(runes)+2)
	framed = append(framed, '.')
	for _, r := range runes {
		framed = append(framed, toLower(r))
	}
	framed = append(framed, '.')

	refs := make([]value, len(framed)+1)
	for i := 0; i < len(framed)-1; i++ {
		stop := min(i+d.maxLen, len(framed))
		for j := i + 1; j <= stop; j++ {
			p, ok := d.patterns[string(framed[i:j])]
			if !ok {
				continue
			}
			for k, v := range p.values {
				at := i + p.offset + k
				if v.n >= refs[at].n {
					refs[at] = v
				}
			}
		}
	}

	var out []point
	right := len(runes) - d.Right
	for i, ref := range refs {
		pos := i - 1
		if ref.n%2 == 1 && pos >= d.Left && pos <= right {
			out = append(out, point{pos: pos, alt: ref.alt})
		}
	}
	return out
}

// Inserted returns word with hyphen inserted at every break point.
func (d *Dictionary) Inserted(word, hyphen string) string {
	letters := splitLetters(word)
	upper := isUpper(word)
	breaks := d.points(word)
	for i := len(breaks) - 1; i >= 0; i-- {
		b := breaks[i]
		if b.alt == nil {
			letters = insertAt(letters, b.pos, hyphen)
			continue
		}
		change := b.alt.change
		if upper {
			change = strings.ToUpper(change)
		}
		from := max(b.pos+b.alt.index, 0)
		to := min(from+b.alt.cut, len(letters))
		letters = replaceRange(letters, from, to, splitLetters(strings.ReplaceAll(change, "=", hyphen)))
	}
	return strings.Join(letters, "")
}

func splitLetters(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func insertAt(s []string, i int, v string) []string {
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func replaceRange(s []string, from, to int, with []string) []string {
	out := make([]string, 0, len(s)-(to-from)+len(with))
	out = append(out, s[:from]...)
	out = append(out, with...)
	return append(out, s[to:]...)
}

func isUpper(s string) bool {
	return s != "" && s == strings.ToUpper(s) && s != strings.ToLower(s)
}

func toLower(r rune) rune {
	return []rune(strings.ToLower(string(r)))[0]
}
