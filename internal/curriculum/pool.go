package curriculum

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrLevelNotImplemented is returned for levels beyond both tables.
var ErrLevelNotImplemented = errors.New("level not implemented")

// Pool is the set of consonants and vowels unlocked at one level.
type Pool struct {
	level      int
	consonants map[string]bool
	vowels     map[string]bool
}

// Resolve computes the cumulative pool for level. A level of zero or less
// unlocks every letter.
func Resolve(level int) (*Pool, error) {
	p := &Pool{
		level:      level,
		consonants: make(map[string]bool),
		vowels:     make(map[string]bool),
	}

	switch {
	case level <= 0:
		for _, l := range consonantLevels {
			p.addConsonants(l)
		}
		for _, l := range vowelLevels {
			p.addVowels(l)
		}
	case level <= MaxLevel():
		for i := 0; i < level; i++ {
			p.addConsonants(consonantLevels[min(i, len(consonantLevels)-1)])
			p.addVowels(vowelLevels[min(i, len(vowelLevels)-1)])
		}
	default:
		return nil, fmt.Errorf("%w: level %d (maximum is %d)", ErrLevelNotImplemented, level, MaxLevel())
	}

	return p, nil
}

func (p *Pool) addConsonants(l Level) {
	for _, c := range l {
		p.consonants[c] = true
	}
}

func (p *Pool) addVowels(l Level) {
	for _, v := range l {
		p.vowels[v] = true
	}
}

// Level returns the level the pool was resolved for.
func (p *Pool) Level() int {
	return p.level
}

// HasConsonant reports whether the consonant token (single letter or graph)
// is unlocked.
func (p *Pool) HasConsonant(token string) bool {
	return p.consonants[token]
}

// HasVowel reports whether the vowel is unlocked.
func (p *Pool) HasVowel(v string) bool {
	return p.vowels[v]
}

// Allows reports whether a single rune appears in either pool.
func (p *Pool) Allows(r rune) bool {
	s := string(r)
	return p.consonants[s] || p.vowels[s]
}

// Consonants returns the unlocked consonant tokens, sorted.
func (p *Pool) Consonants() []string {
	return sortedKeys(p.consonants)
}

// Vowels returns the unlocked vowels, sorted.
func (p *Pool) Vowels() []string {
	return sortedKeys(p.vowels)
}

// Contains reports whether every token of other is also in p.
func (p *Pool) Contains(other *Pool) bool {
	for c := range other.consonants {
		if !p.consonants[c] {
			return false
		}
	}
	for v := range other.vowels {
		if !p.vowels[v] {
			return false
		}
	}
	return true
}

func (p *Pool) String() string {
	return fmt.Sprintf("level %d: consonants [%s] vowels [%s]",
		p.level, strings.Join(p.Consonants(), " "), strings.Join(p.Vowels(), " "))
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
