package words

import (
	"strings"

	"codeberg.org/snonux/meixner/internal/curriculum"
)

// Filter returns the words spelled only with letters from pool, in their
// original order.
func Filter(dict []string, pool *curriculum.Pool) []string {
	var allowed []string
	for _, word := range dict {
		word = strings.TrimSpace(word)
		if Allowed(word, pool) {
			allowed = append(allowed, word)
		}
	}
	return allowed
}

// Allowed reports whether every distinct letter of word is unlocked and no
// locked digraph or trigraph occurs in it. The graph check is needed
// because "sz" passes the letter check as soon as s and z are unlocked.
func Allowed(word string, pool *curriculum.Pool) bool {
	seen := make(map[rune]bool)
	for _, r := range word {
		if seen[r] {
			continue
		}
		seen[r] = true
		if !pool.Allows(r) {
			return false
		}
	}
	return graphsAllowed(word, pool)
}

func graphsAllowed(word string, pool *curriculum.Pool) bool {
	for _, g := range curriculum.Graphs() {
		if strings.Contains(word, g) && !pool.HasConsonant(g) {
			return false
		}
	}
	return true
}
