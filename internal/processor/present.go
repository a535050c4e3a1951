package processor

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/meixner/internal/curriculum"
)

// Present writes one word per line, in the given order.
func Present(w io.Writer, words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return fmt.Errorf("write word: %w", err)
		}
	}
	return nil
}

// ListLevels prints the letters each level adds and the size of the
// cumulative pool.
func ListLevels(w io.Writer) error {
	vowels := curriculum.VowelLevels()
	consonants := curriculum.ConsonantLevels()

	for level := 1; level <= curriculum.MaxLevel(); level++ {
		pool, err := curriculum.Resolve(level)
		if err != nil {
			return err
		}

		var added []string
		if i := level - 1; i < len(consonants) {
			added = append(added, consonants[i]...)
		}
		if i := level - 1; i < len(vowels) {
			added = append(added, vowels[i]...)
		}
		if len(added) == 0 {
			added = []string{"-"}
		}

		_, err = fmt.Fprintf(w, "%2d: %-14s (%d consonants, %d vowels)\n",
			level, strings.Join(added, " "), len(pool.Consonants()), len(pool.Vowels()))
		if err != nil {
			return fmt.Errorf("write level: %w", err)
		}
	}
	return nil
}
