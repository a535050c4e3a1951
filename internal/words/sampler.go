package words

import (
	"math/rand"
	"time"
)

// Sampler draws random practice words.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler. A nil source seeds from the clock, so each
// run yields a different order.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Sampler{rng: rand.New(src)}
}

// Sample shuffles words in place and returns at most count of them.
func (s *Sampler) Sample(words []string, count int) []string {
	if count <= 0 {
		return nil
	}
	s.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	return words[:min(count, len(words))]
}
