package utils

import "golang.org/x/exp/rand"

// Random is the source of randomness shared by the searcher, the baseline
// player and board generation. Tests inject a SequenceRandom.
type Random interface {
	// Intn returns an int in [0, n)
	Intn(n int) int
}

type seededRandom struct {
	r *rand.Rand
}

// NewRandom returns a pseudo-random source seeded with seed.
func NewRandom(seed uint64) Random {
	return &seededRandom{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// SequenceRandom replays a fixed queue of results, then returns 0.
// Results are reduced modulo n so a queued value, even a negative one, is
// always in range.
type SequenceRandom struct {
	Results []int
	index   int
}

func NewSequenceRandom(results ...int) *SequenceRandom {
	return &SequenceRandom{Results: results}
}

func (s *SequenceRandom) Intn(n int) int {
	if n <= 0 || s.index >= len(s.Results) {
		return 0
	}
	result := (s.Results[s.index]%n + n) % n
	s.index++
	return result
}

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
