package ranking

import "math/rand"

// RandomSource supplies the bounded perturbation added to every match score.
// The perturbation keeps repeated runs feeling fresh; tests inject a fixed
// sequence to make scoring deterministic.
type RandomSource interface {
	// Next returns a value in [0, 1).
	Next() float64
}

type prngSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a PRNG-backed RandomSource. Pass 0 to let the
// package pick an arbitrary seed.
func NewSeededSource(seed int64) RandomSource {
	if seed == 0 {
		return &prngSource{rng: rand.New(rand.NewSource(rand.Int63()))}
	}
	return &prngSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *prngSource) Next() float64 {
	return s.rng.Float64()
}

// FixedSource replays a fixed sequence of values, cycling when exhausted.
// A FixedSource with a single 0 disables perturbation entirely.
type FixedSource struct {
	Values []float64
	pos    int
}

// Next returns the next value in the sequence.
func (s *FixedSource) Next() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
