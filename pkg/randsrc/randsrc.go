// Package randsrc provides the random source injected into the generator.
package randsrc

import (
	"math/rand/v2"
	"sync"
)

// Source is the subset of random operations the services use.
type Source interface {
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Locked is a Source safe for concurrent use.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Locked source seeded from the runtime.
func New() *Locked {
	return &Locked{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic Locked source.
func NewSeeded(seed uint64) *Locked {
	return &Locked{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Sequence replays fixed values. Intn returns next % n; Float64 returns the
// next float. It is meant for tests.
type Sequence struct {
	mu     sync.Mutex
	ints   []int
	floats []float64
	i, f   int
}

// NewSequence creates a Sequence. Empty slices yield zeros.
func NewSequence(ints []int, floats []float64) *Sequence {
	return &Sequence{ints: ints, floats: floats}
}

func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)]
	s.i++
	return v % n
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}
