// Package enumerate produces the universe of ownership assignments for a
// batch: every 2^n bit string in lexicographic order, or a seeded uniform
// sample of distinct bit strings.
package enumerate

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/winfrac-dev/winfrac/pkg/domain"
)

// MaxExhaustiveVertices bounds exhaustive mode so the assignment index fits
// in a uint64 counter. Far beyond anything enumerable in practice anyway.
const MaxExhaustiveVertices = 62

// Exhaustive yields all 2^n assignments lazily, in lexicographic order over
// the bit strings ("0...0" through "1...1").
type Exhaustive struct {
	n int
}

// NewExhaustive builds an exhaustive source over n vertex bits.
func NewExhaustive(n int) (*Exhaustive, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: vertex count %d", domain.ErrParameter, n)
	}
	if n > MaxExhaustiveVertices {
		return nil, fmt.Errorf("%w: %d vertices exceed exhaustive limit %d", domain.ErrParameter, n, MaxExhaustiveVertices)
	}
	return &Exhaustive{n: n}, nil
}

// Total returns 2^n.
func (e *Exhaustive) Total() uint64 { return 1 << uint(e.n) }

// Assignments yields each assignment exactly once and closes the channel, or
// stops early when ctx is canceled.
func (e *Exhaustive) Assignments(ctx context.Context) <-chan domain.Assignment {
	ch := make(chan domain.Assignment)
	go func() {
		defer close(ch)
		total := e.Total()
		for idx := uint64(0); idx < total; idx++ {
			select {
			case ch <- domain.AssignmentFromIndex(idx, e.n):
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Sampled yields a fixed set of distinct assignments drawn uniformly at
// random without replacement from a seeded source, so a run is reproducible
// from its seed. Draws that collide with an earlier sample are retried until
// the requested distinct count is reached.
type Sampled struct {
	samples []domain.Assignment
}

// NewSampled draws count distinct assignments over n vertex bits. Requesting
// count >= 2^n fails fast: collisions would make the retry loop spin forever.
func NewSampled(n int, count uint64, seed int64) (*Sampled, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: vertex count %d", domain.ErrParameter, n)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: sample count 0", domain.ErrParameter)
	}
	if n <= MaxExhaustiveVertices && count >= 1<<uint(n) {
		return nil, fmt.Errorf("%w: sample count %d >= assignment space 2^%d", domain.ErrParameter, count, n)
	}

	rng := rand.New(rand.NewSource(seed))
	seen := make(map[domain.Assignment]bool, count)
	samples := make([]domain.Assignment, 0, count)
	buf := make([]byte, n)

	for uint64(len(samples)) < count {
		for i := range buf {
			buf[i] = byte('0' + rng.Intn(2))
		}
		a := domain.Assignment(buf)
		if seen[a] {
			continue
		}
		seen[a] = true
		samples = append(samples, a)
	}
	return &Sampled{samples: samples}, nil
}

// Total returns the requested sample count.
func (s *Sampled) Total() uint64 { return uint64(len(s.samples)) }

// Assignments yields the drawn samples and closes the channel, or stops
// early when ctx is canceled.
func (s *Sampled) Assignments(ctx context.Context) <-chan domain.Assignment {
	ch := make(chan domain.Assignment)
	go func() {
		defer close(ch)
		for _, a := range s.samples {
			select {
			case ch <- a:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
