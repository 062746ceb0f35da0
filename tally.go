package qsim

import "fmt"

/*
Tally counts measurement outcomes per bit. The total is always derived from
the two buckets, so Count(BitZero) + Count(BitOne) == Total() holds by
construction.
*/
type Tally struct {
	counts [2]uint64
}

// NewTally builds a tally from known bucket counts.
func NewTally(zeros, ones uint64) Tally {
	return Tally{counts: [2]uint64{zeros, ones}}
}

// Record returns a copy of the tally with one more observation of b.
func (t Tally) Record(b Bit) Tally {
	t.counts[b&1]++
	return t
}

func (t *Tally) add(b Bit) {
	t.counts[b&1]++
}

func (t Tally) Count(b Bit) uint64 {
	return t.counts[b&1]
}

func (t Tally) Total() uint64 {
	return t.counts[0] + t.counts[1]
}

// Merge sums two tallies bucket by bucket.
func (t Tally) Merge(other Tally) Tally {
	return Tally{counts: [2]uint64{
		t.counts[0] + other.counts[0],
		t.counts[1] + other.counts[1],
	}}
}

func (t Tally) String() string {
	return fmt.Sprintf("{0: %d, 1: %d, total: %d}", t.counts[0], t.counts[1], t.Total())
}
