package qsim

import (
	"math/rand/v2"
	"time"
)

/*
RandomSource produces uniform draws in [0, 1). It is injected into every
sampling operation so runs can be reproduced with a seeded or scripted
source. *rand.Rand from math/rand/v2 satisfies it directly.
*/
type RandomSource interface {
	Float64() float64
}

/*
SourceFactory hands each parallel worker its own RandomSource, so no source
is ever shared between goroutines.
*/
type SourceFactory func(worker int) RandomSource

/*
NewSource returns a PCG-backed source for seed. A zero seed is replaced by
the current time, which makes the run non-reproducible.
*/
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// SeededSources derives one independent PCG stream per worker from seed.
func SeededSources(seed uint64) SourceFactory {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return func(worker int) RandomSource {
		return rand.New(rand.NewPCG(seed, uint64(worker)+1))
	}
}

/*
ScriptedSource replays a fixed sequence of draws, wrapping around at the
end. It is not safe for concurrent use.
*/
type ScriptedSource struct {
	values []float64
	next   int
}

func NewScriptedSource(values ...float64) *ScriptedSource {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &ScriptedSource{values: values}
}

func (s *ScriptedSource) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
