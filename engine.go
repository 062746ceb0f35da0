package qsim

import (
	"context"
	"time"

	"github.com/theapemachine/errnie"
	"golang.org/x/sync/errgroup"
)

/*
Engine repeats measurement of a fixed input state and tallies the outcomes.

Every trial only reads the input state, so trials are independent and
identically distributed. That also makes a run embarrassingly parallel:
RunParallel splits the trials across workers that each own a random source
and a local tally, and merges the tallies by addition at the end.
*/
type Engine struct {
	config  *Config
	metrics *Metrics
}

// NewEngine creates an engine. A nil config uses NewConfig defaults.
func NewEngine(config *Config) *Engine {
	if config == nil {
		config = NewConfig()
	}

	return &Engine{
		config:  config,
		metrics: NewMetrics(),
	}
}

func (e *Engine) Config() *Config {
	return e.config
}

func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

/*
Run measures qs trials times with src on the calling goroutine. Zero
trials yields an empty tally.
*/
func (e *Engine) Run(qs QuantumState, trials uint64, src RandomSource) Tally {
	startTime := time.Now()
	errnie.Debug("Engine.Run - state %v, trials %d", qs, trials)

	var tally Tally
	for i := uint64(0); i < trials; i++ {
		tally.add(Measure(qs, src))
	}

	e.metrics.recordRun(startTime, trials, false)
	errnie.Debug("Engine.Run - done %v in %v", tally, time.Since(startTime))

	return tally
}

/*
RunParallel spreads trials over the configured number of workers. Each
worker draws from its own source obtained from factory; a nil factory
derives per-worker sources from the configured seed. With a fixed seed and
worker count the result is reproducible.

Cancellation is checked between batches of trials. On cancellation the
context error is returned together with an empty tally. A zero-trial run
is recorded in the metrics like any other completed run.
*/
func (e *Engine) RunParallel(
	ctx context.Context,
	qs QuantumState,
	trials uint64,
	factory SourceFactory,
) (Tally, error) {
	startTime := time.Now()

	if trials == 0 {
		if err := ctx.Err(); err != nil {
			return Tally{}, err
		}

		e.metrics.recordRun(startTime, 0, true)
		return Tally{}, nil
	}

	if factory == nil {
		factory = SeededSources(e.config.Seed)
	}

	n := uint64(e.config.workers())
	if n > trials {
		n = trials
	}

	errnie.Debug("Engine.RunParallel - state %v, trials %d, workers %d", qs, trials, n)

	workers := make([]*worker, n)
	per, rest := trials/n, trials%n
	for i := range workers {
		share := per
		if uint64(i) < rest {
			share++
		}

		workers[i] = &worker{
			id:     i,
			state:  qs,
			trials: share,
			src:    factory(i),
		}
	}

	results := make([]Tally, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(int(n))

	for i, w := range workers {
		g.Go(func() error {
			tally, err := w.run(ctx)
			if err != nil {
				return err
			}
			results[i] = tally
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		errnie.Warn("Engine.RunParallel - aborted: %v", err)
		return Tally{}, err
	}

	var tally Tally
	for _, result := range results {
		tally = tally.Merge(result)
	}

	e.metrics.recordRun(startTime, trials, true)
	errnie.Debug("Engine.RunParallel - done %v in %v", tally, time.Since(startTime))

	return tally, nil
}

// SimulateSuperposition applies GateSuperposition to qs and runs the result.
func (e *Engine) SimulateSuperposition(qs QuantumState, trials uint64, src RandomSource) Tally {
	return e.Run(GateSuperposition.Apply(qs), trials, src)
}

/*
RunRegister runs every entry of r in index order and returns one tally per
entry. Entries are measured as they currently are; apply gates to the
register first to simulate transformed qubits.
*/
func (e *Engine) RunRegister(r *Register, trials uint64, src RandomSource) []Tally {
	tallies := make([]Tally, 0, r.Len())

	for _, qs := range r.States() {
		tallies = append(tallies, e.Run(qs, trials, src))
	}

	return tallies
}

/*
SimulateRegisterSuperposition applies GateSuperposition to every entry of r
and runs each result, returning one tally per entry in index order. The
register itself is left unchanged.
*/
func (e *Engine) SimulateRegisterSuperposition(r *Register, trials uint64, src RandomSource) []Tally {
	tallies := make([]Tally, 0, r.Len())

	for _, qs := range r.States() {
		tallies = append(tallies, e.SimulateSuperposition(qs, trials, src))
	}

	return tallies
}
