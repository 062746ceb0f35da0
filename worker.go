package qsim

import (
	"context"

	"github.com/theapemachine/errnie"
)

// checkEvery is how many trials a worker runs between cancellation checks.
const checkEvery = 1 << 14

/*
worker measures a fixed state a fixed number of times with its own source
and keeps a local tally. Workers never share a source or a tally; their
results are merged by the engine once all of them have finished.
*/
type worker struct {
	id     int
	state  QuantumState
	trials uint64
	src    RandomSource
}

func (w *worker) run(ctx context.Context) (Tally, error) {
	var tally Tally

	for done := uint64(0); done < w.trials; {
		select {
		case <-ctx.Done():
			errnie.Debug("worker %d - cancelled after %d of %d trials", w.id, done, w.trials)
			return tally, ctx.Err()
		default:
		}

		batch := min(checkEvery, w.trials-done)
		for i := uint64(0); i < batch; i++ {
			tally.add(Measure(w.state, w.src))
		}
		done += batch
	}

	return tally, nil
}
