package qsim

import (
	"sort"
	"sync"
	"time"
)

type Metrics struct {
	mu           sync.RWMutex
	Runs         int64
	ParallelRuns int64
	TrialCount   uint64
	TotalRunTime time.Duration
	LastRun      time.Time

	AverageRunLatency time.Duration
	P95RunLatency     time.Duration
	TrialsPerSecond   float64

	// sliding window of recent run durations for percentiles
	latencyWindow []time.Duration
	windowSize    int
}

func NewMetrics() *Metrics {
	return &Metrics{
		latencyWindow: make([]time.Duration, 0, 100),
		windowSize:    100,
	}
}

func (m *Metrics) recordRun(startTime time.Time, trials uint64, parallel bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Runs++
	if parallel {
		m.ParallelRuns++
	}
	m.TrialCount += trials
	m.TotalRunTime += duration
	m.LastRun = time.Now()

	if m.TotalRunTime > 0 {
		m.TrialsPerSecond = float64(m.TrialCount) / m.TotalRunTime.Seconds()
	}

	m.updateLatencyPercentiles(duration)
}

func (m *Metrics) updateLatencyPercentiles(duration time.Duration) {
	m.AverageRunLatency = m.TotalRunTime / time.Duration(m.Runs)

	m.latencyWindow = append(m.latencyWindow, duration)
	if len(m.latencyWindow) > m.windowSize {
		m.latencyWindow = m.latencyWindow[1:]
	}

	sorted := make([]time.Duration, len(m.latencyWindow))
	copy(sorted, m.latencyWindow)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	p95Index := min(int(float64(len(sorted))*0.95), len(sorted)-1)
	m.P95RunLatency = sorted[p95Index]
}

func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"runs":              m.Runs,
		"parallel_runs":     m.ParallelRuns,
		"trials":            m.TrialCount,
		"avg_latency":       m.AverageRunLatency.Milliseconds(),
		"p95_latency":       m.P95RunLatency.Milliseconds(),
		"trials_per_second": m.TrialsPerSecond,
	}
}
