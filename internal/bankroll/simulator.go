// Package bankroll runs Monte-Carlo bankroll trajectories over a fixed set
// of additive return samples. The Config/Run shape and the
// seed-plus-index-per-trajectory RNG derivation are grounded on the
// teacher's internal/simulator.Simulator, with the hand-playing trajectory
// body replaced by a random walk over return_samples and the sequential
// hand loop replaced by an errgroup-parallel worker pool (grounded on
// internal/evaluator/equity.go's EstimateEquityParallel).
package bankroll

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokercore/internal/randutil"
)

// Option configures optional Simulate behavior.
type Option func(*runOptions)

type runOptions struct {
	logger         *log.Logger
	clock          quartz.Clock
	progressPeriod time.Duration
}

// WithLogger attaches a logger that receives periodic progress reports.
func WithLogger(logger *log.Logger) Option {
	return func(o *runOptions) { o.logger = logger }
}

// WithClock overrides the clock driving the progress ticker, letting tests
// advance virtual time instead of sleeping on a wall-clock interval.
func WithClock(clock quartz.Clock) Option {
	return func(o *runOptions) { o.clock = clock }
}

// WithProgressPeriod overrides how often progress is reported. Has no
// effect without a logger.
func WithProgressPeriod(d time.Duration) Option {
	return func(o *runOptions) { o.progressPeriod = d }
}

// Simulate runs cfg.SimulationCount independent trajectories, each seeded
// deterministically from seed and its trajectory index, and returns the
// aggregate outcome counts and final-capital distribution summary.
// Re-running the same (cfg, seed) always yields an identical Result,
// regardless of worker scheduling order.
func Simulate(cfg Config, seed int64, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	ro := runOptions{clock: quartz.NewReal(), progressPeriod: time.Second}
	for _, opt := range opts {
		opt(&ro)
	}

	outcomes := make([]outcome, cfg.SimulationCount)
	finalCapitals := make([]float64, cfg.SimulationCount)

	var completed atomic.Int64
	stopProgress := make(chan struct{})
	if ro.logger != nil {
		go reportProgress(ro.clock, ro.progressPeriod, &completed, cfg.SimulationCount, ro.logger, stopProgress)
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > cfg.SimulationCount {
		workers = cfg.SimulationCount
	}
	if workers < 1 {
		workers = 1
	}

	g, _ := errgroup.WithContext(context.Background())
	perWorker := cfg.SimulationCount / workers
	remainder := cfg.SimulationCount % workers

	lo := 0
	for w := 0; w < workers; w++ {
		count := perWorker
		if w < remainder {
			count++
		}
		start, end := lo, lo+count
		lo = end

		g.Go(func() error {
			for i := start; i < end; i++ {
				rng := randutil.New(seed + int64(i))
				o, capital := runTrajectory(cfg, rng)
				outcomes[i] = o
				finalCapitals[i] = capital
				completed.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	close(stopProgress)
	if err != nil {
		return Result{}, err
	}

	return newResult(outcomes, finalCapitals), nil
}

func reportProgress(clock quartz.Clock, period time.Duration, completed *atomic.Int64, total int, logger *log.Logger, stop <-chan struct{}) {
	ticker := clock.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			logger.Info("bankroll simulation progress", "completed", completed.Load(), "total", total)
		case <-stop:
			return
		}
	}
}

// runTrajectory walks a single random-walk trajectory and returns its
// terminal outcome and final capital.
func runTrajectory(cfg Config, rng *rand.Rand) (outcome, float64) {
	capital := cfg.InitialCapital
	profitTarget := cfg.InitialCapital * cfg.ProfitExitMultiplier

	for step := 0; step < cfg.MaxSteps; step++ {
		r := cfg.ReturnSamples[rng.IntN(len(cfg.ReturnSamples))]
		capital += r

		if capital <= 0 {
			return outcomeBankrupt, capital
		}
		if cfg.ProfitExitMultiplier > 0 && capital >= profitTarget {
			return outcomeProfitExited, capital
		}
	}

	return outcomeSurvived, capital
}
