// Package luck scores a sequence of (equity, realized-outcome) observations
// against the null hypothesis that outcomes match their stated equities. It
// reports a standardized z-score and tail p-values, using a closed-form
// normal approximation for large samples and an exact FFT-based convolution
// for small ones.
//
// The running-sum accumulator is grounded on internal/statistics's
// incremental Add/Sum/SumSq pattern; there is no equivalent component
// in the teacher repo, so this is new code built in that idiom.
package luck

import (
	"fmt"
	"math"
	"sync"

	"github.com/lox/pokercore/internal/pokererr"
)

// smallSampleThreshold pins spec's Open Question (a): n <= 64 triggers the
// exact convolution path instead of the CLT approximation.
const smallSampleThreshold = 64

// relativeVarianceFloor triggers the exact path when the accumulated
// variance is too small, relative to the largest single-sample variance
// term, for the CLT denominator to be numerically trustworthy.
const relativeVarianceFloor = 1e-9

// Sample is one (equity, realized-outcome) observation. P is the player's
// equity in [0,1]; A is the realized outcome in [0,1] (0, 1, or 1/k for a
// k-way chop).
type Sample struct {
	P, A float64
}

// Scorer accumulates Samples and derives a z-score and tail p-values. It is
// a single-owner mutable accumulator, matching spec's concurrency model: no
// internal locking is required for the intended single-writer usage, but a
// mutex guards Snapshot so a reader can safely copy state from another
// goroutine without the writer pausing.
type Scorer struct {
	mu sync.Mutex

	samples []Sample

	sumSurplus  float64
	sumVariance float64
	maxVariance float64

	// degenerateShift is the accumulated (a-p) contribution from p=0 or
	// p=1 samples, which carry zero variance but still offset the mean.
	degenerateShift float64

	// variances holds one entry per sample with positive variance, used
	// to build the exact convolution grid on demand.
	variances []float64
	surpluses []float64
}

// NewScorer returns an empty Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Add records one observation. Returns ErrInvalidSample if p or a falls
// outside [0,1].
func (s *Scorer) Add(p, a float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: equity %v outside [0,1]", pokererr.ErrInvalidSample, p)
	}
	if a < 0 || a > 1 {
		return fmt.Errorf("%w: outcome %v outside [0,1]", pokererr.ErrInvalidSample, a)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	surplus := a - p
	s.samples = append(s.samples, Sample{P: p, A: a})
	s.sumSurplus += surplus

	variance := sampleVariance(p, a)
	if variance <= 0 {
		s.degenerateShift += surplus
		return nil
	}
	s.sumVariance += variance
	if variance > s.maxVariance {
		s.maxVariance = variance
	}
	s.variances = append(s.variances, variance)
	s.surpluses = append(s.surpluses, surplus)
	return nil
}

// sampleVariance implements spec's Open Question (b): a two-outcome sample
// (a ∈ {0,1}) has variance p(1-p); a k-way chop sample (a = 1/k) has
// variance p(1-p)/k, with k inferred from a. This is preserved as written,
// not "corrected" to a stricter two-outcome model.
func sampleVariance(p, a float64) float64 {
	k := impliedK(a)
	return p * (1 - p) / float64(k)
}

func impliedK(a float64) int {
	if a <= 0 || a >= 1 {
		return 1
	}
	k := math.Round(1 / a)
	if k < 1 {
		k = 1
	}
	return int(k)
}

// Snapshot is a read-only copy of a Scorer's accumulated state, safe to
// pass across goroutines.
type Snapshot struct {
	N           int
	SumSurplus  float64
	SumVariance float64
}

// Snapshot copies the current accumulator state by value.
func (s *Scorer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		N:           len(s.samples),
		SumSurplus:  s.sumSurplus,
		SumVariance: s.sumVariance,
	}
}

// Score returns the standardized z-score μ/√σ². ok is false when σ² = 0
// (no informative samples).
func (s *Scorer) Score() (z float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sumVariance == 0 {
		return 0, false
	}
	return s.sumSurplus / math.Sqrt(s.sumVariance), true
}

// Tails returns (upper, lower, two-sided) tail p-values under the null
// hypothesis. ok is false under the same condition as Score.
func (s *Scorer) Tails() (upper, lower, twoSided float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sumVariance == 0 {
		return 0, 0, 0, false
	}

	useExact := len(s.samples) <= smallSampleThreshold || s.sumVariance/s.maxVariance < relativeVarianceFloor
	if useExact {
		return s.exactTails()
	}
	return s.cltTails()
}

func (s *Scorer) cltTails() (upper, lower, twoSided float64, ok bool) {
	z := s.sumSurplus / math.Sqrt(s.sumVariance)
	upper = 1 - standardNormalCDF(z)
	lower = standardNormalCDF(z)
	twoSided = 2 * math.Min(upper, lower)
	if twoSided > 1 {
		twoSided = 1
	}
	return upper, lower, twoSided, true
}

func standardNormalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

// exactTails builds the null distribution of the sum of per-sample surplus
// variables by repeated FFT convolution on a shared discretized grid, then
// reads tail probabilities directly off the resulting PMF.
func (s *Scorer) exactTails() (upper, lower, twoSided float64, ok bool) {
	n := len(s.variances)
	if n == 0 {
		return 0, 0, 0, false
	}

	// Each surplus variable is bounded in magnitude by 1 (a,p ∈ [0,1]);
	// bound the true support conservatively per-sample and sum for the
	// grid extent.
	extent := 0.0
	type point struct {
		hi, lo float64 // value when "won" vs "lost", each with its own probability
	}
	points := make([]point, n)

	// Recover p for each retained sample to build its two-point
	// distribution: value_win = sqrt(v*(1-p)/p), value_lose = -sqrt(v*p/(1-p)),
	// with probabilities p and (1-p) respectively, chosen so mean is 0 and
	// variance matches v exactly.
	probs := make([]float64, n)
	idx := 0
	for _, sample := range s.samples {
		v := sampleVariance(sample.P, sample.A)
		if v <= 0 {
			continue
		}
		probs[idx] = sample.P
		idx++
	}

	for i := 0; i < n; i++ {
		p := probs[i]
		v := s.variances[i]
		hi := math.Sqrt(v * (1 - p) / p)
		lo := -math.Sqrt(v * p / (1 - p))
		points[i] = point{hi: hi, lo: lo}
		m := math.Max(math.Abs(hi), math.Abs(lo))
		extent += m
	}

	gridSize := nextPowerOfTwo(8 * n)
	if gridSize < 256 {
		gridSize = 256
	}
	width := 4 * extent
	if width <= 0 {
		width = 1
	}
	binWidth := width / float64(gridSize)
	origin := -width / 2

	center := binIndex(0, origin, binWidth, gridSize)
	dist := make([]float64, gridSize)
	dist[center] = 1

	// Each sample's two-point distribution is placed at its offset from
	// zero (negative offsets wrap to the top of the grid), so every
	// convolution keeps the running sum's zero at the center bin.
	for i, pt := range points {
		p := probs[i]
		sampleDist := make([]float64, gridSize)
		sampleDist[(binIndex(pt.hi, origin, binWidth, gridSize)-center+gridSize)%gridSize] += p
		sampleDist[(binIndex(pt.lo, origin, binWidth, gridSize)-center+gridSize)%gridSize] += 1 - p
		dist = convolve(dist, sampleDist)
	}

	// Normalize away any FFT round-off and clamp negatives.
	total := 0.0
	for i, v := range dist {
		if v < 0 {
			v = 0
			dist[i] = 0
		}
		total += v
	}
	if total > 0 {
		for i := range dist {
			dist[i] /= total
		}
	}

	observed := s.sumSurplus - s.degenerateShift
	obsIdx := binIndex(observed, origin, binWidth, gridSize)

	for i, v := range dist {
		if i >= obsIdx {
			upper += v
		}
		if i <= obsIdx {
			lower += v
		}
	}
	twoSided = 2 * math.Min(upper, lower)
	if twoSided > 1 {
		twoSided = 1
	}
	return upper, lower, twoSided, true
}

func binIndex(value, origin, binWidth float64, gridSize int) int {
	idx := int(math.Round((value - origin) / binWidth))
	if idx < 0 {
		idx = 0
	}
	if idx >= gridSize {
		idx = gridSize - 1
	}
	return idx
}
