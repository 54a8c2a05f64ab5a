// Package equity computes multi-way poker equity by exhaustive enumeration
// of community-card completions, dispatched across a worker pool in the
// same errgroup shape the teacher used for its Monte Carlo equity sampler
// (internal/evaluator/equity.go's EstimateEquityParallel), but with each
// worker walking a deterministic slice of the C(n,k) combination space
// instead of drawing random samples.
package equity

import (
	"context"
	"fmt"
	"runtime"

	"github.com/lox/pokercore/internal/card"
	"github.com/lox/pokercore/internal/evaluator"
	"github.com/lox/pokercore/internal/pokererr"
	"golang.org/x/sync/errgroup"
)

// EquityResult is the outcome of an exhaustive multi-way equity
// computation: per-player win counts and tie-shares over Trials boards.
type EquityResult struct {
	trials    int64
	wins      []int64
	tieShare  []float64
	neverLost []bool
}

// partialResult holds one worker's accumulated counts before they are
// merged into the final EquityResult.
type partialResult struct {
	wins      []int64
	tieShare  []float64
	neverLost []bool
}

// PlayerCount returns the number of players in the result.
func (r EquityResult) PlayerCount() int {
	return len(r.wins)
}

// Equity returns player i's win probability including proportional credit
// for ties: (wins + tieShare) / trials.
func (r EquityResult) Equity(i int) float64 {
	return (float64(r.wins[i]) + r.tieShare[i]) / float64(r.trials)
}

// NeverLost reports whether player i was among the top-ranked hands on
// every enumerated board.
func (r EquityResult) NeverLost(i int) bool {
	return r.neverLost[i]
}

// Wins returns player i's raw outright-win count across all enumerated
// boards, excluding any chopped boards. Combined with TrialCount, callers
// needing exact integer outcome counts (rather than equity's proportional
// tie credit) can recover them directly: for two players, ties = trials -
// Wins(0) - Wins(1).
func (r EquityResult) Wins(i int) int64 {
	return r.wins[i]
}

// TrialCount returns the total number of enumerated boards.
func (r EquityResult) TrialCount() int64 {
	return r.trials
}

// Option configures a Compute call.
type Option func(*computeOptions)

type computeOptions struct {
	maxWorkers int
}

// WithMaxWorkers caps the worker pool size used to enumerate boards. The
// default is runtime.NumCPU(), capped at 8; passing n <= 0 leaves the
// default in place. Callers typically source n from internal/config's
// EquitySettings.MaxWorkers.
func WithMaxWorkers(n int) Option {
	return func(o *computeOptions) {
		if n > 0 {
			o.maxWorkers = n
		}
	}
}

// Compute enumerates every completion of the community board and returns
// each player's equity. holes must have at least 2 entries (one hole pair
// per player); community may hold 0-5 cards. All cards across holes and
// community must be distinct and drawn from the 52-card deck, or Compute
// returns ErrInvalidInput.
func Compute(holes [][2]card.Card, community []card.Card, opts ...Option) (EquityResult, error) {
	if len(holes) < 2 {
		return EquityResult{}, fmt.Errorf("%w: need at least 2 players, got %d", pokererr.ErrInvalidInput, len(holes))
	}
	if len(community) > 5 {
		return EquityResult{}, fmt.Errorf("%w: community has %d cards, max 5", pokererr.ErrInvalidInput, len(community))
	}

	var used card.Set
	addCard := func(c card.Card) error {
		if c.Rank < card.Two || c.Rank > card.Ace || c.Suit < card.Clubs || c.Suit > card.Spades {
			return fmt.Errorf("%w: card %v outside the 52-card deck", pokererr.ErrInvalidInput, c)
		}
		if used.Contains(c) {
			return fmt.Errorf("%w: duplicate or overlapping card %s", pokererr.ErrInvalidInput, c)
		}
		used = used.Add(c)
		return nil
	}
	for _, h := range holes {
		if err := addCard(h[0]); err != nil {
			return EquityResult{}, err
		}
		if err := addCard(h[1]); err != nil {
			return EquityResult{}, err
		}
	}
	for _, c := range community {
		if err := addCard(c); err != nil {
			return EquityResult{}, err
		}
	}

	unseen := used.Complement()
	need := 5 - len(community)
	n := len(unseen)
	trials := binom(n, need)
	if trials == 0 {
		trials = 1
	}

	cfg := computeOptions{maxWorkers: 8}
	for _, opt := range opts {
		opt(&cfg)
	}

	numPlayers := len(holes)
	workers := runtime.NumCPU()
	if workers > cfg.maxWorkers {
		workers = cfg.maxWorkers
	}
	if int64(workers) > trials {
		workers = int(trials)
	}
	if workers < 1 {
		workers = 1
	}

	resultsCh := make(chan partialResult, workers)
	g, ctx := errgroup.WithContext(context.Background())

	perWorker := trials / int64(workers)
	remainder := trials % int64(workers)

	var lo int64
	for w := 0; w < workers; w++ {
		count := perWorker
		if int64(w) < remainder {
			count++
		}
		start, end := lo, lo+count
		lo = end

		g.Go(func() error {
			res := runWorker(holes, community, unseen, numPlayers, need, n, start, end)
			select {
			case resultsCh <- res:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		_ = g.Wait()
		close(resultsCh)
	}()

	totalWins := make([]int64, numPlayers)
	totalTieShare := make([]float64, numPlayers)
	neverLost := make([]bool, numPlayers)
	for i := range neverLost {
		neverLost[i] = true
	}

	for res := range resultsCh {
		for i := 0; i < numPlayers; i++ {
			totalWins[i] += res.wins[i]
			totalTieShare[i] += res.tieShare[i]
			if !res.neverLost[i] {
				neverLost[i] = false
			}
		}
	}

	if err := g.Wait(); err != nil {
		return EquityResult{}, fmt.Errorf("%w: %v", pokererr.ErrInvalidInput, err)
	}

	return EquityResult{
		trials:    trials,
		wins:      totalWins,
		tieShare:  totalTieShare,
		neverLost: neverLost,
	}, nil
}

// runWorker evaluates boards for combination ranks [start, end) of the
// unseen-card combination space, allocation-free after setup.
func runWorker(holes [][2]card.Card, community, unseen []card.Card, numPlayers, need, n int, start, end int64) partialResult {
	wins := make([]int64, numPlayers)
	tieShare := make([]float64, numPlayers)
	neverLost := make([]bool, numPlayers)
	for i := range neverLost {
		neverLost[i] = true
	}
	result := partialResult{wins: wins, tieShare: tieShare, neverLost: neverLost}

	if start >= end {
		return result
	}

	board := make([]card.Card, 5)
	copy(board, community)

	hands := make([][]card.Card, numPlayers)
	ranks := make([]evaluator.HandRank, numPlayers)
	for i := range hands {
		hands[i] = make([]card.Card, 2+5)
		hands[i][0] = holes[i][0]
		hands[i][1] = holes[i][1]
	}

	if need == 0 {
		evaluateBoard(board, hands, ranks, wins, tieShare, neverLost)
		return result
	}

	combo := kthCombination(n, need, start)
	for trial := start; trial < end; trial++ {
		for i, idx := range combo {
			board[len(community)+i] = unseen[idx]
		}
		evaluateBoard(board, hands, ranks, wins, tieShare, neverLost)
		if trial+1 < end {
			nextCombination(combo, n)
		}
	}

	return result
}

func evaluateBoard(board []card.Card, hands [][]card.Card, ranks []evaluator.HandRank, wins []int64, tieShare []float64, neverLost []bool) {
	best := HandRankZero
	for i := range hands {
		copy(hands[i][2:], board)
		rank, _ := evaluator.Evaluate(hands[i])
		ranks[i] = rank
		if rank > best {
			best = rank
		}
	}

	winners := 0
	for _, r := range ranks {
		if r == best {
			winners++
		}
	}

	for i, r := range ranks {
		if r != best {
			neverLost[i] = false
			continue
		}
		if winners == 1 {
			wins[i]++
		} else {
			tieShare[i] += 1.0 / float64(winners)
		}
	}
}

// HandRankZero is the zero value of evaluator.HandRank, lower than any
// valid hand rank (category starts at 1).
const HandRankZero = evaluator.HandRank(0)
