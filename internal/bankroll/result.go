package bankroll

import "github.com/lox/pokercore/internal/statistics"

// outcome is the terminal state of one trajectory.
type outcome int

const (
	outcomeSurvived outcome = iota
	outcomeBankrupt
	outcomeProfitExited
)

// Result aggregates the terminal outcomes of a bankroll simulation batch.
type Result struct {
	SimulationCount int

	Bankrupt      int
	SurvivedToCap int
	ProfitExited  int

	BankruptcyRate float64
	SurvivalRate   float64
	ProfitableRate float64

	// MeanFinalCapital and MedianFinalCapital summarize the distribution
	// of each trajectory's capital at termination, reusing the teacher's
	// incremental statistics accumulator rather than introducing a new one.
	MeanFinalCapital   float64
	MedianFinalCapital float64
}

func newResult(outcomes []outcome, finalCapitals []float64) Result {
	r := Result{SimulationCount: len(outcomes)}
	for _, o := range outcomes {
		switch o {
		case outcomeBankrupt:
			r.Bankrupt++
		case outcomeProfitExited:
			r.ProfitExited++
		default:
			r.SurvivedToCap++
		}
	}
	if r.SimulationCount > 0 {
		n := float64(r.SimulationCount)
		r.BankruptcyRate = float64(r.Bankrupt) / n
		r.SurvivalRate = float64(r.SurvivedToCap) / n
		r.ProfitableRate = float64(r.ProfitExited) / n
	}

	stats := &statistics.Statistics{}
	for _, c := range finalCapitals {
		stats.Add(c)
	}
	r.MeanFinalCapital = stats.Mean()
	r.MedianFinalCapital = stats.Median()

	return r
}
