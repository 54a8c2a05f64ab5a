// Package pokererr defines the small sentinel error taxonomy shared by
// every pokercore component. Callers discriminate failures with errors.Is;
// nothing in the core panics on user input.
package pokererr

import "errors"

var (
	// ErrInvalidCard is returned for a malformed two-character card code.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidHand is returned for a hand with the wrong card count or
	// duplicate cards.
	ErrInvalidHand = errors.New("invalid hand")

	// ErrInvalidInput is returned by the Equity Engine when cards overlap
	// or fall outside the 52-card deck.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSample is returned by the Luck Scorer for a sample whose
	// equity or outcome falls outside [0, 1].
	ErrInvalidSample = errors.New("invalid sample")

	// ErrInvalidConfig is returned by the Bankroll Simulator for a config
	// that violates its constraints.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrCacheFormat is returned by the Preflop Cache loader for a bad
	// magic, unsupported version, truncated record stream, or
	// non-ascending keys.
	ErrCacheFormat = errors.New("invalid cache format")
)
