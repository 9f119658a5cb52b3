package exchange

import "errors"

// Sentinel errors returned by constructors and metric computations. Callers
// match them with errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidArgument reports malformed input to a constructor or to
	// RecordTrade: a non-positive quantity or price, an unrecognized trade
	// side or share category, or a currency mismatch.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionUndefined reports a P/E ratio requested on a share whose
	// last dividend is zero.
	ErrDivisionUndefined = errors.New("division undefined")

	// ErrNoTradesInWindow reports a volume-weighted price requested with no
	// trades inside the lookback window.
	ErrNoTradesInWindow = errors.New("no trades in window")

	// ErrNoTrades reports a market index requested on an exchange with zero
	// trades across all of its shares.
	ErrNoTrades = errors.New("no trades")

	// ErrUnsupportedCategory reports a share whose category is outside the
	// two recognized values.
	ErrUnsupportedCategory = errors.New("unsupported share category")
)
