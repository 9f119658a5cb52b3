package exchange

import (
	"fmt"
	"sync"
	"time"
)

// Category of a share. It drives which dividend-yield formula applies.
type Category int

const (
	// Common shares pay the last declared dividend.
	Common Category = iota
	// Preferred shares pay a fixed rate of their par value.
	Preferred
)

func (c Category) String() string {
	switch c {
	case Common:
		return "common"
	case Preferred:
		return "preferred"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "common":
		return Common, nil
	case "preferred":
		return Preferred, nil
	default:
		return 0, fmt.Errorf("%w: unknown share category %q", ErrInvalidArgument, s)
	}
}

// Clock supplies the current instant. Shares stamp trades with it; tests and
// fixtures inject a fixed one.
type Clock func() time.Time

// DefaultWindow is the trailing lookback used for the volume-weighted price
// when callers have no reason to choose another.
const DefaultWindow = 15 * time.Minute

// Share is one listed stock: a fixed identity (symbol, category, dividend
// parameters) and an append-only ledger of trades.
//
// A Share is safe for concurrent use. RecordTrade is the only mutation; every
// metric computes over a consistent snapshot of the ledger.
type Share struct {
	symbol       string
	category     Category
	lastDividend Money
	fixedRate    Percent // dividend rate of par value, Preferred only
	parValue     Money
	clock        Clock

	mu     sync.RWMutex
	trades []Trade
}

// NewShare creates a share with a fixed identity. The last dividend must be
// non-negative, the par value positive, and the fixed dividend rate a
// fraction in [0,1] (it is ignored for Common shares). The clock defaults to
// time.Now; see WithClock.
func NewShare(symbol string, category Category, lastDividend Money, fixedRate Percent, parValue Money) (*Share, error) {
	if symbol == "" {
		return nil, fmt.Errorf("%w: share symbol must not be empty", ErrInvalidArgument)
	}
	if category != Common && category != Preferred {
		return nil, fmt.Errorf("%w: unknown share category %d", ErrInvalidArgument, category)
	}
	if lastDividend.IsNegative() {
		return nil, fmt.Errorf("%w: last dividend must not be negative, got %s", ErrInvalidArgument, lastDividend)
	}
	if !parValue.IsPositive() {
		return nil, fmt.Errorf("%w: par value must be positive, got %s", ErrInvalidArgument, parValue)
	}
	if fixedRate < 0 || fixedRate > 1 {
		return nil, fmt.Errorf("%w: fixed dividend rate must be a fraction in [0,1], got %v", ErrInvalidArgument, float64(fixedRate))
	}
	if !lastDividend.SameCurrency(parValue) {
		return nil, fmt.Errorf("%w: last dividend in %s but par value in %s", ErrInvalidArgument, lastDividend.Currency(), parValue.Currency())
	}
	return &Share{
		symbol:       symbol,
		category:     category,
		lastDividend: lastDividend,
		fixedRate:    fixedRate,
		parValue:     parValue,
		clock:        time.Now,
	}, nil
}

// WithClock replaces the clock stamping recorded trades and returns the share
// for chaining. A nil clock is ignored.
func (s *Share) WithClock(clock Clock) *Share {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// Symbol returns the share's unique ticker symbol.
func (s *Share) Symbol() string { return s.symbol }

// Category returns whether the share is common or preferred.
func (s *Share) Category() Category { return s.category }

// LastDividend returns the last dividend paid per share.
func (s *Share) LastDividend() Money { return s.lastDividend }

// FixedDividendRate returns the fixed dividend rate of a preferred share.
func (s *Share) FixedDividendRate() Percent { return s.fixedRate }

// ParValue returns the nominal face value of the share.
func (s *Share) ParValue() Money { return s.parValue }

// RecordTrade validates and appends one trade to the ledger, stamped with the
// clock's current instant. The quantity must be a positive whole number, the
// side buy or sell, and the price positive and currency-compatible with the
// share's par value. A rejected trade leaves the ledger untouched.
func (s *Share) RecordTrade(quantity Quantity, side Side, price Money) error {
	t, err := newTrade(s.clock(), quantity, side, price)
	if err != nil {
		return fmt.Errorf("recording trade on %s: %w", s.symbol, err)
	}
	if !price.SameCurrency(s.parValue) {
		return fmt.Errorf("recording trade on %s: %w: trade price in %s but share trades in %s",
			s.symbol, ErrInvalidArgument, price.Currency(), s.parValue.Currency())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = append(s.trades, t)
	return nil
}

// Trades returns a copy of the full trade ledger, in recording order. The
// ledger is never pruned, so this is the complete audit trail of the share.
func (s *Share) Trades() []Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trades := make([]Trade, len(s.trades))
	copy(trades, s.trades)
	return trades
}

// DividendYield computes the dividend paid per unit of the given market
// price: lastDividend/price for common shares, fixedRate×parValue/price for
// preferred ones.
func (s *Share) DividendYield(price Money) (Percent, error) {
	if !price.IsPositive() {
		return 0, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidArgument, price)
	}
	switch s.category {
	case Common:
		return Percent(s.lastDividend.DivPrice(price).InexactFloat64()), nil
	case Preferred:
		dividend := s.parValue.Mul(Q(float64(s.fixedRate)))
		return Percent(dividend.DivPrice(price).InexactFloat64()), nil
	default:
		return 0, fmt.Errorf("%w: %s has category %d", ErrUnsupportedCategory, s.symbol, s.category)
	}
}

// PERatio computes price divided by the last dividend. A share that paid no
// dividend has an undefined P/E ratio and returns ErrDivisionUndefined.
func (s *Share) PERatio(price Money) (Quantity, error) {
	if !price.IsPositive() {
		return Quantity{}, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidArgument, price)
	}
	if s.lastDividend.IsZero() {
		return Quantity{}, fmt.Errorf("%w: %s has a zero last dividend", ErrDivisionUndefined, s.symbol)
	}
	return price.DivPrice(s.lastDividend), nil
}

// VolumeWeightedPrice computes Σ(quantity×price)/Σ(quantity) over the trades
// whose age relative to asOf is at most the window, boundary included. It
// returns ErrNoTradesInWindow when no trade falls inside the window.
func (s *Share) VolumeWeightedPrice(asOf time.Time, window time.Duration) (Money, error) {
	if window <= 0 {
		return Money{}, fmt.Errorf("%w: window must be positive, got %s", ErrInvalidArgument, window)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var notional Money
	var volume Quantity
	for _, t := range s.trades {
		if asOf.Sub(t.time) > window {
			continue
		}
		notional = notional.Add(t.price.Mul(t.quantity))
		volume = volume.Add(t.quantity)
	}
	if volume.IsZero() {
		return Money{}, fmt.Errorf("%w: no trades on %s in the %s before %s",
			ErrNoTradesInWindow, s.symbol, window, asOf.Format(time.RFC3339))
	}
	return notional.Div(volume), nil
}
