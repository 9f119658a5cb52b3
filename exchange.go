package exchange

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
	"sync"
)

// Exchange is the authoritative registry of listed shares, keyed by symbol.
// It is safe for concurrent use.
type Exchange struct {
	mu     sync.RWMutex
	shares map[string]*Share
}

// NewExchange creates an exchange listing the given shares. Symbols must be
// unique across the listing.
func NewExchange(shares ...*Share) (*Exchange, error) {
	e := &Exchange{shares: make(map[string]*Share, len(shares))}
	for _, s := range shares {
		if err := e.Add(s); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Add lists a share on the exchange. It fails when the symbol is already
// listed: each symbol maps to exactly one share.
func (e *Exchange) Add(s *Share) error {
	if s == nil {
		return fmt.Errorf("%w: share must not be nil", ErrInvalidArgument)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.shares[s.symbol]; ok {
		return fmt.Errorf("%w: symbol %q already listed", ErrInvalidArgument, s.symbol)
	}
	e.shares[s.symbol] = s
	return nil
}

// Remove delists the share with the given symbol and reports whether it was
// listed. Its trade history leaves the exchange with it.
func (e *Exchange) Remove(symbol string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.shares[symbol]
	delete(e.shares, symbol)
	return ok
}

// Get returns the share listed under this symbol, or nil if unknown.
func (e *Exchange) Get(symbol string) *Share {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.shares[symbol]
}

// Has reports whether a share is listed under this symbol.
func (e *Exchange) Has(symbol string) bool { return e.Get(symbol) != nil }

// Symbols returns the listed symbols in lexical order.
func (e *Exchange) Symbols() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Sorted(maps.Keys(e.shares))
}

// Shares returns an iterator over the listed shares, in lexical symbol order.
func (e *Exchange) Shares() iter.Seq[*Share] {
	return func(yield func(*Share) bool) {
		e.mu.RLock()
		shares := make([]*Share, 0, len(e.shares))
		for _, symbol := range slices.Sorted(maps.Keys(e.shares)) {
			shares = append(shares, e.shares[symbol])
		}
		e.mu.RUnlock()
		for _, s := range shares {
			if !yield(s) {
				return
			}
		}
	}
}

// AllShareIndex computes the geometric mean of the price of every trade ever
// recorded across the exchange: the n-th root of the product of all n prices.
// It returns ErrNoTrades when no share has recorded any trade.
//
// The product is accumulated as a sum of logarithms so that a long trade
// history cannot overflow; the result agrees with the direct product within
// floating-point tolerance.
func (e *Exchange) AllShareIndex() (Quantity, error) {
	var sumLog float64
	var n int
	var single Money
	for s := range e.Shares() {
		for _, t := range s.Trades() {
			single = t.Price()
			sumLog += math.Log(t.Price().InexactFloat64())
			n++
		}
	}
	switch n {
	case 0:
		return Quantity{}, fmt.Errorf("%w: no trades recorded on the exchange", ErrNoTrades)
	case 1:
		// the geometric mean of one price is that price, exactly
		return Quantity{value: single.value}, nil
	}
	return Q(math.Exp(sumLog / float64(n))), nil
}
