// Package exchangetest provides a seeded sample market for tests and
// documentation examples: the five-share Global Beverage Corporation Exchange
// with one reference trade per share.
package exchangetest

import (
	"github.com/gbce/exchange"
)

// GBP is a helper to create pound sterling money from a constant.
func GBP(v float64) exchange.Money { return exchange.M(v, "GBP") }

// Seed builds the sample market. Every share stamps its trades with the given
// clock, so a fixed clock yields a fully deterministic exchange; a nil clock
// leaves the ambient one in place.
//
// The listing is TEA, POP, ALE, GIN and JOE, with one trade each at prices
// 110 to 150.
func Seed(clock exchange.Clock) *exchange.Exchange {
	tea := mustShare("TEA", exchange.Common, GBP(0), 0, GBP(100), clock)
	pop := mustShare("POP", exchange.Common, GBP(8), 0, GBP(100), clock)
	ale := mustShare("ALE", exchange.Common, GBP(23), 0, GBP(60), clock)
	gin := mustShare("GIN", exchange.Preferred, GBP(8), 0.02, GBP(100), clock)
	joe := mustShare("JOE", exchange.Common, GBP(13), 0, GBP(250), clock)

	mustRecord(tea, 100, exchange.Buy, 110)
	mustRecord(pop, 200, exchange.Sell, 120)
	mustRecord(ale, 150, exchange.Buy, 130)
	mustRecord(gin, 250, exchange.Sell, 140)
	mustRecord(joe, 300, exchange.Buy, 150)

	gbce, err := exchange.NewExchange(tea, pop, ale, gin, joe)
	if err != nil {
		panic(err)
	}
	return gbce
}

func mustShare(symbol string, cat exchange.Category, lastDividend exchange.Money, rate exchange.Percent, parValue exchange.Money, clock exchange.Clock) *exchange.Share {
	s, err := exchange.NewShare(symbol, cat, lastDividend, rate, parValue)
	if err != nil {
		panic(err)
	}
	return s.WithClock(clock)
}

func mustRecord(s *exchange.Share, quantity int, side exchange.Side, price float64) {
	if err := s.RecordTrade(exchange.Q(quantity), side, GBP(price)); err != nil {
		panic(err)
	}
}
