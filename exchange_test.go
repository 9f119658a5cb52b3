package exchange

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

func mustShare(t *testing.T, symbol string, clock Clock) *Share {
	t.Helper()
	s, err := NewShare(symbol, Common, gbp(8), 0, gbp(100))
	if err != nil {
		t.Fatalf("NewShare(%q) failed: %v", symbol, err)
	}
	return s.WithClock(clock)
}

func TestNewExchange_rejectsDuplicateSymbol(t *testing.T) {
	a := mustShare(t, "POP", nil)
	b := mustShare(t, "POP", nil)
	if _, err := NewExchange(a, b); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewExchange with duplicate symbol error = %v, want ErrInvalidArgument", err)
	}
}

func TestExchange_AddRemove(t *testing.T) {
	e, err := NewExchange(mustShare(t, "TEA", nil), mustShare(t, "POP", nil))
	if err != nil {
		t.Fatalf("NewExchange failed: %v", err)
	}

	if err := e.Add(mustShare(t, "POP", nil)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Add of an already listed symbol error = %v, want ErrInvalidArgument", err)
	}
	if err := e.Add(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Add(nil) error = %v, want ErrInvalidArgument", err)
	}
	if err := e.Add(mustShare(t, "ALE", nil)); err != nil {
		t.Errorf("Add(ALE) failed: %v", err)
	}

	if got, want := e.Symbols(), []string{"ALE", "POP", "TEA"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Symbols() = %v, want %v", got, want)
	}
	if !e.Has("TEA") || e.Get("TEA") == nil {
		t.Errorf("TEA should be listed")
	}
	if e.Get("GIN") != nil {
		t.Errorf("Get of an unlisted symbol should return nil")
	}

	if !e.Remove("TEA") {
		t.Errorf("Remove(TEA) = false, want true")
	}
	if e.Remove("TEA") {
		t.Errorf("second Remove(TEA) = true, want false")
	}
	if got, want := e.Symbols(), []string{"ALE", "POP"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Symbols() after Remove = %v, want %v", got, want)
	}
}

func TestExchange_Shares_ordered(t *testing.T) {
	e, err := NewExchange(mustShare(t, "JOE", nil), mustShare(t, "ALE", nil), mustShare(t, "GIN", nil))
	if err != nil {
		t.Fatalf("NewExchange failed: %v", err)
	}
	var got []string
	for s := range e.Shares() {
		got = append(got, s.Symbol())
	}
	if want := []string{"ALE", "GIN", "JOE"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Shares() yielded %v, want %v", got, want)
	}
}

func TestExchange_AllShareIndex(t *testing.T) {
	clock := func() time.Time { return time.Date(2016, time.April, 1, 10, 0, 0, 0, time.UTC) }

	t.Run("No trades", func(t *testing.T) {
		e, err := NewExchange(mustShare(t, "TEA", clock))
		if err != nil {
			t.Fatalf("NewExchange failed: %v", err)
		}
		if _, err := e.AllShareIndex(); !errors.Is(err, ErrNoTrades) {
			t.Errorf("AllShareIndex on empty exchange error = %v, want ErrNoTrades", err)
		}
	})

	t.Run("Single trade returns its price exactly", func(t *testing.T) {
		s := mustShare(t, "POP", clock)
		if err := s.RecordTrade(Q(200), Sell, gbp(120.5)); err != nil {
			t.Fatalf("RecordTrade failed: %v", err)
		}
		e, err := NewExchange(s)
		if err != nil {
			t.Fatalf("NewExchange failed: %v", err)
		}
		got, err := e.AllShareIndex()
		if err != nil {
			t.Fatalf("AllShareIndex failed: %v", err)
		}
		if !got.Equal(Q(120.5)) {
			t.Errorf("AllShareIndex = %s, want exactly 120.5", got)
		}
	})

	t.Run("Reference prices", func(t *testing.T) {
		prices := []float64{110, 120, 130, 140, 150}
		var shares []*Share
		for i, symbol := range []string{"TEA", "POP", "ALE", "GIN", "JOE"} {
			s := mustShare(t, symbol, clock)
			if err := s.RecordTrade(Q(100), Buy, gbp(prices[i])); err != nil {
				t.Fatalf("RecordTrade failed: %v", err)
			}
			shares = append(shares, s)
		}
		e, err := NewExchange(shares...)
		if err != nil {
			t.Fatalf("NewExchange failed: %v", err)
		}

		got, err := e.AllShareIndex()
		if err != nil {
			t.Fatalf("AllShareIndex failed: %v", err)
		}
		want := math.Pow(110*120*130*140*150, 1.0/5.0)
		if diff := math.Abs(got.InexactFloat64() - want); diff > 1e-9 {
			t.Errorf("AllShareIndex = %s, want %v (diff %v)", got, want, diff)
		}
	})

	t.Run("Matches the direct product when it does not overflow", func(t *testing.T) {
		s := mustShare(t, "ALE", clock)
		prices := []float64{1.25, 99.99, 130, 47.5, 1042, 3.14}
		product := 1.0
		for _, p := range prices {
			if err := s.RecordTrade(Q(10), Buy, gbp(p)); err != nil {
				t.Fatalf("RecordTrade failed: %v", err)
			}
			product *= p
		}
		e, err := NewExchange(s)
		if err != nil {
			t.Fatalf("NewExchange failed: %v", err)
		}
		got, err := e.AllShareIndex()
		if err != nil {
			t.Fatalf("AllShareIndex failed: %v", err)
		}
		want := math.Pow(product, 1.0/float64(len(prices)))
		if rel := math.Abs(got.InexactFloat64()-want) / want; rel > 1e-12 {
			t.Errorf("AllShareIndex = %s, want %v (relative diff %v)", got, want, rel)
		}
	})

	t.Run("Survives histories whose direct product overflows", func(t *testing.T) {
		s := mustShare(t, "JOE", clock)
		// 500 trades at the same price: a direct float64 product of 150^500
		// overflows, the geometric mean is still 150.
		for range 500 {
			if err := s.RecordTrade(Q(1), Buy, gbp(150)); err != nil {
				t.Fatalf("RecordTrade failed: %v", err)
			}
		}
		e, err := NewExchange(s)
		if err != nil {
			t.Fatalf("NewExchange failed: %v", err)
		}
		got, err := e.AllShareIndex()
		if err != nil {
			t.Fatalf("AllShareIndex failed: %v", err)
		}
		if rel := math.Abs(got.InexactFloat64()-150) / 150; rel > 1e-9 {
			t.Errorf("AllShareIndex = %s, want 150 (relative diff %v)", got, rel)
		}
	})
}
