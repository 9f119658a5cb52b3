package exchangetest

import (
	"reflect"
	"testing"
	"time"

	"github.com/gbce/exchange"
)

func TestSeed(t *testing.T) {
	at := time.Date(2016, time.April, 1, 10, 0, 0, 0, time.UTC)
	gbce := Seed(func() time.Time { return at })

	if got, want := gbce.Symbols(), []string{"ALE", "GIN", "JOE", "POP", "TEA"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Seed listed %v, want %v", got, want)
	}

	for s := range gbce.Shares() {
		trades := s.Trades()
		if len(trades) != 1 {
			t.Errorf("%s has %d trades, want 1", s.Symbol(), len(trades))
			continue
		}
		if !trades[0].Time().Equal(at) {
			t.Errorf("%s trade stamped %v, want the injected instant %v", s.Symbol(), trades[0].Time(), at)
		}
	}

	if gbce.Get("GIN").Category() != exchange.Preferred {
		t.Errorf("GIN should be preferred")
	}
}
