package exchange

import (
	"fmt"
	"time"
)

// Side identifies the direction of a trade.
type Side int

const (
	// Buy marks a trade where shares were bought.
	Buy Side = iota
	// Sell marks a trade where shares were sold.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("%w: unknown trade side %q", ErrInvalidArgument, s)
	}
}

// Trade is the immutable record of one transaction on a share. Trades are
// created by RecordTrade, stamped with the recording instant, and never
// mutated or deleted afterwards.
type Trade struct {
	time     time.Time
	quantity Quantity
	side     Side
	price    Money
}

// newTrade validates the trade fields and stamps the record with 'at'.
func newTrade(at time.Time, quantity Quantity, side Side, price Money) (Trade, error) {
	if !quantity.IsPositive() {
		return Trade{}, fmt.Errorf("%w: trade quantity must be positive, got %s", ErrInvalidArgument, quantity)
	}
	if !quantity.IsInteger() {
		return Trade{}, fmt.Errorf("%w: trade quantity must be a whole number of shares, got %s", ErrInvalidArgument, quantity)
	}
	if side != Buy && side != Sell {
		return Trade{}, fmt.Errorf("%w: unknown trade side %d", ErrInvalidArgument, side)
	}
	if !price.IsPositive() {
		return Trade{}, fmt.Errorf("%w: trade price must be positive, got %s", ErrInvalidArgument, price)
	}
	return Trade{time: at, quantity: quantity, side: side, price: price}, nil
}

// Time returns the instant the trade was recorded.
func (t Trade) Time() time.Time { return t.time }

// Quantity returns the number of shares traded.
func (t Trade) Quantity() Quantity { return t.quantity }

// Side returns whether the trade was a buy or a sell.
func (t Trade) Side() Side { return t.side }

// Price returns the price at which the trade occurred.
func (t Trade) Price() Money { return t.price }

func (t Trade) Equal(u Trade) bool {
	return t.time.Equal(u.time) && t.quantity.Equal(u.quantity) && t.side == u.side && t.price.Equal(u.price)
}

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("time", t.time.Format(time.RFC3339Nano))
	w.Append("quantity", t.quantity)
	w.Append("side", t.side.String())
	w.Append("price", t.price)
	return w.MarshalJSON()
}
