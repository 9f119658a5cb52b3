package exchange

import "fmt"

// Percent is a rate stored as a fraction: Percent(0.02) is 2%. It carries the
// fixed dividend rate of preferred shares and the dividend-yield result.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p)*100)
}
