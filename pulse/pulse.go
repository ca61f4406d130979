// Package pulse maps symbols to signed OOK pulse durations and classifies
// captured durations back into symbols.
//
// Durations are in microseconds. Positive durations are carrier on, negative
// durations carrier off, alternating from the first pulse which is on.
package pulse

import (
	"fmt"

	"github.com/bemasher/oregon21/symbol"
)

const (
	DefaultShort = 544
	DefaultLong  = 1040
)

// Timing holds the transmitted duration of each symbol.
type Timing struct {
	Short int
	Long  int
}

func DefaultTiming() Timing {
	return Timing{DefaultShort, DefaultLong}
}

func (t Timing) String() string {
	return fmt.Sprintf("{Short:%dus Long:%dus}", t.Short, t.Long)
}

// Encode maps each physical symbol to a duration, alternating polarity.
func (t Timing) Encode(chain symbol.Chain) []int {
	durations := make([]int, len(chain))
	for idx, sym := range chain {
		d := t.Short
		if sym == symbol.Long {
			d = t.Long
		}
		if idx&1 == 1 {
			d = -d
		}
		durations[idx] = d
	}
	return durations
}

// Encode maps symbols using the default timing.
func Encode(chain symbol.Chain) []int {
	return DefaultTiming().Encode(chain)
}
