package pulse

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/bemasher/oregon21/symbol"
)

// Thresholds are the inclusive magnitude bands for each symbol. Where the
// bands touch, the long band wins.
type Thresholds struct {
	ShortMin, ShortMax int
	LongMin, LongMax   int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		ShortMin: 200,
		ShortMax: 850,
		LongMin:  850,
		LongMax:  1400,
	}
}

func (t Thresholds) String() string {
	return fmt.Sprintf("{Short:[%d,%d] Long:[%d,%d]}", t.ShortMin, t.ShortMax, t.LongMin, t.LongMax)
}

// Validate rejects bands that are empty or where short lies above long.
func (t Thresholds) Validate() error {
	if t.ShortMin > t.ShortMax {
		return fmt.Errorf("short band is empty: %s", t)
	}
	if t.LongMin > t.LongMax {
		return fmt.Errorf("long band is empty: %s", t)
	}
	if t.ShortMin > t.LongMin {
		return fmt.Errorf("short band must lie below long band: %s", t)
	}
	return nil
}

// Classify buckets a single duration by magnitude.
func (t Thresholds) Classify(duration int) (symbol.Symbol, bool) {
	if duration < 0 {
		duration = -duration
	}

	switch {
	case t.LongMin <= duration && duration <= t.LongMax:
		return symbol.Long, true
	case t.ShortMin <= duration && duration <= t.ShortMax:
		return symbol.Short, true
	}

	return 0, false
}

// ClassifyError is an out of band duration found in strict mode.
type ClassifyError struct {
	Index    int
	Duration int
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("pulse %d: duration %dus outside all bands", e.Index, e.Duration)
}

// Classifier turns a captured pulse train into a symbol chain.
//
// In lenient mode out of band durations are dropped and counted. In strict
// mode each one is reported and no chain is returned.
type Classifier struct {
	Thresholds
	Strict bool
}

func NewClassifier(t Thresholds, strict bool) Classifier {
	return Classifier{t, strict}
}

// Classification is the outcome of classifying a pulse train.
type Classification struct {
	Chain     symbol.Chain
	Discarded []ClassifyError
}

func (c Classifier) Classify(durations []int) (cls Classification, err error) {
	cls.Chain = make(symbol.Chain, 0, len(durations))

	var result *multierror.Error
	for idx, d := range durations {
		sym, ok := c.Thresholds.Classify(d)
		if ok {
			cls.Chain = append(cls.Chain, sym)
			continue
		}

		cls.Discarded = append(cls.Discarded, ClassifyError{idx, d})
		if c.Strict {
			result = multierror.Append(result, &ClassifyError{idx, d})
		}
	}

	if err = result.ErrorOrNil(); err != nil {
		return Classification{Discarded: cls.Discarded}, err
	}

	return cls, nil
}
