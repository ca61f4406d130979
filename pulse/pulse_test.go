package pulse

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bemasher/oregon21/symbol"
)

func TestEncode(t *testing.T) {
	chain, err := symbol.ParseChain("SSLSSL")
	require.NoError(t, err)

	assert.Equal(t, []int{544, -544, 1040, -544, 544, -1040}, Encode(chain))
}

func TestEncodeTiming(t *testing.T) {
	chain, err := symbol.ParseChain("LS")
	require.NoError(t, err)

	assert.Equal(t, []int{1000, -500}, Timing{Short: 500, Long: 1000}.Encode(chain))
}

func TestClassifyBoundaries(t *testing.T) {
	th := DefaultThresholds()

	for _, tc := range []struct {
		duration int
		sym      symbol.Symbol
		ok       bool
	}{
		{199, 0, false},
		{200, symbol.Short, true},
		{544, symbol.Short, true},
		{849, symbol.Short, true},
		{850, symbol.Long, true},
		{1040, symbol.Long, true},
		{1400, symbol.Long, true},
		{1401, 0, false},
		{-200, symbol.Short, true},
		{-850, symbol.Long, true},
		{-1400, symbol.Long, true},
		{-1401, 0, false},
		{0, 0, false},
	} {
		sym, ok := th.Classify(tc.duration)
		assert.Equal(t, tc.ok, ok, "%d", tc.duration)
		assert.Equal(t, tc.sym, sym, "%d", tc.duration)
	}
}

func TestClassifierLenient(t *testing.T) {
	c := NewClassifier(DefaultThresholds(), false)

	cls, err := c.Classify([]int{544, -544, 50, 1040, -3000, -544})
	require.NoError(t, err)

	assert.Equal(t, "SSLS", cls.Chain.String())
	assert.Equal(t, []ClassifyError{{2, 50}, {4, -3000}}, cls.Discarded)
}

func TestClassifierStrict(t *testing.T) {
	c := NewClassifier(DefaultThresholds(), true)

	cls, err := c.Classify([]int{544, -544, 50, 1040, -3000, -544})
	require.Error(t, err)
	assert.Nil(t, cls.Chain)
	assert.Len(t, cls.Discarded, 2)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	assert.Equal(t, &ClassifyError{2, 50}, merr.Errors[0])
	assert.Equal(t, &ClassifyError{4, -3000}, merr.Errors[1])
}

func TestClassifierStrictClean(t *testing.T) {
	c := NewClassifier(DefaultThresholds(), true)

	cls, err := c.Classify([]int{544, -1040})
	require.NoError(t, err)
	assert.Equal(t, "SL", cls.Chain.String())
	assert.Empty(t, cls.Discarded)
}

func TestClassifyConfigured(t *testing.T) {
	c := NewClassifier(Thresholds{ShortMin: 100, ShortMax: 300, LongMin: 301, LongMax: 600}, false)

	cls, err := c.Classify([]int{100, 300, 301, 600, 601, 99})
	require.NoError(t, err)
	assert.Equal(t, "SSLL", cls.Chain.String())
}

func TestThresholdsValidate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())
	assert.Error(t, Thresholds{ShortMin: 900, ShortMax: 100, LongMin: 850, LongMax: 1400}.Validate())
	assert.Error(t, Thresholds{ShortMin: 200, ShortMax: 850, LongMin: 1400, LongMax: 850}.Validate())
	assert.Error(t, Thresholds{ShortMin: 900, ShortMax: 950, LongMin: 850, LongMax: 1400}.Validate())
}

// Every encoded pulse must classify back to the symbol it came from.
func TestEncodeClassify(t *testing.T) {
	chain, err := symbol.ParseChain("SSLLSSLSSL")
	require.NoError(t, err)

	cls, err := NewClassifier(DefaultThresholds(), true).Classify(Encode(chain))
	require.NoError(t, err)
	assert.Equal(t, chain.String(), cls.Chain.String())
}
