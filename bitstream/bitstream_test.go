package bitstream

import (
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestReverseNibbleInvolution(t *testing.T) {
	for n := uint8(0); n < 16; n++ {
		assert.Equal(t, n, ReverseNibble(ReverseNibble(n)), "%X", n)
	}

	assert.Equal(t, uint8(0x8), ReverseNibble(0x1))
	assert.Equal(t, uint8(0x5), ReverseNibble(0xA))
	assert.Equal(t, uint8(0xF), ReverseNibble(0xF))
	assert.Equal(t, uint8(0xC), ReverseNibble(0x3))
}

func TestFromHex(t *testing.T) {
	bits, err := FromHex("1A")
	require.NoError(t, err)
	assert.Equal(t, "10000101", bits.String())

	bits, err = FromHex("FFFFFFA")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("1111", 6)+"0101", bits.String())

	_, err = FromHex("F8G")
	assert.Error(t, err)
}

func TestToHexDropsReference(t *testing.T) {
	bits, err := FromHex("F82419708220654949A")
	require.NoError(t, err)

	hex, err := ToHex(append(Bits{1}, bits...))
	require.NoError(t, err)
	assert.Equal(t, "F82419708220654949A", hex)
}

func TestToHexMalformed(t *testing.T) {
	bits, err := FromHex("FA")
	require.NoError(t, err)

	// Reference bit plus 8 data bits plus 2 stray bits.
	_, err = ToHex(append(append(Bits{1}, bits...), 1, 0))

	var lengthErr *LengthError
	require.True(t, xerrors.As(err, &lengthErr))
	assert.Equal(t, 10, lengthErr.Bits)
}

func TestToHexEmpty(t *testing.T) {
	hex, err := ToHex(nil)
	require.NoError(t, err)
	assert.Empty(t, hex)

	hex, err = ToHex(Bits{1})
	require.NoError(t, err)
	assert.Empty(t, hex)
}

func TestNibbles(t *testing.T) {
	nibbles, err := Nibbles(Bits{1, 0, 1, 0, 1, 1, 0, 0, 0})
	require.NoError(t, err)
	require.Len(t, nibbles, 2)

	assert.Equal(t, Nibble{Wire: "0101", Logical: "1010", Hex: "A"}, nibbles[0])
	assert.Equal(t, Nibble{Wire: "1000", Logical: "0001", Hex: "1"}, nibbles[1])
}

func TestRoundTrip(t *testing.T) {
	const digits = "0123456789ABCDEF"

	err := quick.Check(func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		buf := make([]byte, r.Intn(64))
		for idx := range buf {
			buf[idx] = digits[r.Intn(len(digits))]
		}

		bits, err := FromHex(string(buf))
		if err != nil || len(bits) != len(buf)*4 {
			return false
		}

		hex, err := ToHex(append(Bits{1}, bits...))
		return err == nil && hex == string(buf)
	}, nil)

	if err != nil {
		t.Fatal("Error testing round trip:", err)
	}
}
