// Package bitstream converts between hex frames and wire-order bits. The
// sensor transmits every nibble least significant bit first.
package bitstream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Bit = uint8

// Bits is a sequence of 0/1 values.
type Bits []Bit

func (b Bits) String() string {
	var sb strings.Builder
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

// LengthError is returned when a bitstream does not divide into nibbles.
type LengthError struct {
	Bits int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("malformed bitstream: %d bits is not a multiple of 4 (%d trailing)", e.Bits, e.Bits%4)
}

// ReverseNibble reverses the order of the low four bits of n.
func ReverseNibble(n uint8) uint8 {
	return (n&0x1)<<3 | (n&0x2)<<1 | (n&0x4)>>1 | (n&0x8)>>3
}

// FromHex expands each hex digit into its four bits, least significant
// first.
func FromHex(hex string) (bits Bits, err error) {
	bits = make(Bits, 0, len(hex)<<2)

	for idx, r := range hex {
		n, err := strconv.ParseUint(string(r), 16, 4)
		if err != nil {
			return nil, errors.Errorf("invalid hex digit %q at offset %d", r, idx)
		}

		rev := ReverseNibble(uint8(n))
		for bit := 3; bit >= 0; bit-- {
			bits = append(bits, (rev>>uint(bit))&0x01)
		}
	}

	return bits, nil
}

// Nibble holds one group of four received bits and its value.
type Nibble struct {
	Wire    string `xml:",attr"`
	Logical string `xml:",attr"`
	Hex     string `xml:",attr"`
}

// Nibbles drops the leading reference bit and groups the rest into nibbles.
func Nibbles(bits Bits) ([]Nibble, error) {
	if len(bits) == 0 {
		return nil, nil
	}

	data := bits[1:]
	if len(data)%4 != 0 {
		return nil, &LengthError{len(data)}
	}

	nibbles := make([]Nibble, 0, len(data)>>2)
	for idx := 0; idx < len(data); idx += 4 {
		var n uint8
		for _, bit := range data[idx : idx+4] {
			n = n<<1 | bit&0x01
		}

		rev := ReverseNibble(n)
		nibbles = append(nibbles, Nibble{
			Wire:    fmt.Sprintf("%04b", n),
			Logical: fmt.Sprintf("%04b", rev),
			Hex:     fmt.Sprintf("%X", rev),
		})
	}

	return nibbles, nil
}

// ToHex is the inverse of FromHex for a bitstream carrying a leading
// reference bit.
func ToHex(bits Bits) (string, error) {
	nibbles, err := Nibbles(bits)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range nibbles {
		sb.WriteString(n.Hex)
	}
	return sb.String(), nil
}
