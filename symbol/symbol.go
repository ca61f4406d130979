// Package symbol implements the differential short/long symbol coding
// carried by the pulse train.
//
// Consecutive equal bits produce a short symbol, differing bits a long one.
// On air a short symbol is two half-period pulses, so Expand doubles every
// short symbol and Reduce collapses them again.
package symbol

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/bemasher/oregon21/bitstream"
)

type Symbol byte

const (
	Short Symbol = 'S'
	Long  Symbol = 'L'
)

// Reference is the bit the decoder assumes precedes the first symbol.
const Reference bitstream.Bit = 1

var ErrEmpty = errors.New("symbol: empty bitstream")

type Chain []Symbol

func (c Chain) String() string {
	return string(c)
}

// ParseChain reads a string of S and L characters.
func ParseChain(s string) (Chain, error) {
	c := make(Chain, len(s))
	for idx := range s {
		switch sym := Symbol(s[idx]); sym {
		case Short, Long:
			c[idx] = sym
		default:
			return nil, fmt.Errorf("invalid symbol %q at offset %d", s[idx], idx)
		}
	}
	return c, nil
}

// DifferentialEncoder emits one symbol per bit. The first bit only seeds
// the state and always yields a short symbol.
type DifferentialEncoder struct {
	prev    bitstream.Bit
	started bool
}

func (e *DifferentialEncoder) Next(bit bitstream.Bit) (sym Symbol) {
	switch {
	case !e.started:
		e.started = true
		sym = Short
	case bit == e.prev:
		sym = Short
	default:
		sym = Long
	}
	e.prev = bit
	return
}

// Encode returns one symbol for each bit.
func Encode(bits bitstream.Bits) (Chain, error) {
	if len(bits) == 0 {
		return nil, ErrEmpty
	}

	var enc DifferentialEncoder
	chain := make(Chain, len(bits))
	for idx, bit := range bits {
		chain[idx] = enc.Next(bit)
	}

	return chain, nil
}

// DifferentialDecoder tracks the previous bit while undoing Encode.
type DifferentialDecoder struct {
	prev bitstream.Bit
}

func NewDifferentialDecoder(ref bitstream.Bit) DifferentialDecoder {
	return DifferentialDecoder{prev: ref}
}

func (d *DifferentialDecoder) Next(sym Symbol) bitstream.Bit {
	if sym == Long {
		d.prev ^= 1
	}
	return d.prev
}

// Decode returns ref followed by one bit per symbol.
func Decode(chain Chain, ref bitstream.Bit) bitstream.Bits {
	dec := NewDifferentialDecoder(ref)

	bits := make(bitstream.Bits, 1, len(chain)+1)
	bits[0] = ref
	for _, sym := range chain {
		bits = append(bits, dec.Next(sym))
	}

	return bits
}

// Expand replaces every short symbol with two short pulses.
func Expand(chain Chain) Chain {
	expanded := make(Chain, 0, len(chain)<<1)
	for _, sym := range chain {
		if sym == Short {
			expanded = append(expanded, Short, Short)
		} else {
			expanded = append(expanded, sym)
		}
	}
	return expanded
}

// Reduce collapses each pair of short pulses back into one short symbol. A
// short pulse without a partner is kept as is.
func Reduce(chain Chain) Chain {
	reduced := make(Chain, 0, len(chain))
	for idx := 0; idx < len(chain); {
		if chain[idx] == Short && idx+1 < len(chain) && chain[idx+1] == Short {
			reduced = append(reduced, Short)
			idx += 2
			continue
		}
		reduced = append(reduced, chain[idx])
		idx++
	}
	return reduced
}
