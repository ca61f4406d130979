package crc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NibbleCRC describes the additive nibble checksum used by Oregon Scientific
// v2.1 sensors. Width is the number of hex digits rendered.
type NibbleCRC struct {
	Name  string
	Width int

	mask uint
}

func NewNibbleCRC(name string, width int) (crc NibbleCRC) {
	crc.Name = name
	crc.Width = width
	crc.mask = 1<<(uint(width)*4) - 1

	return
}

func (crc NibbleCRC) String() string {
	return fmt.Sprintf("{Name:%s Width:%d Mask:0x%X}", crc.Name, crc.Width, crc.mask)
}

// Checksum returns the rendered checksum of a string of hex digits.
func (crc NibbleCRC) Checksum(hex string) (string, error) {
	sum, err := NibbleSum(hex)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*X", crc.Width, sum&crc.mask), nil
}

// NibbleSum adds the numeric value of every hex digit.
func NibbleSum(hex string) (sum uint, err error) {
	for idx, r := range hex {
		n, err := strconv.ParseUint(string(r), 16, 4)
		if err != nil {
			return 0, errors.Errorf("invalid nibble %q at offset %d", r, idx)
		}
		sum += uint(n)
	}
	return
}

var thgr810 = NewNibbleCRC("THGR810", 2)

// Checksum is the two digit, mod 256 nibble sum of hex.
func Checksum(hex string) (string, error) {
	return thgr810.Checksum(strings.ToUpper(hex))
}

// Swap exchanges the two characters of a rendered checksum. The sensor
// transmits the low digit first.
func Swap(checksum string) string {
	if len(checksum) != 2 {
		return checksum
	}
	return checksum[1:] + checksum[:1]
}
