package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bemasher/oregon21/crc"
)

// Layout splits a recovered frame into its fields. The checksum is
// recomputed for display only, it does not gate anything.
type Layout struct {
	Hex string `xml:",attr"`

	Sync        string  `xml:",attr,omitempty" json:",omitempty"`
	ID          string  `xml:",attr,omitempty" json:",omitempty"`
	Channel     string  `xml:",attr,omitempty" json:",omitempty"`
	RollingCode string  `xml:",attr,omitempty" json:",omitempty"`
	Sign        string  `xml:",attr,omitempty" json:",omitempty"`
	Temperature float64 `xml:",attr"`
	Humidity    int     `xml:",attr"`
	Constant    string  `xml:",attr,omitempty" json:",omitempty"`
	Checksum    string  `xml:",attr,omitempty" json:",omitempty"`
	Terminator  string  `xml:",attr,omitempty" json:",omitempty"`

	Computed      string `xml:",attr,omitempty" json:",omitempty"`
	ChecksumMatch bool   `xml:",attr"`

	// Complete is false when the hex does not have the length of a frame,
	// only Hex is populated then.
	Complete bool `xml:",attr"`
}

// Inspect splits hex along the frame layout.
func Inspect(hex string) (l Layout) {
	l.Hex = strings.ToUpper(hex)
	if len(l.Hex) != Nibbles {
		return
	}

	h := l.Hex
	l.Sync = h[0:7]
	l.ID = h[7:11]
	l.Channel = h[11:12]
	l.RollingCode = h[12:14]
	l.Sign = h[14:15]
	temp := h[15:19]
	humidity := h[19:21]
	l.Constant = h[21:22]
	l.Checksum = h[22:24]
	l.Terminator = h[24:26]

	if tenths, err := strconv.Atoi(reverse(temp[:3])); err == nil {
		l.Temperature = float64(tenths) / 10
		if temp[3] == '1' {
			l.Temperature = -l.Temperature
		}
	}
	l.Humidity, _ = strconv.Atoi(reverse(humidity))

	if sum, err := crc.Checksum(h[7:22]); err == nil {
		l.Computed = sum
		l.ChecksumMatch = crc.Swap(sum) == l.Checksum
	}

	l.Complete = true
	return
}

func (l Layout) String() string {
	if !l.Complete {
		return fmt.Sprintf("{Hex:%s}", l.Hex)
	}
	return fmt.Sprintf("{Sync:%s ID:%s Channel:%s Rolling:%s Sign:%s Temperature:%0.1f Humidity:%d Constant:%s Checksum:%s Computed:%s Match:%t Terminator:%s}",
		l.Sync, l.ID, l.Channel, l.RollingCode, l.Sign, l.Temperature, l.Humidity,
		l.Constant, l.Checksum, crc.Swap(l.Computed), l.ChecksumMatch, l.Terminator,
	)
}

func (l Layout) Record() (r []string) {
	r = append(r, l.Hex)
	r = append(r, l.ID)
	r = append(r, l.Channel)
	r = append(r, strconv.FormatFloat(l.Temperature, 'f', 1, 64))
	r = append(r, strconv.Itoa(l.Humidity))
	r = append(r, l.Checksum)
	r = append(r, strconv.FormatBool(l.ChecksumMatch))
	return
}
