// OREGON21 - An encoder and decoder for Oregon Scientific v2.1 sensor frames.
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package frame builds and inspects Oregon Scientific v2.1 sensor frames.
package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bemasher/oregon21/crc"
)

const (
	Sync        = "FFFFFFA"
	RollingCode = "97"
	Constant    = "4"
	Terminator  = "9A"

	// Sync, id, channel, rolling code, sign, temperature, humidity,
	// constant, checksum and terminator.
	Nibbles = 7 + 4 + 1 + 2 + 1 + 4 + 2 + 1 + 2 + 2
)

// A Reading is everything a sensor reports in one frame.
type Reading struct {
	ID          string  `xml:",attr"`
	Channel     int     `xml:",attr"`
	Temperature float64 `xml:",attr"`
	Humidity    int     `xml:",attr"`
}

func (r Reading) String() string {
	return fmt.Sprintf("{ID:%s Channel:%d Temperature:%0.1f Humidity:%d}",
		r.ID, r.Channel, r.Temperature, r.Humidity,
	)
}

// Validate checks every field without building anything.
func (r Reading) Validate() error {
	if err := ValidateID(r.ID); err != nil {
		return err
	}
	if r.Channel < 1 || r.Channel > 9 {
		return &RangeError{"channel", r.Channel, "must be within 1-9"}
	}
	if _, err := EncodeTemperature(r.Temperature); err != nil {
		return err
	}
	if _, err := EncodeHumidity(r.Humidity); err != nil {
		return err
	}
	return nil
}

// ValidateID checks for a four digit hex sensor identity.
func ValidateID(id string) error {
	if len(id) != 4 {
		return &RangeError{"id", id, "must be 4 hex digits"}
	}
	if _, err := strconv.ParseUint(id, 16, 16); err != nil {
		return &RangeError{"id", id, "must be 4 hex digits"}
	}
	return nil
}

// Frame is an assembled frame and the parts it was built from.
type Frame struct {
	Hex      string
	Body     string
	Checksum string
	Swapped  string
}

func (f Frame) String() string {
	return f.Hex
}

// Assemble validates the reading and builds the complete hex frame. No
// frame is returned unless every field is in range.
func Assemble(r Reading) (f Frame, err error) {
	r.ID = strings.ToUpper(r.ID)
	if err = r.Validate(); err != nil {
		return Frame{}, err
	}

	temp, _ := EncodeTemperature(r.Temperature)
	humidity, _ := EncodeHumidity(r.Humidity)

	f.Body = r.ID +
		strconv.Itoa(r.Channel) +
		RollingCode +
		signNibble(r.Temperature) +
		temp +
		humidity +
		Constant

	f.Checksum, err = crc.Checksum(f.Body)
	if err != nil {
		return Frame{}, errors.Wrap(err, "checksum")
	}
	f.Swapped = crc.Swap(f.Checksum)

	f.Hex = Sync + f.Body + f.Swapped + Terminator

	return f, nil
}
