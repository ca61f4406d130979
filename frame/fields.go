package frame

import (
	"fmt"
	"math"
)

// RangeError reports a reading that cannot be represented in a frame.
type RangeError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range (%v): %s", e.Field, e.Value, e.Reason)
}

// EncodeTemperature returns the three tenths-of-a-degree digits, least
// significant first, followed by the sign nibble.
func EncodeTemperature(temp float64) (string, error) {
	if math.IsNaN(temp) || math.IsInf(temp, 0) {
		return "", &RangeError{"temperature", temp, "not a finite number"}
	}

	tenths := math.Round(math.Abs(temp) * 10)
	if tenths > 999 {
		return "", &RangeError{"temperature", temp, "magnitude must be below 100.0"}
	}

	digits := reverse(fmt.Sprintf("%03d", int(tenths)))
	return digits + signNibble(temp), nil
}

// EncodeHumidity returns the two humidity digits, least significant first.
func EncodeHumidity(humidity int) (string, error) {
	if humidity < 0 || humidity > 99 {
		return "", &RangeError{"humidity", humidity, "must be within 0-99"}
	}
	return reverse(fmt.Sprintf("%02d", humidity)), nil
}

func signNibble(temp float64) string {
	if temp >= 0 {
		return "0"
	}
	return "1"
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
