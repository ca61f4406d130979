package gen

import (
	"fmt"
	"math/rand"

	"github.com/bemasher/oregon21/frame"
)

// NewRandReading returns a reading with every field within range. Identity
// is drawn from ids when given, otherwise random.
func NewRandReading(r *rand.Rand, ids ...string) (reading frame.Reading) {
	if len(ids) > 0 {
		reading.ID = ids[r.Intn(len(ids))]
	} else {
		reading.ID = fmt.Sprintf("%04X", r.Intn(1<<16))
	}

	reading.Channel = r.Intn(9) + 1
	reading.Temperature = float64(r.Intn(1999)-999) / 10
	reading.Humidity = r.Intn(100)

	return
}

// Point is one corner of a step trace.
type Point struct {
	X, Y float64
}

// Waveform converts signed durations into the corners of a step trace: level
// 1 while the carrier is on, 0 while off, time in microseconds.
func Waveform(durations []int) []Point {
	points := make([]Point, 0, len(durations)<<1)

	var t float64
	for _, d := range durations {
		level := 1.0
		if d < 0 {
			level = 0
			d = -d
		}

		points = append(points, Point{t, level})
		t += float64(d)
		points = append(points, Point{t, level})
	}

	return points
}
