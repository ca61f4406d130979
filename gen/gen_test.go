package gen

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRandReading(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < 512; i++ {
		reading := NewRandReading(r)
		if err := reading.Validate(); err != nil {
			t.Fatalf("%s: %+v\n", reading, err)
		}
	}
}

func TestNewRandReadingIDs(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 64; i++ {
		reading := NewRandReading(r, "F824", "1D20")
		assert.Contains(t, []string{"F824", "1D20"}, reading.ID)
	}
}

func TestWaveform(t *testing.T) {
	points := Waveform([]int{544, -1040, 544})

	assert.Equal(t, []Point{
		{0, 1}, {544, 1},
		{544, 0}, {1584, 0},
		{1584, 1}, {2128, 1},
	}, points)
}

func TestWaveformEmpty(t *testing.T) {
	assert.Empty(t, Waveform(nil))
}
