package waveform

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var durations = []int{544, -544, 1040, -544, 544, -1040}

func TestWidth(t *testing.T) {
	assert.Equal(t, minWidth, Width(durations))
	assert.Equal(t, maxWidth, Width([]int{1e9}))
	assert.Equal(t, 10*72.0, float64(Width([]int{20000})))
}

func TestWriteSVG(t *testing.T) {
	p, err := NewPlot("test", durations)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, Write(p, Width(durations), DefaultHeight, buf, "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestSave(t *testing.T) {
	dir, err := ioutil.TempDir("", "waveform")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "pulses.png")
	require.NoError(t, Save(path, "test", durations))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSaveUnknownFormat(t *testing.T) {
	dir, err := ioutil.TempDir("", "waveform")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	assert.Error(t, Save(filepath.Join(dir, "pulses.bogus"), "test", durations))
}
