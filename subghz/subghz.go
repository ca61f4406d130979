// Package subghz reads and writes Flipper Zero SubGhz RAW capture files.
package subghz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	Filetype   = "Flipper SubGhz RAW File"
	Version    = 1
	DataMarker = "RAW_Data:"

	DefaultFrequency = 433920000
	DefaultPreset    = "FuriHalSubGhzPresetOok650Async"
	DefaultProtocol  = "RAW"

	// Flipper firmware splits long captures over several data lines.
	DefaultLineLength = 512
)

// ErrNoData is returned when a file has no RAW_Data line.
var ErrNoData = errors.New("subghz: no " + DataMarker + " line found")

// Header describes the fixed fields written ahead of the pulse data.
type Header struct {
	Frequency  uint32
	Preset     string
	Protocol   string
	Comment    string
	LineLength int
}

func DefaultHeader() Header {
	return Header{
		Frequency:  DefaultFrequency,
		Preset:     DefaultPreset,
		Protocol:   DefaultProtocol,
		LineLength: DefaultLineLength,
	}
}

// Write renders a complete RAW file.
func Write(w io.Writer, h Header, durations []int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Filetype: %s\n", Filetype)
	fmt.Fprintf(bw, "Version: %d\n", Version)
	if h.Comment != "" {
		fmt.Fprintf(bw, "# %s\n", h.Comment)
	}
	fmt.Fprintf(bw, "Frequency: %d\n", h.Frequency)
	fmt.Fprintf(bw, "Preset: %s\n", h.Preset)
	fmt.Fprintf(bw, "Protocol: %s\n", h.Protocol)

	lineLength := h.LineLength
	if lineLength <= 0 {
		lineLength = len(durations)
	}

	for start := 0; start < len(durations); start += lineLength {
		end := start + lineLength
		if end > len(durations) {
			end = len(durations)
		}

		values := make([]string, 0, end-start)
		for _, d := range durations[start:end] {
			values = append(values, strconv.Itoa(d))
		}
		fmt.Fprintf(bw, "%s %s\n", DataMarker, strings.Join(values, " "))
	}

	return errors.Wrap(bw.Flush(), "subghz: write")
}

// WriteFile creates filename and writes a RAW file to it.
func WriteFile(filename string, h Header, durations []int) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "subghz: create")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "subghz: close")
		}
	}()

	return Write(f, h, durations)
}

// Read collects the durations from every RAW_Data line in order.
func Read(r io.Reader) (durations []int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	found := false
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, DataMarker) {
			continue
		}
		found = true

		for _, field := range strings.Fields(line[len(DataMarker):]) {
			d, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "subghz: line %d", lineNum)
			}
			durations = append(durations, d)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "subghz: read")
	}

	if !found {
		return nil, ErrNoData
	}

	return durations, nil
}

// ReadFile opens filename and reads its durations.
func ReadFile(filename string) ([]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "subghz: open")
	}
	defer f.Close()

	return Read(f)
}
