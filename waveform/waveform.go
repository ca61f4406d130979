// Package waveform renders pulse trains as step plots.
package waveform

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bemasher/oregon21/gen"
)

const (
	DefaultHeight = 3 * vg.Inch

	// Horizontal space given to each millisecond of signal.
	inchesPerMs = 0.5
	minWidth    = 6 * vg.Inch
	maxWidth    = 200 * vg.Inch
)

type xyconv []gen.Point

func (x xyconv) Len() int {
	return len(x)
}

func (x xyconv) XY(i int) (float64, float64) {
	return x[i].X, x[i].Y
}

// NewPlot builds a step plot of durations.
func NewPlot(title string, durations []int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (us)"
	p.Y.Label.Text = "Carrier"
	p.Y.Min = -0.25
	p.Y.Max = 1.25

	line, err := plotter.NewLine(xyconv(gen.Waveform(durations)))
	if err != nil {
		return nil, errors.Wrap(err, "waveform")
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p, nil
}

// Width scales the plot with the length of the signal.
func Width(durations []int) vg.Length {
	var total int
	for _, d := range durations {
		if d < 0 {
			d = -d
		}
		total += d
	}

	w := vg.Length(float64(total)/1000*inchesPerMs) * vg.Inch
	if w < minWidth {
		return minWidth
	}
	if w > maxWidth {
		return maxWidth
	}
	return w
}

func combineErrors(errs ...error) (err error) {
	for _, e := range errs {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

// Write renders p to output in the given format: png, svg, pdf, ...
func Write(p *plot.Plot, width, height vg.Length, output io.Writer, format string) error {
	w, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = w.WriteTo(output)
	return err
}

// Save renders durations to path, the format taken from its extension.
func Save(path, title string, durations []int) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "png"
	}

	p, err := NewPlot(title, durations)
	if err != nil {
		return err
	}

	output, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "waveform")
	}
	defer func() {
		err = combineErrors(err, output.Close())
	}()

	return Write(p, Width(durations), DefaultHeight, output, format)
}
