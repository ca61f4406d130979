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

package main

import (
	"encoding/json"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bemasher/oregon21/bitstream"
	"github.com/bemasher/oregon21/csv"
	"github.com/bemasher/oregon21/protocol"
	"github.com/bemasher/oregon21/pulse"
	"github.com/bemasher/oregon21/subghz"
)

var mode = flag.String("mode", "encode", "pipeline to run: encode or decode")

var sensorName = flag.String("sensor", "THGR810", "sensor model to impersonate, see -list")
var sensorID = flag.String("id", "", "4 hex digit sensor identity, overrides -sensor")
var channel = flag.Int("channel", 1, "sensor channel: 1-9")
var temperature = flag.Float64("temp", 22.8, "temperature in degrees celsius: -99.9 to 99.9")
var humidity = flag.Int("humidity", 56, "relative humidity in percent: 0-99")
var outFilename = flag.String("out", "output.sub", "SubGhz RAW file to write")

var shortDuration = flag.Int("short", pulse.DefaultShort, "short pulse duration in microseconds")
var longDuration = flag.Int("long", pulse.DefaultLong, "long pulse duration in microseconds")
var frequency = flag.Uint("frequency", subghz.DefaultFrequency, "carrier frequency written to the file header")
var preset = flag.String("preset", subghz.DefaultPreset, "modulation preset written to the file header")

var inFilename = flag.String("in", "", "SubGhz RAW file to decode")
var strict = flag.Bool("strict", false, "fail on pulses outside both bands instead of discarding them")

var thresholds = pulse.DefaultThresholds()

var catalogFilename = flag.String("sensors", "", "YAML catalog of additional sensor models")
var plotFilename = flag.String("plot", "", "render the pulse train to an image, format from extension: png, svg, pdf")
var listSensors = flag.Bool("list", false, "list known sensor models and exit")

var encoder Encoder
var format = flag.String("format", "plain", "result output format: plain, csv, json, or xml")

var verbose = flag.Bool("v", false, "log intermediate pipeline stages")
var version = flag.Bool("version", false, "display build date and commit hash")

func RegisterFlags() {
	flag.IntVar(&thresholds.ShortMin, "shortmin", thresholds.ShortMin, "shortest duration classified as short")
	flag.IntVar(&thresholds.ShortMax, "shortmax", thresholds.ShortMax, "longest duration classified as short")
	flag.IntVar(&thresholds.LongMin, "longmin", thresholds.LongMin, "shortest duration classified as long, wins over -shortmax")
	flag.IntVar(&thresholds.LongMax, "longmax", thresholds.LongMax, "longest duration classified as long")

	encodeFlags := map[string]bool{
		"sensor":    true,
		"id":        true,
		"channel":   true,
		"temp":      true,
		"humidity":  true,
		"out":       true,
		"short":     true,
		"long":      true,
		"frequency": true,
		"preset":    true,
	}

	decodeFlags := map[string]bool{
		"in":       true,
		"strict":   true,
		"shortmin": true,
		"shortmax": true,
		"longmin":  true,
		"longmax":  true,
	}

	printDefaults := func(validFlags map[string]bool, inclusion bool) {
		flag.CommandLine.VisitAll(func(f *flag.Flag) {
			if validFlags[f.Name] != inclusion {
				return
			}

			format := "  -%s=%s: %s\n"
			fmt.Fprintf(os.Stderr, format, f.Name, f.Value, f.Usage)
		})
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])

		common := make(map[string]bool)
		for name := range encodeFlags {
			common[name] = true
		}
		for name := range decodeFlags {
			common[name] = true
		}
		printDefaults(common, false)

		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "encode specific:")
		printDefaults(encodeFlags, true)

		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "decode specific:")
		printDefaults(decodeFlags, true)
	}
}

func EnvOverride() {
	flag.VisitAll(func(f *flag.Flag) {
		envName := "OREGON21_" + strings.ToUpper(f.Name)
		flagValue := os.Getenv(envName)
		if flagValue != "" {
			if err := flag.Set(f.Name, flagValue); err != nil {
				log.Warnf(
					"Environment variable %q failed to override flag %q with value %q: %q",
					envName, f.Name, flagValue, err,
				)
			} else {
				log.Infof("Environment variable %q overrides flag %q with %q", envName, f.Name, flagValue)
			}
		}
	})
}

func HandleFlags() {
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	*mode = strings.ToLower(*mode)
	switch *mode {
	case "encode", "decode":
	default:
		log.Fatalf("Invalid mode: %q", *mode)
	}

	if *catalogFilename != "" {
		loaded, err := protocol.LoadCatalogFile(*catalogFilename)
		if err != nil {
			log.Fatal("Error loading sensor catalog: ", err)
		}
		log.Infof("Loaded %d sensors from %s", len(loaded), *catalogFilename)
	}

	*format = strings.ToLower(*format)
	switch *format {
	case "plain":
		encoder = PlainEncoder{os.Stdout}
	case "csv":
		encoder = csv.NewEncoder(os.Stdout)
	case "json":
		encoder = json.NewEncoder(os.Stdout)
	case "xml":
		encoder = xml.NewEncoder(os.Stdout)
	default:
		log.Fatalf("Invalid format: %q", *format)
	}
}

// JSON, XML and CSV all implement this interface so we can simplify result
// output formatting.
type Encoder interface {
	Encode(interface{}) error
}

type PlainEncoder struct {
	w io.Writer
}

func (pe PlainEncoder) Encode(msg interface{}) (err error) {
	m, ok := msg.(protocol.LogMessage)
	if !ok {
		_, err = fmt.Fprintln(pe.w, msg)
		return
	}

	switch v := m.Message.(type) {
	case protocol.Transmission:
		fmt.Fprintf(pe.w, "Reading:   %s\n", v.Reading)
		fmt.Fprintf(pe.w, "Frame:     %s\n", v.Hex)
		fmt.Fprintf(pe.w, "Checksum:  %s\n", v.Checksum)
		fmt.Fprintf(pe.w, "Bitstream: %s\n", v.Bits)
		fmt.Fprintf(pe.w, "Symbols:   %s\n", v.Pulses)
		_, err = fmt.Fprintf(pe.w, "Written:   %s (%d pulses)\n", m.File, len(v.Durations))
	case protocol.Result:
		writeNibbleTable(pe.w, v.Nibbles)
		fmt.Fprintf(pe.w, "Pulses:    %d (%d discarded)\n", v.Pulses, v.Discarded)
		fmt.Fprintf(pe.w, "Frame:     %s\n", v.Hex)
		_, err = fmt.Fprintf(pe.w, "Layout:    %s\n", v.Layout)
	default:
		_, err = fmt.Fprintln(pe.w, m)
	}

	return
}

func writeNibbleTable(w io.Writer, nibbles []bitstream.Nibble) {
	fmt.Fprintln(w, "Index | Wire | Logical | Hex")
	fmt.Fprintln(w, "------+------+---------+----")
	for idx, n := range nibbles {
		fmt.Fprintf(w, "%5d | %s |    %s | %s\n", idx, n.Wire, n.Logical, n.Hex)
	}
}
