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
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bemasher/oregon21/frame"
	"github.com/bemasher/oregon21/protocol"
	"github.com/bemasher/oregon21/pulse"
	"github.com/bemasher/oregon21/subghz"
	"github.com/bemasher/oregon21/waveform"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000000",
	})
}

var (
	buildTag   = "dev"     // v#.#.#
	buildDate  = "unknown" // date -u '+%Y-%m-%d'
	commitHash = "unknown" // git rev-parse HEAD
)

func packetConfig() protocol.PacketConfig {
	cfg := protocol.NewPacketConfig()
	cfg.Timing = pulse.Timing{Short: *shortDuration, Long: *longDuration}
	cfg.Thresholds = thresholds
	cfg.Strict = *strict
	return cfg
}

// reading resolves the sensor identity and collects the measured values.
func reading() (r frame.Reading, err error) {
	r.ID = *sensorID
	if r.ID == "" {
		s, err := protocol.LookupSensor(*sensorName)
		if err != nil {
			return r, err
		}
		log.Info("Sensor: ", s)
		r.ID = s.ID
	}

	r.Channel = *channel
	r.Temperature = *temperature
	r.Humidity = *humidity

	return r, nil
}

func Encode() error {
	enc := protocol.NewEncoder(packetConfig(), log.StandardLogger())
	enc.Log()

	r, err := reading()
	if err != nil {
		return err
	}

	tx, err := enc.Encode(r)
	if err != nil {
		return errors.Wrap(err, "encode")
	}

	h := subghz.DefaultHeader()
	h.Frequency = uint32(*frequency)
	h.Preset = *preset
	h.Comment = fmt.Sprintf("generated by oregon21 %s", buildTag)

	if err := subghz.WriteFile(*outFilename, h, tx.Durations); err != nil {
		return err
	}
	log.Info("Wrote: ", *outFilename)

	if *plotFilename != "" {
		if err := waveform.Save(*plotFilename, tx.Hex, tx.Durations); err != nil {
			return errors.Wrap(err, "plot")
		}
		log.Info("Plotted: ", *plotFilename)
	}

	return encoder.Encode(protocol.NewLogMessage(*outFilename, tx))
}

func Decode() error {
	if *inFilename == "" {
		return errors.New("no input file given, use -in")
	}

	dec, err := protocol.NewDecoder(packetConfig(), log.StandardLogger())
	if err != nil {
		return err
	}
	dec.Log()

	durations, err := subghz.ReadFile(*inFilename)
	if errors.Cause(err) == subghz.ErrNoData {
		log.Warnf("%s: %s", *inFilename, err)
		return nil
	}
	if err != nil {
		return err
	}
	log.Debugf("Read %d durations from %s", len(durations), *inFilename)

	if *plotFilename != "" {
		if err := waveform.Save(*plotFilename, *inFilename, durations); err != nil {
			return errors.Wrap(err, "plot")
		}
		log.Info("Plotted: ", *plotFilename)
	}

	res, err := dec.Decode(durations)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	if res.Empty() {
		return nil
	}

	return encoder.Encode(protocol.NewLogMessage(*inFilename, res))
}

func main() {
	RegisterFlags()
	EnvOverride()
	flag.Parse()

	if *version {
		fmt.Println("Build Tag: ", buildTag)
		fmt.Println("Build Date:", buildDate)
		fmt.Println("Commit:    ", commitHash)
		os.Exit(0)
	}

	HandleFlags()

	if *listSensors {
		for _, s := range protocol.Sensors() {
			fmt.Println(s)
		}
		os.Exit(0)
	}

	var err error
	switch *mode {
	case "encode":
		err = Encode()
	case "decode":
		err = Decode()
	}

	if err != nil {
		log.Fatal(err)
	}
}
