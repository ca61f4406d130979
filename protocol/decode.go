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

package protocol

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bemasher/oregon21/bitstream"
	"github.com/bemasher/oregon21/frame"
	"github.com/bemasher/oregon21/pulse"
	"github.com/bemasher/oregon21/symbol"
)

// PacketConfig specifies packet-specific radio configuration.
type PacketConfig struct {
	Protocol string
	Sync     string

	PacketNibbles, PacketBits int

	Timing     pulse.Timing
	Thresholds pulse.Thresholds
	Strict     bool

	Reference bitstream.Bit
}

func NewPacketConfig() (cfg PacketConfig) {
	cfg.Protocol = "Oregon Scientific v2.1"
	cfg.Sync = frame.Sync
	cfg.PacketNibbles = frame.Nibbles
	cfg.PacketBits = frame.Nibbles << 2
	cfg.Timing = pulse.DefaultTiming()
	cfg.Thresholds = pulse.DefaultThresholds()
	cfg.Reference = symbol.Reference

	return
}

func logger(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

// Decoder recovers hex frames from captured pulse trains.
type Decoder struct {
	Cfg PacketConfig

	classifier pulse.Classifier
	log        logrus.FieldLogger
}

func NewDecoder(cfg PacketConfig, log logrus.FieldLogger) (Decoder, error) {
	if err := cfg.Thresholds.Validate(); err != nil {
		return Decoder{}, errors.Wrap(err, "decoder")
	}

	return Decoder{
		Cfg:        cfg,
		classifier: pulse.NewClassifier(cfg.Thresholds, cfg.Strict),
		log:        logger(log),
	}, nil
}

func (d Decoder) Log() {
	d.log.Info("Protocol: ", d.Cfg.Protocol)
	d.log.Info("Sync: ", d.Cfg.Sync)
	d.log.Info("PacketNibbles: ", d.Cfg.PacketNibbles)
	d.log.Info("PacketBits: ", d.Cfg.PacketBits)
	d.log.Info("Thresholds: ", d.Cfg.Thresholds)
	d.log.Info("Strict: ", d.Cfg.Strict)
}

// Result holds every intermediate stage of a decode for inspection.
type Result struct {
	Pulses    int `xml:",attr"`
	Discarded int `xml:",attr"`

	Symbols string
	Reduced string
	Bits    string

	Nibbles []bitstream.Nibble `xml:"Nibble"`
	Hex     string             `xml:",attr"`
	Layout  frame.Layout
}

func (r Result) Empty() bool {
	return r.Hex == ""
}

func (r Result) String() string {
	return fmt.Sprintf("{Pulses:%d Discarded:%d Hex:%s Layout:%s}", r.Pulses, r.Discarded, r.Hex, r.Layout)
}

func (r Result) Record() (rec []string) {
	rec = append(rec, strconv.Itoa(r.Pulses))
	rec = append(rec, strconv.Itoa(r.Discarded))
	rec = append(rec, r.Layout.Record()...)
	return
}

// Decode classifies, reduces and differentially decodes the durations and
// assembles the recovered nibbles. An empty capture yields an empty result.
func (d Decoder) Decode(durations []int) (res Result, err error) {
	res.Pulses = len(durations)

	cls, err := d.classifier.Classify(durations)
	res.Discarded = len(cls.Discarded)
	for _, c := range cls.Discarded {
		d.log.WithFields(logrus.Fields{"index": c.Index, "duration": c.Duration}).Debug("discarded pulse")
	}
	if err != nil {
		return res, errors.Wrap(err, "classify")
	}

	if len(cls.Chain) == 0 {
		d.log.Warn("no classifiable pulses")
		return res, nil
	}

	res.Symbols = cls.Chain.String()
	d.log.Debug("Symbols: ", res.Symbols)

	reduced := symbol.Reduce(cls.Chain)
	res.Reduced = reduced.String()
	d.log.Debug("Reduced: ", res.Reduced)

	bits := symbol.Decode(reduced, d.Cfg.Reference)
	res.Bits = bits.String()
	d.log.Debug("Bitstream: ", res.Bits)

	res.Nibbles, err = bitstream.Nibbles(bits)
	if err != nil {
		return res, errors.Wrap(err, "nibbles")
	}

	for _, n := range res.Nibbles {
		res.Hex += n.Hex
	}
	res.Layout = frame.Inspect(res.Hex)

	if len(res.Hex) != d.Cfg.PacketNibbles {
		d.log.Warnf("recovered %d nibbles, expected %d", len(res.Hex), d.Cfg.PacketNibbles)
	}

	return res, nil
}
