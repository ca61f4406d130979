package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bemasher/oregon21/bitstream"
	"github.com/bemasher/oregon21/frame"
	"github.com/bemasher/oregon21/symbol"
)

// Encoder synthesizes pulse trains from sensor readings.
type Encoder struct {
	Cfg PacketConfig

	log logrus.FieldLogger
}

func NewEncoder(cfg PacketConfig, log logrus.FieldLogger) Encoder {
	return Encoder{cfg, logger(log)}
}

func (e Encoder) Log() {
	e.log.Info("Protocol: ", e.Cfg.Protocol)
	e.log.Info("Sync: ", e.Cfg.Sync)
	e.log.Info("Timing: ", e.Cfg.Timing)
}

// Transmission holds a reading and every stage of its encoding.
type Transmission struct {
	frame.Reading

	Hex      string `xml:",attr"`
	Checksum string `xml:",attr"`
	Bits     string
	Symbols  string
	Pulses   string

	Durations []int `xml:"-"`
}

func (t Transmission) String() string {
	return fmt.Sprintf("{Reading:%s Hex:%s Checksum:%s Pulses:%d}",
		t.Reading, t.Hex, t.Checksum, len(t.Durations),
	)
}

func (t Transmission) Record() (r []string) {
	r = append(r, t.ID)
	r = append(r, strconv.Itoa(t.Channel))
	r = append(r, strconv.FormatFloat(t.Temperature, 'f', 1, 64))
	r = append(r, strconv.Itoa(t.Humidity))
	r = append(r, t.Hex)
	r = append(r, t.Checksum)
	r = append(r, strconv.Itoa(len(t.Durations)))
	return
}

// Encode assembles the frame for r and renders it as signed durations.
func (e Encoder) Encode(r frame.Reading) (t Transmission, err error) {
	f, err := frame.Assemble(r)
	if err != nil {
		return Transmission{}, err
	}

	t.Reading = r
	t.ID = strings.ToUpper(r.ID)
	t.Hex = f.Hex
	t.Checksum = f.Checksum
	e.log.Debug("Frame: ", t.Hex)

	bits, err := bitstream.FromHex(f.Hex)
	if err != nil {
		return Transmission{}, errors.Wrap(err, "bitstream")
	}
	t.Bits = bits.String()
	e.log.Debug("Bitstream: ", t.Bits)

	chain, err := symbol.Encode(bits)
	if err != nil {
		return Transmission{}, errors.Wrap(err, "symbols")
	}
	t.Symbols = chain.String()

	pulses := symbol.Expand(chain)
	t.Pulses = pulses.String()
	e.log.Debug("Pulses: ", t.Pulses)

	t.Durations = e.Cfg.Timing.Encode(pulses)

	return t, nil
}
