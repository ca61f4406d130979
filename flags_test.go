package main

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bemasher/oregon21/frame"
	"github.com/bemasher/oregon21/protocol"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

func TestPlainEncoderTransmission(t *testing.T) {
	enc := protocol.NewEncoder(protocol.NewPacketConfig(), quietLogger())
	tx, err := enc.Encode(frame.Reading{ID: "F824", Channel: 1, Temperature: 22.8, Humidity: 56})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, PlainEncoder{buf}.Encode(protocol.NewLogMessage("output.sub", tx)))

	assert.Contains(t, buf.String(), "Frame:     FFFFFFAF82419708220654949A\n")
	assert.Contains(t, buf.String(), "Checksum:  49\n")
	assert.Contains(t, buf.String(), "Written:   output.sub")
}

func TestPlainEncoderResult(t *testing.T) {
	enc := protocol.NewEncoder(protocol.NewPacketConfig(), quietLogger())
	tx, err := enc.Encode(frame.Reading{ID: "F824", Channel: 1, Temperature: 22.8, Humidity: 56})
	require.NoError(t, err)

	dec, err := protocol.NewDecoder(protocol.NewPacketConfig(), quietLogger())
	require.NoError(t, err)
	res, err := dec.Decode(tx.Durations)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, PlainEncoder{buf}.Encode(protocol.NewLogMessage("output.sub", res)))

	assert.Contains(t, buf.String(), "Index | Wire | Logical | Hex\n")
	assert.Contains(t, buf.String(), "    0 | 1111 |    1111 | F\n")
	assert.Contains(t, buf.String(), "Frame:     FFFFFFAF82419708220654949A\n")
	assert.Contains(t, buf.String(), "Match:true")
}

func TestPlainEncoderOther(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, PlainEncoder{buf}.Encode("hello"))
	assert.Equal(t, "hello\n", buf.String())
}
