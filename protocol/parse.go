package protocol

import (
	"fmt"
	"time"

	"github.com/bemasher/oregon21/csv"
)

const (
	TimeFormat = "2006-01-02T15:04:05.000"
)

// Message is anything the command prints as a result.
type Message interface {
	csv.Recorder
	MsgType() string
}

func (Transmission) MsgType() string {
	return "Encode"
}

func (Result) MsgType() string {
	return "Decode"
}

// A LogMessage associates a message with a point in time and the file it was
// written to or read from.
type LogMessage struct {
	Time time.Time `xml:",attr"`
	File string    `xml:",attr"`
	Type string    `xml:",attr"`
	Message
}

func NewLogMessage(file string, msg Message) LogMessage {
	return LogMessage{time.Now(), file, msg.MsgType(), msg}
}

func (msg LogMessage) String() string {
	return fmt.Sprintf("{Time:%s File:%s %s:%s}",
		msg.Time.Format(TimeFormat), msg.File, msg.Type, msg.Message,
	)
}

func (msg LogMessage) Record() (r []string) {
	r = append(r, msg.Time.Format(time.RFC3339Nano))
	r = append(r, msg.File)
	r = append(r, msg.Type)
	r = append(r, msg.Message.Record()...)
	return r
}
