package domain

import (
	"fmt"
	"strings"
)

// Protocol frame tags shared by both directions of the wire.
const (
	FrameMsg      = "MSG"
	FrameQuit     = "QUIT"
	FrameRole     = "ROLE"
	FrameTurn     = "TURN"
	FrameInfo     = "INFO"
	FrameShutdown = "SHUTDOWN"

	FrameSep = "|"
)

// Command is a decoded client line. The set of variants is closed:
// anything that does not decode to one of them is a protocol error.
type Command interface {
	isCommand()
}

// MsgCommand carries a single-line chat text from the current sender.
type MsgCommand struct {
	Text string
}

// QuitCommand ends the sending participant's session.
type QuitCommand struct{}

func (MsgCommand) isCommand()  {}
func (QuitCommand) isCommand() {}

// DecodeCommand parses one inbound line into a Command.
// MSG payloads must be non-empty and contain no embedded newline.
func DecodeCommand(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	switch {
	case line == FrameQuit:
		return QuitCommand{}, nil
	case strings.HasPrefix(line, FrameMsg+FrameSep):
		text := strings.TrimPrefix(line, FrameMsg+FrameSep)
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("empty MSG payload")
		}
		if strings.ContainsAny(text, "\n\r") {
			return nil, fmt.Errorf("MSG payload contains newline")
		}
		return MsgCommand{Text: text}, nil
	}
	return nil, fmt.Errorf("unrecognized line %q", line)
}

// EncodeRole builds the ROLE|<dept>|<start> frame sent once at session start.
func EncodeRole(p Participant, starts bool) string {
	flag := "0"
	if starts {
		flag = "1"
	}
	return strings.Join([]string{FrameRole, p.String(), flag}, FrameSep)
}

// EncodeDelivery builds the MSG|<seq>|<sender>|<text> frame for the recipient.
func EncodeDelivery(m Message) string {
	return fmt.Sprintf("%s%s%d%s%s%s%s", FrameMsg, FrameSep, m.Seq, FrameSep, m.Sender, FrameSep, m.Text)
}

// EncodeInfo builds an INFO|<text> notice for a single participant.
func EncodeInfo(text string) string {
	return FrameInfo + FrameSep + text
}
