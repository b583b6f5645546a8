package resp

import "errors"

// ErrIncomplete means the buffer does not yet hold a full Frame; it is
// not surfaced to the client (spec.md §7).
var ErrIncomplete = errors.New("resp: incomplete frame")

// ProtocolError wraps a malformed-bytes failure. It is connection-fatal:
// the session that produced it must be torn down (spec.md §7).
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string { return "resp: protocol error: " + e.Msg }

func protoErr(msg string) error { return &ProtocolError{Msg: msg} }

// ErrConnReset marks EOF encountered mid-frame, or any other I/O
// failure while a frame was only partially read (spec.md §7).
var ErrConnReset = errors.New("resp: connection reset")
