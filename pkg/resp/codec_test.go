package resp

import (
	"errors"
	"net"
	"reflect"
	"testing"
)

func sampleFrames() []Frame {
	return []Frame{
		NewSimple("PONG"),
		NewError("ERR unknown command 'FOO'"),
		NewInteger(0),
		NewInteger(-42),
		NewBulkString("hello"),
		NewBulk([]byte{}),
		NullBulk(),
		NullArray(),
		NewArray(nil),
		ArrayOfBulkStrings("SET", "k", "v"),
		NewArray([]Frame{
			NewInteger(1),
			ArrayOfBulkStrings("a", "b"),
			NullBulk(),
		}),
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range sampleFrames() {
		enc := f.Encode()
		got, n, err := Parse(enc)
		if err != nil {
			t.Fatalf("parse(%q): %v", enc, err)
		}
		if n != len(enc) {
			t.Fatalf("parse(%q) consumed %d, want %d", enc, n, len(enc))
		}
		if !reflect.DeepEqual(got, f) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, f)
		}
	}
}

func TestCheckMonotone(t *testing.T) {
	for _, f := range sampleFrames() {
		enc := f.Encode()
		n, err := Check(enc)
		if err != nil {
			t.Fatalf("check(%q): %v", enc, err)
		}
		if n != len(enc) {
			t.Fatalf("check(%q) = %d, want %d", enc, n, len(enc))
		}

		n2, err2 := Check(enc[:n])
		if err2 != nil || n2 != n {
			t.Fatalf("check not monotone for %q: got (%d, %v)", enc, n2, err2)
		}
	}
}

func TestIncompleteNeverCrosses(t *testing.T) {
	f := ArrayOfBulkStrings("SET", "key", "value")
	enc := f.Encode()

	for i := 0; i < len(enc); i++ {
		_, err := Check(enc[:i])
		if err == nil {
			t.Fatalf("check(%q) reported complete early at %d/%d bytes", enc[:i], i, len(enc))
		}
		if !errors.Is(err, ErrIncomplete) {
			t.Fatalf("check(%q) = %v, want ErrIncomplete", enc[:i], err)
		}
	}
}

func TestIncrementalFeedYieldsExactlyOneFrame(t *testing.T) {
	f := ArrayOfBulkStrings("HSET", "user", "name", "Alice")
	enc := f.Encode()

	var buf []byte
	var got *Frame
	for i := 0; i < len(enc); i++ {
		buf = append(buf, enc[i])
		n, err := Check(buf)
		if err == nil {
			frame, consumed, perr := Parse(buf)
			if perr != nil {
				t.Fatalf("parse after complete check: %v", perr)
			}
			if consumed != n {
				t.Fatalf("parse consumed %d, check said %d", consumed, n)
			}
			if got != nil {
				t.Fatal("got more than one frame out of a single encoded frame")
			}
			cp := frame
			got = &cp
		}
	}
	if got == nil {
		t.Fatal("never decoded a complete frame")
	}
	if !reflect.DeepEqual(*got, f) {
		t.Fatalf("got %+v, want %+v", *got, f)
	}
}

func TestProtocolErrors(t *testing.T) {
	cases := []string{
		"$-2\r\n",
		"*-2\r\n",
		"$3\r\nabcXY",
		":notanumber\r\n",
		"!unknown\r\n",
	}
	for _, c := range cases {
		_, err := Check([]byte(c))
		var perr *ProtocolError
		if !errors.As(err, &perr) {
			t.Fatalf("Check(%q) = %v, want *ProtocolError", c, err)
		}
	}
}

func TestConnReadWrite(t *testing.T) {
	client, server := pipeConns(t)
	sc := NewConn(server)
	cc := NewConn(client)

	// net.Pipe is synchronous: a write returns only once the peer has
	// read it, so each write runs in its own goroutine.
	want := ArrayOfBulkStrings("PING")
	werr := make(chan error, 1)
	go func() { werr <- cc.WriteFrame(want) }()
	got, err := sc.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if err := <-werr; err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	reply := NewSimple("PONG")
	go func() { werr <- sc.WriteFrame(reply) }()
	got2, err := cc.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if err := <-werr; err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got2, reply) {
		t.Fatalf("got %+v, want %+v", got2, reply)
	}
}

func TestConnEOFMidFrame(t *testing.T) {
	client, server := pipeConns(t)
	sc := NewConn(server)

	go func() {
		client.Write([]byte("*2\r\n$3\r\nfoo\r\n"))
		client.Close()
	}()

	_, err := sc.ReadFrame()
	if !errors.Is(err, ErrConnReset) {
		t.Fatalf("got %v, want ErrConnReset", err)
	}
}

func TestConnCleanEOF(t *testing.T) {
	client, server := pipeConns(t)
	sc := NewConn(server)

	client.Close()

	_, err := sc.ReadFrame()
	if err == nil {
		t.Fatal("expected EOF")
	}
}

func pipeConns(t *testing.T) (clientSide, serverSide net.Conn) {
	t.Helper()
	return net.Pipe()
}
