// Package aol implements minikv's append-only durability log: every
// mutating command's original wire Frame is appended here before the
// client sees a reply, and the file is replayed in full at startup
// (spec.md §6). The write-buffer-plus-background-fsync shape is
// grounded on the vnscriptkid WAL reference file; the ticker-with-
// cancel-channel goroutine follows the teacher's heartbeat goroutine
// in internal/ron/server.go (see DESIGN.md).
package aol

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Saksham932007/minikv/pkg/minilog"
	"github.com/Saksham932007/minikv/pkg/resp"
)

// SyncPolicy selects when buffered writes reach disk (spec.md §6).
type SyncPolicy int

const (
	// Always fsyncs after every record, before the reply is released.
	Always SyncPolicy = iota
	// EverySecond buffers to the OS and fsyncs on a 1-second ticker. Default.
	EverySecond
	// No never fsyncs explicitly, relying on the OS to flush eventually.
	No
)

// ParsePolicy parses the MINIKV_AOF_SYNC values (SPEC_FULL.md §3.2).
func ParsePolicy(s string) (SyncPolicy, error) {
	switch s {
	case "always":
		return Always, nil
	case "everysec", "":
		return EverySecond, nil
	case "no":
		return No, nil
	default:
		return 0, fmt.Errorf("aol: unknown sync policy %q", s)
	}
}

func (p SyncPolicy) String() string {
	switch p {
	case Always:
		return "always"
	case No:
		return "no"
	default:
		return "everysec"
	}
}

// Log is the single-writer append-only command log. One Log instance
// is shared across every session; Append serialises through mu the
// same way the vnscriptkid WAL does (spec.md §6's "single writer
// serialising appends").
type Log struct {
	mu     sync.Mutex
	f      *os.File
	w      *bufio.Writer
	policy SyncPolicy

	stop chan struct{}
	done chan struct{}
}

// Open opens (creating if necessary) the log file at path in append
// mode and starts the background fsync ticker when policy is
// EverySecond.
func Open(path string, policy SyncPolicy) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	l := &Log{
		f:      f,
		w:      bufio.NewWriterSize(f, 1<<20),
		policy: policy,
	}
	if policy == EverySecond {
		l.stop = make(chan struct{})
		l.done = make(chan struct{})
		go l.syncLoop()
	}
	return l, nil
}

func (l *Log) syncLoop() {
	defer close(l.done)
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-t.C:
			if err := l.Sync(); err != nil {
				minilog.Error("aol background sync failed", "error", err)
			}
		}
	}
}

// Append writes frame's encoded bytes and, under Always, fsyncs before
// returning — the Session Loop awaits this call before replying
// (spec.md §6's write path).
func (l *Log) Append(frame resp.Frame) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.w.Write(frame.Encode()); err != nil {
		return err
	}
	if l.policy == Always {
		if err := l.w.Flush(); err != nil {
			return err
		}
		return l.f.Sync()
	}
	return l.w.Flush()
}

// Sync flushes the write buffer and fsyncs, regardless of policy. Used
// by the background ticker and by cancellation's final forced flush
// (spec.md §6).
func (l *Log) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.w.Flush(); err != nil {
		return err
	}
	return l.f.Sync()
}

// Policy reports the sync policy this Log was opened with.
func (l *Log) Policy() SyncPolicy { return l.policy }

// Close stops the background ticker (if any), performs a final sync,
// and closes the file.
func (l *Log) Close() error {
	if l.stop != nil {
		close(l.stop)
		<-l.done
	}
	if err := l.Sync(); err != nil {
		_ = l.f.Close()
		return err
	}
	return l.f.Close()
}
