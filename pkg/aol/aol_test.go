package aol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Saksham932007/minikv/pkg/resp"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "appendonly.aof")
}

func TestAppendAndReplay(t *testing.T) {
	path := tempPath(t)

	l, err := Open(path, No)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	cmds := []resp.Frame{
		resp.ArrayOfBulkStrings("SET", "a", "1"),
		resp.ArrayOfBulkStrings("SET", "b", "2"),
		resp.ArrayOfBulkStrings("DEL", "a"),
	}
	for _, c := range cmds {
		if err := l.Append(c); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var replayed []resp.Frame
	n, err := Replay(path, func(f resp.Frame) error {
		replayed = append(replayed, f)
		return nil
	})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if n != len(cmds) {
		t.Fatalf("Replay count = %d, want %d", n, len(cmds))
	}
	for i, f := range replayed {
		if string(f.Items[0].Bytes) != string(cmds[i].Items[0].Bytes) {
			t.Errorf("record %d verb = %q, want %q", i, f.Items[0].Bytes, cmds[i].Items[0].Bytes)
		}
	}
}

func TestReplayMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.aof")
	n, err := Replay(path, func(resp.Frame) error { return nil })
	if err != nil || n != 0 {
		t.Fatalf("Replay(missing) = %d, %v; want 0, nil", n, err)
	}
}

func TestReplayTornTailTruncates(t *testing.T) {
	path := tempPath(t)

	l, err := Open(path, No)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	good := resp.ArrayOfBulkStrings("SET", "a", "1")
	if err := l.Append(good); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Simulate a crash mid-append: a truncated second record appended
	// directly to the file, bypassing Log's framing.
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.Write([]byte("*3\r\n$3\r\nSET\r\n$1\r\nb")); err != nil {
		t.Fatalf("Write torn tail: %v", err)
	}
	f.Close()

	stat, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	tornSize := stat.Size()

	var count int
	n, err := Replay(path, func(resp.Frame) error { count++; return nil })
	if err != nil {
		t.Fatalf("Replay with torn tail should not error: %v", err)
	}
	if n != 1 || count != 1 {
		t.Fatalf("Replay applied %d records, want 1 (torn tail skipped)", n)
	}

	stat, err = os.Stat(path)
	if err != nil {
		t.Fatalf("Stat after replay: %v", err)
	}
	if stat.Size() >= tornSize {
		t.Fatalf("file should be truncated: size %d not < %d", stat.Size(), tornSize)
	}
}

func TestReplayMidFileCorruptionIsFatal(t *testing.T) {
	path := tempPath(t)
	// Malformed record (bad type byte) followed by a well-formed one:
	// corruption before the tail must abort, not skip-and-continue.
	if err := os.WriteFile(path, []byte("!bogus\r\n*1\r\n$4\r\nPING\r\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Replay(path, func(resp.Frame) error { return nil })
	if err == nil {
		t.Fatal("Replay over mid-file corruption should return an error")
	}
}

func TestSyncPolicyParsing(t *testing.T) {
	cases := map[string]SyncPolicy{"always": Always, "everysec": EverySecond, "": EverySecond, "no": No}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParsePolicy("bogus"); err == nil {
		t.Fatal("ParsePolicy(bogus) should error")
	}
}
