package aol

import (
	"errors"
	"fmt"
	"os"

	"github.com/Saksham932007/minikv/pkg/resp"
)

// Replay decodes every Frame in the log file at path, in order, and
// calls apply for each. A torn tail — an incomplete trailing record
// left by a crash mid-append — is truncated off and reported via n
// without error; a malformed record before the tail is unrecoverable
// and returned as an error, per spec.md §6's replay rule.
//
// If the file does not exist, Replay treats it as empty and returns
// (0, nil): a fresh server has nothing to replay.
func Replay(path string, apply func(resp.Frame) error) (n int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	offset := 0
	for offset < len(data) {
		frame, consumed, err := resp.Parse(data[offset:])
		if err != nil {
			if errors.Is(err, resp.ErrIncomplete) {
				return n, truncate(path, offset)
			}
			return n, fmt.Errorf("aol: corrupt record at offset %d: %w", offset, err)
		}
		if err := apply(frame); err != nil {
			return n, fmt.Errorf("aol: replay apply failed at offset %d: %w", offset, err)
		}
		offset += consumed
		n++
	}
	return n, nil
}

// truncate drops a torn tail starting at goodOffset, the boundary of
// the last fully-parsed record (spec.md §8's "valid prefix-parseable
// sequence" invariant).
func truncate(path string, goodOffset int) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Truncate(int64(goodOffset))
}
