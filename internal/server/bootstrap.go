package server

import (
	"fmt"

	"github.com/Saksham932007/minikv/pkg/aol"
	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/command"
	"github.com/Saksham932007/minikv/pkg/minilog"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

// ReplayAOL decodes every Frame in the log at path, in order, resolves
// each to a Command, and applies it to s and b with AOL writes
// disabled — the caller opens the live aol.Log only after this
// returns (spec.md §4.4's replay rule). It returns the number of
// records applied.
func ReplayAOL(path string, s *store.Store, b *broker.Broker) (int, error) {
	n, err := aol.Replay(path, func(frame resp.Frame) error {
		cmd, perr := command.Parse(frame)
		if perr != nil {
			return fmt.Errorf("replay: %w", perr)
		}
		cmd.Apply(s, b)
		return nil
	})
	if err != nil {
		return n, err
	}
	if n > 0 {
		minilog.Info("replayed aol", "records", n, "path", path)
	}
	return n, nil
}
