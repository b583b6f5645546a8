package command

import (
	"time"

	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

func init() {
	register("EXPIRE", 2, 2, true, buildExpire(time.Second))
	register("PEXPIRE", 2, 2, true, buildExpire(time.Millisecond))
	register("TTL", 1, 1, false, buildTTL(time.Second))
	register("PTTL", 1, 1, false, buildTTL(time.Millisecond))
	register("PERSIST", 1, 1, true, buildPersist)
}

func buildExpire(unit time.Duration) func(args [][]byte) (*Command, error) {
	return func(args [][]byte) (*Command, error) {
		key := string(args[0])
		n, err := parseInt64(args[1])
		if err != nil {
			return nil, err
		}
		d := time.Duration(n) * unit
		return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
			ok, _ := s.Expire(key, d)
			if ok {
				return resp.NewInteger(1)
			}
			return resp.NewInteger(0)
		}}, nil
	}
}

// buildTTL renders the remaining lifetime of key in unit-sized steps,
// reproducing the -1 (no deadline) / -2 (absent) sentinels spec.md §6
// defines without ever converting a sentinel through a duration
// (SPEC_FULL.md §6; see DESIGN.md's note on store.TTLSentinel).
func buildTTL(unit time.Duration) func(args [][]byte) (*Command, error) {
	return func(args [][]byte) (*Command, error) {
		key := string(args[0])
		return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
			d, sentinel := s.TTL(key)
			switch sentinel {
			case store.Absent:
				return resp.NewInteger(-2)
			case store.NoTTL:
				return resp.NewInteger(-1)
			default:
				return resp.NewInteger(int64(d / unit))
			}
		}}, nil
	}
}

func buildPersist(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		ok, _ := s.Persist(key)
		if ok {
			return resp.NewInteger(1)
		}
		return resp.NewInteger(0)
	}}, nil
}
