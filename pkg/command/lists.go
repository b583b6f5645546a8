package command

import (
	"errors"

	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

func init() {
	register("LPUSH", 2, -1, true, buildPush(true))
	register("RPUSH", 2, -1, true, buildPush(false))
	register("LPOP", 1, 1, true, buildPop(true))
	register("RPOP", 1, 1, true, buildPop(false))
	register("LRANGE", 3, 3, false, buildLRange)
	register("LLEN", 1, 1, false, buildLLen)
}

func buildPush(front bool) func(args [][]byte) (*Command, error) {
	return func(args [][]byte) (*Command, error) {
		key, values := string(args[0]), args[1:]
		return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
			var n int64
			var err error
			if front {
				n, err = s.LPush(key, values)
			} else {
				n, err = s.RPush(key, values)
			}
			if errors.Is(err, store.ErrWrongType) {
				return errWrongType()
			}
			return resp.NewInteger(n)
		}}, nil
	}
}

func buildPop(front bool) func(args [][]byte) (*Command, error) {
	return func(args [][]byte) (*Command, error) {
		key := string(args[0])
		return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
			var v []byte
			var ok bool
			var err error
			if front {
				v, ok, err = s.LPop(key)
			} else {
				v, ok, err = s.RPop(key)
			}
			if errors.Is(err, store.ErrWrongType) {
				return errWrongType()
			}
			if !ok {
				return resp.NullBulk()
			}
			return resp.NewBulk(v)
		}}, nil
	}
}

func buildLRange(args [][]byte) (*Command, error) {
	key := string(args[0])
	start, err := parseInt64(args[1])
	if err != nil {
		return nil, err
	}
	stop, err := parseInt64(args[2])
	if err != nil {
		return nil, err
	}
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		items, err := s.LRange(key, start, stop)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.ArrayOfBulks(items...)
	}}, nil
}

func buildLLen(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		n, err := s.LLen(key)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.NewInteger(n)
	}}, nil
}
