package command

import (
	"errors"
	"strings"
	"time"

	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

func init() {
	register("SET", 2, 4, true, buildSet)
	register("GET", 1, 1, false, buildGet)
	register("INCR", 1, 1, true, buildIncrBy(1))
	register("DECR", 1, 1, true, buildIncrBy(-1))
	register("INCRBY", 2, 2, true, buildIncrByArg)
	register("APPEND", 2, 2, true, buildAppend)
	register("STRLEN", 1, 1, false, buildStrLen)
}

// buildSet parses SET key value [EX seconds] (spec.md §4.6 step 5).
func buildSet(args [][]byte) (*Command, error) {
	key, val := string(args[0]), args[1]

	var deadline *time.Time
	if len(args) > 2 {
		rest := args[2:]
		if len(rest) != 2 {
			return nil, syntaxErr("syntax error")
		}
		if !strings.EqualFold(string(rest[0]), "EX") {
			return nil, syntaxErr("syntax error")
		}
		secs, err := parseInt64(rest[1])
		if err != nil {
			return nil, err
		}
		if secs <= 0 {
			return nil, syntaxErr("invalid expire time in 'set' command")
		}
		d := time.Now().Add(time.Duration(secs) * time.Second)
		deadline = &d
	}

	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		s.Set(key, val, deadline)
		return resp.NewSimple("OK")
	}}, nil
}

func buildGet(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		v, ok, err := s.Get(key)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		if !ok {
			return resp.NullBulk()
		}
		return resp.NewBulk(v)
	}}, nil
}

func buildIncrBy(delta int64) func(args [][]byte) (*Command, error) {
	return func(args [][]byte) (*Command, error) {
		key := string(args[0])
		return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
			n, err := s.IncrBy(key, delta)
			if errors.Is(err, store.ErrWrongType) {
				return errWrongType()
			}
			if errors.Is(err, store.ErrNotInteger) {
				return errNotInteger()
			}
			return resp.NewInteger(n)
		}}, nil
	}
}

func buildIncrByArg(args [][]byte) (*Command, error) {
	key := string(args[0])
	delta, err := parseInt64(args[1])
	if err != nil {
		return nil, err
	}
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		n, err := s.IncrBy(key, delta)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		if errors.Is(err, store.ErrNotInteger) {
			return errNotInteger()
		}
		return resp.NewInteger(n)
	}}, nil
}

func buildAppend(args [][]byte) (*Command, error) {
	key, val := string(args[0]), args[1]
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		n, err := s.Append(key, val)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.NewInteger(n)
	}}, nil
}

func buildStrLen(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		n, err := s.StrLen(key)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.NewInteger(n)
	}}, nil
}
