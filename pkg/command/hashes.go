package command

import (
	"errors"

	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

func init() {
	register("HSET", 3, 3, true, buildHSet)
	register("HGET", 2, 2, false, buildHGet)
	register("HGETALL", 1, 1, false, buildHGetAll)
	register("HDEL", 2, -1, true, buildHDel)
	register("HEXISTS", 2, 2, false, buildHExists)
	register("HLEN", 1, 1, false, buildHLen)
}

func buildHSet(args [][]byte) (*Command, error) {
	key, field, value := string(args[0]), args[1], args[2]
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		created, err := s.HSet(key, field, value)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		if created {
			return resp.NewInteger(1)
		}
		return resp.NewInteger(0)
	}}, nil
}

func buildHGet(args [][]byte) (*Command, error) {
	key, field := string(args[0]), args[1]
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		v, ok, err := s.HGet(key, field)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		if !ok {
			return resp.NullBulk()
		}
		return resp.NewBulk(v)
	}}, nil
}

func buildHGetAll(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		flat, err := s.HGetAll(key)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.ArrayOfBulks(flat...)
	}}, nil
}

func buildHDel(args [][]byte) (*Command, error) {
	key, fields := string(args[0]), args[1:]
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		n, err := s.HDel(key, fields)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.NewInteger(n)
	}}, nil
}

func buildHExists(args [][]byte) (*Command, error) {
	key, field := string(args[0]), args[1]
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		ok, err := s.HExists(key, field)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		if ok {
			return resp.NewInteger(1)
		}
		return resp.NewInteger(0)
	}}, nil
}

func buildHLen(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		n, err := s.HLen(key)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.NewInteger(n)
	}}, nil
}
