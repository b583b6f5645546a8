package command

import (
	"errors"

	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

func init() {
	register("SADD", 2, -1, true, buildSAdd)
	register("SREM", 2, -1, true, buildSRem)
	register("SMEMBERS", 1, 1, false, buildSMembers)
	register("SISMEMBER", 2, 2, false, buildSIsMember)
	register("SCARD", 1, 1, false, buildSCard)
}

func buildSAdd(args [][]byte) (*Command, error) {
	key, members := string(args[0]), args[1:]
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		n, err := s.SAdd(key, members)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.NewInteger(n)
	}}, nil
}

func buildSRem(args [][]byte) (*Command, error) {
	key, members := string(args[0]), args[1:]
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		n, err := s.SRem(key, members)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.NewInteger(n)
	}}, nil
}

func buildSMembers(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		members, err := s.SMembers(key)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.ArrayOfBulks(members...)
	}}, nil
}

func buildSIsMember(args [][]byte) (*Command, error) {
	key, member := string(args[0]), args[1]
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		ok, err := s.SIsMember(key, member)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		if ok {
			return resp.NewInteger(1)
		}
		return resp.NewInteger(0)
	}}, nil
}

func buildSCard(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		n, err := s.SCard(key)
		if errors.Is(err, store.ErrWrongType) {
			return errWrongType()
		}
		return resp.NewInteger(n)
	}}, nil
}
