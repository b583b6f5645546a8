package command

import (
	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

func init() {
	register("DEL", 1, -1, true, buildDel)
	register("EXISTS", 1, 1, false, buildExists)
	register("TYPE", 1, 1, false, buildType)
	register("KEYS", 1, 1, false, buildKeys)
	register("DBSIZE", 0, 0, false, buildDBSize)
	register("FLUSHDB", 0, 0, true, buildFlushDB)
}

func buildDel(args [][]byte) (*Command, error) {
	keys := make([]string, len(args))
	for i, a := range args {
		keys[i] = string(a)
	}
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		return resp.NewInteger(int64(s.Del(keys)))
	}}, nil
}

func buildExists(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		if s.Exists(key) {
			return resp.NewInteger(1)
		}
		return resp.NewInteger(0)
	}}, nil
}

func buildType(args [][]byte) (*Command, error) {
	key := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		return resp.NewSimple(s.Type(key))
	}}, nil
}

func buildKeys(args [][]byte) (*Command, error) {
	pattern := string(args[0])
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		keys := s.Keys(pattern)
		parts := make([][]byte, len(keys))
		for i, k := range keys {
			parts[i] = []byte(k)
		}
		return resp.ArrayOfBulks(parts...)
	}}, nil
}

func buildDBSize([][]byte) (*Command, error) {
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		return resp.NewInteger(s.DBSize())
	}}, nil
}

func buildFlushDB([][]byte) (*Command, error) {
	return &Command{apply: func(s *store.Store, _ *broker.Broker) resp.Frame {
		s.FlushDB()
		return resp.NewSimple("OK")
	}}, nil
}
