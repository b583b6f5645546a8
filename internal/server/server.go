// Package server implements minikv's TCP accept loop: bind, replay
// the AOL, then accept connections and hand each to its own Session
// goroutine, with a cancellation path that stops new sessions and
// waits for in-flight ones to finish (spec.md §5, §6). The
// accept-loop/per-connection-goroutine shape and its "use of closed
// network connection" shutdown filtering are grounded on the
// teacher's Server.serve in internal/ron/server.go (see DESIGN.md);
// bounding concurrent sessions via golang.org/x/net/netutil.LimitListener
// is this repo's own domain-stack addition (SPEC_FULL.md §4.3).
package server

import (
	"net"
	"strings"
	"sync"

	"golang.org/x/net/netutil"

	"github.com/Saksham932007/minikv/internal/session"
	"github.com/Saksham932007/minikv/pkg/aol"
	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/minilog"
	"github.com/Saksham932007/minikv/pkg/store"
)

// Config bundles everything a Server needs to accept and serve
// connections.
type Config struct {
	Addr         string
	Store        *store.Store
	Broker       *broker.Broker
	AOL          *aol.Log // nil disables persistence
	MaxConns     int      // 0 means unbounded
	RequirePass  bool
	PasswordHash []byte
}

// Server owns the listening socket and the set of in-flight sessions.
type Server struct {
	cfg Config
	ln  net.Listener
	wg  sync.WaitGroup
}

func New(cfg Config) *Server {
	return &Server{cfg: cfg}
}

// Serve binds cfg.Addr and accepts connections until the listener is
// closed (via Shutdown), returning once every in-flight session has
// finished.
func (s *Server) Serve() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	if s.cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConns)
	}
	s.ln = ln

	minilog.Info("listening", "addr", s.cfg.Addr, "max_conns", s.cfg.MaxConns)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if strings.Contains(err.Error(), "use of closed network connection") {
				break
			}
			minilog.Error("accept failed", "error", err)
			break
		}

		sess := session.New(conn, session.Config{
			Store:        s.cfg.Store,
			Broker:       s.cfg.Broker,
			AOL:          s.cfg.AOL,
			RequirePass:  s.cfg.RequirePass,
			PasswordHash: s.cfg.PasswordHash,
		})

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			minilog.Debug("session accepted", "remote", conn.RemoteAddr())
			sess.Serve()
			minilog.Debug("session closed", "remote", conn.RemoteAddr())
		}()
	}

	s.wg.Wait()
	return nil
}

// Shutdown closes the accept socket, preventing new sessions, and
// forces a final AOL flush regardless of sync policy (spec.md §5's
// cancellation rule). It does not wait for in-flight sessions — call
// Serve's return (or Wait) for that.
func (s *Server) Shutdown() error {
	var lnErr error
	if s.ln != nil {
		lnErr = s.ln.Close()
	}
	if s.cfg.AOL != nil {
		if err := s.cfg.AOL.Sync(); err != nil {
			minilog.Error("final aol sync failed", "error", err)
		}
	}
	return lnErr
}

// Wait blocks until every in-flight session has returned.
func (s *Server) Wait() {
	s.wg.Wait()
}
