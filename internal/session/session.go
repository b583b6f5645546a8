// Package session implements minikv's per-connection command loop
// (spec.md §4.7): read a Frame, parse it into a Command, apply it to
// the shared Store and Broker, persist to the AOL if the command
// mutated, and reply. The read-parse-apply-reply shape and its
// goroutine-per-connection lifetime are grounded on the teacher's
// Server.clientHandler in internal/ron/server.go (see DESIGN.md);
// minikv has no handshake or gob framing, so that part is dropped.
package session

import (
	"errors"
	"io"
	"net"

	"golang.org/x/crypto/bcrypt"

	"github.com/Saksham932007/minikv/pkg/aol"
	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/command"
	"github.com/Saksham932007/minikv/pkg/minilog"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

// Config bundles the shared server state a Session needs. AOL is nil
// when persistence is disabled; PasswordHash is only consulted when
// RequirePass is true (SPEC_FULL.md §6's AUTH feature).
type Config struct {
	Store        *store.Store
	Broker       *broker.Broker
	AOL          *aol.Log
	RequirePass  bool
	PasswordHash []byte
}

// Session drives one accepted connection until clean EOF, a
// protocol-fatal error, or QUIT.
type Session struct {
	conn          *resp.Conn
	cfg           Config
	authenticated bool
}

func New(c net.Conn, cfg Config) *Session {
	return &Session{conn: resp.NewConn(c), cfg: cfg, authenticated: !cfg.RequirePass}
}

// Serve runs the read/parse/apply/persist/reply loop until the
// connection closes. It never returns an error for a client-caused
// condition (clean EOF, protocol violation, QUIT) — those are logged
// and treated as a normal session end, matching spec.md §4.7's "a
// session's lifetime is independent of other sessions."
func (s *Session) Serve() {
	remote := s.conn.RemoteAddr()
	defer s.conn.Close()

	for {
		frame, err := s.conn.ReadFrame()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				minilog.Debug("session ended", "remote", remote, "error", err)
			}
			return
		}

		cmd, perr := command.Parse(frame)
		if perr != nil {
			if err := s.conn.WriteFrame(command.ErrReply(perr)); err != nil {
				minilog.Debug("write failed after parse error", "remote", remote, "error", err)
				return
			}
			continue
		}

		if s.cfg.RequirePass && !s.authenticated && !exemptFromAuth(cmd.Verb) {
			if err := s.conn.WriteFrame(resp.NewError("NOAUTH Authentication required")); err != nil {
				return
			}
			continue
		}

		if cmd.Verb == "AUTH" {
			s.handleAuth(cmd)
			continue
		}

		reply, mutated := cmd.Apply(s.cfg.Store, s.cfg.Broker)

		if mutated && s.cfg.AOL != nil {
			if err := s.cfg.AOL.Append(cmd.Raw); err != nil {
				minilog.Error("aol append failed", "remote", remote, "error", err)
				if s.cfg.AOL.Policy() == aol.Always {
					s.conn.WriteFrame(resp.NewError("ERR persistence failure"))
					return
				}
			}
		}

		if err := s.conn.WriteFrame(reply); err != nil {
			minilog.Debug("write failed", "remote", remote, "error", err)
			return
		}

		if cmd.Verb == "QUIT" {
			return
		}
	}
}

func (s *Session) handleAuth(cmd *command.Command) {
	if len(cmd.Args) != 1 {
		s.conn.WriteFrame(resp.NewError("ERR wrong number of arguments for 'auth' command"))
		return
	}
	if !s.cfg.RequirePass {
		s.conn.WriteFrame(resp.NewError("ERR Client sent AUTH, but no password is set"))
		return
	}
	if bcrypt.CompareHashAndPassword(s.cfg.PasswordHash, cmd.Args[0]) != nil {
		s.conn.WriteFrame(resp.NewError("ERR invalid password"))
		return
	}
	s.authenticated = true
	s.conn.WriteFrame(resp.NewSimple("OK"))
}

func exemptFromAuth(verb string) bool {
	return verb == "AUTH" || verb == "PING" || verb == "QUIT"
}
