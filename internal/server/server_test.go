package server

import (
	"net"
	"testing"
	"time"

	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

func startTestServer(t *testing.T) (addr string, srv *Server) {
	t.Helper()
	srv = New(Config{Addr: "127.0.0.1:0", Store: store.New(), Broker: broker.New()})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr = ln.Addr().String()
	ln.Close()
	srv.cfg.Addr = addr

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve() }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c, err := net.Dial("tcp", addr)
		if err == nil {
			c.Close()
			return addr, srv
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("server never started listening on %s", addr)
	return "", nil
}

func TestServerAcceptsAndServesCommands(t *testing.T) {
	addr, srv := startTestServer(t)
	defer srv.Shutdown()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	c := resp.NewConn(conn)
	if err := c.WriteFrame(resp.ArrayOfBulkStrings("PING")); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	reply, err := c.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if reply.Str != "PONG" {
		t.Fatalf("PING reply = %+v", reply)
	}
}

func TestShutdownStopsAcceptingNewConnections(t *testing.T) {
	addr, srv := startTestServer(t)
	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	srv.Wait()

	if _, err := net.DialTimeout("tcp", addr, 200*time.Millisecond); err == nil {
		t.Fatal("expected dial to fail after Shutdown")
	}
}
