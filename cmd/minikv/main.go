// Command minikv is the RESP-v2-compatible in-memory key-value server
// (spec.md §1). Bootstrap wiring — env-driven config, logger init, and
// signal-triggered graceful shutdown — follows the teacher's plainer
// main-wiring style plus the signal.Notify/SIGINT/SIGTERM shutdown
// goroutine from the lukluk-rendang reference proxy (see DESIGN.md);
// minikv's own component packages (store/aol/broker/command/session/
// server) are NOT teacher code.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/crypto/bcrypt"

	"github.com/Saksham932007/minikv/internal/server"
	"github.com/Saksham932007/minikv/pkg/aol"
	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/minilog"
	"github.com/Saksham932007/minikv/pkg/store"
)

func main() {
	if err := run(); err != nil {
		minilog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := minilog.ParseLevel(getEnv("MINIKV_LOG", "info"))
	if err != nil {
		return err
	}
	minilog.Init(level, "")

	addr := getEnv("MINIKV_ADDR", "127.0.0.1:6379")
	aofPath := getEnv("MINIKV_AOF_PATH", "appendonly.aof")
	policy, err := aol.ParsePolicy(getEnv("MINIKV_AOF_SYNC", "everysec"))
	if err != nil {
		return err
	}

	maxConns := 0
	if v := os.Getenv("MINIKV_MAX_CONNS"); v != "" {
		maxConns, err = strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MINIKV_MAX_CONNS: %w", err)
		}
	}

	var requirePass bool
	var passwordHash []byte
	if pw := os.Getenv("MINIKV_REQUIRE_PASS"); pw != "" {
		requirePass = true
		passwordHash, err = bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing MINIKV_REQUIRE_PASS: %w", err)
		}
	}

	s := store.New()
	b := broker.New()

	n, err := server.ReplayAOL(aofPath, s, b)
	if err != nil {
		return fmt.Errorf("aol replay: %w", err)
	}
	minilog.Info("startup", "addr", addr, "aof_sync", policy, "replayed", n)

	log, err := aol.Open(aofPath, policy)
	if err != nil {
		return fmt.Errorf("opening aol: %w", err)
	}
	defer log.Close()

	srv := server.New(server.Config{
		Addr:         addr,
		Store:        s,
		Broker:       b,
		AOL:          log,
		MaxConns:     maxConns,
		RequirePass:  requirePass,
		PasswordHash: passwordHash,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		minilog.Info("shutting down", "signal", sig)
		if err := srv.Shutdown(); err != nil {
			minilog.Error("shutdown error", "error", err)
		}
	}()

	return srv.Serve()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
