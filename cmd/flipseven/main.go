package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"flipseven/internal/client"
	"flipseven/internal/emitter"
	"flipseven/internal/httpapi"
	"flipseven/internal/identity"
	"flipseven/internal/ws"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	serverURL := flag.String("server", envOr("FLIP7_SERVER_URL", "ws://localhost:8080/ws"), "rule engine websocket URL")
	statusAddr := flag.String("status", envOr("FLIP7_STATUS_ADDR", ""), "optional local status listen address, e.g. 127.0.0.1:9090")
	stateDir := flag.String("state-dir", envOr("FLIP7_STATE_DIR", ""), "identity storage directory (defaults to the user config dir)")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dir := *stateDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			log.Fatal("resolve config dir", zap.Error(err))
		}
		dir = filepath.Join(base, "flipseven")
	}

	ids, err := identity.Open(dir)
	if err != nil {
		log.Fatal("open identity store", zap.Error(err))
	}
	log.Info("identity ready", zap.String("player_id", ids.PlayerID()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transport := ws.NewTransport(*serverURL, log)
	emit := emitter.New(transport, ids, log)
	rend := newTermRenderer(os.Stdout)
	c := client.New(ctx, emit, ids, rend, log, 0)

	go transport.Run(ctx, c.Inbox())

	if *statusAddr != "" {
		go func() {
			log.Info("status listening", zap.String("addr", *statusAddr))
			if err := http.ListenAndServe(*statusAddr, httpapi.SetupRoutes(c)); err != nil {
				log.Warn("status server stopped", zap.Error(err))
			}
		}()
	}

	go readCommands(ctx, os.Stdin, c.Inbox(), rend)

	select {
	case <-ctx.Done():
	case <-c.Done():
	}
}
