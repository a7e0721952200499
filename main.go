// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-review/cliparse"
	"github.com/danielhkuo/quickly-review/db"
	"github.com/danielhkuo/quickly-review/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Connect to the configured backend and prepare its schema
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := db.Open(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "type", cfg.DatabaseType)

	// Create router
	mux, err := router.NewRouter(store, cfg)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		store.Close()
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		store.Close()
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server
	slog.Info("Listening", "port", cfg.Port, "render", cfg.RenderMode, "landing", cfg.LandingPath)
	if err := serve(&server, ln, stop); err != nil {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}

	// In-flight requests have finished by now
	if err := store.Close(); err != nil {
		slog.Error("store close failed", "error", err)
	}
}

// serve runs server on ln until a signal arrives on stop. It returns only
// after Shutdown has drained in-flight requests or shutdownTimeout expired.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal) error {
	drained := make(chan error, 1)
	go func() {
		sig := <-stop
		slog.Info("Shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := server.Shutdown(ctx)
		if err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
		drained <- err
	}()

	// Serve returns ErrServerClosed as soon as Shutdown starts
	err := server.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-drained
}
