package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/park285/symptom-checker-go/internal/config"
	"github.com/park285/symptom-checker-go/internal/di"
	"github.com/park285/symptom-checker-go/internal/server"
)

func main() {
	if err := run(); err != nil {
		log.Printf("symptom checker stopped: %v", err)
		os.Exit(1)
	}
}

func run() error {
	signalCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := di.InitializeApp(signalCtx)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		app.Close(closeCtx)
	}()

	config.LogEnvStatus(app.Config, app.Logger)
	app.Logger.Info(
		"http_server_start",
		"addr", app.Server.Addr,
		"http2", app.Config.HTTP.HTTP2Enabled,
		"gemini_model", app.Config.Gemini.Model,
	)

	g, gctx := errgroup.WithContext(signalCtx)
	g.Go(func() error {
		return server.Serve(gctx, app.Server, server.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		app.Logger.Error("http_server_failed", "err", err)
		return err
	}
	app.Logger.Info("http_server_stopped")
	return nil
}
