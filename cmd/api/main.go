package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"valuecheck/internal"
	"valuecheck/internal/config"
	"valuecheck/ui"
)

func main() {
	// A missing .env is fine; configuration falls back to the process
	// environment and defaults.
	_ = godotenv.Load()

	log := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Error("[main] failed to load configuration: %v", err)
		os.Exit(1)
	}

	app := ui.NewApp(cfg)
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("[main] listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("[main] server failed: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("[main] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("[main] shutdown failed: %v", err)
	}
}
