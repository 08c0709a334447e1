package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eiasy/wolf/accounts"
	"github.com/eiasy/wolf/internal/config"
	"github.com/eiasy/wolf/registry"
	"github.com/eiasy/wolf/server"
	"github.com/eiasy/wolf/sessions"
	"github.com/eiasy/wolf/store/bolt"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if cfg.Env == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	displayAppname(cfg.AppName)

	store, err := bolt.Open(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("bolt.Open: %w", err)
	}
	defer store.Close()

	sessionManager, err := sessions.NewManager(
		store.Users(),
		sessions.NewInMemorySessionRepo(),
		cfg.RootToken,
		sessions.WithTTL(cfg.TokenTTL),
	)
	if err != nil {
		return fmt.Errorf("sessions.NewManager: %w", err)
	}

	registryService, err := registry.New(registry.Repos{Applications: store.Applications()})
	if err != nil {
		return fmt.Errorf("registry.New: %w", err)
	}

	accountsService, err := accounts.New(accounts.Repos{
		Users:        store.Users(),
		Applications: store.Applications(),
	}, sessionManager)
	if err != nil {
		return fmt.Errorf("accounts.New: %w", err)
	}

	srv, err := server.New(cfg, registryService, accountsService, sessionManager, log.Logger)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: cfg.Addr(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
