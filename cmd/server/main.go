package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blackbook/internal/auth"
	"blackbook/internal/config"
	"blackbook/internal/db"
	"blackbook/internal/handlers"
	"blackbook/internal/kvstore"
	"blackbook/internal/ledger"
	"blackbook/internal/prefs"
	"blackbook/internal/validator"
	"blackbook/internal/websocket"
)

func main() {
	cfg := config.Load()

	var store kvstore.Store
	if cfg.StorageDriver == "postgres" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		defer database.Close()
		store = kvstore.NewPostgresStore(database)
	} else {
		boltStore, err := kvstore.OpenBolt(cfg.BoltPath)
		if err != nil {
			log.Fatalf("failed to open storage: %v", err)
		}
		defer boltStore.Close()
		store = boltStore
	}

	if err := validator.ValidatePassphrase(cfg.OwnerPassphrase); err != nil {
		log.Printf("warning: owner passphrase is weak, set OWNER_PASSPHRASE")
	}
	passphraseHash, err := auth.HashPassword(cfg.OwnerPassphrase)
	if err != nil {
		log.Fatalf("failed to hash passphrase: %v", err)
	}

	hub := websocket.NewHub()
	debts := ledger.New(store, hub)
	preferences := prefs.New(store)

	// State must be hydrated before any request can observe it.
	hydrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	debts.Hydrate(hydrateCtx)
	preferences.Hydrate(hydrateCtx)
	cancel()

	handler := handlers.New(cfg, passphraseHash, debts, preferences, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("blackbook API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
