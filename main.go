package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mwestlake/pulseboard/cliparse"
	"github.com/mwestlake/pulseboard/router"
	"github.com/mwestlake/pulseboard/store"
)

func main() {
	// Load .env if present, then parse configuration
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the storage backend
	var st store.Store
	switch cfg.StoreType {
	case "file":
		st = store.NewFileStore(cfg.DataFile)
		slog.Info("Using file store", "path", cfg.DataFile)
	case "sqlite", "postgres":
		db, err := sql.Open(cfg.StoreType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		// Verify connection
		if err := db.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		sqlStore, err := store.NewSQLStore(db, cfg.StoreType)
		if err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		st = sqlStore
		slog.Info("Using SQL store", "driver", cfg.StoreType)
	}

	// Create router
	handler := router.NewRouter(st, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
