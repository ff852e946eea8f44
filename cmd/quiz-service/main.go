package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/sqdnosita/telegramQuizBot/internal/config"
	"github.com/sqdnosita/telegramQuizBot/internal/httpapi"
	"github.com/sqdnosita/telegramQuizBot/internal/quiz/sqlite"
)

func main() {
	cfg := config.FromEnv()

	addr := flag.String("addr", cfg.HTTPAddr, "HTTP listen address")
	dbPath := flag.String("db", cfg.DatabasePath, "path to the sqlite database")
	flag.Parse()

	store, err := sqlite.NewSQLiteStore(*dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer store.Close()

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(store, store),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("quiz-service listening on %s (db=%s)", *addr, *dbPath)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
