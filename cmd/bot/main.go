package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/sqdnosita/telegramQuizBot/internal/authoring"
	"github.com/sqdnosita/telegramQuizBot/internal/config"
	"github.com/sqdnosita/telegramQuizBot/internal/quiz/sqlite"
	"github.com/sqdnosita/telegramQuizBot/internal/taking"
	"github.com/sqdnosita/telegramQuizBot/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := sqlite.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer store.Close()

	drafts := authoring.NewManager(store, store)
	runs := taking.NewTracker(store)

	bot, err := telegram.New(cfg.BotToken, store, store, drafts, runs)
	if err != nil {
		log.Fatalf("create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("bot starting (db=%s)", cfg.DatabasePath)
	if err := bot.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("bot stopped: %v", err)
	}
}
