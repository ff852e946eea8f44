package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sqdnosita/telegramQuizBot/internal/cli"
	"github.com/sqdnosita/telegramQuizBot/internal/config"
	"github.com/sqdnosita/telegramQuizBot/internal/opentdb"
	"github.com/sqdnosita/telegramQuizBot/internal/quiz/sqlite"
)

func main() {
	cfg := config.FromEnv()

	dbPath := flag.String("db", cfg.DatabasePath, "path to the sqlite database")
	flag.Parse()

	store, err := sqlite.NewSQLiteStore(*dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer store.Close()

	app := &cli.App{
		Users:   store,
		Quizzes: store,
		Admin:   store,
		Fetcher: opentdb.NewClient(nil),
		Out:     os.Stdout,
	}

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
