// Command play is a single-player terminal client. Progress is written
// through to a JSON file under the data directory after every change.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/QuestTown_Go/internal/config"
	"github.com/osse101/QuestTown_Go/internal/content"
	"github.com/osse101/QuestTown_Go/internal/gamestate"
	"github.com/osse101/QuestTown_Go/internal/logger"
	"github.com/osse101/QuestTown_Go/internal/persistence"
)

func main() {
	_ = godotenv.Load()

	dataDir := flag.String("data", envOr(config.EnvDataDir, config.DefaultDataDir), "directory holding the save file")
	contentPath := flag.String("content", os.Getenv(config.EnvContentPath), "content file, empty for the built-in town")
	verbose := flag.Bool("v", false, "log store activity to stderr")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, "text", config.DefaultServiceName+"-play", "dev", "local", false), os.Stderr)

	if err := run(*dataDir, *contentPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(dataDir, contentPath string) error {
	table := content.Default()
	if contentPath != "" {
		var err error
		if table, err = content.Load(contentPath); err != nil {
			return err
		}
	}

	provider, err := persistence.NewFileProvider(dataDir)
	if err != nil {
		return err
	}
	defer provider.Close()

	ctx := context.Background()
	store := gamestate.New(ctx, provider, table, gamestate.WithDiagnostics(func(err error) {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}))

	g := newGame(store, table, os.Stdout)
	fmt.Println("Welcome to QuestTown! Type help for commands.")
	g.look()

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}
		if g.exec(ctx, in.Text()) {
			return nil
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
