package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/config"
	"ctchen222/tictactoe-cli/internal/console"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/hub"
	"ctchen222/tictactoe-cli/internal/logger"
	"ctchen222/tictactoe-cli/internal/telemetry"

	"github.com/chzyer/readline"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	os.Exit(run(cfg))
}

func run(cfg *config.Config) int {
	ctx := context.Background()

	// Initialize telemetry before the logger so the log bridge picks up the provider
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("failed to initialize telemetry: %v", err)
		return 1
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		log.Printf("failed to open log file: %v", err)
		return 1
	}
	defer closeLog()

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Printf("invalid log level: %v", err)
		return 1
	}
	logger.Init(logOut, level)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		slog.Error("failed to initialize terminal", "error", err)
		return 1
	}
	defer rl.Close()

	rng := game.DefaultSource()
	strategy := bot.NewStrategy(rng, bot.Difficulty(cfg.Difficulty))
	h := hub.NewHub(console.New(rl, rl.Stdout(), cfg.Color), strategy, rng)

	slog.Info("Starting tic-tac-toe", "bot.difficulty", strategy.Difficulty())
	if err := h.Run(ctx); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			slog.Info("Input closed, exiting", "games.played", h.Played())
			return 0
		}
		slog.Error("game stopped", "error", err)
		return 1
	}
	return 0
}

// openLog returns the log destination: the named file in append mode, or stderr.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
