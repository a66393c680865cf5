//go:build !ebiten

package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wize-snake/internal/app"
	"wize-snake/internal/logging"
	"wize-snake/internal/snake"
	"wize-snake/internal/tui"
)

// The terminal build. Logs would corrupt the screen, so they go to
// snake.log and only when SNAKE_LOG is set.
func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if os.Getenv(logging.EnvLevel) != "" {
		f, err := tea.LogToFile("snake.log", "snake")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = logging.FromEnv(f, os.Getenv)
		log.SetOutput(os.Stderr)
	}

	cfg := snake.DefaultConfig()
	cfg.ApplyEnv(os.Getenv)

	session, err := snake.NewSession(cfg, flags.AI, logger)
	if err != nil {
		log.Fatal(err)
	}

	final, err := tea.NewProgram(tui.New(session), tea.WithAltScreen()).Run()
	if err != nil {
		log.Fatal(err)
	}
	if m, ok := final.(*tui.Model); ok {
		logger.Info("terminal closed", "score", m.Session().Score())
	}
}
