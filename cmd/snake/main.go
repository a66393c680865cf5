//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"wize-snake/internal/app"
	"wize-snake/internal/logging"
	"wize-snake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.FromEnv(os.Stderr, os.Getenv)

	cfg := snake.DefaultConfig()
	cfg.ApplyEnv(os.Getenv)

	session, err := snake.NewSession(cfg, flags.AI, logger)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session)

	ebiten.SetWindowTitle("Wize Snake Game")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	logger.Info("window closed", "score", session.Score())
}
