package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typeracer/internal/audio"
	"github.com/vovakirdan/typeracer/internal/games/typeracer"
	"github.com/vovakirdan/typeracer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  a-z A-Z -   - Type
  Backspace   - Erase last character
  1 / 2 / 3   - Extra life / remove words / slow spawn
  + / _       - Volume up / down
  ` + "`" + `           - Info panel
  R           - Restart (after game over)
  Esc/Ctrl+C  - Quit

Examples:
  typeracer play
  typeracer play --practice
  typeracer play --words ./capitals.dict --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, list, err := loadGame()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	player := audio.Open(flagMute, logger)
	game := typeracer.New(cfg, list)

	if err := tui.Run(game, player, runtimeConfig(width, height)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
