package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typeracer/internal/audio"
	"github.com/vovakirdan/typeracer/internal/games/typeracer"
	"github.com/vovakirdan/typeracer/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  a-z A-Z -           - Type (Shift for capitals)
  Backspace           - Erase last character
  1 / 2 / 3           - Extra life / remove words / slow spawn (numpad too)
  + / Numpad+         - Volume up
  Numpad-             - Volume down
  ` + "`" + `                   - Info panel
  R                   - Restart (after game over)
  Esc                 - Quit

Examples:
  typeracer window
  typeracer window --width 1200 --height 1000`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 960, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 800, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, list, err := loadGame()
	if err != nil {
		return err
	}

	player := audio.Open(flagMute, logger)
	game := typeracer.New(cfg, list)

	if err := window.Run(game, player, runtimeConfig(flagWidth, flagHeight)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
