// typeracer is a typing arcade game: words slide across the screen and
// you type them before they escape.
//
// Usage:
//
//	typeracer play      - Play in the terminal
//	typeracer window    - Play in a desktop window
//	typeracer serve     - Start SSH server for remote play
//	typeracer words     - Check the word list
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--words <path>        - Custom word list
//	--practice            - Escaped words cost no lives
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/typeracer/internal/config"
	"github.com/vovakirdan/typeracer/internal/core"
	"github.com/vovakirdan/typeracer/internal/words"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagWords    string
	flagPractice bool
	flagMute     bool
	flagLogLevel string
	flagLogFile  string

	logger  *log.Logger
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typeracer",
	Short: "Type Racer - type the words before they cross the screen",
	Long: `Type Racer is a typing arcade game. Words spawn on the left edge and
slide right; type a word exactly to remove it and earn cash. Every word that
reaches the right edge costs a life.

Spend cash on power-ups:
  1  extra life
  2  remove two random words
  3  slow down the spawn rate

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  words    - Load and check the word list

Examples:
  typeracer play
  typeracer play --practice
  typeracer window --seed 42
  typeracer serve --ssh :2222
  typeracer words --words ./my.dict`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogger,
	PersistentPostRunE: closeLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to custom word list (one word per line)")
	rootCmd.PersistentFlags().BoolVar(&flagPractice, "practice", false, "Practice mode: escaped words cost no lives")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wordsCmd)
}

// setupLogger builds the shared logger from the global flags.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "typeracer",
		Level:           level,
	})
	return nil
}

func closeLogger(_ *cobra.Command, _ []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// loadGame reads the game config and word list named by the global flags.
// Either failing is fatal for every command.
func loadGame() (config.TypeRacerConfig, *words.List, error) {
	cfg, err := config.LoadTypeRacer(flagConfig)
	if err != nil {
		return config.TypeRacerConfig{}, nil, fmt.Errorf("config: %w", err)
	}

	list, err := words.NewLoader(logger).Load(flagWords)
	if err != nil {
		return config.TypeRacerConfig{}, nil, err
	}

	logger.Debug("word list loaded", "source", list.Source(), "words", list.Len(), "skipped", list.Skipped())
	return cfg, list, nil
}

// runtimeConfig builds the per-run settings for a screen of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	rc.Practice = flagPractice
	return rc
}
