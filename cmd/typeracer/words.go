package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typeracer/internal/rng"
	"github.com/vovakirdan/typeracer/internal/words"
)

var flagSample int

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Load and check the word list",
	Long: `Loads the word list the game would use and prints a summary.

Search order: --words path, ~/.typeracer/words.dict, ./resources/words.dict,
then the built-in list. Lines with characters that cannot be typed are
skipped. A missing or empty list exits with status 1.

Examples:
  typeracer words
  typeracer words --words ./capitals.dict --sample 20`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().IntVar(&flagSample, "sample", 10, "Number of random words to print")
}

func runWords(_ *cobra.Command, _ []string) error {
	list, err := words.NewLoader(logger).Load(flagWords)
	if err != nil {
		return err
	}

	fmt.Printf("Source:  %s\n", list.Source())
	fmt.Printf("Words:   %d\n", list.Len())
	fmt.Printf("Skipped: %d\n", list.Skipped())

	if flagSample <= 0 {
		return nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rng.New(seed)

	fmt.Println()
	fmt.Println("Sample:")
	for _, i := range src.Sample(list.Len(), flagSample) {
		fmt.Printf("  %s\n", list.At(i))
	}
	return nil
}
