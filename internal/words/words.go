// Package words loads the dictionary that spawned words are drawn from.
// A missing or empty dictionary is fatal: the game refuses to start
// rather than run with nothing to type.
package words

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typeracer/internal/rng"
)

// DictFile is the dictionary file name searched for on disk.
const DictFile = "words.dict"

//go:embed default.dict
var defaultDict []byte

var (
	// ErrMissing is returned when an explicitly requested dictionary does not exist.
	ErrMissing = errors.New("words: missing words dictionary")

	// ErrEmpty is returned when a dictionary holds no typeable words.
	ErrEmpty = errors.New("words: empty words dictionary")
)

// List is an immutable, non-empty list of candidate words.
type List struct {
	words   []string
	source  string
	skipped int
}

// NewList builds a list from already-validated words. It returns ErrEmpty
// for an empty slice.
func NewList(words []string, source string) (*List, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, source)
	}
	cp := make([]string, len(words))
	copy(cp, words)
	return &List{words: cp, source: source}, nil
}

// Len returns the number of words.
func (l *List) Len() int {
	return len(l.words)
}

// At returns the i-th word.
func (l *List) At(i int) string {
	return l.words[i]
}

// Words returns a copy of all words.
func (l *List) Words() []string {
	cp := make([]string, len(l.words))
	copy(cp, l.words)
	return cp
}

// Source describes where the list was loaded from.
func (l *List) Source() string {
	return l.source
}

// Skipped returns how many lines were rejected while loading.
func (l *List) Skipped() int {
	return l.skipped
}

// Pick returns a uniformly chosen word (with replacement).
func (l *List) Pick(src rng.Source) string {
	return l.words[src.IntN(len(l.words))]
}

// Loader finds and parses dictionaries.
type Loader struct {
	logger *log.Logger
}

// NewLoader creates a loader. A nil logger discards diagnostics.
func NewLoader(logger *log.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the dictionary.
// Search order: customPath -> ~/.typeracer/words.dict -> ./resources/words.dict -> embedded default.
// A customPath that does not exist yields ErrMissing; a dictionary without
// any valid word yields ErrEmpty.
func (ld *Loader) Load(customPath string) (*List, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, customPath)
		}
		if err != nil {
			return nil, fmt.Errorf("words: cannot read %s: %w", customPath, err)
		}
		return ld.Parse(data, customPath)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return ld.Parse(data, path)
	}

	return ld.Parse(defaultDict, "embedded")
}

// Parse splits a newline-separated dictionary into words. Surrounding
// whitespace is trimmed, blank lines are ignored, and words containing
// characters the keyboard mapping cannot produce are skipped.
func (ld *Loader) Parse(data []byte, source string) (*List, error) {
	lines := strings.Split(string(data), "\n")
	words := make([]string, 0, len(lines))
	skipped := 0

	for n, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		if !Typeable(w) {
			skipped++
			ld.debug("skipping untypeable word", "source", source, "line", n+1, "word", w)
			continue
		}
		words = append(words, w)
	}

	list, err := NewList(words, source)
	if err != nil {
		return nil, err
	}
	list.skipped = skipped
	if skipped > 0 && ld.logger != nil {
		ld.logger.Warn("some dictionary lines were skipped", "source", source, "skipped", skipped)
	}
	return list, nil
}

func (ld *Loader) debug(msg string, keyvals ...any) {
	if ld.logger != nil {
		ld.logger.Debug(msg, keyvals...)
	}
}

// Typeable reports whether every rune of w can be entered with the game's
// keyboard mapping: ASCII letters in either case and the hyphen.
func Typeable(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

// searchPaths lists the on-disk dictionary locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".typeracer", DictFile))
	}
	return append(paths, filepath.Join("resources", DictFile))
}
