// Command xwgen generates crossword puzzle layouts from word lists.
//
// Words come from positional arguments, a file (-file), or stdin, in that
// order of preference. Output is a terminal rendering or JSON (-format).
// Defaults can be set in an xwgen.yaml config file or XWGEN_* environment
// variables; flags win over both.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Marjona6/crossword-generator/batch"
	"github.com/Marjona6/crossword-generator/placement"
	"github.com/Marjona6/crossword-generator/puzzle"
	"github.com/Marjona6/crossword-generator/render"
	"github.com/Marjona6/crossword-generator/wordlist"
)

// ExitError carries a specific process exit code up to main.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// usageError builds the exit-code-2 error used for bad flags and bad input.
func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Stdin, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "xwgen:", exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "xwgen:", err)
		os.Exit(1)
	}
}

// run holds the whole program so tests can drive it with buffers.
func run(out, errOut io.Writer, in io.Reader, args []string) error {
	cfg := loadConfig()

	flagSet := flag.NewFlagSet("xwgen", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		fmt.Fprint(errOut, `xwgen - crossword puzzle layout generator.

Usage:
  xwgen [options] [WORD ...]

Words are read from the arguments, from -file, or from stdin. Input needs
at least two distinct words of plain letters; accents are folded away.

Options:
`)
		flagSet.PrintDefaults()
	}

	var (
		file        = flagSet.String("file", "", "Read the word list from this file instead of the arguments.")
		cluesPath   = flagSet.String("clues", "", "YAML file mapping words to clue text.")
		budget      = flagSet.Int("budget", cfg.Budget, "Retry attempts allowed per word before it is dropped.")
		size        = flagSet.String("size", cfg.Size, "Fixed grid size as ROWSxCOLS or N for square (default: sized from input).")
		bestOf      = flagSet.Int("best", cfg.Best, "Race N seeded runs and keep the densest layout.")
		seed        = flagSet.Uint64("seed", cfg.Seed, "Seed for tie shuffling; 0 keeps the plain deterministic order.")
		format      = flagSet.String("format", cfg.Format, "Output format: 'text' or 'json'.")
		logLevel    = flagSet.String("log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error, or disabled.")
		sampleN     = flagSet.Int("sample", 0, "Ignore input and draw N words from the built-in sample bank.")
		interactive = flagSet.Bool("interactive", false, "Start the interactive shell.")
	)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError("%v", err)
	}

	logger, err := newLogger(errOut, *logLevel)
	if err != nil {
		return usageError("%v", err)
	}
	if *format != "text" && *format != "json" {
		return usageError("invalid -format %q: must be 'text' or 'json'", *format)
	}
	if *bestOf < 1 {
		return usageError("invalid -best %d: must be at least 1", *bestOf)
	}
	rows, cols, err := parseSize(*size)
	if err != nil {
		return usageError("%v", err)
	}

	// The provider stays a nil interface unless a clue file loads; a typed
	// nil *StaticClues here would bypass the placeholder fallback.
	var clues puzzle.ClueProvider
	var clueFile *puzzle.StaticClues
	if *cluesPath != "" {
		if clueFile, err = puzzle.LoadClueFile(*cluesPath); err != nil {
			return err
		}
		logger.Debug().Int("overrides", clueFile.Len()).Str("path", *cluesPath).
			Msg("clue file loaded")
		clues = clueFile
	}

	if *interactive {
		s := newShellSession(out, logger)
		s.budget, s.rows, s.cols, s.seed, s.best = *budget, rows, cols, *seed, *bestOf
		if clueFile != nil {
			s.clues = clueFile
		}
		words, err := gatherOptionalWords(flagSet.Args(), *file, *sampleN, *seed)
		if err != nil {
			return err
		}
		s.words = words
		return runShell(s)
	}

	words, err := gatherWords(flagSet.Args(), *file, *sampleN, *seed, in)
	if err != nil {
		return err
	}

	p, err := generate(words, clues, logger, *budget, rows, cols, *seed, *bestOf)
	if err != nil {
		if errors.Is(err, placement.ErrBadOption) || errors.Is(err, batch.ErrBadOption) {
			return usageError("%v", err)
		}
		return err
	}

	if *format == "json" {
		return render.WriteJSON(out, p)
	}
	fmt.Fprint(out, render.Text(p))
	return nil
}

// newLogger builds a console logger writing to w at the named level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid -log-level %q", level)
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger(), nil
}

// parseSize turns "", "N" or "ROWSxCOLS" into grid dimensions. Empty input
// yields (0, 0), meaning size from the word list.
func parseSize(s string) (rows, cols int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	rstr, cstr, found := strings.Cut(s, "x")
	if !found {
		cstr = rstr
	}
	rows, rerr := strconv.Atoi(rstr)
	cols, cerr := strconv.Atoi(cstr)
	if rerr != nil || cerr != nil {
		return 0, 0, fmt.Errorf("invalid -size %q: want ROWSxCOLS or N", s)
	}
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("invalid -size %q: dimensions must be at least 1", s)
	}
	return rows, cols, nil
}

// gatherWords resolves the word list from sample bank, arguments, file, or
// stdin. Parse failures are usage errors; read failures are runtime errors.
func gatherWords(args []string, file string, sampleN int, seed uint64, in io.Reader) ([]string, error) {
	if sampleN > 0 {
		return wordlist.Sample(sampleN, seed), nil
	}

	var raw string
	switch {
	case len(args) > 0:
		raw = strings.Join(args, " ")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading word list: %w", err)
		}
		raw = string(data)
	default:
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading word list from stdin: %w", err)
		}
		raw = string(data)
	}

	words, err := wordlist.Parse(raw)
	if err != nil {
		return nil, usageError("%v", err)
	}
	return words, nil
}

// gatherOptionalWords is the shell-preload variant: no stdin fallback and
// an empty list instead of an error when nothing was given.
func gatherOptionalWords(args []string, file string, sampleN int, seed uint64) ([]string, error) {
	if sampleN == 0 && len(args) == 0 && file == "" {
		return nil, nil
	}
	return gatherWords(args, file, sampleN, seed, strings.NewReader(""))
}

// generate runs a single generation, or races bestOf seeded runs.
func generate(words []string, clues puzzle.ClueProvider, logger zerolog.Logger,
	budget, rows, cols int, seed uint64, bestOf int) (*puzzle.Puzzle, error) {

	opts := []placement.Option{
		placement.WithRetryBudget(budget),
		placement.WithLogger(logger),
	}
	if rows > 0 {
		opts = append(opts, placement.WithGridSize(rows, cols))
	}
	if clues != nil {
		opts = append(opts, placement.WithClueProvider(clues))
	}

	if bestOf > 1 {
		return batch.Best(context.Background(), words,
			batch.WithRuns(bestOf),
			batch.WithSeed(seed),
			batch.WithPlacementOptions(opts...))
	}
	if seed != 0 {
		opts = append(opts, placement.WithSeed(seed))
	}
	return placement.Generate(words, opts...)
}
