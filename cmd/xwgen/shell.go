package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/Marjona6/crossword-generator/placement"
	"github.com/Marjona6/crossword-generator/puzzle"
	"github.com/Marjona6/crossword-generator/render"
	"github.com/Marjona6/crossword-generator/wordlist"
)

const shellHelp = `Commands:
  add WORD...         add words to the list
  remove WORD...      remove words from the list
  list                show the current word list
  clear               empty the word list
  sample N            replace the list with N words from the built-in bank
  clue WORD [TEXT]    set clue text for a word (quote multi-word text);
                      without TEXT, show the current clue
  budget N            retry attempts per word (current value shown by help)
  size ROWSxCOLS|auto fix the grid size, or size from the words again
  seed N              tie-shuffle seed; 0 restores the deterministic order
  best N              race N seeded runs on generate and keep the densest
  generate            place the words and show the result
  show                show the last generated puzzle again
  stats               statistics of the last puzzle
  json                last puzzle as JSON
  help                this text
  exit                leave the shell`

// shellSession holds the interactive state between commands.
type shellSession struct {
	out   io.Writer
	log   zerolog.Logger
	words []string
	clues *puzzle.StaticClues

	budget     int
	rows, cols int
	seed       uint64
	best       int

	last *puzzle.Puzzle
}

// newShellSession builds a session with generation defaults.
func newShellSession(out io.Writer, log zerolog.Logger) *shellSession {
	return &shellSession{
		out:    out,
		log:    log,
		clues:  puzzle.NewStaticClues(nil),
		budget: placement.DefaultRetryBudget,
		best:   1,
	}
}

// runShell drives the readline loop until exit or EOF.
func runShell(s *shellSession) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "xwgen> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".xwgen_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    shellCompleter(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(s.out, `xwgen interactive shell. Type "help" for commands, "exit" to leave.`)
	if len(s.words) > 0 {
		fmt.Fprintln(s.out, "loaded words:", strings.Join(s.words, " "))
	}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if s.execute(strings.TrimSpace(line)) {
			return nil
		}
	}
}

func shellCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("add"),
		readline.PcItem("remove"),
		readline.PcItem("list"),
		readline.PcItem("clear"),
		readline.PcItem("sample"),
		readline.PcItem("clue"),
		readline.PcItem("budget"),
		readline.PcItem("size"),
		readline.PcItem("seed"),
		readline.PcItem("best"),
		readline.PcItem("generate"),
		readline.PcItem("show"),
		readline.PcItem("stats"),
		readline.PcItem("json"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// execute dispatches one input line and reports whether the shell should
// quit. Errors print to the session output; the shell itself never dies
// on a bad command.
func (s *shellSession) execute(line string) bool {
	fields, err := shellquote.Split(line)
	if err != nil {
		fmt.Fprintln(s.out, "parse error:", err)
		return false
	}
	if len(fields) == 0 {
		return false
	}
	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "add":
		s.add(rest)
	case "remove":
		s.remove(rest)
	case "list":
		s.list()
	case "clear":
		s.words = nil
		fmt.Fprintln(s.out, "word list cleared")
	case "sample":
		s.sample(rest)
	case "clue":
		s.clue(rest)
	case "budget":
		s.setInt(rest, "budget", 1, func(n int) { s.budget = n })
	case "size":
		s.setSize(rest)
	case "seed":
		s.setSeed(rest)
	case "best":
		s.setInt(rest, "best", 1, func(n int) { s.best = n })
	case "generate", "gen":
		s.generate()
	case "show":
		if s.last == nil {
			fmt.Fprintln(s.out, "no puzzle yet; run generate first")
			return false
		}
		fmt.Fprint(s.out, render.Text(s.last))
	case "stats":
		if s.last == nil {
			fmt.Fprintln(s.out, "no puzzle yet; run generate first")
			return false
		}
		fmt.Fprintln(s.out, render.StatsString(s.last))
	case "json":
		if s.last == nil {
			fmt.Fprintln(s.out, "no puzzle yet; run generate first")
			return false
		}
		if err := render.WriteJSON(s.out, s.last); err != nil {
			fmt.Fprintln(s.out, "error:", err)
		}
	case "help":
		fmt.Fprintln(s.out, shellHelp)
	case "exit", "quit":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q; try help\n", cmd)
	}
	return false
}

func (s *shellSession) add(tokens []string) {
	if len(tokens) == 0 {
		fmt.Fprintln(s.out, "usage: add WORD...")
		return
	}
	added := 0
	for _, tok := range tokens {
		w, err := wordlist.Normalize(tok)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		if lo.Contains(s.words, w) {
			fmt.Fprintf(s.out, "%q is already in the list\n", w)
			continue
		}
		s.words = append(s.words, w)
		added++
	}
	fmt.Fprintf(s.out, "%d word(s) added, %d total\n", added, len(s.words))
}

func (s *shellSession) remove(tokens []string) {
	if len(tokens) == 0 {
		fmt.Fprintln(s.out, "usage: remove WORD...")
		return
	}
	for _, tok := range tokens {
		w, err := wordlist.Normalize(tok)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		kept := s.words[:0]
		found := false
		for _, have := range s.words {
			if have == w {
				found = true
				continue
			}
			kept = append(kept, have)
		}
		s.words = kept
		if !found {
			fmt.Fprintf(s.out, "%q is not in the list\n", w)
		}
	}
	fmt.Fprintf(s.out, "%d word(s) remain\n", len(s.words))
}

func (s *shellSession) list() {
	if len(s.words) == 0 {
		fmt.Fprintln(s.out, "word list is empty; use add or sample")
		return
	}
	fmt.Fprintln(s.out, strings.Join(s.words, " "))
}

func (s *shellSession) sample(rest []string) {
	if len(rest) != 1 {
		fmt.Fprintln(s.out, "usage: sample N")
		return
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil || n < 1 {
		fmt.Fprintln(s.out, "sample wants a positive count")
		return
	}
	s.words = wordlist.Sample(n, s.seed)
	fmt.Fprintln(s.out, strings.Join(s.words, " "))
}

func (s *shellSession) clue(rest []string) {
	switch len(rest) {
	case 0:
		fmt.Fprintln(s.out, "usage: clue WORD [TEXT]")
	case 1:
		w, err := wordlist.Normalize(rest[0])
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		fmt.Fprintf(s.out, "%s: %s\n", w, s.clues.Clue(w))
	default:
		w, err := wordlist.Normalize(rest[0])
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
		s.clues.Set(w, strings.Join(rest[1:], " "))
		fmt.Fprintf(s.out, "clue set for %q\n", w)
	}
}

func (s *shellSession) setInt(rest []string, name string, min int, apply func(int)) {
	if len(rest) != 1 {
		fmt.Fprintf(s.out, "usage: %s N\n", name)
		return
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil || n < min {
		fmt.Fprintf(s.out, "%s wants an integer >= %d\n", name, min)
		return
	}
	apply(n)
	fmt.Fprintf(s.out, "%s set to %d\n", name, n)
}

func (s *shellSession) setSize(rest []string) {
	if len(rest) != 1 {
		fmt.Fprintln(s.out, "usage: size ROWSxCOLS|auto")
		return
	}
	if rest[0] == "auto" {
		s.rows, s.cols = 0, 0
		fmt.Fprintln(s.out, "grid size follows the word list again")
		return
	}
	rows, cols, err := parseSize(rest[0])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	s.rows, s.cols = rows, cols
	fmt.Fprintf(s.out, "grid size fixed at %dx%d\n", rows, cols)
}

func (s *shellSession) setSeed(rest []string) {
	if len(rest) != 1 {
		fmt.Fprintln(s.out, "usage: seed N")
		return
	}
	seed, err := strconv.ParseUint(rest[0], 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "seed wants an unsigned integer")
		return
	}
	s.seed = seed
	if seed == 0 {
		fmt.Fprintln(s.out, "deterministic order restored")
		return
	}
	fmt.Fprintf(s.out, "seed set to %d\n", seed)
}

func (s *shellSession) generate() {
	if len(s.words) == 0 {
		fmt.Fprintln(s.out, "no words to place; use add or sample first")
		return
	}

	p, err := generate(s.words, s.clues, s.log, s.budget, s.rows, s.cols, s.seed, s.best)
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	s.last = p
	fmt.Fprint(s.out, render.Text(p))
}
