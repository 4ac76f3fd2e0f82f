package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/idilsaglam/tidy/internal/store"
	"github.com/idilsaglam/tidy/internal/ui"
)

// Options tune session behavior from root flags.
type Options struct {
	Filter store.Filter // initial view mode
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doSession(opt, nil)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		// Extra args become initial items, oldest first on the command line.
		return doSession(opt, a)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: tidy add <text...>")
			return 2
		}
		return doSession(opt, []string{strings.Join(a, " ")})
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`tidy - a session task list

Everything lives in memory for one sitting: add, edit, complete, trash,
restore and purge items, filtered by view. Quitting discards the list.

Usage:
  tidy [flags] [subcommand]

Subcommands:
  ls [text...]       Start a session, optionally pre-filled with items
  add <text...>      Start a session with one pre-filled item
  help               Show this help

Flags:
  -filter <mode>     Initial view: all, completed, active, trashed
  -theme <name>      classic, neon or mono (or set TIDY_THEME)
  -no-color          Disable ANSI colors
  -ascii             ASCII glyphs on any theme (colors stay on)

Keys in the session:
  a add   e edit   space done   d trash/restore   p purge   tab/1-4 view   q quit
`)
	ui.Panel(ui.Legend())
}

// ---------------------------------------------------
// Interactive session
// ---------------------------------------------------

func doSession(opt Options, seed []string) int {
	st := store.New()
	st.Seed(seed)
	st.SetFilter(opt.Filter)

	ui.ApplyColorProfile()
	if err := runSession(st); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}

	printSummary(st)
	return 0
}

// printSummary recaps the session on the way out. Nothing is saved; this is
// the only trace the list leaves.
func printSummary(st *store.Store) {
	completed, active, trashed := st.Stats()
	total := completed + active + trashed
	if total == 0 {
		ui.OK("session ended (empty list)")
		return
	}
	t := ui.Current()
	ui.Panel([]string{
		"Session summary",
		ui.ProgressBar(completed, completed+active, 24),
		fmt.Sprintf("%s done %d   %s open %d   %s trashed %d",
			t.SymDone, completed, t.SymUnchecked, active, t.SymTrash, trashed),
	})
	ui.OK("session ended (list discarded)")
}
