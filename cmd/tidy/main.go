package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/tidy/internal/cli"
	"github.com/idilsaglam/tidy/internal/store"
	"github.com/idilsaglam/tidy/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	filterName := flag.String("filter", "all", "initial view: all, completed, active or trashed")
	themeName := flag.String("theme", "", "theme: classic, neon or mono (env: TIDY_THEME)")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	ascii := flag.Bool("ascii", false, "use ASCII glyphs (colors stay on)")
	flag.Parse()

	theme := *themeName
	if theme == "" {
		theme = os.Getenv("TIDY_THEME")
	}
	ui.SetTheme(theme)
	if *ascii {
		ui.UseASCII()
	}
	ui.SetColorForcing(false, *noColor)

	filter, err := store.ParseFilter(*filterName)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Filter: filter,
	})
	os.Exit(code)
}
