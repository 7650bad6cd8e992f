package cli

import (
	"fmt"
	"io"
	"os"

	"batchcal/internal/calendar"
	"batchcal/internal/config"
)

// Runner carries what the subcommands need: the loaded config, the source of
// "today" and where to print.
type Runner struct {
	Cfg   *config.Config
	Clock calendar.Clock
	Out   io.Writer
	Err   io.Writer
}

// NewRunner returns a Runner printing to stdout/stderr with the system clock
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		Cfg:   cfg,
		Clock: calendar.SystemClock{},
		Out:   os.Stdout,
		Err:   os.Stderr,
	}
}

// Run executes the CLI with the given arguments and returns the exit code.
// The first argument is the command name.
func (r *Runner) Run(args []string) int {
	if len(args) == 0 {
		r.printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "month", "m":
		return r.runGrid(calendar.Month, cmdArgs)
	case "week", "w":
		return r.runGrid(calendar.Week, cmdArgs)
	case "decorate", "deco":
		return r.runDecorate(cmdArgs)
	case "help", "-h", "--help":
		r.printUsage()
		return 0
	default:
		fmt.Fprintf(r.Err, "Unknown command: %s\n", command)
		r.printUsage()
		return 1
	}
}

func (r *Runner) printUsage() {
	fmt.Fprintln(r.Out, `batchcal - Batch attendance calendar

Usage: batchcal [flags] [command] [arguments]

Commands:
  month, m [--selected DATE] [--today DATE] [DATE]
              Print the month containing DATE (default: today)
  week, w [--selected DATE] [--today DATE] [DATE]
              Print the Monday-Sunday week containing DATE
  decorate [--selected DATE] [--today DATE] DATE
              Print the decoration computed for DATE
  help        Show this help message

Flags:
      --batch-start DATE   First day of the batch window
      --batch-end DATE     Last day of the batch window
      --view <name>        Initial TUI view: month, week
      --config PATH        Config file (default ~/.config/batchcal/config.yaml)

Dates use YYYY-MM-DD. Cell markers: * selected, + today,
= on the left/right edge of a day marks a connector band.
Running batchcal without a command launches the interactive TUI.`)
}
