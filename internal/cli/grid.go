package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"batchcal/internal/calendar"
)

type dateFlags struct {
	selected string
	today    string
}

func newFlagSet(name string, errOut io.Writer) (*flag.FlagSet, *dateFlags) {
	df := &dateFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&df.selected, "selected", "", "Selected date (YYYY-MM-DD)")
	fs.StringVar(&df.today, "today", "", "Override today's date (YYYY-MM-DD)")
	return fs, df
}

// resolve returns today and the optional selection
func (r *Runner) resolve(df *dateFlags) (calendar.Date, *calendar.Date, error) {
	today := r.Clock.Today()
	if df.today != "" {
		d, err := calendar.ParseDate(df.today)
		if err != nil {
			return calendar.Date{}, nil, fmt.Errorf("--today: %w", err)
		}
		today = d
	}

	if df.selected == "" {
		return today, nil, nil
	}
	sel, err := calendar.ParseDate(df.selected)
	if err != nil {
		return calendar.Date{}, nil, fmt.Errorf("--selected: %w", err)
	}
	return today, &sel, nil
}

func (r *Runner) runGrid(mode calendar.ViewMode, args []string) int {
	fs, df := newFlagSet(mode.String(), r.Err)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	today, selected, err := r.resolve(df)
	if err != nil {
		fmt.Fprintf(r.Err, "Error: %v\n", err)
		return 1
	}

	ref := today
	if fs.NArg() > 0 {
		ref, err = calendar.ParseDate(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(r.Err, "Error: %v\n", err)
			return 1
		}
	}

	state := calendar.NewState(ref, mode)
	if selected != nil {
		state = state.SelectDate(*selected)
	}

	frame := calendar.Render(state, today, r.Cfg.Batch(), calendar.Renderers{
		Header: func(wd time.Weekday) string { return fmt.Sprintf(" %s ", calendar.DayAbbrev(wd)) },
		Cell:   plainCell,
		Blank:  func() string { return strings.Repeat(" ", 5) },
	})

	fmt.Fprintln(r.Out, frame.Title)
	fmt.Fprintln(r.Out, strings.Join(frame.Headers, ""))
	for _, row := range frame.Rows {
		fmt.Fprintln(r.Out, strings.TrimRight(strings.Join(row, ""), " "))
	}
	return 0
}

// plainCell renders a day as five characters: band, day, marker, band
func plainCell(d calendar.Date, deco calendar.DecorationState) string {
	left, right, marker := " ", " ", " "
	if deco.ShowLeftConnector {
		left = "="
	}
	if deco.ShowRightConnector {
		right = "="
	}
	switch deco.Icon {
	case calendar.IconSelected:
		marker = "*"
	case calendar.IconCompleted:
		marker = "+"
	}
	return fmt.Sprintf("%s%2d%s%s", left, d.Day, marker, right)
}

func (r *Runner) runDecorate(args []string) int {
	fs, df := newFlagSet("decorate", r.Err)
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(r.Err, "Error: date required")
		fmt.Fprintln(r.Err, "Usage: batchcal decorate [--selected DATE] [--today DATE] DATE")
		return 1
	}

	d, err := calendar.ParseDate(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(r.Err, "Error: %v\n", err)
		return 1
	}
	today, selected, err := r.resolve(df)
	if err != nil {
		fmt.Fprintf(r.Err, "Error: %v\n", err)
		return 1
	}

	deco := calendar.Decorate(d, today, selected, r.Cfg.Batch())
	fmt.Fprintf(r.Out, "date:  %s (%s)\n", d, calendar.DayAbbrev(d.Weekday()))
	fmt.Fprintf(r.Out, "icon:  %s\n", deco.Icon)
	fmt.Fprintf(r.Out, "left:  %t\n", deco.ShowLeftConnector)
	fmt.Fprintf(r.Out, "right: %t\n", deco.ShowRightConnector)
	return 0
}
