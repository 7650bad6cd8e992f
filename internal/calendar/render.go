package calendar

import "time"

// HeaderFunc presents one weekday column header
type HeaderFunc func(wd time.Weekday) string

// CellFunc presents one day with its computed decoration
type CellFunc func(d Date, deco DecorationState) string

// BlankFunc presents a padding cell
type BlankFunc func() string

// Renderers are the presentation callbacks supplied by the host.
// Their output is opaque to this package; nil callbacks render as "".
type Renderers struct {
	Header HeaderFunc
	Cell   CellFunc
	Blank  BlankFunc
}

// Frame is one rendered pass over the state
type Frame struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Render projects state through the grid generator and the decoration rules,
// handing each piece to the host's callbacks. Decorations are recomputed on
// every call.
func Render(state State, today Date, batch BatchWindow, r Renderers) Frame {
	frame := Frame{Title: state.Title()}

	for _, wd := range WeekdayHeaders() {
		h := ""
		if r.Header != nil {
			h = r.Header(wd)
		}
		frame.Headers = append(frame.Headers, h)
	}

	for _, row := range Rows(state.Cells()) {
		out := make([]string, 0, len(row))
		for _, cell := range row {
			switch {
			case cell.Blank:
				if r.Blank != nil {
					out = append(out, r.Blank())
				} else {
					out = append(out, "")
				}
			case r.Cell != nil:
				out = append(out, r.Cell(cell.Date, Decorate(cell.Date, today, state.Selected, batch)))
			default:
				out = append(out, "")
			}
		}
		frame.Rows = append(frame.Rows, out)
	}
	return frame
}
