package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// Row is one finished run.
type Row struct {
	Strategy search.Strategy
	Result   search.Result
	Elapsed  time.Duration
}

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

type column struct {
	title string
	width int
	align align
}

var columns = [...]column{
	{"Algorithm", 20, alignLeft},
	{"Result", 11, alignCenter},
	{"Depth", 7, alignRight},
	{"Cost", 7, alignRight},
	{"Time", 11, alignRight},
	{"Expanded", 10, alignRight},
}

const sep = "|"

var (
	colorFound   = lipgloss.Color("#2CD7C7")
	colorFailure = lipgloss.Color("#E74C3C")
	colorCutOff  = lipgloss.Color("#F4D03F")
)

// Printer writes a header and rows to w.
type Printer struct {
	w     io.Writer
	plain bool

	header  lipgloss.Style
	outcome map[search.Outcome]lipgloss.Style
}

// NewPrinter returns a Printer for w. With plain set no styling is applied.
func NewPrinter(w io.Writer, plain bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		plain:  plain,
		header: r.NewStyle().Bold(true),
		outcome: map[search.Outcome]lipgloss.Style{
			search.Found:   r.NewStyle().Foreground(colorFound),
			search.Failure: r.NewStyle().Foreground(colorFailure),
			search.CutOff:  r.NewStyle().Foreground(colorCutOff),
		},
	}
}

// AutoPlain reports whether f is not a terminal, i.e. whether output should
// be written without styling.
func AutoPlain(f *os.File) bool {
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Intro writes the "searching from start to goal" line.
func (p *Printer) Intro(start, goal core.State) error {
	_, err := fmt.Fprintf(p.w, "Searching from %d to %d\n", start, goal)
	return err
}

// Header writes the centered column titles.
func (p *Printer) Header() error {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = pad(c.title, c.width, alignCenter)
	}
	line := strings.Join(cells, sep)
	if !p.plain {
		line = p.header.Render(line)
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

// Row writes one result line.
func (p *Printer) Row(r Row) error {
	var depth, cost int64
	if r.Result.Found() {
		depth, cost = int64(r.Result.Node.Depth), r.Result.Node.Cost
	}

	values := [len(columns)]string{
		r.Strategy.String(),
		r.Result.Outcome.String(),
		strconv.FormatInt(depth, 10),
		strconv.FormatInt(cost, 10),
		FormatElapsed(r.Elapsed),
		strconv.Itoa(r.Result.Stats.Expanded),
	}

	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = pad(values[i], c.width, c.align)
	}
	if st, ok := p.outcome[r.Result.Outcome]; ok && !p.plain {
		cells[1] = st.Render(cells[1])
	}

	_, err := fmt.Fprintln(p.w, strings.Join(cells, sep))
	return err
}

// Render writes the header followed by rows.
func (p *Printer) Render(rows []Row) error {
	if err := p.Header(); err != nil {
		return err
	}
	for _, r := range rows {
		if err := p.Row(r); err != nil {
			return err
		}
	}
	return nil
}

// FormatElapsed renders d as seconds with five decimals, e.g. "0.00123s".
func FormatElapsed(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 5, 64) + "s"
}

// FormatPath renders a state path as "0 → 1 → 2", or "-" when empty.
func FormatPath(path []core.State) string {
	if len(path) == 0 {
		return "-"
	}
	var b strings.Builder
	for i, s := range path {
		if i > 0 {
			b.WriteString(" → ")
		}
		b.WriteString(strconv.FormatUint(uint64(s), 10))
	}
	return b.String()
}

// pad fits s into width columns; longer values are kept whole.
func pad(s string, width int, a align) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	switch a {
	case alignRight:
		return strings.Repeat(" ", gap) + s
	case alignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
