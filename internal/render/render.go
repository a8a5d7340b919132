// Package render draws day, week and month timelines for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cronviz/cronviz/internal/schedule"
	"github.com/cronviz/cronviz/internal/timeline"
)

const (
	// DefaultBarCells is the width of a week row: 15 minutes per cell.
	DefaultBarCells = 96

	monthThumbCells = 12
	monthCellWidth  = monthThumbCells + 2

	fireGlyph = "█"
	idleGlyph = "·"
)

// Options configures a Renderer.
type Options struct {
	// BarCells is the number of cells in a week row. Zero selects
	// DefaultBarCells.
	BarCells int
	// Plain disables colors and text attributes.
	Plain bool
	Theme *Theme
}

// Renderer turns timelines into styled text.
type Renderer struct {
	lg    *lipgloss.Renderer
	theme Theme
	cells int
}

// New returns a Renderer writing escape sequences suited to w.
func New(w io.Writer, opts Options) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if opts.Plain {
		lg.SetColorProfile(termenv.Ascii)
	}
	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	cells := opts.BarCells
	if cells <= 0 {
		cells = DefaultBarCells
	}
	if cells > timeline.MinutesPerDay {
		cells = timeline.MinutesPerDay
	}
	return &Renderer{lg: lg, theme: theme, cells: cells}
}

func (r *Renderer) header(s string) string {
	return r.lg.NewStyle().Bold(true).Foreground(r.theme.Header).Render(s)
}

func (r *Renderer) faint(s string) string {
	return r.lg.NewStyle().Foreground(r.theme.Faint).Render(s)
}

// slot draws one minute or bucket given the jobs firing in it.
func (r *Renderer) slot(jobs []int) string {
	switch len(jobs) {
	case 0:
		return r.lg.NewStyle().Foreground(r.theme.Idle).Render(idleGlyph)
	case 1:
		return r.lg.NewStyle().Foreground(r.theme.JobColor(jobs[0])).Render(fireGlyph)
	}
	return r.lg.NewStyle().Foreground(r.theme.Mixed).Render(fireGlyph)
}

func (r *Renderer) bar(buckets [][]int) string {
	var b strings.Builder
	for _, jobs := range buckets {
		b.WriteString(r.slot(jobs))
	}
	return b.String()
}

// ruler labels every sixth hour above a bar of the given width.
func ruler(cells int) string {
	line := []byte(strings.Repeat(" ", cells))
	for h := 0; h < 24; h += 6 {
		label := fmt.Sprintf("%d", h)
		pos := h * 60 * cells / timeline.MinutesPerDay
		if pos+len(label) <= cells {
			copy(line[pos:], label)
		}
	}
	return strings.TrimRight(string(line), " ")
}

// Day draws the 1440 minutes of day as 24 rows of 60, with the hourly
// count at the end of each row.
func (r *Renderer) Day(set *schedule.Set, day *timeline.Day) string {
	var lines []string
	lines = append(lines, r.header(fmt.Sprintf("%s  %s  %d executions", day.Date, day.Date.Weekday(), day.Count())))

	var axis strings.Builder
	axis.WriteString("   ")
	for m := 0; m < 60; m += 10 {
		fmt.Fprintf(&axis, "%-10s", fmt.Sprintf(":%02d", m))
	}
	lines = append(lines, r.faint(strings.TrimRight(axis.String(), " ")))

	for h := 0; h < 24; h++ {
		var row strings.Builder
		row.WriteString(r.faint(fmt.Sprintf("%02d ", h)))
		n := 0
		for m := h * 60; m < (h+1)*60; m++ {
			jobs := day.Jobs(m)
			if jobs != nil {
				n++
			}
			row.WriteString(r.slot(jobs))
		}
		if n > 0 {
			row.WriteString(r.faint(fmt.Sprintf(" %3d", n)))
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, "")
	if mins := day.Minutes(); len(mins) > 0 {
		lines = append(lines, fmt.Sprintf("First %s  Last %s", timeline.Clock(mins[0]), timeline.Clock(mins[len(mins)-1])))
	} else {
		lines = append(lines, "No executions scheduled.")
	}
	lines = append(lines, r.Legend(set))
	return strings.Join(lines, "\n")
}

// Week draws one thumbnail row per day of w.
func (r *Renderer) Week(set *schedule.Set, w *timeline.Week) string {
	const labelWidth = len("Mon 2006-01-02 ")
	lines := []string{
		r.header(fmt.Sprintf("Week of %s", w.Start)),
		r.faint(strings.Repeat(" ", labelWidth) + ruler(r.cells)),
	}
	total := 0
	for _, day := range w.Days {
		label := fmt.Sprintf("%s %s ", day.Date.Weekday().String()[:3], day.Date)
		row := r.faint(label) + r.bar(timeline.ThumbnailJobs(day, r.cells))
		if day.Count() > 0 {
			row += r.faint(fmt.Sprintf(" %4d", day.Count()))
		}
		total += day.Count()
		lines = append(lines, row)
	}
	lines = append(lines, "", fmt.Sprintf("%d executions", total), r.Legend(set))
	return strings.Join(lines, "\n")
}

// Month draws m as a seven-column calendar. Each date shows its day number,
// its execution count and a small thumbnail of the day.
func (r *Renderer) Month(set *schedule.Set, m *timeline.Month) string {
	cell := r.lg.NewStyle().Width(monthCellWidth).Height(2)

	var head []string
	for i := 0; i < timeline.DaysPerWeek; i++ {
		wd := time.Weekday((int(m.FirstWeekday) + i) % timeline.DaysPerWeek)
		head = append(head, cell.Height(1).Render(r.faint(wd.String()[:3])))
	}

	rows := []string{
		r.header(fmt.Sprintf("%s %d", m.Month, m.Year)),
		lipgloss.JoinHorizontal(lipgloss.Top, head...),
	}
	for _, week := range m.Weeks() {
		var cells []string
		for _, c := range week {
			if c.Blank() {
				cells = append(cells, cell.Render(""))
				continue
			}
			cells = append(cells, cell.Render(r.monthCell(c.Day)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	rows = append(rows, "", fmt.Sprintf("Active days: %d of %d", m.ActiveDays(), len(m.Days)), r.Legend(set))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) monthCell(day *timeline.Day) string {
	count := ""
	if n := day.Count(); n > 0 {
		count = fmt.Sprintf("%d", n)
	}
	top := fmt.Sprintf("%2d %*s", day.Date.Day, monthThumbCells-3, count)
	return top + "\n" + r.bar(timeline.ThumbnailJobs(day, monthThumbCells))
}

// Legend lists the jobs of set with their color and description.
func (r *Renderer) Legend(set *schedule.Set) string {
	lines := make([]string, 0, set.Len())
	for i, job := range set.Jobs() {
		swatch := r.lg.NewStyle().Foreground(r.theme.JobColor(i)).Render(fireGlyph)
		lines = append(lines, fmt.Sprintf("%s Job %d  %s  %s", swatch, i+1, job.Raw(), r.faint(job.Description())))
	}
	return strings.Join(lines, "\n")
}

// Upcoming lists runs as wall-clock times in loc.
func (r *Renderer) Upcoming(runs []schedule.Run, loc *time.Location) string {
	if len(runs) == 0 {
		return "No upcoming runs."
	}
	lines := make([]string, 0, len(runs))
	for _, run := range runs {
		jobs := make([]string, len(run.Jobs))
		for i, j := range run.Jobs {
			jobs[i] = fmt.Sprintf("%d", j+1)
		}
		lines = append(lines, fmt.Sprintf("%s  %s",
			run.At.In(loc).Format("Mon 2006-01-02 15:04 MST"),
			r.faint("job "+strings.Join(jobs, ","))))
	}
	return strings.Join(lines, "\n")
}

// Debug dumps every execution of day as plain text, one minute per line.
func Debug(day *timeline.Day) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s count=%d\n", day.Date, day.Date.Weekday(), day.Count())
	for _, e := range day.Executions() {
		fmt.Fprintf(&b, "%s %4d jobs=%v\n", e.Clock(), e.Minute, e.Jobs)
	}
	return b.String()
}
