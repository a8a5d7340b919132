package timeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cronviz/cronviz/internal/schedule"
)

// DaysPerWeek is the width of a calendar grid.
const DaysPerWeek = 7

// Week holds seven consecutive days starting on the configured first
// weekday. Each date is evaluated on its own, so a week that spans a month
// or year boundary resolves every day against its own month.
type Week struct {
	Start schedule.Date     `json:"start"`
	Days  [DaysPerWeek]*Day `json:"days"`
}

// WeekStart returns the first date of the week containing date.
func WeekStart(date schedule.Date, first time.Weekday) schedule.Date {
	offset := (int(date.Weekday()) - int(first) + DaysPerWeek) % DaysPerWeek
	return date.AddDays(-offset)
}

// BuildWeek builds the week containing date.
func BuildWeek(set *schedule.Set, date schedule.Date, first time.Weekday) *Week {
	b := newBuilder(set)
	w := &Week{Start: WeekStart(date, first)}
	for i := range w.Days {
		w.Days[i] = b.day(w.Start.AddDays(i))
	}
	return w
}

// Dates returns the seven dates of the week in order.
func (w *Week) Dates() [DaysPerWeek]schedule.Date {
	var out [DaysPerWeek]schedule.Date
	for i, d := range w.Days {
		out[i] = d.Date
	}
	return out
}

// Cell is one slot of a month grid. Padding cells that belong to the
// neighbouring months have a nil Day.
type Cell struct {
	Day *Day
}

// Blank reports whether the cell is padding.
func (c Cell) Blank() bool { return c.Day == nil }

// Month is a calendar month laid out for a seven-column grid: Leading blank
// cells before the 1st, one Day per date, Trailing blanks after the last.
type Month struct {
	Year         int          `json:"year"`
	Month        time.Month   `json:"month"`
	FirstWeekday time.Weekday `json:"first_weekday"`
	Leading      int          `json:"leading"`
	Trailing     int          `json:"trailing"`
	Days         []*Day       `json:"days"`
}

// BuildMonth builds a Day for every date of the month plus the grid padding.
func BuildMonth(set *schedule.Set, year int, month time.Month, first time.Weekday) *Month {
	return buildMonth(newBuilder(set), year, month, first)
}

func buildMonth(b *builder, year int, month time.Month, first time.Weekday) *Month {
	n := schedule.DaysIn(year, month)
	firstDate := schedule.Date{Year: year, Month: month, Day: 1}

	m := &Month{
		Year:         year,
		Month:        month,
		FirstWeekday: first,
		Leading:      (int(firstDate.Weekday()) - int(first) + DaysPerWeek) % DaysPerWeek,
		Days:         make([]*Day, n),
	}
	m.Trailing = (DaysPerWeek - (m.Leading+n)%DaysPerWeek) % DaysPerWeek
	for i := range m.Days {
		m.Days[i] = b.day(firstDate.AddDays(i))
	}
	slog.Debug("timeline: built month", "year", year, "month", month, "active", m.ActiveDays())
	return m
}

// Day returns the timeline of day-of-month d, or nil outside the month.
func (m *Month) Day(d int) *Day {
	if d < 1 || d > len(m.Days) {
		return nil
	}
	return m.Days[d-1]
}

// ActiveDays is the number of dates with at least one execution.
func (m *Month) ActiveDays() int {
	n := 0
	for _, d := range m.Days {
		if !d.Empty() {
			n++
		}
	}
	return n
}

// Cells returns the grid in reading order; its length is a multiple of 7.
func (m *Month) Cells() []Cell {
	cells := make([]Cell, 0, m.Leading+len(m.Days)+m.Trailing)
	for i := 0; i < m.Leading; i++ {
		cells = append(cells, Cell{})
	}
	for _, d := range m.Days {
		cells = append(cells, Cell{Day: d})
	}
	for i := 0; i < m.Trailing; i++ {
		cells = append(cells, Cell{})
	}
	return cells
}

// Weeks splits Cells into rows of seven.
func (m *Month) Weeks() [][]Cell {
	cells := m.Cells()
	rows := make([][]Cell, 0, len(cells)/DaysPerWeek)
	for i := 0; i < len(cells); i += DaysPerWeek {
		rows = append(rows, cells[i:i+DaysPerWeek])
	}
	return rows
}

// BuildMonths builds count consecutive months starting at year/month. The
// months are computed concurrently; the result keeps calendar order.
func BuildMonths(ctx context.Context, set *schedule.Set, year int, month time.Month, count int, first time.Weekday) ([]*Month, error) {
	if count <= 0 {
		return nil, nil
	}
	b := newBuilder(set)
	months := make([]*Month, count)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		start := time.Date(year, month+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			months[i] = buildMonth(b, start.Year(), start.Month(), first)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return months, nil
}
