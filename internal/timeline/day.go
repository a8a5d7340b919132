// Package timeline expands a parsed schedule into per-minute execution
// records for a day, a week or a calendar month.
package timeline

import (
	"encoding/json"
	"fmt"

	"github.com/cronviz/cronviz/internal/schedule"
)

// MinutesPerDay is the number of slots in a Day.
const MinutesPerDay = schedule.MinutesPerDay

// Execution is one minute of a day with the indices of the jobs firing in
// it, ascending.
type Execution struct {
	Minute int   `json:"minute"`
	Jobs   []int `json:"jobs"`
}

// Clock formats the minute as HH:MM.
func (e Execution) Clock() string { return Clock(e.Minute) }

// Clock formats a minute-of-day as HH:MM.
func Clock(minute int) string { return fmt.Sprintf("%02d:%02d", minute/60, minute%60) }

// Day is the timeline of one date: slot m holds the jobs firing at minute
// m. A Day is never mutated after it is built.
type Day struct {
	Date  schedule.Date
	slots [MinutesPerDay][]int
	count int
}

// builder caches each job's firing minutes so windows don't recompute
// them for every date.
type builder struct {
	set     *schedule.Set
	minutes [][]int
}

func newBuilder(set *schedule.Set) *builder {
	b := &builder{set: set, minutes: make([][]int, set.Len())}
	for i := range b.minutes {
		b.minutes[i] = set.Job(i).FiringMinutes()
	}
	return b
}

func (b *builder) day(date schedule.Date) *Day {
	day := &Day{Date: date}
	for i := range b.minutes {
		if !b.set.Job(i).Admits(date) {
			continue
		}
		for _, m := range b.minutes[i] {
			if day.slots[m] == nil {
				day.count++
			}
			day.slots[m] = append(day.slots[m], i)
		}
	}
	return day
}

// BuildDay unions every job admitted on date into one timeline. A date no
// job admits gives an empty Day, not an error.
func BuildDay(set *schedule.Set, date schedule.Date) *Day {
	return newBuilder(set).day(date)
}

// Jobs returns the indices of the jobs firing at minute, or nil.
func (d *Day) Jobs(minute int) []int {
	if minute < 0 || minute >= MinutesPerDay || d.slots[minute] == nil {
		return nil
	}
	return append([]int(nil), d.slots[minute]...)
}

// Fires reports whether any job fires at minute.
func (d *Day) Fires(minute int) bool {
	return minute >= 0 && minute < MinutesPerDay && d.slots[minute] != nil
}

// Count is the number of minutes with at least one execution.
func (d *Day) Count() int { return d.count }

// Empty reports whether nothing fires on the date.
func (d *Day) Empty() bool { return d.count == 0 }

// Minutes returns the firing minutes in ascending order.
func (d *Day) Minutes() []int {
	out := make([]int, 0, d.count)
	for m := range d.slots {
		if d.slots[m] != nil {
			out = append(out, m)
		}
	}
	return out
}

// Executions returns the non-empty slots in ascending minute order.
func (d *Day) Executions() []Execution {
	out := make([]Execution, 0, d.count)
	for m := range d.slots {
		if d.slots[m] != nil {
			out = append(out, Execution{Minute: m, Jobs: d.Jobs(m)})
		}
	}
	return out
}

// Active returns one flag per minute of the day.
func (d *Day) Active() []bool {
	out := make([]bool, MinutesPerDay)
	for m := range d.slots {
		out[m] = d.slots[m] != nil
	}
	return out
}

// JobMinutes returns the minutes at which job fires on this date.
func (d *Day) JobMinutes(job int) []int {
	var out []int
	for m, jobs := range d.slots {
		for _, j := range jobs {
			if j == job {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func (d *Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date       schedule.Date `json:"date"`
		Count      int           `json:"count"`
		Executions []Execution   `json:"executions"`
	}{d.Date, d.count, d.Executions()})
}
