package schedule

import (
	"time"

	"github.com/robfig/cron/v3"
)

// starBit marks an unrestricted field in a cron.SpecSchedule; robfig uses
// it to pick between AND and OR for day-of-month/day-of-week, which is the
// same rule Admits applies.
const starBit = 1 << 63

// Run is one firing instant with the indices of the jobs that fire.
type Run struct {
	At   time.Time `json:"at"`
	Jobs []int     `json:"jobs"`
}

// Schedule converts the job into a robfig schedule evaluated in loc.
// A nil loc means time.Local.
func (j Job) Schedule(loc *time.Location) cron.Schedule {
	if loc == nil {
		loc = time.Local
	}
	return &cron.SpecSchedule{
		Second:   1 << 0,
		Minute:   specBits(j.fields[Minute]),
		Hour:     specBits(j.fields[Hour]),
		Dom:      specBits(j.fields[DayOfMonth]),
		Month:    specBits(j.fields[Month]),
		Dow:      specBits(j.fields[DayOfWeek]),
		Location: loc,
	}
}

func specBits(f FieldSpec) uint64 {
	b := uint64(f.set)
	if f.wildcard {
		b |= starBit
	}
	return b
}

// Next returns the first firing instant strictly after from, or the zero
// time if the job can never fire (for example "0 0 30 2 *").
func (j Job) Next(from time.Time, loc *time.Location) time.Time {
	return j.Schedule(loc).Next(from)
}

// Upcoming merges the jobs' firing instants and returns the first n
// strictly after from. Jobs that fire at the same instant share one Run.
func (s *Set) Upcoming(from time.Time, n int, loc *time.Location) []Run {
	if n <= 0 {
		return nil
	}
	schedules := make([]cron.Schedule, len(s.jobs))
	next := make([]time.Time, len(s.jobs))
	for i, job := range s.jobs {
		schedules[i] = job.Schedule(loc)
		next[i] = schedules[i].Next(from)
	}

	runs := make([]Run, 0, n)
	for len(runs) < n {
		var earliest time.Time
		for _, t := range next {
			if !t.IsZero() && (earliest.IsZero() || t.Before(earliest)) {
				earliest = t
			}
		}
		if earliest.IsZero() {
			break
		}
		run := Run{At: earliest}
		for i, t := range next {
			if !t.IsZero() && t.Equal(earliest) {
				run.Jobs = append(run.Jobs, i)
				next[i] = schedules[i].Next(t)
			}
		}
		runs = append(runs, run)
	}
	return runs
}
