// Package schedule parses cron job strings and decides, per calendar date
// and per minute, when each job fires.
//
// A schedule is one or more five-field jobs joined with "|":
//
//	*/15 9-17 * * 1-5 | 0 0 1 * *
//
// Parsing is fail-fast: the first bad job or field aborts the whole
// schedule. Everything built by this package is immutable and safe for
// concurrent use.
package schedule

import (
	"fmt"
	"log/slog"
	"strings"
)

// JobSeparator joins jobs in a schedule string.
const JobSeparator = "|"

// Set is an ordered list of jobs. Order only matters for attribution
// (job indices); matching is a union and does not depend on it.
type Set struct {
	jobs []Job
	raw  string
}

// Parse splits raw on JobSeparator and parses every non-empty segment.
func Parse(raw string) (*Set, error) {
	set := &Set{raw: strings.TrimSpace(raw)}
	for _, segment := range strings.Split(raw, JobSeparator) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		job, err := parseJob(segment)
		if err != nil {
			return nil, &JobError{Index: len(set.jobs), Segment: segment, Err: err}
		}
		set.jobs = append(set.jobs, job)
	}
	if len(set.jobs) == 0 {
		return nil, &JobError{Index: 0, Segment: set.raw, Err: fmt.Errorf("%w: no jobs in schedule", ErrMalformedJob)}
	}
	slog.Debug("schedule: parsed", "jobs", len(set.jobs), "raw", set.raw)
	return set, nil
}

// MustParse is like Parse but panics on error.
func MustParse(raw string) *Set {
	set, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return set
}

// Len is the number of jobs.
func (s *Set) Len() int { return len(s.jobs) }

// Job returns the job at index i.
func (s *Set) Job(i int) Job { return s.jobs[i] }

// Jobs returns a copy of the job list.
func (s *Set) Jobs() []Job {
	out := make([]Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Raw is the schedule string as given, trimmed.
func (s *Set) Raw() string { return s.raw }

// Description describes every job. With more than one job each is
// prefixed with its one-based number.
func (s *Set) Description() string {
	if len(s.jobs) == 1 {
		return s.jobs[0].Description()
	}
	parts := make([]string, len(s.jobs))
	for i, job := range s.jobs {
		parts[i] = fmt.Sprintf("Job %d: %s", i+1, job.Description())
	}
	return strings.Join(parts, " | ")
}

func (s *Set) String() string {
	parts := make([]string, len(s.jobs))
	for i, job := range s.jobs {
		parts[i] = job.Raw()
	}
	return strings.Join(parts, " "+JobSeparator+" ")
}
