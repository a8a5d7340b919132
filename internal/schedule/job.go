package schedule

import (
	"fmt"
	"strings"
)

// Job is one parsed five-field cron specification. It is immutable.
type Job struct {
	fields      [FieldCount]FieldSpec
	raw         string
	description string
}

// ParseJob parses a single job such as "*/15 9-17 * * 1-5".
func ParseJob(text string) (Job, error) {
	job, err := parseJob(text)
	if err != nil {
		return Job{}, &JobError{Index: -1, Segment: strings.TrimSpace(text), Err: err}
	}
	return job, nil
}

// MustParseJob is like ParseJob but panics on error. Intended for fixed
// expressions in tests and examples.
func MustParseJob(text string) Job {
	job, err := ParseJob(text)
	if err != nil {
		panic(err)
	}
	return job
}

func parseJob(text string) (Job, error) {
	parts := strings.Fields(text)
	if len(parts) != FieldCount {
		return Job{}, fmt.Errorf("%w: expected %d fields, found %d", ErrMalformedJob, FieldCount, len(parts))
	}
	job := Job{raw: strings.Join(parts, " ")}
	for i, part := range parts {
		spec, err := ParseField(Field(i), part)
		if err != nil {
			return Job{}, err
		}
		job.fields[i] = spec
	}
	job.description = describeJob(job)
	return job, nil
}

// Field returns the resolved spec at position f.
func (j Job) Field(f Field) FieldSpec { return j.fields[f] }

// Minute, Hour, DayOfMonth, Month and DayOfWeek are shorthands for Field.
func (j Job) Minute() FieldSpec     { return j.fields[Minute] }
func (j Job) Hour() FieldSpec       { return j.fields[Hour] }
func (j Job) DayOfMonth() FieldSpec { return j.fields[DayOfMonth] }
func (j Job) Month() FieldSpec      { return j.fields[Month] }
func (j Job) DayOfWeek() FieldSpec  { return j.fields[DayOfWeek] }

// Raw is the job text with whitespace runs collapsed to single spaces.
func (j Job) Raw() string { return j.raw }

// Description is a human-readable rendering of the job.
func (j Job) Description() string { return j.description }

func (j Job) String() string { return j.raw }
