package schedule

import (
	"reflect"
	"testing"
	"time"
)

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestUpcomingMergesJobs(t *testing.T) {
	set := MustParse("0 9 * * * | 0 9,17 * * 1-5")
	// Friday, October 16 2026.
	runs := set.Upcoming(utc(2026, time.October, 16, 8, 0), 4, time.UTC)

	want := []Run{
		{At: utc(2026, time.October, 16, 9, 0), Jobs: []int{0, 1}},
		{At: utc(2026, time.October, 16, 17, 0), Jobs: []int{1}},
		{At: utc(2026, time.October, 17, 9, 0), Jobs: []int{0}},
		{At: utc(2026, time.October, 18, 9, 0), Jobs: []int{0}},
	}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d: %v", len(runs), len(want), runs)
	}
	for i := range want {
		if !runs[i].At.Equal(want[i].At) || !reflect.DeepEqual(runs[i].Jobs, want[i].Jobs) {
			t.Errorf("run %d = %v %v, want %v %v", i, runs[i].At, runs[i].Jobs, want[i].At, want[i].Jobs)
		}
	}
}

func TestUpcomingStrictlyAfter(t *testing.T) {
	job := MustParseJob("0 7 * * *")
	next := job.Next(utc(2026, time.February, 18, 7, 0), time.UTC)
	if want := utc(2026, time.February, 19, 7, 0); !next.Equal(want) {
		t.Errorf("Next = %v, want %v", next, want)
	}
}

func TestUpcomingLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	job := MustParseJob("0 9 * * *")
	next := job.Next(utc(2026, time.October, 16, 12, 0), est)
	if want := utc(2026, time.October, 16, 14, 0); !next.Equal(want) {
		t.Errorf("Next = %v, want %v", next, want)
	}
	if next.Location() != est {
		t.Errorf("Next location = %v, want EST", next.Location())
	}
}

func TestUpcomingImpossibleJob(t *testing.T) {
	set := MustParse("0 0 30 2 *")
	if runs := set.Upcoming(utc(2026, time.January, 1, 0, 0), 3, time.UTC); len(runs) != 0 {
		t.Errorf("impossible schedule produced runs: %v", runs)
	}
	if runs := MustParse("* * * * *").Upcoming(time.Now(), 0, nil); runs != nil {
		t.Errorf("n=0 produced runs: %v", runs)
	}
}

// The robfig evaluator and Admits must agree on which days fire.
func TestUpcomingAgreesWithAdmits(t *testing.T) {
	expressions := []string{
		"0 0 1,15 * 0",
		"0 0 * * 0",
		"0 0 1,15 * *",
		"0 0 * * *",
		"0 0 */15 * 1",
		"0 0 1-7 * 1",
		"0 0 * 6 5-7",
		"0 0 * * */2",
		"0 0 *,5 * 1",
		"0 0 */1 * 1",
	}
	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			job := MustParseJob(expression)
			want := admittedDays(job, 2026, time.June)

			var got []int
			from := utc(2026, time.May, 31, 23, 59)
			for {
				next := job.Next(from, time.UTC)
				if next.IsZero() || next.Month() != time.June {
					break
				}
				got = append(got, next.Day())
				from = next
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("robfig days = %v, Admits days = %v", got, want)
			}
		})
	}
}
