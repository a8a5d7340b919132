package timeline

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/cronviz/cronviz/internal/schedule"
)

func mustParse(t *testing.T, raw string) *schedule.Set {
	t.Helper()
	set, err := schedule.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q): %v", raw, err)
	}
	return set
}

func date(year int, month time.Month, day int) schedule.Date {
	return schedule.Date{Year: year, Month: month, Day: day}
}

func TestBuildDayFourTimesADay(t *testing.T) {
	set := mustParse(t, "0 9,12,15,18 * * *")
	for _, d := range []schedule.Date{date(2026, time.June, 1), date(2026, time.December, 31), date(2028, time.February, 29)} {
		day := BuildDay(set, d)
		if got, want := day.Minutes(), []int{540, 720, 900, 1080}; !reflect.DeepEqual(got, want) {
			t.Errorf("%v Minutes() = %v, want %v", d, got, want)
		}
		if day.Count() != 4 {
			t.Errorf("%v Count() = %d, want 4", d, day.Count())
		}
	}
}

func TestBuildDayAttribution(t *testing.T) {
	set := mustParse(t, "0 9 * * * | 0,30 9 * * * | 0 10 * * 1")
	// Saturday: job 2 (Mondays) is not admitted.
	day := BuildDay(set, date(2026, time.October, 17))

	want := []Execution{
		{Minute: 540, Jobs: []int{0, 1}},
		{Minute: 570, Jobs: []int{1}},
	}
	if got := day.Executions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Executions() = %v, want %v", got, want)
	}
	if got := day.Jobs(540); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("Jobs(540) = %v", got)
	}
	if got := day.JobMinutes(1); !reflect.DeepEqual(got, []int{540, 570}) {
		t.Errorf("JobMinutes(1) = %v", got)
	}
	if day.Fires(600) || day.Jobs(600) != nil {
		t.Error("minute 600 should be empty on a Saturday")
	}
	if day.Fires(-1) || day.Fires(MinutesPerDay) {
		t.Error("out-of-range minutes must not fire")
	}
}

func TestBuildDayEmpty(t *testing.T) {
	set := mustParse(t, "0 0 1 1 *")
	day := BuildDay(set, date(2026, time.June, 2))
	if !day.Empty() || day.Count() != 0 || len(day.Executions()) != 0 {
		t.Errorf("expected empty day, got %d executions", day.Count())
	}
	for m, active := range day.Active() {
		if active {
			t.Fatalf("minute %d active on empty day", m)
		}
	}
}

// The union of jobs must not depend on their order; only attribution may.
func TestBuildDayUnionIsOrderIndependent(t *testing.T) {
	jobs := []string{"*/15 9-17 * * *", "27 14 1,15 * *", "0 0 * * 0", "3-10 0-4,18-23 * * *"}
	forward := mustParse(t, strings.Join(jobs, " | "))

	reversed := append([]string(nil), jobs...)
	sort.Sort(sort.Reverse(sort.StringSlice(reversed)))
	backward := mustParse(t, strings.Join(reversed, " | "))

	for d := 1; d <= 30; d++ {
		a := BuildDay(forward, date(2026, time.June, d))
		b := BuildDay(backward, date(2026, time.June, d))
		if !reflect.DeepEqual(a.Minutes(), b.Minutes()) {
			t.Fatalf("June %d: union differs after reordering", d)
		}

		var isolated []int
		seen := map[int]bool{}
		for _, raw := range jobs {
			for _, m := range BuildDay(mustParse(t, raw), date(2026, time.June, d)).Minutes() {
				if !seen[m] {
					seen[m] = true
					isolated = append(isolated, m)
				}
			}
		}
		sort.Ints(isolated)
		if len(isolated) == 0 {
			isolated = []int{}
		}
		if !reflect.DeepEqual(a.Minutes(), isolated) {
			t.Fatalf("June %d: union of isolated jobs differs from combined timeline", d)
		}
	}
}

func TestDayJobsReturnsCopy(t *testing.T) {
	day := BuildDay(mustParse(t, "0 9 * * *"), date(2026, time.June, 1))
	jobs := day.Jobs(540)
	jobs[0] = 99
	if got := day.Jobs(540); got[0] != 0 {
		t.Error("Jobs must return a copy")
	}
}

func TestDayJSON(t *testing.T) {
	day := BuildDay(mustParse(t, "0 9 * * * | 0 9 * * 1"), date(2026, time.June, 1))
	data, err := json.Marshal(day)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"date":"2026-06-01","count":1,"executions":[{"minute":540,"jobs":[0,1]}]}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestClock(t *testing.T) {
	for minute, want := range map[int]string{0: "00:00", 540: "09:00", 1439: "23:59", 75: "01:15"} {
		if got := Clock(minute); got != want {
			t.Errorf("Clock(%d) = %q, want %q", minute, got, want)
		}
	}
}
