package timeline

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Month
		day   int
		first time.Weekday
		want  int
	}{
		{"saturday_monday_first", time.October, 17, time.Monday, 12},
		{"saturday_sunday_first", time.October, 17, time.Sunday, 11},
		{"monday_monday_first", time.October, 12, time.Monday, 12},
		{"sunday_monday_first", time.October, 18, time.Monday, 12},
		{"sunday_sunday_first", time.October, 18, time.Sunday, 18},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := WeekStart(date(2026, test.date, test.day), test.first)
			if want := date(2026, time.October, test.want); got != want {
				t.Errorf("WeekStart = %v, want %v", got, want)
			}
		})
	}
}

func TestBuildWeek(t *testing.T) {
	set := mustParse(t, "0 9 * * 1-5 | 0 12 * * 0,6")
	week := BuildWeek(set, date(2026, time.October, 15), time.Monday)

	if week.Start != date(2026, time.October, 12) {
		t.Fatalf("Start = %v", week.Start)
	}
	dates := week.Dates()
	for i, d := range dates {
		if want := date(2026, time.October, 12+i); d != want {
			t.Errorf("day %d = %v, want %v", i, d, want)
		}
	}
	for i, day := range week.Days {
		wantMinute := 540
		if i >= 5 {
			wantMinute = 720
		}
		if got := day.Minutes(); len(got) != 1 || got[0] != wantMinute {
			t.Errorf("%v minutes = %v, want [%d]", day.Date, got, wantMinute)
		}
	}
}

func TestBuildWeekAcrossYearBoundary(t *testing.T) {
	// Only January, on the 1st or on Fridays.
	set := mustParse(t, "0 0 1 1 5")
	week := BuildWeek(set, date(2026, time.December, 31), time.Monday)

	if week.Start != date(2026, time.December, 28) {
		t.Fatalf("Start = %v", week.Start)
	}
	// Dec 28 .. Jan 3. Only Jan 1 2027 (a Friday) qualifies; the December
	// dates fail the month field.
	for _, day := range week.Days {
		want := day.Date == date(2027, time.January, 1)
		if got := !day.Empty(); got != want {
			t.Errorf("%v active = %v, want %v", day.Date, got, want)
		}
	}
}

func TestBuildMonthThirtyDays(t *testing.T) {
	set := mustParse(t, "0 12 * * *")

	// June 2026 starts on a Monday.
	tests := []struct {
		first             time.Weekday
		leading, trailing int
	}{
		{time.Monday, 0, 5},
		{time.Sunday, 1, 4},
		{time.Saturday, 2, 3},
	}
	for _, test := range tests {
		t.Run(test.first.String(), func(t *testing.T) {
			m := BuildMonth(set, 2026, time.June, test.first)
			if len(m.Days) != 30 {
				t.Fatalf("len(Days) = %d, want 30", len(m.Days))
			}
			if m.Leading != test.leading || m.Trailing != test.trailing {
				t.Errorf("padding = %d/%d, want %d/%d", m.Leading, m.Trailing, test.leading, test.trailing)
			}
			cells := m.Cells()
			if len(cells)%DaysPerWeek != 0 {
				t.Fatalf("len(Cells) = %d, not a multiple of 7", len(cells))
			}
			nonBlank := 0
			for i, c := range cells {
				if c.Blank() {
					if i >= m.Leading && i < m.Leading+30 {
						t.Errorf("cell %d blank inside the month", i)
					}
					continue
				}
				nonBlank++
			}
			if nonBlank != 30 {
				t.Errorf("non-blank cells = %d, want 30", nonBlank)
			}
			// The 1st lands in the column of its weekday.
			col := (int(time.Monday) - int(test.first) + DaysPerWeek) % DaysPerWeek
			if cells[col].Day == nil || cells[col].Day.Date.Day != 1 {
				t.Errorf("column %d does not hold the 1st", col)
			}
			if m.ActiveDays() != 30 {
				t.Errorf("ActiveDays = %d, want 30", m.ActiveDays())
			}
		})
	}
}

func TestBuildMonthFebruary(t *testing.T) {
	// February 2026 starts on a Sunday and has exactly four weeks.
	m := BuildMonth(mustParse(t, "0 0 1,15 * 0"), 2026, time.February, time.Sunday)
	if m.Leading != 0 || m.Trailing != 0 || len(m.Weeks()) != 4 {
		t.Errorf("padding %d/%d weeks %d, want 0/0 and 4 weeks", m.Leading, m.Trailing, len(m.Weeks()))
	}
	// 1st, 15th and every Sunday (1, 8, 15, 22).
	var active []int
	for _, d := range m.Days {
		if !d.Empty() {
			active = append(active, d.Date.Day)
		}
	}
	if len(active) != 4 || active[0] != 1 || active[1] != 8 || active[2] != 15 || active[3] != 22 {
		t.Errorf("active days = %v, want [1 8 15 22]", active)
	}

	mondayFirst := BuildMonth(mustParse(t, "0 0 * * *"), 2026, time.February, time.Monday)
	if mondayFirst.Leading != 6 || mondayFirst.Trailing != 1 || len(mondayFirst.Weeks()) != 5 {
		t.Errorf("monday-first padding %d/%d weeks %d", mondayFirst.Leading, mondayFirst.Trailing, len(mondayFirst.Weeks()))
	}
}

func TestMonthDay(t *testing.T) {
	m := BuildMonth(mustParse(t, "* * * * *"), 2026, time.April, time.Monday)
	if m.Day(0) != nil || m.Day(31) != nil {
		t.Error("out-of-month days should be nil")
	}
	if d := m.Day(30); d == nil || d.Date != date(2026, time.April, 30) {
		t.Errorf("Day(30) = %v", d)
	}
}

func TestBuildMonthsKeepsOrder(t *testing.T) {
	set := mustParse(t, "0 0 1 * *")
	months, err := BuildMonths(context.Background(), set, 2026, time.November, 4, time.Monday)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		year  int
		month time.Month
	}{{2026, time.November}, {2026, time.December}, {2027, time.January}, {2027, time.February}}
	if len(months) != len(want) {
		t.Fatalf("got %d months, want %d", len(months), len(want))
	}
	for i, m := range months {
		if m.Year != want[i].year || m.Month != want[i].month {
			t.Errorf("month %d = %d-%v, want %d-%v", i, m.Year, m.Month, want[i].year, want[i].month)
		}
		if m.ActiveDays() != 1 {
			t.Errorf("%d-%v ActiveDays = %d, want 1", m.Year, m.Month, m.ActiveDays())
		}
	}
}

func TestBuildMonthsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := BuildMonths(ctx, mustParse(t, "* * * * *"), 2026, time.January, 3, time.Monday)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if months, err := BuildMonths(context.Background(), mustParse(t, "* * * * *"), 2026, time.January, 0, time.Monday); err != nil || months != nil {
		t.Errorf("count 0 = %v, %v", months, err)
	}
}
