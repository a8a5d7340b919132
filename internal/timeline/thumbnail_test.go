package timeline

import (
	"reflect"
	"testing"
	"time"
)

func TestThumbnailKeepsSparseExecutions(t *testing.T) {
	// One execution a day must survive even a very coarse thumbnail.
	day := BuildDay(mustParse(t, "37 13 * * *"), date(2026, time.June, 1))

	for _, cells := range []int{1, 24, 96, 288, 1440} {
		thumb := Thumbnail(day, cells)
		if len(thumb) != cells {
			t.Fatalf("cells=%d: len = %d", cells, len(thumb))
		}
		set := 0
		for _, on := range thumb {
			if on {
				set++
			}
		}
		if set != 1 {
			t.Errorf("cells=%d: %d buckets set, want 1", cells, set)
		}
		if want := (13*60 + 37) * cells / MinutesPerDay; !thumb[want] {
			t.Errorf("cells=%d: bucket %d not set", cells, want)
		}
	}
}

func TestThumbnailDefaultCells(t *testing.T) {
	day := BuildDay(mustParse(t, "4 0 * * *"), date(2026, time.June, 1))
	thumb := Thumbnail(day, 0)
	if len(thumb) != DefaultThumbnailCells {
		t.Fatalf("len = %d, want %d", len(thumb), DefaultThumbnailCells)
	}
	if !thumb[0] || thumb[1] {
		t.Error("minute 4 should fall in the first five-minute bucket only")
	}
	if got := len(Thumbnail(day, 5000)); got != MinutesPerDay {
		t.Errorf("oversized thumbnail len = %d, want %d", got, MinutesPerDay)
	}
}

func TestThumbnailJobs(t *testing.T) {
	day := BuildDay(mustParse(t, "0 6 * * * | 59 6,12 * * * | 1 6 * * *"), date(2026, time.June, 1))
	buckets := ThumbnailJobs(day, 24)
	if got := buckets[6]; !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("hour 6 jobs = %v, want [0 1 2]", got)
	}
	if got := buckets[12]; !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("hour 12 jobs = %v, want [1]", got)
	}
	if buckets[0] != nil {
		t.Errorf("hour 0 jobs = %v, want none", buckets[0])
	}
}
