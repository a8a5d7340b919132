package schedule

// MinutesPerDay is the length of a day timeline.
const MinutesPerDay = 24 * 60

// Admits reports whether the job runs at all on date.
//
// The month must match. Day-of-month and day-of-week follow the POSIX
// rule: when both are restricted the date needs to satisfy only one of
// them; when one is a wildcard only the other one counts.
func (j Job) Admits(date Date) bool {
	if !j.fields[Month].Has(int(date.Month)) {
		return false
	}

	dom, dow := j.fields[DayOfMonth], j.fields[DayOfWeek]
	domHit := dom.Has(date.Day)
	dowHit := dow.Has(int(date.Weekday()))

	switch {
	case dom.Wildcard() && dow.Wildcard():
		return true
	case dom.Wildcard():
		return dowHit
	case dow.Wildcard():
		return domHit
	default:
		return domHit || dowHit
	}
}

// FiringMinutes returns the minute-of-day offsets, ascending, at which the
// job fires on any admitted date.
func (j Job) FiringMinutes() []int {
	hours, minutes := j.fields[Hour].Values(), j.fields[Minute].Values()
	out := make([]int, 0, len(hours)*len(minutes))
	for _, h := range hours {
		for _, m := range minutes {
			if offset := h*60 + m; offset < MinutesPerDay {
				out = append(out, offset)
			}
		}
	}
	return out
}

// MinutesOn is FiringMinutes for an admitted date and nil otherwise.
func (j Job) MinutesOn(date Date) []int {
	if !j.Admits(date) {
		return nil
	}
	return j.FiringMinutes()
}
