package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

var weekdayNames = [8]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var monthNames = [13]string{"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

// describeJob renders a job in the style of crontab.guru. It works on the
// field sources; values are already validated so every number is in range.
func describeJob(j Job) string {
	parts := []string{describeTime(j.fields[Minute].source, j.fields[Hour].source)}
	if dom := j.fields[DayOfMonth].source; dom != "*" {
		parts = append(parts, describeDayOfMonth(dom))
	}
	if dow := j.fields[DayOfWeek].source; dow != "*" {
		parts = append(parts, describeDayOfWeek(dow))
	}
	if month := j.fields[Month].source; month != "*" {
		parts = append(parts, describeMonth(month))
	}
	return strings.Join(parts, " ")
}

func describeTime(minute, hour string) string {
	switch {
	case minute == "*" && hour == "*":
		return "Every minute"
	case isDigits(minute) && isDigits(hour):
		return "At " + clock(atoi(hour), atoi(minute))
	case isDigits(minute) && allDigits(hour):
		m := atoi(minute)
		var clocks []string
		for _, h := range strings.Split(hour, ",") {
			clocks = append(clocks, clock(atoi(h), m))
		}
		return "At " + joinList(clocks)
	case hour == "*":
		if strings.HasPrefix(minute, "*/") {
			return "Every " + strings.TrimPrefix(minute, "*/") + " minutes"
		}
		return "Every hour " + describePart(minute, "minute")
	}
	return capitalize(describePart(minute, "minute")) + " " + describePart(hour, "hour")
}

// describePart covers the generic shapes shared by minute and hour.
func describePart(token, unit string) string {
	switch {
	case token == "*":
		return "every " + unit
	case strings.HasPrefix(token, "*/"):
		return fmt.Sprintf("every %s %ss", strings.TrimPrefix(token, "*/"), unit)
	case strings.Contains(token, ","):
		return fmt.Sprintf("at %ss %s", unit, joinList(strings.Split(token, ",")))
	case strings.Contains(token, "/"):
		span, step, _ := strings.Cut(token, "/")
		lo, hi, _ := strings.Cut(span, "-")
		return fmt.Sprintf("every %s %ss from %s through %s", step, unit, lo, hi)
	case strings.Contains(token, "-"):
		lo, hi, _ := strings.Cut(token, "-")
		return fmt.Sprintf("from %s %s through %s", unit, lo, hi)
	}
	return fmt.Sprintf("at %s %s", unit, token)
}

func describeDayOfMonth(token string) string {
	switch {
	case strings.HasPrefix(token, "*/"):
		return fmt.Sprintf("every %s days of the month", strings.TrimPrefix(token, "*/"))
	case allDigits(token):
		days := strings.Split(token, ",")
		for i, d := range days {
			days[i] = ordinal(atoi(d))
		}
		return "on the " + joinList(days) + " of the month"
	case !strings.ContainsAny(token, ",/") && strings.Contains(token, "-"):
		lo, hi, _ := strings.Cut(token, "-")
		return fmt.Sprintf("on days %s through %s of the month", lo, hi)
	}
	return "on days " + token + " of the month"
}

func describeDayOfWeek(token string) string {
	switch token {
	case "1-5":
		return "on weekdays (Monday through Friday)"
	case "0-6", "1-7", "0-7":
		return "every day"
	case "0,6", "6,0", "6,7", "6-7":
		return "on weekends"
	}
	if strings.HasPrefix(token, "*/") {
		return fmt.Sprintf("every %s days of the week", strings.TrimPrefix(token, "*/"))
	}
	return "on " + describeNamed(token, weekdayNames[:])
}

func describeMonth(token string) string {
	if strings.HasPrefix(token, "*/") {
		return fmt.Sprintf("every %s months", strings.TrimPrefix(token, "*/"))
	}
	if !strings.ContainsAny(token, ",/") && strings.Contains(token, "-") {
		return "from " + describeNamed(token, monthNames[:])
	}
	return "in " + describeNamed(token, monthNames[:])
}

// describeNamed spells out a list of values and ranges using names.
func describeNamed(token string, names []string) string {
	var items []string
	for _, atom := range strings.Split(token, ",") {
		span, step, stepped := strings.Cut(atom, "/")
		var text string
		if lo, hi, ok := strings.Cut(span, "-"); ok {
			text = names[atoi(lo)] + " through " + names[atoi(hi)]
		} else if span == "*" {
			text = "every one"
		} else {
			text = names[atoi(span)]
		}
		if stepped {
			text += " (every " + step + ")"
		}
		items = append(items, text)
	}
	return joinList(items)
}

func clock(hour, minute int) string {
	switch {
	case hour == 0 && minute == 0:
		return "midnight"
	case hour == 12 && minute == 0:
		return "noon"
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

// joinList joins with commas and a final "and": "a", "a and b", "a, b, and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

func allDigits(list string) bool {
	for _, item := range strings.Split(list, ",") {
		if !isDigits(item) {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
