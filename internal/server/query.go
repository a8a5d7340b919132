package server

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cronviz/cronviz/internal/schedule"
	"github.com/cronviz/cronviz/internal/timeline"
)

const (
	defaultRunCount = 10
	maxRunCount     = 1000
	maxMonthCount   = 24
)

var errUnknownView = errors.New("unknown view")

// query is one request against the engine, from a URL or a websocket
// message.
type query struct {
	View     string `json:"view"`
	Schedule string `json:"schedule"`
	Date     string `json:"date,omitempty"`
	Year     int    `json:"year,omitempty"`
	Month    int    `json:"month,omitempty"`
	Count    int    `json:"count,omitempty"`
	From     string `json:"from,omitempty"`
}

func queryFromURL(view string, values url.Values) (query, error) {
	q := query{
		View:     view,
		Schedule: values.Get("schedule"),
		Date:     values.Get("date"),
		From:     values.Get("from"),
	}
	for _, p := range []struct {
		key string
		dst *int
	}{{"year", &q.Year}, {"month", &q.Month}, {"count", &q.Count}} {
		raw := values.Get(p.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("%s: invalid number %q", p.key, raw)
		}
		*p.dst = n
	}
	return q, nil
}

type jobView struct {
	Index       int    `json:"index"`
	Raw         string `json:"raw"`
	Description string `json:"description"`
}

type describeView struct {
	Schedule    string    `json:"schedule"`
	Description string    `json:"description"`
	Jobs        []jobView `json:"jobs"`
}

type dayView struct {
	Date       schedule.Date        `json:"date"`
	Weekday    string               `json:"weekday"`
	Count      int                  `json:"count"`
	Executions []timeline.Execution `json:"executions"`
	Thumbnail  string               `json:"thumbnail"`
}

type weekView struct {
	Start schedule.Date `json:"start"`
	Days  []dayView     `json:"days"`
}

type monthView struct {
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	FirstWeekday string    `json:"first_weekday"`
	Leading      int       `json:"leading"`
	Trailing     int       `json:"trailing"`
	ActiveDays   int       `json:"active_days"`
	Days         []dayView `json:"days"`
}

type nextView struct {
	Timezone string         `json:"timezone"`
	Runs     []schedule.Run `json:"runs"`
}

func (s *Server) newDayView(day *timeline.Day) dayView {
	var thumb strings.Builder
	for _, on := range timeline.Thumbnail(day, s.opts.ThumbnailCells) {
		if on {
			thumb.WriteByte('1')
		} else {
			thumb.WriteByte('0')
		}
	}
	execs := day.Executions()
	if execs == nil {
		execs = []timeline.Execution{}
	}
	return dayView{
		Date:       day.Date,
		Weekday:    day.Date.Weekday().String(),
		Count:      day.Count(),
		Executions: execs,
		Thumbnail:  thumb.String(),
	}
}

func (s *Server) today() schedule.Date {
	return schedule.DateOf(s.now().In(s.opts.Location))
}

func (s *Server) date(raw string) (schedule.Date, error) {
	if raw == "" {
		return s.today(), nil
	}
	d, err := schedule.ParseDate(raw)
	if err != nil {
		return schedule.Date{}, fmt.Errorf("date: %w", err)
	}
	return d, nil
}

// answer evaluates q. Errors are the caller's fault: bad schedule or bad
// parameters.
func (s *Server) answer(q query) (any, error) {
	set, err := schedule.Parse(s.opts.Resolve(q.Schedule))
	if err != nil {
		return nil, err
	}

	switch q.View {
	case "describe":
		v := describeView{Schedule: set.String(), Description: set.Description()}
		for i, job := range set.Jobs() {
			v.Jobs = append(v.Jobs, jobView{Index: i, Raw: job.Raw(), Description: job.Description()})
		}
		return v, nil

	case "day":
		d, err := s.date(q.Date)
		if err != nil {
			return nil, err
		}
		return s.newDayView(timeline.BuildDay(set, d)), nil

	case "week":
		d, err := s.date(q.Date)
		if err != nil {
			return nil, err
		}
		w := timeline.BuildWeek(set, d, s.opts.FirstWeekday)
		v := weekView{Start: w.Start}
		for _, day := range w.Days {
			v.Days = append(v.Days, s.newDayView(day))
		}
		return v, nil

	case "month":
		today := s.today()
		year, month := q.Year, time.Month(q.Month)
		if year == 0 {
			year = today.Year
		}
		if month == 0 {
			month = today.Month
		}
		if month < time.January || month > time.December {
			return nil, fmt.Errorf("month: %d outside [1-12]", q.Month)
		}
		m := timeline.BuildMonth(set, year, month, s.opts.FirstWeekday)
		v := monthView{
			Year:         m.Year,
			Month:        int(m.Month),
			FirstWeekday: m.FirstWeekday.String(),
			Leading:      m.Leading,
			Trailing:     m.Trailing,
			ActiveDays:   m.ActiveDays(),
		}
		for _, day := range m.Days {
			v.Days = append(v.Days, s.newDayView(day))
		}
		return v, nil

	case "next":
		count := q.Count
		switch {
		case count == 0:
			count = defaultRunCount
		case count < 0 || count > maxRunCount:
			return nil, fmt.Errorf("count: %d outside [1-%d]", count, maxRunCount)
		}
		from := s.now()
		if q.From != "" {
			if from, err = time.Parse(time.RFC3339, q.From); err != nil {
				return nil, fmt.Errorf("from: %w", err)
			}
		}
		runs := set.Upcoming(from, count, s.opts.Location)
		if runs == nil {
			runs = []schedule.Run{}
		}
		return nextView{Timezone: s.opts.Location.String(), Runs: runs}, nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownView, q.View)
}
