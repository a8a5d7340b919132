package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cronviz/cronviz/internal/render"
	"github.com/cronviz/cronviz/internal/schedule"
	"github.com/cronviz/cronviz/internal/timeline"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatDebug = "debug"
)

// ---- day -------------------------------------------------------------------

var (
	dayDate   string
	dayFormat string
)

var dayCmd = &cobra.Command{
	Use:   "day [schedule]",
	Short: "Show every minute a schedule fires on one date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(dayFormat, formatText, formatJSON, formatDebug); err != nil {
			return err
		}
		set, err := loadSchedule(args)
		if err != nil {
			return err
		}
		c, err := newContainer(cmd, 0)
		if err != nil {
			return err
		}
		date, err := resolveDate(dayDate, c.Location())
		if err != nil {
			return err
		}

		day := timeline.BuildDay(set, date)
		out := cmd.OutOrStdout()
		switch dayFormat {
		case formatJSON:
			return printJSON(out, day)
		case formatDebug:
			fmt.Fprint(out, render.Debug(day))
			return nil
		}
		fmt.Fprintln(out, c.Renderer().Day(set, day))
		return nil
	},
}

func init() {
	dayCmd.Flags().StringVarP(&dayDate, "date", "d", "", "Date as YYYY-MM-DD (default today)")
	dayCmd.Flags().StringVarP(&dayFormat, "format", "f", formatText, "Output format: text, json or debug")
}

// ---- week ------------------------------------------------------------------

var (
	weekDate   string
	weekFormat string
	weekCells  int
)

var weekCmd = &cobra.Command{
	Use:   "week [schedule]",
	Short: "Show the seven days of the week containing a date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(weekFormat, formatText, formatJSON, formatDebug); err != nil {
			return err
		}
		set, err := loadSchedule(args)
		if err != nil {
			return err
		}
		c, err := newContainer(cmd, weekCells)
		if err != nil {
			return err
		}
		date, err := resolveDate(weekDate, c.Location())
		if err != nil {
			return err
		}

		week := timeline.BuildWeek(set, date, c.FirstWeekday())
		out := cmd.OutOrStdout()
		switch weekFormat {
		case formatJSON:
			return printJSON(out, week)
		case formatDebug:
			for _, day := range week.Days {
				fmt.Fprint(out, render.Debug(day))
			}
			return nil
		}
		fmt.Fprintln(out, c.Renderer().Week(set, week))
		return nil
	},
}

func init() {
	weekCmd.Flags().StringVarP(&weekDate, "date", "d", "", "Any date of the week as YYYY-MM-DD (default today)")
	weekCmd.Flags().StringVarP(&weekFormat, "format", "f", formatText, "Output format: text, json or debug")
	weekCmd.Flags().IntVar(&weekCells, "cells", render.DefaultBarCells, "Cells per day row")
}

// ---- month -----------------------------------------------------------------

var (
	monthYear   int
	monthMonth  int
	monthCount  int
	monthFormat string
)

var monthCmd = &cobra.Command{
	Use:   "month [schedule]",
	Short: "Show a calendar month with per-day thumbnails",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(monthFormat, formatText, formatJSON, formatDebug); err != nil {
			return err
		}
		set, err := loadSchedule(args)
		if err != nil {
			return err
		}
		c, err := newContainer(cmd, 0)
		if err != nil {
			return err
		}

		today := schedule.DateOf(time.Now().In(c.Location()))
		year, month := monthYear, time.Month(monthMonth)
		if year == 0 {
			year = today.Year
		}
		if month == 0 {
			month = today.Month
		}
		if month < time.January || month > time.December {
			return fmt.Errorf("--month %d outside [1-12]", monthMonth)
		}
		if monthCount < 1 {
			return fmt.Errorf("--months must be at least 1")
		}

		months, err := timeline.BuildMonths(context.Background(), set, year, month, monthCount, c.FirstWeekday())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch monthFormat {
		case formatJSON:
			if len(months) == 1 {
				return printJSON(out, months[0])
			}
			return printJSON(out, months)
		case formatDebug:
			for _, m := range months {
				for _, day := range m.Days {
					fmt.Fprint(out, render.Debug(day))
				}
			}
			return nil
		}
		views := make([]string, len(months))
		for i, m := range months {
			views[i] = c.Renderer().Month(set, m)
		}
		fmt.Fprintln(out, strings.Join(views, "\n\n"))
		return nil
	},
}

func init() {
	monthCmd.Flags().IntVarP(&monthYear, "year", "y", 0, "Year (default current)")
	monthCmd.Flags().IntVarP(&monthMonth, "month", "m", 0, "Month 1-12 (default current)")
	monthCmd.Flags().IntVarP(&monthCount, "months", "n", 1, "Number of consecutive months")
	monthCmd.Flags().StringVarP(&monthFormat, "format", "f", formatText, "Output format: text, json or debug")
}

// ---- helpers ---------------------------------------------------------------

// loadSchedule parses the optional schedule argument, which may name a
// schedule saved in the config.
func loadSchedule(args []string) (*schedule.Set, error) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	return schedule.Parse(cfg.ResolveSchedule(arg))
}

func resolveDate(raw string, loc *time.Location) (schedule.Date, error) {
	if raw == "" {
		return schedule.DateOf(time.Now().In(loc)), nil
	}
	d, err := schedule.ParseDate(raw)
	if err != nil {
		return schedule.Date{}, fmt.Errorf("invalid --date %q: %w", raw, err)
	}
	return d, nil
}

// checkFormat rejects a --format value outside allowed.
func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unknown --format %q (want %s)", format, strings.Join(allowed, ", "))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
