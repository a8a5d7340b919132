package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cronviz/cronviz/internal/schedule"
)

// ---- describe --------------------------------------------------------------

var describeCmd = &cobra.Command{
	Use:   "describe [schedule]",
	Short: "Describe a schedule in plain English",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadSchedule(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, job := range set.Jobs() {
			fmt.Fprintf(out, "Job %d  %-20s %s\n", i+1, job.Raw(), job.Description())
		}
		return nil
	},
}

// ---- next ------------------------------------------------------------------

var (
	nextCount  int
	nextFrom   string
	nextFormat string
)

var nextCmd = &cobra.Command{
	Use:   "next [schedule]",
	Short: "List the next times a schedule fires",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(nextFormat, formatText, formatJSON); err != nil {
			return err
		}
		set, err := loadSchedule(args)
		if err != nil {
			return err
		}
		if nextCount < 1 {
			return fmt.Errorf("--count must be at least 1")
		}
		c, err := newContainer(cmd, 0)
		if err != nil {
			return err
		}

		from := time.Now()
		if nextFrom != "" {
			if from, err = time.Parse(time.RFC3339, nextFrom); err != nil {
				return fmt.Errorf("invalid --from %q: %w", nextFrom, err)
			}
		}

		runs := set.Upcoming(from, nextCount, c.Location())
		out := cmd.OutOrStdout()
		if nextFormat == formatJSON {
			return printJSON(out, runs)
		}
		fmt.Fprintln(out, c.Renderer().Upcoming(runs, c.Location()))
		return nil
	},
}

func init() {
	nextCmd.Flags().IntVarP(&nextCount, "count", "c", 10, "Number of runs")
	nextCmd.Flags().StringVar(&nextFrom, "from", "", "Start instant as RFC 3339 (default now)")
	nextCmd.Flags().StringVarP(&nextFormat, "format", "f", formatText, "Output format: text or json")
}

// ---- validate --------------------------------------------------------------

var validateCmd = &cobra.Command{
	Use:   "validate [schedule]",
	Short: "Check a schedule and report the first error",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadSchedule(args)
		out := cmd.OutOrStdout()
		if err != nil {
			var jobErr *schedule.JobError
			if errors.As(err, &jobErr) && jobErr.Index >= 0 {
				fmt.Fprintf(out, "✗ job %d: %s\n", jobErr.Index+1, jobErr.Segment)
			}
			var fieldErr *schedule.FieldError
			if errors.As(err, &fieldErr) {
				fmt.Fprintf(out, "  field: %s\n  token: %q\n  %s\n", fieldErr.Field, fieldErr.Token, fieldErr.Detail)
			}
			return err
		}
		fmt.Fprintf(out, "✓ %d job(s) valid\n", set.Len())
		for i, job := range set.Jobs() {
			fmt.Fprintf(out, "  Job %d  %s\n", i+1, job.Raw())
		}
		return nil
	},
}
