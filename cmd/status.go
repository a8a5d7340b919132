package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cronviz/cronviz/internal/config"
	"github.com/cronviz/cronviz/internal/schedule"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the effective configuration and saved schedules",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}
	out := cmd.OutOrStdout()

	cfgMark := "✗"
	if _, err := os.Stat(cfgPath); err == nil {
		cfgMark = "✓"
	}
	fmt.Fprintf(out, "Config:        %s %s\n", cfgPath, cfgMark)

	first, _ := cfg.Weekday()
	loc, _ := cfg.Location()
	fmt.Fprintf(out, "First weekday: %s\n", first)
	fmt.Fprintf(out, "Time zone:     %s\n", loc)
	fmt.Fprintf(out, "Thumbnail:     %d cells\n", cfg.ThumbnailCells)
	fmt.Fprintf(out, "Server:        %s\n\n", cfg.Server.Addr)

	if len(cfg.Schedules) == 0 {
		fmt.Fprintln(out, "No saved schedules.")
		return nil
	}
	names := make([]string, 0, len(cfg.Schedules))
	for name := range cfg.Schedules {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "Schedules:")
	for _, name := range names {
		raw := cfg.Schedules[name]
		mark := "✓"
		if _, err := schedule.Parse(raw); err != nil {
			mark = "✗ " + err.Error()
		}
		fmt.Fprintf(out, "  %-20s %s %s\n", name, raw, mark)
	}
	return nil
}
