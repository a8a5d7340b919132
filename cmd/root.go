// Package cmd implements the cronviz CLI using cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cronviz/cronviz/internal/config"
	"github.com/cronviz/cronviz/internal/container"
)

const version = "0.1.0"

var (
	configPath   string
	verbose      bool
	noColor      bool
	firstWeekday string
	timezone     string

	// cfg is loaded once per invocation in the persistent pre-run.
	cfg *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cronviz",
	Short: "cronviz shows when cron schedules fire",
	Long: `cronviz evaluates one or more cron expressions, separated by "|", and
shows the minutes they fire on a day, a week or a calendar month.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default ~/.cronviz/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	flags.BoolVar(&noColor, "no-color", false, "Disable colors")
	flags.StringVar(&firstWeekday, "first-weekday", "", "First day of the week (overrides config)")
	flags.StringVar(&timezone, "tz", "", "IANA time zone (overrides config)")

	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(statusCmd)
}

// setup loads the config, applies the global overrides and installs the
// logger.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if firstWeekday != "" {
		loaded.FirstWeekday = firstWeekday
	}
	if timezone != "" {
		loaded.Timezone = timezone
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(level))
	return nil
}

// newLogger writes text to a terminal and JSON otherwise.
func newLogger(level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, options))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, options))
}

// newContainer wires the services for a command writing to cmd's output.
func newContainer(cmd *cobra.Command, barCells int) (*container.Container, error) {
	return container.New(cfg, container.Output{
		W:        cmd.OutOrStdout(),
		Plain:    noColor,
		BarCells: barCells,
	})
}
