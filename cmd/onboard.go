package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cronviz/cronviz/internal/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Write a config file with default values",
	RunE:  runOnboard,
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}
	out := cmd.OutOrStdout()

	if _, err := os.Stat(cfgPath); err == nil {
		// Refresh: keep the file's values, add any new keys. Flag and
		// environment overrides are not persisted.
		existing, err := config.LoadFile(cfgPath)
		if err != nil {
			return err
		}
		if err := config.Save(existing, cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Config refreshed at %s\n", cfgPath)
		return nil
	}

	def := config.DefaultConfig()
	def.Schedules = map[string]string{"demo": config.DefaultSchedule}
	if err := config.Save(&def, cfgPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Created config at %s\n", cfgPath)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Save your schedules under \"schedules\" in the config")
	fmt.Fprintln(out, "  2. Look at one: cronviz week demo")
	return nil
}
