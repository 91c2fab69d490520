package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/chartkit/internal/config"
	"github.com/rileyhilliard/chartkit/internal/logger"
	"github.com/rileyhilliard/chartkit/internal/ui"
)

// Global flags
var (
	configFlag  string
	verboseFlag bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "chartkit",
	Short: "Render data files as SVG charts",
	Long: `chartkit turns YAML, JSON, CSV and Excel data into charts.

Six chart kinds share one layout engine: area, bar, pie, radar,
radial (gauge) and sparkline. Render them to SVG, or preview them
interactively in the terminal.

Examples:
  chartkit render area --data visits.csv --out visits.svg
  chartkit render pie --data browsers.yaml --variant donut
  chartkit preview bar --data sales.xlsx --watch`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
}

// setupOutput configures colors and the default logger before any
// command runs.
func setupOutput(cmd *cobra.Command, args []string) error {
	mode := ui.ColorAuto
	if cfg, _, err := config.LoadOrDefault(configFlag); err == nil {
		mode = cfg.Output.Color
	}
	if noColorFlag {
		mode = ui.ColorNever
	}
	ui.ConfigureColor(mode, os.Stdout)

	level := ""
	if verboseFlag {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Component:     "cli",
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger.SetDefault(log)
	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		msg := strings.TrimRight(err.Error(), "\n")
		fmt.Fprintln(os.Stderr, ui.ErrorStyle().Render(msg))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: nearest .chartkit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}
