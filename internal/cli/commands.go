package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/chartkit/internal/config"
	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/logger"
	"github.com/rileyhilliard/chartkit/internal/ui"
)

// Command-specific flags
var (
	renderChart  ChartFlags
	renderData   DataFlags
	renderOut    string
	renderHide   []string
	renderHoverX float64
	renderHoverY float64
	renderID     string

	previewChart ChartFlags
	previewData  DataFlags
	previewHide  []string
	previewWatch bool

	initForce          bool
	initNonInteractive bool
	initKind           string
	initVariant        string
	initPalette        string
	initWidth          float64
	initHeight         float64
	initNoAnimate      bool

	palettesHex bool
)

// renderCmd draws a chart to SVG
var renderCmd = &cobra.Command{
	Use:   "render <kind>",
	Short: "Render a chart to SVG",
	Long: `Render a chart from a data file to SVG.

The SVG shows the chart fully drawn. Options come from the built-in
defaults for the kind, then .chartkit.yaml, then flags.

Examples:
  chartkit render area --data visits.csv --out visits.svg
  chartkit render bar --data sales.xlsx --sheet Q2 --variant stacked
  chartkit render pie --data browsers.yaml --hide Safari > pie.svg
  chartkit render area --data visits.csv --hover-x 200 --hover-y 100`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Render(RenderOptions{
			Kind:       args[0],
			ConfigPath: configFlag,
			Chart:      renderChart,
			Data:       renderData,
			Out:        renderOut,
			Hide:       renderHide,
			Hover:      cmd.Flags().Changed("hover-x") || cmd.Flags().Changed("hover-y"),
			HoverX:     renderHoverX,
			HoverY:     renderHoverY,
			ID:         renderID,
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
			Logger:     logger.Default(),
		})
	},
}

// previewCmd opens the terminal preview
var previewCmd = &cobra.Command{
	Use:   "preview <kind>",
	Short: "Preview a chart in the terminal",
	Long: `Draw a chart in the terminal with its entrance animation.

Move the mouse over the plot to inspect values. Number keys or clicks on
the legend toggle series, r replays the animation.

Examples:
  chartkit preview area --data visits.csv
  chartkit preview radar --data skills.json --watch`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Preview(PreviewOptions{
			Kind:       args[0],
			ConfigPath: configFlag,
			Chart:      previewChart,
			Data:       previewData,
			Hide:       previewHide,
			Watch:      previewWatch,
			Logger:     logger.Default(),
		})
	},
}

// initCmd creates a new .chartkit.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .chartkit.yaml configuration",
	Long: `Create a .chartkit.yaml file in the current directory.

Prompts for the default chart kind, palette, size and animation.

Examples:
  chartkit init
  chartkit init --non-interactive --palette violet --width 640
  chartkit init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Kind:           initKind,
			Variant:        initVariant,
			Palette:        initPalette,
			Width:          initWidth,
			Height:         initHeight,
			NoAnimate:      initNoAnimate,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
			Out:            cmd.OutOrStdout(),
		})
	},
}

// palettesCmd lists the color palettes
var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List color palettes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		Palettes(cmd.OutOrStdout(), palettesHex)
	},
}

// kindsCmd lists the chart kinds
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List chart kinds and their variants",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		Kinds(cmd.OutOrStdout())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit .chartkit.yaml",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set a dotted key in the nearest .chartkit.yaml. Comments and
formatting of the rest of the file are kept.

Examples:
  chartkit config set defaults.color violet
  chartkit config set charts.bar.variant stacked
  chartkit config set output.dir ~/charts`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(configFlag)
		if err != nil {
			return err
		}
		if path == "" {
			return errors.New(errors.ErrConfig,
				"No config file found",
				"Run 'chartkit init' to create one")
		}
		if err := config.SetValue(path, args[0], args[1]); err != nil {
			return err
		}
		ui.PrintSuccess(cmd.OutOrStdout(), "%s = %s in %s", args[0], args[1], path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(configFlag)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), ui.MutedStyle().Render("(none, using defaults)"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for chartkit.

Examples:
  # Bash
  chartkit completion bash > /etc/bash_completion.d/chartkit

  # Zsh
  chartkit completion zsh > "${fpath[1]}/_chartkit"

  # Fish
  chartkit completion fish > ~/.config/fish/completions/chartkit.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// render command flags
	AddChartFlags(renderCmd, &renderChart)
	AddDataFlags(renderCmd, &renderData)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "SVG file to write (default: stdout)")
	renderCmd.Flags().StringSliceVar(&renderHide, "hide", nil, "series or slice names to hide")
	renderCmd.Flags().Float64Var(&renderHoverX, "hover-x", 0, "render the hover state at this x (pixels)")
	renderCmd.Flags().Float64Var(&renderHoverY, "hover-y", 0, "render the hover state at this y (pixels)")
	renderCmd.Flags().StringVar(&renderID, "id", "", "prefix for gradient ids when embedding several charts")

	// preview command flags
	AddChartFlags(previewCmd, &previewChart)
	AddDataFlags(previewCmd, &previewData)
	previewCmd.Flags().StringSliceVar(&previewHide, "hide", nil, "series or slice names to start hidden")
	previewCmd.Flags().BoolVarP(&previewWatch, "watch", "w", false, "reload when the data file changes")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use flags and defaults")
	initCmd.Flags().StringVar(&initKind, "kind", "", "chart kind to pre-configure")
	initCmd.Flags().StringVar(&initVariant, "variant", "", "variant of --kind")
	initCmd.Flags().StringVar(&initPalette, "palette", "", "default palette")
	initCmd.Flags().Float64Var(&initWidth, "width", 0, "default width in pixels")
	initCmd.Flags().Float64Var(&initHeight, "height", 0, "default height in pixels")
	initCmd.Flags().BoolVar(&initNoAnimate, "no-animate", false, "disable the entrance animation")
	_ = initCmd.RegisterFlagCompletionFunc("kind", completeKinds)
	_ = initCmd.RegisterFlagCompletionFunc("palette", completePalettes)

	palettesCmd.Flags().BoolVar(&palettesHex, "hex", false, "also print the shade table as hex")

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	// Register all commands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}
