package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rileyhilliard/chartkit/internal/config"
	"github.com/rileyhilliard/chartkit/internal/errors"
	"github.com/rileyhilliard/chartkit/internal/ui"
	"github.com/rileyhilliard/chartkit/pkg/chart"
	"github.com/rileyhilliard/chartkit/pkg/palette"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write .chartkit.yaml into; empty means cwd
	Kind           string // Chart kind to pre-configure
	Variant        string
	Palette        string
	Width, Height  float64
	NoAnimate      bool
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use flags and defaults
	Out            io.Writer
}

// initAnswers are the values collected by the form.
type initAnswers struct {
	kind    string
	variant string
	palette string
	width   string
	height  string
	animate bool
}

// Init creates a new .chartkit.yaml configuration file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	configPath := filepath.Join(opts.Dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	a := defaultAnswers(opts)
	if !opts.NonInteractive {
		if err := askInit(&a); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive flag")
		}
	}

	cfg, err := buildInitConfig(a)
	if err != nil {
		return err
	}
	if err := config.Write(configPath, cfg); err != nil {
		return err
	}

	ui.PrintSuccess(out, "Created %s", configPath)
	fmt.Fprintf(out, "  Try: chartkit render %s --data <file> --out chart.svg\n", a.kind)
	return nil
}

func defaultAnswers(opts InitOptions) initAnswers {
	a := initAnswers{
		kind:    "area",
		palette: palette.Default.String(),
		width:   strconv.FormatFloat(chart.DefaultWidth, 'f', -1, 64),
		height:  strconv.FormatFloat(chart.DefaultHeight, 'f', -1, 64),
		animate: !opts.NoAnimate,
		variant: opts.Variant,
	}
	if opts.Kind != "" {
		a.kind = opts.Kind
	}
	if opts.Palette != "" {
		a.palette = opts.Palette
	}
	if opts.Width > 0 {
		a.width = strconv.FormatFloat(opts.Width, 'f', -1, 64)
	}
	if opts.Height > 0 {
		a.height = strconv.FormatFloat(opts.Height, 'f', -1, 64)
	}
	return a
}

func askInit(a *initAnswers) error {
	kinds := make([]huh.Option[string], 0, len(chart.Kinds()))
	for _, k := range chart.Kinds() {
		kinds = append(kinds, huh.NewOption(k.String(), k.String()))
	}
	palettes := make([]huh.Option[string], 0, len(palette.Names()))
	for _, n := range palette.Names() {
		palettes = append(palettes, huh.NewOption(n.String(), n.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Chart kind").
				Description("The kind you render most; other kinds keep their defaults").
				Options(kinds...).
				Value(&a.kind),
			huh.NewSelect[string]().
				Title("Palette").
				Options(palettes...).
				Value(&a.palette),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Width").
				Description("Drawing width in pixels (16-4096)").
				Value(&a.width).
				Validate(validateSize),
			huh.NewInput().
				Title("Height").
				Description("Drawing height in pixels (16-4096)").
				Value(&a.height).
				Validate(validateSize),
			huh.NewConfirm().
				Title("Animate the entrance?").
				Value(&a.animate),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	kind, err := chart.ParseKind(a.kind)
	if err != nil {
		return err
	}
	variants := chart.Variants(kind)
	if len(variants) < 2 {
		return nil
	}
	options := make([]huh.Option[string], len(variants))
	for i, v := range variants {
		options[i] = huh.NewOption(string(v), string(v))
	}
	if a.variant == "" {
		a.variant = string(variants[0])
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Variant").
				Options(options...).
				Value(&a.variant),
		),
	).Run()
}

func validateSize(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 16 || v > 4096 {
		return fmt.Errorf("must be between 16 and 4096")
	}
	return nil
}

// buildInitConfig turns the answers into a config, validating it the same
// way loading does.
func buildInitConfig(a initAnswers) (*config.Config, error) {
	kind, err := chart.ParseKind(a.kind)
	if err != nil {
		return nil, unknownKind(a.kind, err)
	}
	for _, s := range []string{a.width, a.height} {
		if err := validateSize(s); err != nil {
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("Invalid size '%s'", s),
				"Width and height must be numbers between 16 and 4096")
		}
	}
	width, _ := strconv.ParseFloat(strings.TrimSpace(a.width), 64)
	height, _ := strconv.ParseFloat(strings.TrimSpace(a.height), 64)

	cfg := config.DefaultConfig()
	cfg.Defaults.Color = palette.Parse(a.palette).String()
	cfg.Defaults.Width = width
	cfg.Defaults.Height = height
	if !a.animate {
		cfg.Defaults.Animate = config.Bool(false)
	}
	if a.variant != "" {
		cfg.Charts[kind.String()] = config.ChartConfig{
			Variant: string(chart.ParseVariant(kind, a.variant)),
		}
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
