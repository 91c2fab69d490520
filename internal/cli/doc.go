// Package cli implements the chartkit command-line interface.
//
// Each Cobra command parses its flags into an options struct and hands it
// to a plain function (Render, Preview, Init, Palettes) that does the
// work, so the work can be tested without going through Cobra.
//
// # Command Structure
//
//	chartkit render <kind>     - Render a chart to SVG
//	chartkit preview <kind>    - Interactive terminal preview
//	chartkit init              - Create .chartkit.yaml
//	chartkit palettes          - List color palettes
//	chartkit kinds             - List chart kinds and their variants
//	chartkit config set <k> <v> - Edit one config value
//	chartkit config path       - Print the config file in use
//	chartkit version
//	chartkit completion <shell>
//
// # Option Precedence
//
// Chart options resolve in layers: built-in per-kind defaults, then the
// config file's defaults section, then its charts.<kind> section, then
// command-line flags. Data keys that are left unset are inferred from the
// first record.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command. ChartFlags and AddChartFlags provide the chart option flags
// shared by render and preview.
package cli
