// Package ui provides the terminal output pieces of the chartkit CLI:
// semantic colors, status symbols, color swatches, block sparklines and
// simple tables.
//
// # Colors
//
// Colors are lipgloss colors. ConfigureColor picks the color profile once
// at startup from the output.color setting:
//
//	auto    color when stdout is a terminal, following the environment
//	always  true color regardless of the output
//	never   plain text
//
// # Symbols
//
//	SymbolSuccess  (checkmark)  - a file was written
//	SymbolFail     (X)          - an operation failed
//	SymbolWarning  (triangle)   - something was skipped or fell back
//	SymbolSwatch   (block)      - one palette color
package ui
