// Package preview renders charts in the terminal.
//
// The chart geometry is computed at a virtual pixel size of two pixels per
// column and four per row, then rasterized onto braille cells, so each
// terminal cell holds a 2x4 dot matrix:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈
//	Row 1:   ⠂      ⠐
//	Row 2:   ⠄      ⠠
//	Row 3:   ⡀      ⢀
//
// Model is a Bubble Tea program around one chart.Chart. Frame ticks drive
// the entrance animation, mouse motion moves the hover crosshair, number
// keys toggle series, and an optional file watcher reloads the data.
package preview
