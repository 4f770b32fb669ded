// Package viz shows the animation in a terminal.
//
// Frames are rasterised onto a character grid where one cell covers a
// fixed block of window pixels, then painted with lipgloss colors inside a
// Bubble Tea program.
//
// # Key Bindings
//
//	Q / Esc / Ctrl+C - close the display
package viz
