// Package render turns a board snapshot into a display-independent frame.
//
// A [Frame] is a flat list of filled rectangles and text runs in window
// coordinates. Displays (raylib window, terminal, SVG file) only paint
// frames; they never look at towers directly.
//
// [Compose] is pure: the same snapshot, iteration and geometry always yield
// an identical frame.
package render
