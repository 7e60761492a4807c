// Package table provides a two-dimensional table layout engine with pinned,
// scroll-synchronized headers.
//
// A Table stacks lines (rows, or columns when the line axis is horizontal)
// of cells. Every line and every element slot is sized independently by a
// shared TableLayout: fixed parts keep their size, flexible parts grow to the
// largest measurement they receive in a pass. A HeaderTable adds a line
// header and an element header that stay aligned with the body while it
// scrolls, resizes, or changes cell sizes.
//
// Users import this single package for the public API: orchestration,
// lines, headers, painting hooks and the layout types re-exported from the
// internal layout engine. Hosts (a terminal program, a fyne window, an HTML
// exporter) supply a Surface to paint on and measure their own cells.
package table
