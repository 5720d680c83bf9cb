// Package report prints search results as a fixed-width table.
//
// Columns: Algorithm | Result | Depth | Cost | Time | Expanded.
// Depth and Cost are 0 unless the goal was found; Time is wall-clock seconds.
//
// A Printer styles the header and the outcome cell with lipgloss. Plain mode
// writes the same padded text without escape codes and is what AutoPlain picks
// when stdout is not a terminal, so piped output stays grep-able.
package report
