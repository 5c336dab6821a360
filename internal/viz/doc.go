// Package viz runs the bar engine inside a Bubble Tea terminal program.
//
// The canvas is drawn with half-block characters, two pixel rows per line,
// next to a stats panel with an asciigraph history of the mean bar level.
//
// # Key Bindings
//
//	Q, Esc, Ctrl+C - Quit
//
// Nothing else is interactive; the animation is driven purely by the tick.
package viz
