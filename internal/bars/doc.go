// Package bars provides the core types shared by the bar visualizer.
//
// The package defines the data model and the capabilities the engine needs
// from its host:
//
//   - [State]: one bar slot (index, target height, displayed height)
//   - [Config]: immutable visualizer geometry and timing
//   - [ColorStop], [RGB]: gradient description
//   - [Surface]: minimal "fill rectangle with color" drawing capability
//   - [Host]: provider of a [Surface] at setup time
//
// # Geometry
//
// Bars grow upward from the bottom edge of the canvas. Bar i occupies the
// half-open rectangle
//
//	x: [i*(w+spacing), i*(w+spacing)+w)
//	y: [height-h, height)
//
// where w is [Config.EffectiveBarWidth] and h the bar's displayed height.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent mutation. The engine owns
// every [State] slice and the [Surface] it draws into.
package bars
