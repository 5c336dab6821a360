// Package surface provides the drawable surfaces the hosts hand to the engine.
//
//   - [Image]: an in-memory RGBA canvas, used headless and by the window hosts
//   - [Cells]: a pixel grid printed to a terminal as "▀" half blocks, two
//     pixel rows per text line
//
// Both count invalidations so a host can tell when a new frame is ready.
package surface
