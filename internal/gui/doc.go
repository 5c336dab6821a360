// Package gui hosts the bar engine in a desktop window.
//
// Two backends are available, both driving one engine tick per frame:
//
//   - raylib: bars are drawn straight into the frame between BeginDrawing
//     and EndDrawing
//   - ebiten: fills are recorded during Update and replayed in Draw
//
// Only the window close button, Esc and Q are handled.
package gui
