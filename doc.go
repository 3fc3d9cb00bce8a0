// Package tint styles text written to terminal output streams.
//
// Users import this single package for the complete public API: streams,
// colors, text attributes, styling policy, and batched styled segments.
//
// A Stream tracks the colors and attributes the caller wants in effect and
// lazily applies them before the next write. On ANSI-capable destinations
// styling is rendered as escape sequences embedded in the text; on legacy
// character-mode consoles it is applied through native per-console attribute
// calls; on files and pipes it is suppressed, leaving plain text. Clear
// restores the destination's original appearance.
//
// Styling is best-effort. Probe and apply failures degrade toward plain
// unstyled output, and text always reaches the destination.
package tint
