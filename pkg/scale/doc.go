// Package scale lays out the labels of a visual analogue scale and renders
// the result.
//
// [Build] turns label texts, an alignment factor and a track width into a
// [Layout]. Sinks then write that layout out:
//
//   - [RenderSVG]: track line, ticks and anchored label text
//   - [RenderJSON]: the layout as a JSON document for web front ends
//   - [RenderText]: a monospaced ruler for terminals
//
// Positions come from any [Positioner], normally a *labels.Calculator.
package scale
