// Package pkg provides the libraries behind scalelabel.
//
// # Overview
//
// A visual analogue scale shows a handful of labels ("Nada", "Algo",
// "Mucho") along a slider track. Where those labels sit is calibrated per
// label count and blended by an alignment factor. The pkg directory is
// organized into:
//
//  1. [calibration] - Immutable position tables, built in or loaded from TOML
//  2. [labels] - The position calculator over a table
//  3. [scale] - Label layout plus SVG, JSON and text sinks
//  4. [errors] - Structured error codes shared by all packages
//  5. [buildinfo] - Version data injected at build time
//
// # Quick Start
//
//	calc := labels.New(calibration.Default())
//	pos, err := calc.Position(0, 3, 75) // 12.5
//
//	l, err := scale.Build(calc, []string{"Nada", "Algo", "Mucho"}, 75, 600)
//	svg := scale.RenderSVG(l)
package pkg
