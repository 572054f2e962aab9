// Package fluffy maps between engineering, grid and pixel coordinates with
// 4x4 homogeneous transforms and builds the grid overlay drawn on top of a
// rendered fractal.
//
// # Overview
//
// Three coordinate systems are involved:
//   - Engineering space: real-valued, user-facing units.
//   - Grid space: engineering space re-centred on GridConfig.GridCenterValue.
//   - Pixel space: origin top-left, Y growing downward.
//
// BuildTransform produces the engineering to pixel matrix and RebuildGrid
// turns a GridConfig into pixel line segments and axis labels. View keeps
// both up to date while the user pans and zooms.
//
// # Quick Start
//
//	v, err := fluffy.NewView(fluffy.DefaultViewConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = v.ZoomIn()
//	for _, l := range v.Grid().GridLines {
//	    // draw l.From -> l.To
//	}
//
// The Julia renderer lives in the fractal sub-package; it consumes a
// GridConfig produced here.
//
// # Exactness
//
// Matrix and Vec4 equality is exact. IsInvertible compares the determinant
// against zero without tolerance, and Invert refuses singular matrices with
// ErrNonInvertibleTransform.
package fluffy
