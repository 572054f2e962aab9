// Package fractal renders Julia sets into an RGBA buffer using one
// goroutine per row band.
//
// A render takes a fluffy.GridConfig (which engineering rectangle to
// show), a PixelCanvas (how many pixels and bands) and the Julia constant:
//
//	canvas, err := fractal.ConfigureCanvas(640, 384, 800, 600, 100, 100)
//	if err != nil {
//	    return err
//	}
//	buf, err := fractal.RenderFractal(view.Grid(), canvas, view.PixelsPerUnit(), fractal.DefaultConstant)
//
// Every band writes a disjoint slice of the buffer, so no locking is done
// on pixels. RenderFractal returns only after all bands have joined. The
// output does not depend on the number of bands.
//
// Session keeps the buffer between renders and skips work when nothing
// changed; Explorer drives a Session from input events.
package fractal
