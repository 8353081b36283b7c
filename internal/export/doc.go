// Package export writes drawings to files.
//
// Window captures are saved as PNG with [WritePNG]. Static figures can be
// drawn headless onto a [Recorder], which implements spiro.Pen and writes the
// collected strokes as SVG:
//
//	rec := export.NewRecorder()
//	c, err := spiro.NewCurve(rec, params, 5)
//	c.DrawFull()
//	err = rec.WriteSVG(w, 800, 600)
package export
