package mask

import "image"
import "errors"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Rasterizer is an interface for glyph outline rasterization to an
// alpha mask. Rasterizers can't be used concurrently and must tolerate
// outlines with negative coordinates.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. Outline x coordinates
	// must be multiplied by stretch, and the outline must be drawn offset
	// by the given fractional position (coordinates in [0, 1) pixels).
	//
	// The returned mask bounds must be positioned relative to the glyph
	// origin: drawing the mask at the integer part of the glyph position
	// has to place it correctly.
	Rasterize(outline sfnt.Segments, stretch float32, fract fixed.Point26_6) (*image.Alpha, error)

	// A value that tells rasterizers apart in glyph caches. Rasterizers
	// with different configurations must have different signatures.
	Signature() uint64
}

// Returned when rasterizing with a non-positive stretch.
var ErrBadStretch = errors.New("glyph stretch must be positive")

// Rasterizes the outline with the given rasterizer. The returned mask
// will be nil if the outline doesn't include any lines or curves
// (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, stretch float32, fract fixed.Point26_6) (*image.Alpha, error) {
	if stretch <= 0 { return nil, ErrBadStretch }
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, stretch, fractOnly(fract))
	}
	return nil, nil // nothing to draw
}

func fractOnly(point fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{ X: point.X & 0x3F, Y: point.Y & 0x3F }
}

// The methods a rasterizer needs to receive an outline.
type vectorTracer interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubeTo(cax, cay, cbx, cby, x, y float32)
}

// Calls the corresponding tracer methods for each outline segment,
// converting coordinates to float pixels with the horizontal stretch
// and offset applied.
func processOutline(tracer vectorTracer, outline sfnt.Segments, stretch float32, offsetX, offsetY float32) {
	var convX = func(x fixed.Int26_6) float32 { return float32(x)*stretch/64 + offsetX }
	var convY = func(y fixed.Int26_6) float32 { return float32(y)/64 + offsetY }
	for _, segment := range outline {
		args := &segment.Args
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(convX(args[0].X), convY(args[0].Y))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(convX(args[0].X), convY(args[0].Y))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(convX(args[0].X), convY(args[0].Y), convX(args[1].X), convY(args[1].Y))
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(
				convX(args[0].X), convY(args[0].Y),
				convX(args[1].X), convY(args[1].Y),
				convX(args[2].X), convY(args[2].Y),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}
}
