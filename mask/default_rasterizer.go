package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface. The zero value is ready to use.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
}

// Satisfies the [Rasterizer] interface. The signature for the
// default rasterizer is always zero.
func (self *DefaultRasterizer) Signature() uint64 { return 0 }

func (self *DefaultRasterizer) MoveTo(x, y float32) { self.rasterizer.MoveTo(x, y) }
func (self *DefaultRasterizer) LineTo(x, y float32) { self.rasterizer.LineTo(x, y) }
func (self *DefaultRasterizer) QuadTo(cx, cy, x, y float32) {
	self.rasterizer.QuadTo(cx, cy, x, y)
}
func (self *DefaultRasterizer) CubeTo(cax, cay, cbx, cby, x, y float32) {
	self.rasterizer.CubeTo(cax, cay, cbx, cby, x, y)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, stretch float32, fract fixed.Point26_6) (*image.Alpha, error) {
	if stretch <= 0 { return nil, ErrBadStretch }
	rect, offsetX, offsetY := maskBounds(outline.Bounds(), stretch, fract)
	if rect.Empty() { return nil, nil }

	// x/image/vector expects coords in the positive quadrant
	width, height := rect.Dx(), rect.Dy()
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	processOutline(self, outline, stretch, offsetX, offsetY)

	// the source is uniform, so the sampling point is unimportant
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = rect
	return mask, nil
}
