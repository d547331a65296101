package mask

import "image"

import "golang.org/x/image/math/fixed"
import "cogentcore.org/core/math32"

// Given the unstretched outline bounds, the horizontal stretch and the
// fractional drawing position, it returns the integer mask rectangle
// relative to the glyph origin and the offsets that bring outline
// coordinates into the mask's positive quadrant.
func maskBounds(bounds fixed.Rectangle26_6, stretch float32, fract fixed.Point26_6) (image.Rectangle, float32, float32) {
	fx, fy := float32(fract.X)/64, float32(fract.Y)/64
	minX := math32.Floor(float32(bounds.Min.X)*stretch/64 + fx)
	minY := math32.Floor(float32(bounds.Min.Y)/64 + fy)
	maxX := math32.Ceil(float32(bounds.Max.X)*stretch/64 + fx)
	maxY := math32.Ceil(float32(bounds.Max.Y)/64 + fy)
	rect := image.Rect(int(minX), int(minY), int(maxX), int(maxY))
	return rect, fx - minX, fy - minY
}
