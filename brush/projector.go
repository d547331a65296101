package brush

import "image"

import "cogentcore.org/core/math32"

// Maps target pixel coordinates through a transform that operates
// on normalized device coordinates (x right, y up, both in [-1, 1]).
type projector struct {
	transform math32.Matrix4
	width float32
	height float32
	identity bool
	integral bool // identity or a translation by whole pixels
	shift image.Point
}

func newProjector(transform math32.Matrix4, width, height int) projector {
	proj := projector{
		transform: transform,
		width: float32(width),
		height: float32(height),
		identity: transform == identity4,
	}
	proj.shift, proj.integral = proj.pixelShift()
	return proj
}

var identity4 = *math32.Identity4()

// Returns the whole pixel offset applied by the transform if it
// doesn't do anything else.
func (self *projector) pixelShift() (image.Point, bool) {
	const epsilon = 1.0/256.0
	if self.identity || self.width == 0 || self.height == 0 {
		return image.Point{}, true
	}

	aff := self.Affine(0, 0)
	if math32.Abs(aff[0] - 1) > epsilon || math32.Abs(aff[4] - 1) > epsilon { return image.Point{}, false }
	if math32.Abs(aff[1]) > epsilon || math32.Abs(aff[3]) > epsilon { return image.Point{}, false }
	x, y := math32.Round(aff[2]), math32.Round(aff[5])
	if math32.Abs(aff[2] - x) > epsilon || math32.Abs(aff[5] - y) > epsilon { return image.Point{}, false }
	return image.Pt(int(x), int(y)), true
}

// Returns the transformed position of the given target pixel coordinates.
func (self *projector) Project(x, y float32) (float32, float32) {
	if self.identity || self.width == 0 || self.height == 0 { return x, y }
	ndc := math32.Vec4(2*x/self.width - 1, 1 - 2*y/self.height, 0, 1)
	out := ndc.MulMatrix4(&self.transform)
	return (out.X + 1)*0.5*self.width, (1 - out.Y)*0.5*self.height
}

// Returns the projected corners of the given rectangle, clockwise
// from the top-left one.
func (self *projector) Quad(minX, minY, maxX, maxY float32) [4]math32.Vector2 {
	var quad [4]math32.Vector2
	quad[0].X, quad[0].Y = self.Project(minX, minY)
	quad[1].X, quad[1].Y = self.Project(maxX, minY)
	quad[2].X, quad[2].Y = self.Project(maxX, maxY)
	quad[3].X, quad[3].Y = self.Project(minX, maxY)
	return quad
}

// Returns the affine map taking pixel offsets relative to the given
// origin to projected target coordinates, as the first two rows of a
// 3x3 matrix.
func (self *projector) Affine(originX, originY float32) [6]float32 {
	cx, cy := self.Project(originX, originY)
	ax, ay := self.Project(originX + 1, originY)
	bx, by := self.Project(originX, originY + 1)
	return [6]float32{ ax - cx, bx - cx, cx, ay - cy, by - cy, cy }
}
