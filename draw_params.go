package qtxt

import "image"
import "image/color"

import "cogentcore.org/core/math32"

// Parameters for [DrawQueued]() and [Drawable] types.
//
// Dest, Rotation, Scale and Shear define the transform applied to the
// whole queue. Offset and Color are used by [Text.Draw]() as queue
// position and color override, and ignored by [DrawQueued](). Src is
// always ignored.
type DrawParams struct {
	Src image.Rectangle
	Dest math32.Vector2
	Offset math32.Vector2
	Rotation float32 // radians, clockwise on screen
	Scale math32.Vector2
	Shear math32.Vector2
	Color *color.RGBA
}

// Returns draw params with scale (1, 1) and everything else zero.
func NewDrawParams() DrawParams {
	return DrawParams{ Scale: math32.Vec2(1, 1) }
}
