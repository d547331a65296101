package layout

import "strconv"

// A font scale, in pixels. Y is the pixel height of the font (ascent
// plus descent) and X the equivalent horizontal scale. Uniform scales
// have X == Y; non-uniform ones stretch or squeeze glyphs horizontally.
type Scale struct {
	X float32
	Y float32
}

// Creates a uniform [Scale] with the given pixel height.
func UniformScale(px float32) Scale { return Scale{ X: px, Y: px } }

// Returns whether X and Y are equal.
func (self Scale) IsUniform() bool { return self.X == self.Y }

// Returns whether both components are strictly positive. Glyphs laid
// out with invalid scales have no advance and no bounds.
func (self Scale) IsValid() bool { return self.X > 0 && self.Y > 0 }

// Returns the scale formatted as "16px" for uniform scales or
// "24x16px" otherwise.
func (self Scale) String() string {
	y := strconv.FormatFloat(float64(self.Y), 'g', -1, 32)
	if self.IsUniform() { return y + "px" }
	return strconv.FormatFloat(float64(self.X), 'g', -1, 32) + "x" + y + "px"
}
