package cache

import "math"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/qtxt/font"

// The number of subpixel positions per axis that glyph masks are
// quantized to.
const SubpixelSteps = 4

// A Key identifies a rasterized glyph mask.
type Key struct {
	Font font.ID
	Glyph sfnt.GlyphIndex
	PPEM fixed.Int26_6
	Stretch uint32 // float32 bits
	FractX uint8
	FractY uint8
	Rasterizer uint64
}

// Creates a key for the given glyph. The fractional position should
// come from [SplitPosition], otherwise the cache will hold many more
// masks than necessary.
func NewKey(id font.ID, glyph sfnt.GlyphIndex, ppem fixed.Int26_6, stretch float32, signature uint64, fract fixed.Point26_6) Key {
	return Key{
		Font: id,
		Glyph: glyph,
		PPEM: ppem,
		Stretch: math.Float32bits(stretch),
		FractX: uint8(fract.X & 0x3F),
		FractY: uint8(fract.Y & 0x3F),
		Rasterizer: signature,
	}
}

// Splits a position into its integer pixel part and a fractional part
// rounded to the nearest of the [SubpixelSteps] quantization steps.
// Positions that round up to a full pixel move to the next pixel with
// a zero fraction.
func SplitPosition(value fixed.Int26_6) (int, fixed.Int26_6) {
	const StepSize = 64/SubpixelSteps
	shifted := value + StepSize/2
	steps := shifted/StepSize
	if shifted < 0 && shifted % StepSize != 0 { steps -= 1 }
	rounded := steps*StepSize
	return rounded.Floor(), rounded & 0x3F
}
