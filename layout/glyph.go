package layout

import "image"
import "image/color"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/font"

// A glyph with its final position, as computed by a [GlyphPositioner].
type PositionedGlyph struct {
	Index sfnt.GlyphIndex
	Font font.ID

	// Position of the glyph origin (on the baseline), in pixels.
	Position math32.Vector2

	// Horizontal advance, in pixels, with the stretch already applied.
	Advance float32

	// Glyph bounds at PPEM relative to the glyph origin, without the
	// horizontal stretch applied. Only meaningful for visible glyphs.
	Bounds fixed.Rectangle26_6

	// The pixels per em used to obtain the glyph outline and bounds.
	PPEM fixed.Int26_6

	// Horizontal factor for non-uniform scales. 1 for uniform scales.
	Stretch float32

	Visible bool
}

// Returns the smallest integer rectangle containing the glyph at its
// position. The bool is false for glyphs that don't draw anything,
// like spaces, in which case the rectangle is empty.
func (self *PositionedGlyph) PixelBounds() (image.Rectangle, bool) {
	if !self.Visible { return image.Rectangle{}, false }
	minX := self.Position.X + fixedToFloat32(self.Bounds.Min.X)*self.Stretch
	maxX := self.Position.X + fixedToFloat32(self.Bounds.Max.X)*self.Stretch
	minY := self.Position.Y + fixedToFloat32(self.Bounds.Min.Y)
	maxY := self.Position.Y + fixedToFloat32(self.Bounds.Max.Y)
	return image.Rect(
		int(math32.Floor(minX)), int(math32.Floor(minY)),
		int(math32.Ceil(maxX)), int(math32.Ceil(maxY)),
	), true
}

// The positioned glyphs of a single [SectionText], together with the
// run style needed to draw them.
type GlyphedText struct {
	Run int // index of the run within Section.Texts
	Color color.RGBA
	Font font.ID
	Scale Scale
	Glyphs []PositionedGlyph
}

// Interface for glyph positioning strategies. [Layout] implements it,
// but custom positioners can also be queued directly on a brush.
//
// Implementations must return one [GlyphedText] per section run, in
// the same order. Runs whose font is not registered in the library
// must be returned with zero glyphs.
type GlyphPositioner interface {
	CalculateGlyphs(fonts *font.Library, section *Section) []GlyphedText
}

func fixedToFloat32(value fixed.Int26_6) float32 {
	return float32(value)/64.0
}
