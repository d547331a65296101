package qtxt

import "strings"
import "image/color"

import "cogentcore.org/core/math32"

// Returns the width of the text in pixels. Width and height are
// measured together and cached until the next mutation.
func (self *Text) Width(ctx *Context) uint32 {
	if self.cachedWidth == nil { self.calculateDimensions(ctx) }
	return *self.cachedWidth
}

// Returns the height of the text in pixels. Width and height are
// measured together and cached until the next mutation.
func (self *Text) Height(ctx *Context) uint32 {
	if self.cachedHeight == nil { self.calculateDimensions(ctx) }
	return *self.cachedHeight
}

// Returns both the width and height of the text.
func (self *Text) Dimensions(ctx *Context) (uint32, uint32) {
	return self.Width(ctx), self.Height(ctx)
}

// Measures the farthest right and bottom pixel edges of all visible
// glyphs, with the text placed at the origin.
func (self *Text) calculateDimensions(ctx *Context) {
	section := self.BuildSection(math32.Vector2{}, color.RGBA{}, nil)
	runs := self.layout.CalculateGlyphs(ctx.Brush().Fonts(), &section)

	var maxX, maxY int
	for _, run := range runs {
		for i := range run.Glyphs {
			bounds, visible := run.Glyphs[i].PixelBounds()
			if !visible { continue }
			maxX = max(maxX, bounds.Max.X)
			maxY = max(maxY, bounds.Max.Y)
		}
	}

	width, height := uint32(maxX), uint32(maxY) // non-negative due to max()
	self.cachedWidth, self.cachedHeight = &width, &height
}

// Returns the concatenation of all fragment texts.
func (self *Text) Contents() string {
	if self.cachedContents != nil { return *self.cachedContents }

	var builder strings.Builder
	for _, fragment := range self.fragments {
		builder.WriteString(fragment.Text())
	}
	contents := builder.String()
	self.cachedContents = &contents
	return contents
}
