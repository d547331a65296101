package layout

import "image/color"

import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/font"

// A fully resolved layout request: where and how to lay out a list
// of styled text runs. Sections are built fresh for each queue or
// measuring operation and are never cached.
type Section struct {
	// Position of the layout origin, in pixels. How the content is
	// placed around it depends on the layout aligns.
	ScreenPosition math32.Vector2

	// Width and height limits. Infinite components are unbounded.
	// Only the width is used for line wrapping.
	Bounds math32.Vector2

	Layout Layout

	// The text runs, in layout order.
	Texts []SectionText
}

// A text run with all its style properties resolved.
type SectionText struct {
	Text string
	Color color.RGBA
	Font font.ID
	Scale Scale
}
