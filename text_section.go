package qtxt

import "image/color"

import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/layout"

// Builds the layout section for the text at the given position, with
// fully resolved run styles. Colors resolve to the fragment color, the
// override or the default color, in that order. Fonts and scales
// resolve to the fragment values or the text defaults.
//
// The position is always the left edge of the text. With finite bounds
// and a wrap layout, the position is shifted to the anchor expected by
// the layout alignment. The vertical position is never adjusted.
func (self *Text) BuildSection(relativeDest math32.Vector2, defaultColor color.RGBA, override *color.RGBA) layout.Section {
	texts := make([]layout.SectionText, 0, len(self.fragments))
	for _, fragment := range self.fragments {
		id, hasFont := fragment.Font()
		if !hasFont { id = self.font }
		scale, hasScale := fragment.Scale()
		if !hasScale { scale = self.scale }
		texts = append(texts, layout.SectionText{
			Text: fragment.Text(),
			Color: fragment.resolveColor(override, defaultColor),
			Font: id,
			Scale: scale,
		})
	}

	position := relativeDest
	if !math32.IsInf(self.bounds.X, 1) && self.layout.IsWrap() {
		switch self.layout.HorzAlign {
		case layout.HorzCenter: position.X += self.bounds.X*0.5
		case layout.Right: position.X += self.bounds.X
		}
	}

	return layout.Section{
		ScreenPosition: position,
		Bounds: self.bounds,
		Layout: self.layout,
		Texts: texts,
	}
}
