package layout

import "errors"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

const hintingNone = font.HintingNone

// Font metrics for a specific font and [Scale], in pixels.
//
// Scales are pixel heights (ascent + descent), so the pixels per em
// used with sfnt need to be derived from the font's own proportions.
type scaler struct {
	font *sfnt.Font
	ppem fixed.Int26_6
	stretch float32
	ascent float32
	descent float32
	lineGap float32
}

var errBadFontHeight = errors.New("font reports a non-positive ascent + descent")

func newScaler(sfntFont *sfnt.Font, buffer *sfnt.Buffer, scale Scale) (*scaler, error) {
	if !scale.IsValid() { return &scaler{ font: sfntFont }, nil }

	// at ppem == units per em, metrics are given in font units (26.6)
	upem := int(sfntFont.UnitsPerEm())
	unscaled, err := sfntFont.Metrics(buffer, fixed.I(upem), hintingNone)
	if err != nil { return nil, err }
	unitsHeight := unscaled.Ascent + unscaled.Descent
	if unitsHeight <= 0 { return nil, errBadFontHeight }

	ppem := float64(scale.Y)*float64(upem)*64*64/float64(unitsHeight)
	self := &scaler{
		font: sfntFont,
		ppem: fixed.Int26_6(ppem + 0.5),
		stretch: scale.X/scale.Y,
	}
	if self.ppem <= 0 { return &scaler{ font: sfntFont }, nil }

	metrics, err := sfntFont.Metrics(buffer, self.ppem, hintingNone)
	if err != nil { return nil, err }
	self.ascent  = fixedToFloat32(metrics.Ascent)
	self.descent = fixedToFloat32(metrics.Descent)
	gap := metrics.Height - metrics.Ascent - metrics.Descent
	if gap > 0 { self.lineGap = fixedToFloat32(gap) }
	return self, nil
}

// Returns the glyph index for the given rune. Missing runes map to
// the notdef glyph (index 0), as sfnt does.
func (self *scaler) glyphIndex(buffer *sfnt.Buffer, codePoint rune) sfnt.GlyphIndex {
	index, err := self.font.GlyphIndex(buffer, codePoint)
	if err != nil { return 0 }
	return index
}

// Returns the glyph bounds (unstretched), the stretched advance and
// whether the glyph has any visible area.
func (self *scaler) glyphMetrics(buffer *sfnt.Buffer, index sfnt.GlyphIndex) (fixed.Rectangle26_6, float32, bool) {
	if self.ppem == 0 { return fixed.Rectangle26_6{}, 0, false }
	bounds, advance, err := self.font.GlyphBounds(buffer, index, self.ppem, hintingNone)
	if err != nil { return fixed.Rectangle26_6{}, 0, false }
	visible := bounds.Max.X > bounds.Min.X && bounds.Max.Y > bounds.Min.Y
	return bounds, fixedToFloat32(advance)*self.stretch, visible
}

// Returns the stretched kerning between two glyphs, or zero when the
// font doesn't define any.
func (self *scaler) kern(buffer *sfnt.Buffer, prev, curr sfnt.GlyphIndex) float32 {
	if self.ppem == 0 { return 0 }
	kern, err := self.font.Kern(buffer, prev, curr, self.ppem, hintingNone)
	if err != nil { return 0 } // includes sfnt.ErrNotFound
	return fixedToFloat32(kern)*self.stretch
}

func (self *scaler) lineHeight() float32 {
	return self.ascent + self.descent
}

type scalerKey struct {
	font *sfnt.Font
	scale Scale
}

// A small per-layout map of scalers, so runs sharing font and scale
// share metrics.
type scalerSet struct {
	buffer *sfnt.Buffer
	scalers map[scalerKey]*scaler
}

func newScalerSet(buffer *sfnt.Buffer) scalerSet {
	return scalerSet{ buffer: buffer, scalers: make(map[scalerKey]*scaler, 2) }
}

// Returns nil if the scaler can't be created.
func (self *scalerSet) get(sfntFont *sfnt.Font, scale Scale) *scaler {
	key := scalerKey{ sfntFont, scale }
	cached, found := self.scalers[key]
	if found { return cached }
	scaler, err := newScaler(sfntFont, self.buffer, scale)
	if err != nil { scaler = nil }
	self.scalers[key] = scaler
	return scaler
}
