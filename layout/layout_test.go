package layout

import "image/color"
import "testing"

import "cogentcore.org/core/math32"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/qtxt/font"

func newTestLibrary(t *testing.T) *font.Library {
	t.Helper()
	lib := font.NewLibrary()
	_, err := lib.ParseFromBytes(goregular.TTF)
	require.NoError(t, err)
	_, err = lib.ParseFromBytes(gomono.TTF)
	require.NoError(t, err)
	return lib
}

func newTestSection(layout Layout, texts ...string) Section {
	section := Section{
		Bounds: math32.Vec2(math32.Inf(1), math32.Inf(1)),
		Layout: layout,
	}
	for _, text := range texts {
		section.Texts = append(section.Texts, SectionText{
			Text: text,
			Color: color.RGBA{ 255, 255, 255, 255 },
			Scale: UniformScale(16),
		})
	}
	return section
}

func allGlyphs(glyphed []GlyphedText) []PositionedGlyph {
	var glyphs []PositionedGlyph
	for _, text := range glyphed { glyphs = append(glyphs, text.Glyphs...) }
	return glyphs
}

func distinctBaselines(glyphs []PositionedGlyph) int {
	seen := make(map[float32]struct{})
	for _, glyph := range glyphs { seen[glyph.Position.Y] = struct{}{} }
	return len(seen)
}

// ink width of a single line of glyphs
func inkWidth(glyphs []PositionedGlyph) float32 {
	first, last := glyphs[0], glyphs[len(glyphs) - 1]
	return last.Position.X + last.Advance - first.Position.X
}

func TestCalculateGlyphsRuns(t *testing.T) {
	lib := newTestLibrary(t)

	section := newTestSection(Layout{})
	assert.Empty(t, section.Layout.CalculateGlyphs(lib, &section))

	section = newTestSection(Layout{}, "Hi, ", "World", "")
	section.Texts[1].Color = color.RGBA{ 255, 0, 0, 255 }
	glyphed := section.Layout.CalculateGlyphs(lib, &section)
	require.Len(t, glyphed, 3)
	assert.Len(t, glyphed[0].Glyphs, 4)
	assert.Len(t, glyphed[1].Glyphs, 5)
	assert.Empty(t, glyphed[2].Glyphs)
	assert.Equal(t, color.RGBA{ 255, 0, 0, 255 }, glyphed[1].Color)
	for i, text := range glyphed { assert.Equal(t, i, text.Run) }

	// runs continue where the previous one ended
	lastHi := glyphed[0].Glyphs[3]
	assert.InDelta(t, lastHi.Position.X + lastHi.Advance, glyphed[1].Glyphs[0].Position.X, 0.5)
	assert.Equal(t, 1, distinctBaselines(allGlyphs(glyphed)))

	// unregistered fonts produce no glyphs
	section.Texts[1].Font = font.ID(99)
	glyphed = section.Layout.CalculateGlyphs(lib, &section)
	assert.Len(t, glyphed[0].Glyphs, 4)
	assert.Empty(t, glyphed[1].Glyphs)
}

func TestCalculateGlyphsPixelBounds(t *testing.T) {
	lib := newTestLibrary(t)
	section := newTestSection(Layout{}, "H i")
	glyphs := allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
	require.Len(t, glyphs, 3)

	rect, visible := glyphs[0].PixelBounds()
	assert.True(t, visible)
	assert.Greater(t, rect.Dx(), 0)
	assert.Greater(t, rect.Dy(), 0)
	assert.GreaterOrEqual(t, rect.Min.Y, 0) // top aligned at y = 0
	assert.LessOrEqual(t, rect.Max.Y, 17)

	_, visible = glyphs[1].PixelBounds()
	assert.False(t, visible)
	assert.Greater(t, glyphs[1].Advance, float32(0))
}

func TestCalculateGlyphsHorzAlign(t *testing.T) {
	lib := newTestLibrary(t)
	origin := math32.Vec2(200, 50)
	firstX := make(map[HorzAlign]float32)
	var width float32
	for _, align := range []HorzAlign{ Left, HorzCenter, Right } {
		section := newTestSection(NewWrap(align, Top), "Centered text  ")
		section.ScreenPosition = origin
		glyphs := allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
		require.NotEmpty(t, glyphs)
		firstX[align] = glyphs[0].Position.X
		width = inkWidth(glyphs[ : len(glyphs) - 2]) // trailing spaces don't count
	}

	assert.InDelta(t, origin.X, firstX[Left], 0.01)
	assert.InDelta(t, origin.X - width/2, firstX[HorzCenter], 0.05)
	assert.InDelta(t, origin.X - width, firstX[Right], 0.05)
}

func TestCalculateGlyphsVertAlign(t *testing.T) {
	lib := newTestLibrary(t)
	baselines := make(map[VertAlign]float32)
	for _, align := range []VertAlign{ Top, VertCenter, Bottom } {
		section := newTestSection(NewWrap(Left, align), "Ag")
		glyphs := allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
		require.Len(t, glyphs, 2)
		baselines[align] = glyphs[0].Position.Y
	}
	assert.Greater(t, baselines[Top], float32(0))
	assert.Less(t, baselines[Bottom], float32(0))
	assert.InDelta(t, baselines[Top] - 8, baselines[VertCenter], 0.1)
	assert.InDelta(t, baselines[Top] - 16, baselines[Bottom], 0.1)
}

func TestCalculateGlyphsWrapping(t *testing.T) {
	lib := newTestLibrary(t)
	section := newTestSection(Layout{}, "lorem ipsum dolor sit amet")
	glyphs := allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
	assert.Equal(t, 1, distinctBaselines(glyphs))
	full := inkWidth(glyphs)

	section.Bounds.X = full/2
	glyphs = allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
	assert.Len(t, glyphs, 26)
	assert.GreaterOrEqual(t, distinctBaselines(glyphs), 2)
	for _, glyph := range glyphs {
		if rect, visible := glyph.PixelBounds(); visible {
			assert.LessOrEqual(t, float32(rect.Min.X), full/2)
		}
	}

	// single line mode ignores bounds
	section.Layout = NewSingleLine(Left, Top)
	glyphs = allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
	assert.Equal(t, 1, distinctBaselines(glyphs))

	// any char breaker can split words
	section.Layout = Layout{}.WithBreaker(AnyCharBreaker)
	section.Texts[0].Text = "abcdefghijklmnopqrstuvwxyz"
	section.Bounds.X = 40
	glyphs = allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
	assert.Greater(t, distinctBaselines(glyphs), 2)
}

func TestCalculateGlyphsHardBreaks(t *testing.T) {
	lib := newTestLibrary(t)
	section := newTestSection(Layout{}, "one\ntwo", "\nthree\n")
	glyphs := allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
	assert.Len(t, glyphs, 11) // line terminators are not emitted
	assert.Equal(t, 3, distinctBaselines(glyphs))
	assert.InDelta(t, glyphs[0].Position.X, glyphs[3].Position.X, 0.01)

	section.Layout = NewSingleLine(Left, Top)
	glyphs = allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
	assert.Len(t, glyphs, 3)
}

func TestCalculateGlyphsScale(t *testing.T) {
	lib := newTestLibrary(t)
	advanceFor := func(scale Scale) float32 {
		section := newTestSection(Layout{}, "M")
		section.Texts[0].Scale = scale
		glyphs := allGlyphs(section.Layout.CalculateGlyphs(lib, &section))
		require.Len(t, glyphs, 1)
		return glyphs[0].Advance
	}

	base := advanceFor(UniformScale(16))
	assert.Greater(t, base, float32(0))
	assert.InDelta(t, base*2, advanceFor(UniformScale(32)), 0.1)
	assert.InDelta(t, base*2, advanceFor(Scale{ X: 32, Y: 16 }), 0.1)
	assert.Equal(t, float32(0), advanceFor(Scale{}))
}

func TestBreakPoints(t *testing.T) {
	assert.Equal(t, []breakPoint{{ 6, false }}, UnicodeBreaker.breakPoints("hello world"))
	assert.Equal(t, []breakPoint{{ 2, true }}, UnicodeBreaker.breakPoints("a\nb"))
	assert.Equal(t, []breakPoint{{ 2, true }}, UnicodeBreaker.breakPoints("a\n"))
	assert.Empty(t, UnicodeBreaker.breakPoints("word"))
	assert.Empty(t, UnicodeBreaker.breakPoints(""))

	assert.Equal(t, []breakPoint{{ 1, false }, { 2, false }}, AnyCharBreaker.breakPoints("abc"))
	assert.Equal(t, []breakPoint{{ 1, false }, { 3, true }}, AnyCharBreaker.breakPoints("a\r\nb"))
}

func TestLayoutStrings(t *testing.T) {
	assert.Equal(t, "Wrap(Left, Top, UnicodeBreaker)", Layout{}.String())
	assert.Equal(t, "SingleLine(Right, Bottom, UnicodeBreaker)", NewSingleLine(Right, Bottom).String())
	assert.Equal(t, "16px", UniformScale(16).String())
	assert.Equal(t, "24x16px", Scale{ X: 24, Y: 16 }.String())
	assert.True(t, Layout{}.IsWrap())
}
