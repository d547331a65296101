//go:build gtxt

package brush

import "image"
import "testing"
import "image/color"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/tinne26/qtxt/font"
import "github.com/tinne26/qtxt/layout"

func inkCentroid(img *image.RGBA) (float64, float64, int) {
	var sumX, sumY, count float64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 { continue }
			sumX += float64(x)
			sumY += float64(y)
			count += 1
		}
	}
	if count == 0 { return 0, 0, 0 }
	return sumX/count, sumY/count, int(count)
}

func TestBrushFlush(t *testing.T) {
	brush, id := newTestBrush(t)
	target := image.NewRGBA(image.Rect(0, 0, 64, 32))

	section := testSection(id, "Hi")
	section.ScreenPosition.X, section.ScreenPosition.Y = 4, 4
	section.Texts[0].Color = color.RGBA{255, 0, 0, 255}
	brush.Queue(section)
	require.NoError(t, brush.DrawQueuedWithTransform(identity4, target, DefaultBlendMode))
	assert.Equal(t, 2, brush.LastFlushGlyphs())
	assert.Equal(t, 0, brush.Len())
	assert.Equal(t, 2, brush.Cache().Len())

	_, _, count := inkCentroid(target)
	assert.Greater(t, count, 10)
	var foundRed bool
	for i := 0; i < len(target.Pix); i += 4 {
		if target.Pix[i + 3] == 255 {
			assert.Equal(t, uint8(255), target.Pix[i + 0])
			assert.Equal(t, uint8(0), target.Pix[i + 1])
			foundRed = true
		}
	}
	assert.True(t, foundRed)

	// empty queue flushes draw nothing
	require.NoError(t, brush.DrawQueuedWithTransform(identity4, target, DefaultBlendMode))
	assert.Equal(t, 0, brush.LastFlushGlyphs())
}

func TestBrushFlushTransform(t *testing.T) {
	brush, id := newTestBrush(t)
	section := testSection(id, "Hello")
	section.ScreenPosition.X, section.ScreenPosition.Y = 4, 8

	plain := image.NewRGBA(image.Rect(0, 0, 64, 32))
	brush.Queue(section)
	require.NoError(t, brush.DrawQueuedWithTransform(identity4, plain, DefaultBlendMode))
	plainX, plainY, plainCount := inkCentroid(plain)
	require.Greater(t, plainCount, 10)

	// translate 10 pixels right in normalized device coordinates
	moved := image.NewRGBA(image.Rect(0, 0, 64, 32))
	transform := identity4
	transform[12] = 2*10.0/64.0
	brush.Queue(section)
	require.NoError(t, brush.DrawQueuedWithTransform(transform, moved, DefaultBlendMode))
	assert.Equal(t, 5, brush.LastFlushGlyphs())
	movedX, movedY, count := inkCentroid(moved)
	assert.Equal(t, plainCount, count) // whole pixel shifts are exact
	assert.InDelta(t, plainX + 10, movedX, 0.01)
	assert.InDelta(t, plainY, movedY, 0.01)

	// half pixel shifts need resampling
	resampled := image.NewRGBA(image.Rect(0, 0, 64, 32))
	transform[12] = 2*10.5/64.0
	transform[13] = -2*3.0/32.0
	brush.Queue(section)
	require.NoError(t, brush.DrawQueuedWithTransform(transform, resampled, DefaultBlendMode))
	resampledX, resampledY, count := inkCentroid(resampled)
	assert.Greater(t, count, plainCount/2)
	assert.InDelta(t, plainX + 10.5, resampledX, 1.0)
	assert.InDelta(t, plainY + 3, resampledY, 1.0)
}

type fixedPositioner struct {
	glyphs []layout.GlyphedText
}

func (self *fixedPositioner) CalculateGlyphs(*font.Library, *layout.Section) []layout.GlyphedText {
	return self.glyphs
}

func TestBrushUnknownFont(t *testing.T) {
	brush, id := newTestBrush(t)
	section := testSection(id, "ab")
	runs := layout.Layout{}.CalculateGlyphs(brush.Fonts(), &section)
	require.Len(t, runs, 1)
	require.Len(t, runs[0].Glyphs, 2)
	runs[0].Color = color.RGBA{255, 255, 255, 255}
	runs[0].Glyphs[0].Font = id + 7

	target := image.NewRGBA(image.Rect(0, 0, 32, 32))
	brush.QueueCustomLayout(section, &fixedPositioner{ glyphs: runs })
	err := brush.DrawQueuedWithTransform(identity4, target, DefaultBlendMode)
	assert.ErrorIs(t, err, ErrUnknownFont)
	assert.Equal(t, 1, brush.LastFlushGlyphs())
	assert.Equal(t, 0, brush.Len())
}

func TestBrushBlendReplace(t *testing.T) {
	brush, id := newTestBrush(t)
	target := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for i := range target.Pix { target.Pix[i] = 255 }

	section := testSection(id, "o")
	section.ScreenPosition.X, section.ScreenPosition.Y = 8, 4
	section.Texts[0].Color = color.RGBA{0, 0, 0, 255}
	brush.Queue(section)
	require.NoError(t, brush.DrawQueuedWithTransform(identity4, target, BlendReplace))

	// the counter of the "o" is replaced with transparent pixels
	var transparent int
	for i := 3; i < len(target.Pix); i += 4 {
		if target.Pix[i] == 0 { transparent += 1 }
	}
	assert.Greater(t, transparent, 0)
}
