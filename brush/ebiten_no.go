//go:build gtxt

package brush

import "image"
import "image/draw"
import "image/color"

import xdraw "golang.org/x/image/draw"
import "golang.org/x/image/math/f64"

import "github.com/tinne26/qtxt/cache"

// The image type brushes draw to. With Ebitengine, TargetImage is
// *ebiten.Image.
type TargetImage = draw.Image

// Blend modes specify how to compose glyph colors with the target.
// Without Ebitengine, only BlendOver and BlendReplace are available.
type BlendMode uint8

const (
	BlendOver    BlendMode = 0 // glyphs drawn over target (default mode)
	BlendReplace BlendMode = 1 // glyph quads replace the target pixels
)

// The blend mode used when nothing else is specified.
const DefaultBlendMode = BlendOver

func (self BlendMode) op() draw.Op {
	if self == BlendReplace { return draw.Src }
	return draw.Over
}

func targetSize(target TargetImage) (int, int) {
	bounds := target.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func drawMask(target TargetImage, glyphMask cache.GlyphMask, origin image.Point, clr color.RGBA, proj projector, blend BlendMode) {
	src := image.NewUniform(clr)
	if proj.integral {
		rect := glyphMask.Rect.Add(origin.Add(proj.shift))
		draw.DrawMask(target, rect, src, image.Point{}, glyphMask, glyphMask.Rect.Min, blend.op())
		return
	}

	// mask pixels are at (origin + p), so the source rect is the mask rect
	// and the affine map is relative to the target origin. The mask is
	// sampled at the same source coordinates as the uniform color.
	aff := proj.Affine(float32(origin.X), float32(origin.Y))
	s2d := f64.Aff3{
		float64(aff[0]), float64(aff[1]), float64(aff[2]),
		float64(aff[3]), float64(aff[4]), float64(aff[5]),
	}
	opts := xdraw.Options{ SrcMask: glyphMask }
	xdraw.BiLinear.Transform(target, s2d, src, glyphMask.Rect, blend.op(), &opts)
}

// Glyph masks are already alpha images without Ebitengine.
func convertAlphaImageToGlyphMask(alpha *image.Alpha) cache.GlyphMask { return alpha }
