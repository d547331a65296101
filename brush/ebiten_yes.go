//go:build !gtxt

package brush

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/qtxt/cache"

// The image type brushes draw to. Without Ebitengine (gtxt build tag),
// TargetImage is [image/draw.Image].
type TargetImage = *ebiten.Image

// Blend modes specify how to compose glyph colors with the target.
// With Ebitengine, blend modes are Ebitengine's composite modes.
type BlendMode = ebiten.CompositeMode

// The blend mode used when nothing else is specified.
const DefaultBlendMode = ebiten.CompositeModeSourceOver

var quadIndices = []uint16{0, 1, 2, 2, 3, 0}

func targetSize(target TargetImage) (int, int) {
	return target.Size()
}

func drawMask(target TargetImage, glyphMask cache.GlyphMask, origin image.Point, clr color.RGBA, proj projector, blend BlendMode) {
	bounds := glyphMask.Bounds()
	minX, minY := float32(origin.X + bounds.Min.X), float32(origin.Y + bounds.Min.Y)
	maxX, maxY := float32(origin.X + bounds.Max.X), float32(origin.Y + bounds.Max.Y)
	quad := proj.Quad(minX, minY, maxX, maxY)

	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	srcX := [4]float32{ float32(bounds.Min.X), float32(bounds.Max.X), float32(bounds.Max.X), float32(bounds.Min.X) }
	srcY := [4]float32{ float32(bounds.Min.Y), float32(bounds.Min.Y), float32(bounds.Max.Y), float32(bounds.Max.Y) }
	var vertices [4]ebiten.Vertex
	for i := 0; i < 4; i++ {
		vertices[i] = ebiten.Vertex{
			DstX: quad[i].X, DstY: quad[i].Y,
			SrcX: srcX[i], SrcY: srcY[i],
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	var opts ebiten.DrawTrianglesOptions
	opts.CompositeMode = blend
	if !proj.integral { opts.Filter = ebiten.FilterLinear }
	target.DrawTriangles(vertices[:], quadIndices, glyphMask, &opts)
}

// Ebitengine doesn't have good support for alpha images, so masks
// are expanded to RGBA before being uploaded.
func convertAlphaImageToGlyphMask(alpha *image.Alpha) cache.GlyphMask {
	if alpha == nil { return nil }

	rgba   := image.NewRGBA(alpha.Rect)
	pixels := rgba.Pix
	index  := 0
	for _, value := range alpha.Pix {
		pixels[index + 0] = value
		pixels[index + 1] = value
		pixels[index + 2] = value
		pixels[index + 3] = value
		index += 4
	}
	return ebiten.NewImageFromImageWithOptions(rgba, &ebiten.NewImageFromImageOptions{ PreserveBounds: true })
}
