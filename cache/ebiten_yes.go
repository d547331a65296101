//go:build !gtxt

package cache

import "github.com/hajimehoshi/ebiten/v2"

// The cached glyph mask type. With Ebitengine, masks are uploaded to
// GPU images as soon as they are rasterized.
type GlyphMask = *ebiten.Image

// Based on Ebitengine internals.
const constMaskSizeFactor = 192

// Returns an approximation of a [GlyphMask] size in bytes. The exact
// amount of mipmaps and helper fields is not known, so the value
// should be treated as a lower bound.
func GlyphMaskByteSize(mask GlyphMask) uint32 {
	if mask == nil { return constMaskSizeFactor }
	w, h := mask.Size()
	return maskDimsByteSize(w, h)
}

func maskDimsByteSize(width, height int) uint32 {
	return uint32(width*height)*4 + constMaskSizeFactor
}

// used for testing purposes
func newEmptyGlyphMask(width, height int) GlyphMask {
	return GlyphMask(ebiten.NewImage(width, height))
}
