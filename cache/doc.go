// The cache subpackage provides the glyph mask cache used by qtxt
// brushes.
//
// Since glyph rasterization is an expensive CPU process, caches are a
// vital part of any real-time text rendering pipeline. Masks are keyed
// by font, glyph, size, horizontal stretch, quantized subpixel position
// and rasterizer signature.
//
// Caches are bounded by a byte size. Sadly, there's no good rule of
// thumb to determine that size: it depends on how many fonts and sizes
// you use and how often they change. A normal reading size glyph mask
// is around 11x11 pixels, which is close to 700 bytes on Ebitengine.
// With a few fonts and sizes on screen you will quickly be working with
// MiBs, not KiBs. [Cache.PeakByteSize]() can help you figure out the
// right value for your application.
package cache
