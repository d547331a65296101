// The mask subpackage defines the [Rasterizer] interface used by the
// qtxt glyph brush and provides a default implementation based on
// [golang.org/x/image/vector].
//
// In this context, rasterizing means taking a glyph outline, as
// extracted from a font at a specific size, and drawing it into an
// alpha mask. Masks are later cached and drawn with the text colors.
package mask
