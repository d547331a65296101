// The layout subpackage defines the layout requests that qtxt hands to
// its glyph brush ([Section] and [SectionText]), the layout policies
// that can be applied to them ([Layout]) and the built-in glyph
// positioning algorithm that turns a section into positioned glyphs.
//
// A [Section] is an ephemeral value: qtxt builds a new one each time a
// text is queued or measured. Sections only reference their strings,
// they don't copy them.
//
// Positioning uses font metrics from golang.org/x/image/font/sfnt and
// Unicode line breaking rules. Complex script shaping, bidi reordering
// and font fallback are not performed. Custom strategies can implement
// [GlyphPositioner] and be queued through qtxt.QueueRaw().
package layout
