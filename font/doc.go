// The font subpackage contains the font registry used by qtxt.
//
// Text fragments and layout sections never hold *sfnt.Font values
// directly. Instead, fonts are registered in a [Library] and referred
// to through their [ID]. This keeps fragments small and comparable,
// and allows the glyph layout and the glyph mask cache to key their
// data by a plain integer.
//
// The first font registered in a library gets ID 0, which is also the
// zero value of [ID] and thus the font used by texts that don't set
// any font explicitly.
package font
