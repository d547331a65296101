package font

import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested font property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	var buffer sfnt.Buffer
	str, err := font.Name(&buffer, property)
	if err == sfnt.ErrNotFound || (err == nil && str == "") {
		return "", ErrNotFound
	}
	return str, err
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the full name of the given font. This is the name used
// by [Library] values to tell fonts apart.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the runes in the given text that can't be represented by
// the font. Line breaks are never reported as missing.
//
// If you load fonts dynamically, it is good practice to use this
// function to make sure that the fonts include all the glyphs that
// your texts require, as qtxt doesn't do any font fallback.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	var buffer sfnt.Buffer
	missing := make([]rune, 0)
	for _, codePoint := range text {
		if codePoint == '\n' { continue }
		index, err := font.GlyphIndex(&buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
