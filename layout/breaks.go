package layout

import "unicode/utf8"

import "github.com/rivo/uniseg"

// A position where a line may (or must) be broken. The offset is
// the byte index at which the new line would begin.
type breakPoint struct {
	offset int
	mandatory bool
}

// Returns the break points for the given text, in increasing offset
// order. Offset zero and the end of text are never included, except
// for a mandatory break at the end when the text finishes with a
// line terminator.
func (self LineBreaker) breakPoints(text string) []breakPoint {
	switch self {
	case AnyCharBreaker:
		return anyCharBreakPoints(text)
	default:
		return unicodeBreakPoints(text)
	}
}

func unicodeBreakPoints(text string) []breakPoint {
	points := make([]breakPoint, 0, 8)
	offset := 0
	state  := -1
	for len(text) > 0 {
		var segment string
		var mustBreak bool
		segment, text, mustBreak, state = uniseg.FirstLineSegmentInString(text, state)
		offset += len(segment)
		if len(text) == 0 { // end of text
			if mustBreak && endsWithLineTerminator(segment) {
				points = append(points, breakPoint{ offset, true })
			}
			break
		}
		points = append(points, breakPoint{ offset, mustBreak })
	}
	return points
}

func anyCharBreakPoints(text string) []breakPoint {
	points := make([]breakPoint, 0, len(text))
	for i, codePoint := range text {
		offset := i + utf8.RuneLen(codePoint)
		if codePoint == '\r' && offset < len(text) && text[offset] == '\n' {
			continue // CRLF is a single break
		}
		mandatory := isLineTerminator(codePoint)
		if offset == len(text) && !mandatory { break }
		points = append(points, breakPoint{ offset, mandatory })
	}
	return points
}

func endsWithLineTerminator(segment string) bool {
	codePoint, _ := utf8.DecodeLastRuneInString(segment)
	return isLineTerminator(codePoint)
}

func isLineTerminator(codePoint rune) bool {
	switch codePoint {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
