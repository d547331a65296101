package layout

import "unicode"
import "strings"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/font"

var _ GlyphPositioner = Layout{}

// A glyph slot in the joined text of a section.
type slot struct {
	run int
	offset int // byte offset in the joined text
	scaler *scaler
	index sfnt.GlyphIndex
	bounds fixed.Rectangle26_6
	advance float32
	kernBefore float32 // kerning with the previous slot, when compatible
	visible bool
	space bool
	terminator bool // line terminators take no space and are never emitted
	breakBefore bool
	mustBreakBefore bool
}

type line struct {
	start, end int // slot range
	width float32  // trailing whitespace excluded
	ascent, descent, lineGap float32
}

// Implements [GlyphPositioner] with the built-in positioning algorithm.
//
// Runs are laid out one after another, left to right. Lines are broken
// greedily at the break opportunities given by the layout's [LineBreaker]
// whenever the content would exceed section.Bounds.X (in [Wrap] mode only).
// Trailing whitespace never causes a line to wrap. Each line is as tall
// as the tallest font scale it contains.
//
// Only the bounds width is used; content exceeding the bounds height is
// still laid out.
func (self Layout) CalculateGlyphs(fonts *font.Library, section *Section) []GlyphedText {
	out := make([]GlyphedText, len(section.Texts))
	for i, text := range section.Texts {
		out[i] = GlyphedText{ Run: i, Color: text.Color, Font: text.Font, Scale: text.Scale }
	}
	if len(section.Texts) == 0 || fonts == nil { return out }

	var buffer sfnt.Buffer
	scalers := newScalerSet(&buffer)
	slots, trailingBreak := self.collectSlots(fonts, section, &scalers)
	if len(slots) == 0 { return out }

	lines := self.breakLines(slots, trailingBreak, section.Bounds.X)
	self.placeGlyphs(out, slots, lines, section.ScreenPosition)
	return out
}

func (self Layout) collectSlots(fonts *font.Library, section *Section, scalers *scalerSet) ([]slot, bool) {
	var joined strings.Builder
	slots := make([]slot, 0, 32)
	prevIndex := -1
	for run, text := range section.Texts {
		runStart := joined.Len()
		joined.WriteString(text.Text)

		var scaler *scaler
		sfntFont := fonts.Font(text.Font)
		if sfntFont != nil { scaler = scalers.get(sfntFont, text.Scale) }
		if scaler == nil { // unregistered font, skip run glyphs
			prevIndex = -1
			continue
		}

		for i, codePoint := range text.Text {
			curr := slot{ run: run, offset: runStart + i, scaler: scaler }
			if isLineTerminator(codePoint) {
				curr.terminator = true
			} else {
				curr.index = scaler.glyphIndex(scalers.buffer, codePoint)
				curr.bounds, curr.advance, curr.visible = scaler.glyphMetrics(scalers.buffer, curr.index)
				curr.space = unicode.IsSpace(codePoint)
				if prevIndex >= 0 {
					prev := &slots[prevIndex]
					if !prev.terminator && prev.scaler == scaler {
						curr.kernBefore = scaler.kern(scalers.buffer, prev.index, curr.index)
					}
				}
			}
			slots = append(slots, curr)
			prevIndex = len(slots) - 1
		}
	}

	// a break point applies to the first slot at or after its offset
	points := self.Breaker.breakPoints(joined.String())
	p := 0
	for i := range slots {
		for p < len(points) && points[p].offset <= slots[i].offset {
			slots[i].breakBefore = true
			if points[p].mandatory { slots[i].mustBreakBefore = true }
			p += 1
		}
	}
	trailingBreak := false
	for ; p < len(points); p++ {
		if points[p].mandatory { trailingBreak = true }
	}
	return slots, trailingBreak
}

func (self Layout) breakLines(slots []slot, trailingBreak bool, maxWidth float32) []line {
	if self.Mode != Wrap || math32.IsNaN(maxWidth) { maxWidth = math32.Inf(1) }

	lines := make([]line, 0, 4)
	var curr line
	var x float32 // current line advance, trailing whitespace included
	wordStart := 0
	for wordStart < len(slots) {
		wordEnd := wordStart + 1
		for wordEnd < len(slots) && !slots[wordEnd].breakBefore { wordEnd += 1 }

		// measure the word, tracking where its ink ends
		var full, inked float32
		hasInk := false
		for i := wordStart; i < wordEnd; i++ {
			if i > wordStart { full += slots[i].kernBefore }
			full += slots[i].advance
			if !slots[i].space && !slots[i].terminator {
				inked = full
				hasInk = true
			}
		}

		// soft wrap if the word's ink doesn't fit
		kern := slots[wordStart].kernBefore
		if curr.end > curr.start && hasInk && x + kern + inked > maxWidth {
			lines = append(lines, curr)
			curr = line{ start: wordStart, end: wordStart }
			x = 0
		}
		if curr.end > curr.start { x += kern }
		if hasInk { curr.width = x + inked }
		x += full
		curr.end = wordEnd

		// hard breaks
		if wordEnd < len(slots) && slots[wordEnd].mustBreakBefore {
			lines = append(lines, curr)
			if self.Mode == SingleLine { return setLineMetrics(lines, slots) }
			curr = line{ start: wordEnd, end: wordEnd }
			x = 0
		}
		wordStart = wordEnd
	}
	lines = append(lines, curr)
	if trailingBreak && self.Mode == Wrap {
		lines = append(lines, line{ start: len(slots), end: len(slots) })
	}
	return setLineMetrics(lines, slots)
}

func setLineMetrics(lines []line, slots []slot) []line {
	for i := range lines {
		ln := &lines[i]
		if ln.start == ln.end { // empty line, use the metrics of the closest slot
			closest := ln.start
			if closest >= len(slots) { closest = len(slots) - 1 }
			if ln.start > 0 { closest = ln.start - 1 }
			ln.ascent  = slots[closest].scaler.ascent
			ln.descent = slots[closest].scaler.descent
			ln.lineGap = slots[closest].scaler.lineGap
			continue
		}
		for j := ln.start; j < ln.end; j++ {
			scaler := slots[j].scaler
			ln.ascent  = max(ln.ascent, scaler.ascent)
			ln.descent = max(ln.descent, scaler.descent)
			ln.lineGap = max(ln.lineGap, scaler.lineGap)
		}
	}
	return lines
}

func (self Layout) placeGlyphs(out []GlyphedText, slots []slot, lines []line, origin math32.Vector2) {
	var height float32
	for i, ln := range lines {
		height += ln.ascent + ln.descent
		if i < len(lines) - 1 { height += ln.lineGap }
	}

	y := origin.Y
	switch self.VertAlign {
	case VertCenter: y -= height/2
	case Bottom: y -= height
	}

	for _, ln := range lines {
		x := origin.X
		switch self.HorzAlign {
		case HorzCenter: x -= ln.width/2
		case Right: x -= ln.width
		}

		baseline := y + ln.ascent
		for i := ln.start; i < ln.end; i++ {
			curr := &slots[i]
			if i > ln.start { x += curr.kernBefore }
			if !curr.terminator {
				glyphs := &out[curr.run].Glyphs
				*glyphs = append(*glyphs, PositionedGlyph{
					Index: curr.index,
					Font: out[curr.run].Font,
					Position: math32.Vec2(x, baseline),
					Advance: curr.advance,
					Bounds: curr.bounds,
					PPEM: curr.scaler.ppem,
					Stretch: curr.scaler.stretch,
					Visible: curr.visible,
				})
			}
			x += curr.advance
		}
		y += ln.ascent + ln.descent + ln.lineGap
	}
}
