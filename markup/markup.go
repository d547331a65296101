package markup

import "fmt"
import "errors"
import "strconv"
import "strings"
import "image/color"

import "github.com/tinne26/qtxt"
import "github.com/tinne26/qtxt/font"
import "github.com/tinne26/qtxt/layout"

// Wrapped by errors caused by unknown attributes or invalid
// attribute values.
var ErrAttribute = errors.New("markup attribute error")

type style struct {
	color *color.RGBA
	font *font.ID
	scale *layout.Scale
}

func (self style) equals(other style) bool {
	return equalPtr(self.color, other.color) && equalPtr(self.font, other.font) &&
		equalPtr(self.scale, other.scale)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil { return a == b }
	return *a == *b
}

// Parses the markup into fragments. Adjacent pieces of text with the
// same style are merged into a single fragment. Font names can only be
// used if a font library is given; fonts may be nil otherwise.
func Parse(input string, fonts *font.Library) ([]qtxt.Fragment, error) {
	doc, err := parseDocument(input)
	if err != nil { return nil, err }

	builder := fragmentBuilder{ fonts: fonts }
	err = builder.walk(doc.Nodes, style{})
	if err != nil { return nil, err }
	return builder.flush(), nil
}

// Same as [Parse](), but returns a new [qtxt.Text] with the fragments.
func NewText(input string, fonts *font.Library) (*qtxt.Text, error) {
	fragments, err := Parse(input, fonts)
	if err != nil { return nil, err }
	text := qtxt.NewEmptyText()
	for _, fragment := range fragments {
		text.AddFragment(fragment)
	}
	return text, nil
}

type fragmentBuilder struct {
	fonts *font.Library
	fragments []qtxt.Fragment
	pending strings.Builder
	pendingStyle style
}

func (self *fragmentBuilder) walk(nodes []*node, current style) error {
	for _, node := range nodes {
		if node.Text != nil {
			self.write(string(*node.Text), current)
			continue
		}

		inner, err := self.applyAttributes(node.Span, current)
		if err != nil { return err }
		err = self.walk(node.Span.Nodes, inner)
		if err != nil { return err }
	}
	return nil
}

func (self *fragmentBuilder) write(text string, current style) {
	if self.pending.Len() > 0 && !self.pendingStyle.equals(current) {
		self.flushPending()
	}
	self.pendingStyle = current
	self.pending.WriteString(text)
}

func (self *fragmentBuilder) flushPending() {
	if self.pending.Len() == 0 { return }
	self.fragments = append(self.fragments, qtxt.FragmentFrom(qtxt.FragmentConfig{
		Text: self.pending.String(),
		Color: self.pendingStyle.color,
		Font: self.pendingStyle.font,
		Scale: self.pendingStyle.scale,
	}))
	self.pending.Reset()
}

func (self *fragmentBuilder) flush() []qtxt.Fragment {
	self.flushPending()
	return self.fragments
}

func (self *fragmentBuilder) applyAttributes(span *span, current style) (style, error) {
	for _, attr := range span.attributes() {
		key, value, found := strings.Cut(attr, "=")
		if !found || value == "" {
			return current, fmt.Errorf("%w: %s: expected key=value, found %q", ErrAttribute, span.Pos, attr)
		}

		switch key {
		case "color":
			clr, err := ParseColor(value)
			if err != nil { return current, fmt.Errorf("%w: %s: %w", ErrAttribute, span.Pos, err) }
			current.color = &clr
		case "font":
			id, err := self.parseFont(value)
			if err != nil { return current, fmt.Errorf("%w: %s: %w", ErrAttribute, span.Pos, err) }
			current.font = &id
		case "scale":
			scale, err := parseScale(value)
			if err != nil { return current, fmt.Errorf("%w: %s: %w", ErrAttribute, span.Pos, err) }
			current.scale = &scale
		default:
			return current, fmt.Errorf("%w: %s: unknown attribute %q", ErrAttribute, span.Pos, key)
		}
	}
	return current, nil
}

func (self *fragmentBuilder) parseFont(value string) (font.ID, error) {
	id, err := strconv.ParseUint(value, 10, 16)
	if err == nil { return font.ID(id), nil }
	if self.fonts == nil {
		return 0, fmt.Errorf("font %q: names require a font library", value)
	}
	named, found := self.fonts.Lookup(value)
	if !found { return 0, fmt.Errorf("font %q not found", value) }
	return named, nil
}

// Parses #rgb, #rrggbb and #rrggbbaa hex colors.
func ParseColor(value string) (color.RGBA, error) {
	hex, found := strings.CutPrefix(value, "#")
	if !found { return color.RGBA{}, fmt.Errorf("color %q must start with '#'", value) }
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 { hex += "ff" }
	if len(hex) != 8 { return color.RGBA{}, fmt.Errorf("color %q has an invalid length", value) }

	bits, err := strconv.ParseUint(hex, 16, 32)
	if err != nil { return color.RGBA{}, fmt.Errorf("color %q: %w", value, err) }
	nrgba := color.NRGBA{ uint8(bits >> 24), uint8(bits >> 16), uint8(bits >> 8), uint8(bits) }
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}

// Parses "24" or "24x16" scales.
func parseScale(value string) (layout.Scale, error) {
	xStr, yStr, nonUniform := strings.Cut(value, "x")
	x, err := strconv.ParseFloat(xStr, 32)
	if err != nil { return layout.Scale{}, fmt.Errorf("scale %q: %w", value, err) }
	y := x
	if nonUniform {
		y, err = strconv.ParseFloat(yStr, 32)
		if err != nil { return layout.Scale{}, fmt.Errorf("scale %q: %w", value, err) }
	}
	scale := layout.Scale{ X: float32(x), Y: float32(y) }
	if !scale.IsValid() { return layout.Scale{}, fmt.Errorf("scale %q must be positive", value) }
	return scale, nil
}
