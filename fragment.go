package qtxt

import "image/color"

import "github.com/tinne26/qtxt/font"
import "github.com/tinne26/qtxt/layout"

// A Fragment is a run of text with optional style overrides. Unset
// fields fall back to the [Text] defaults (font and scale) or to the
// queue override and [Context] default (color).
//
// Fragments are immutable values: the With* methods return modified
// copies.
type Fragment struct {
	text string
	color color.RGBA
	font font.ID
	scale layout.Scale
	hasColor bool
	hasFont bool
	hasScale bool
}

// Optional fields for [FragmentFrom](). Nil pointers leave the
// corresponding style unset.
type FragmentConfig struct {
	Text string
	Color *color.RGBA
	Font *font.ID
	Scale *layout.Scale
}

// Creates a fragment without any style overrides.
func NewFragment(text string) Fragment {
	return Fragment{ text: text }
}

// Creates a fragment with a color override.
func NewColorFragment(text string, clr color.RGBA) Fragment {
	return Fragment{ text: text, color: clr, hasColor: true }
}

// Creates a fragment with font and scale overrides.
func NewFontFragment(text string, id font.ID, scale layout.Scale) Fragment {
	return Fragment{ text: text, font: id, scale: scale, hasFont: true, hasScale: true }
}

// Creates a fragment from the given configuration.
func FragmentFrom(config FragmentConfig) Fragment {
	fragment := Fragment{ text: config.Text }
	if config.Color != nil { fragment = fragment.WithColor(*config.Color) }
	if config.Font  != nil { fragment = fragment.WithFont(*config.Font) }
	if config.Scale != nil { fragment = fragment.WithScale(*config.Scale) }
	return fragment
}

func (self Fragment) Text() string { return self.text }
func (self Fragment) Color() (color.RGBA, bool) { return self.color, self.hasColor }
func (self Fragment) Font() (font.ID, bool) { return self.font, self.hasFont }
func (self Fragment) Scale() (layout.Scale, bool) { return self.scale, self.hasScale }

func (self Fragment) WithText(text string) Fragment {
	self.text = text
	return self
}

func (self Fragment) WithColor(clr color.RGBA) Fragment {
	self.color, self.hasColor = clr, true
	return self
}

func (self Fragment) WithFont(id font.ID) Fragment {
	self.font, self.hasFont = id, true
	return self
}

func (self Fragment) WithScale(scale layout.Scale) Fragment {
	self.scale, self.hasScale = scale, true
	return self
}

// Returns the fragment's color, or the override, or the fallback,
// whichever is found first.
func (self Fragment) resolveColor(override *color.RGBA, fallback color.RGBA) color.RGBA {
	if self.hasColor { return self.color }
	if override != nil { return *override }
	return fallback
}
