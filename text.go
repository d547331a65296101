package qtxt

import "fmt"

import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/font"
import "github.com/tinne26/qtxt/brush"
import "github.com/tinne26/qtxt/layout"

// The default scale for texts, in pixels.
const DefaultFontScale = 16

// A Text is an ordered sequence of styled fragments together with
// default font and scale, wrap bounds and layout policy.
//
// Texts cache their contents and dimensions. Any mutation clears
// all the cached values at once.
type Text struct {
	fragments []Fragment
	bounds math32.Vector2
	layout layout.Layout
	font font.ID
	scale layout.Scale
	blendMode *brush.BlendMode

	cachedContents *string
	cachedWidth *uint32
	cachedHeight *uint32
}

// Creates a text without fragments, unbounded, with the default
// layout, font 0 and [DefaultFontScale].
func NewEmptyText() *Text {
	return &Text{
		bounds: math32.Vec2(math32.Inf(1), math32.Inf(1)),
		scale: layout.UniformScale(DefaultFontScale),
	}
}

// Creates a text with a single fragment.
func NewText(fragment Fragment) *Text {
	return NewEmptyText().AddFragment(fragment)
}

func (self *Text) invalidateCaches() {
	self.cachedContents = nil
	self.cachedWidth = nil
	self.cachedHeight = nil
}

// Appends a fragment to the end of the text. Returns the text itself
// to allow chaining.
func (self *Text) AddFragment(fragment Fragment) *Text {
	self.fragments = append(self.fragments, fragment)
	self.invalidateCaches()
	return self
}

// Replaces the fragment at the given index. If the index is out of
// range, the text is left untouched and an error wrapping
// [ErrFragmentIndex] is returned.
func (self *Text) ReplaceFragment(index int, fragment Fragment) error {
	if index < 0 || index >= len(self.fragments) {
		return fmt.Errorf("%w: index %d, len %d", ErrFragmentIndex, index, len(self.fragments))
	}
	self.fragments[index] = fragment
	self.invalidateCaches()
	return nil
}

// Sets the wrap bounds of the text. Infinite bounds disable wrapping,
// and the layout is then reset to the default even if one is given.
// With finite bounds, a nil layout keeps the current one.
func (self *Text) SetBounds(bounds math32.Vector2, textLayout *layout.Layout) *Text {
	self.bounds = bounds
	if math32.IsInf(bounds.X, 1) {
		self.layout = layout.Layout{}
	} else if textLayout != nil {
		self.layout = *textLayout
	}
	self.invalidateCaches()
	return self
}

// Sets the default font and scale, used by fragments without overrides.
func (self *Text) SetFont(id font.ID, scale layout.Scale) *Text {
	self.font, self.scale = id, scale
	self.invalidateCaches()
	return self
}

// Returns a copy of the text fragments.
func (self *Text) Fragments() []Fragment {
	fragments := make([]Fragment, len(self.fragments))
	copy(fragments, self.fragments)
	return fragments
}

func (self *Text) NumFragments() int { return len(self.fragments) }

// Returns the fragment at the given index. It will panic if the index
// is out of range.
func (self *Text) Fragment(index int) Fragment { return self.fragments[index] }

func (self *Text) Bounds() math32.Vector2 { return self.bounds }
func (self *Text) Layout() layout.Layout { return self.layout }

// Returns the default font and scale.
func (self *Text) Font() (font.ID, layout.Scale) { return self.font, self.scale }

// Returns the blend mode of the text, or nil if the [Context] blend
// mode is used.
func (self *Text) BlendMode() *brush.BlendMode { return self.blendMode }

// Sets the blend mode used by [Text.Draw](). Nil means that the
// [Context] blend mode is used. It doesn't affect [DrawQueued]().
func (self *Text) SetBlendMode(mode *brush.BlendMode) {
	if mode == nil {
		self.blendMode = nil
	} else {
		value := *mode
		self.blendMode = &value
	}
}
