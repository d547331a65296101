package layout

// Layout modes.
type Mode uint8
const (
	// Lines are broken when they would exceed the section bounds
	// width, and on explicit line breaks.
	Wrap Mode = iota

	// Everything is laid out on a single line. Soft wrapping never
	// happens and content after the first explicit line break is
	// ignored.
	SingleLine
)

func (self Mode) String() string {
	switch self {
	case Wrap: return "Wrap"
	case SingleLine: return "SingleLine"
	default: return "Mode(?)"
	}
}

// Horizontal alignment relative to the section's screen position.
// Left aligned text starts at the position, right aligned text ends
// at it and centered text is centered on it.
type HorzAlign uint8
const (
	Left HorzAlign = iota
	HorzCenter
	Right
)

func (self HorzAlign) String() string {
	switch self {
	case Left: return "Left"
	case HorzCenter: return "HorzCenter"
	case Right: return "Right"
	default: return "HorzAlign(?)"
	}
}

// Vertical alignment relative to the section's screen position.
// Top aligned text hangs from the position, bottom aligned text
// sits on it and centered text is centered on it.
type VertAlign uint8
const (
	Top VertAlign = iota
	VertCenter
	Bottom
)

func (self VertAlign) String() string {
	switch self {
	case Top: return "Top"
	case VertCenter: return "VertCenter"
	case Bottom: return "Bottom"
	default: return "VertAlign(?)"
	}
}

// Line breaking rules used in [Wrap] mode.
type LineBreaker uint8
const (
	// Breaks lines at Unicode line break opportunities (UAX #14).
	// Words longer than the available width overflow.
	UnicodeBreaker LineBreaker = iota

	// Allows breaking lines after any character. Explicit line
	// breaks are still mandatory.
	AnyCharBreaker
)

func (self LineBreaker) String() string {
	switch self {
	case UnicodeBreaker: return "UnicodeBreaker"
	case AnyCharBreaker: return "AnyCharBreaker"
	default: return "LineBreaker(?)"
	}
}

// A layout policy. The zero value is the neutral layout: wrap mode,
// left and top aligned, with Unicode line breaking.
//
// [Layout] values implement [GlyphPositioner] through the built-in
// positioning algorithm.
type Layout struct {
	Mode Mode
	HorzAlign HorzAlign
	VertAlign VertAlign
	Breaker LineBreaker
}

// Creates a wrapping [Layout] with the given aligns.
func NewWrap(horz HorzAlign, vert VertAlign) Layout {
	return Layout{ Mode: Wrap, HorzAlign: horz, VertAlign: vert }
}

// Creates a single line [Layout] with the given aligns.
func NewSingleLine(horz HorzAlign, vert VertAlign) Layout {
	return Layout{ Mode: SingleLine, HorzAlign: horz, VertAlign: vert }
}

// Returns whether the layout is in [Wrap] mode.
func (self Layout) IsWrap() bool { return self.Mode == Wrap }

// Returns a copy of the layout with the given line breaker.
func (self Layout) WithBreaker(breaker LineBreaker) Layout {
	self.Breaker = breaker
	return self
}

func (self Layout) String() string {
	return self.Mode.String() + "(" + self.HorzAlign.String() + ", " +
		self.VertAlign.String() + ", " + self.Breaker.String() + ")"
}
