package qtxt

import "image/color"

import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/font"
import "github.com/tinne26/qtxt/brush"
import "github.com/tinne26/qtxt/layout"

// Brush is the interface for the glyph queue and rasterization
// collaborator of a [Context]. [*brush.Brush] is the standard
// implementation.
type Brush interface {
	Queue(section layout.Section)
	QueueCustomLayout(section layout.Section, positioner layout.GlyphPositioner)
	Fonts() *font.Library
	DrawQueuedWithTransform(transform math32.Matrix4, target brush.TargetImage, blend brush.BlendMode) error
}

var _ Brush = (*brush.Brush)(nil)

// A Context holds the rendering state shared by all texts: the brush
// and its queue, the screen size, the target image, the default color
// and the default blend mode.
//
// Contexts are not concurrent-safe. They are meant to be used only
// from the render loop.
type Context struct {
	brush Brush
	width int
	height int
	target brush.TargetImage
	defaultColor color.RGBA
	blendMode brush.BlendMode
}

// Creates a new context for the given brush and screen size. The
// default color is white and the blend mode is [brush.DefaultBlendMode].
// A nil brush will panic.
func NewContext(glyphBrush Brush, width, height int) *Context {
	if glyphBrush == nil { panic("nil brush") }
	return &Context{
		brush: glyphBrush,
		width: width,
		height: height,
		defaultColor: color.RGBA{255, 255, 255, 255},
		blendMode: brush.DefaultBlendMode,
	}
}

func (self *Context) Brush() Brush { return self.brush }

// Returns the screen size used to compose draw transforms.
func (self *Context) ScreenSize() (int, int) { return self.width, self.height }

// Sets the screen size. Typically called from Ebitengine's Layout().
func (self *Context) SetScreenSize(width, height int) {
	self.width, self.height = width, height
}

func (self *Context) Target() brush.TargetImage { return self.target }

// Sets the image where queued texts will be drawn on the next flush.
func (self *Context) SetTarget(target brush.TargetImage) { self.target = target }

func (self *Context) DefaultColor() color.RGBA { return self.defaultColor }

// Sets the color used by fragments without color when no override
// is given.
func (self *Context) SetDefaultColor(clr color.RGBA) { self.defaultColor = clr }

func (self *Context) BlendMode() brush.BlendMode { return self.blendMode }
func (self *Context) SetBlendMode(mode brush.BlendMode) { self.blendMode = mode }
