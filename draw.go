package qtxt

import "image/color"
import "log/slog"

import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/brush"
import "github.com/tinne26/qtxt/layout"

// Queues the text at the given position on the context brush. The
// override color is used by fragments without their own color. Nothing
// is drawn until [DrawQueued]() is called.
func Queue(ctx *Context, text *Text, relativeDest math32.Vector2, override *color.RGBA) {
	section := text.BuildSection(relativeDest, ctx.defaultColor, override)
	ctx.brush.Queue(section)
}

// Same as [Queue](ctx, self, relativeDest, override).
func (self *Text) Queue(ctx *Context, relativeDest math32.Vector2, override *color.RGBA) {
	Queue(ctx, self, relativeDest, override)
}

// Queues a section directly on the context brush, laid out by the
// given positioner. A nil positioner uses the section layout.
func QueueRaw(ctx *Context, section layout.Section, positioner layout.GlyphPositioner) {
	if positioner == nil {
		ctx.brush.Queue(section)
	} else {
		ctx.brush.QueueCustomLayout(section, positioner)
	}
}

// Draws everything queued on the context brush with the transform
// from [DrawTransform](), using the context blend mode. The whole
// queue is flushed, no matter who queued it. params.Offset,
// params.Color and params.Src are ignored.
//
// Flush errors are returned unchanged.
func DrawQueued(ctx *Context, params DrawParams) error {
	return drawQueued(ctx, params, ctx.blendMode)
}

func drawQueued(ctx *Context, params DrawParams, blend brush.BlendMode) error {
	transform := DrawTransform(params, ctx.width, ctx.height)
	err := ctx.brush.DrawQueuedWithTransform(transform, ctx.target, blend)
	if err != nil {
		Logger().Warn("qtxt: queue flush failed", slog.Any("err", err))
	}
	return err
}
