package qtxt

import "github.com/tinne26/qtxt/brush"

// Drawable is the interface for types that can be drawn with a
// [Context] in a single call.
type Drawable interface {
	Draw(ctx *Context, params DrawParams) error
	BlendMode() *brush.BlendMode
	SetBlendMode(mode *brush.BlendMode)
}

var _ Drawable = (*Text)(nil)

// Queues the text at params.Offset, with params.Color as the override
// color, and flushes the queue with [DrawQueued]() semantics. The text
// blend mode is used if set.
//
// The flush draws every other section queued on the context too.
func (self *Text) Draw(ctx *Context, params DrawParams) error {
	self.Queue(ctx, params.Offset, params.Color)
	blend := ctx.blendMode
	if self.blendMode != nil { blend = *self.blendMode }
	return drawQueued(ctx, params, blend)
}
