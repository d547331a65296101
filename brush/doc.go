// The brush subpackage implements the glyph queue shared by all the
// texts drawn within a frame.
//
// Sections are queued during the frame and drained by a single call
// to [Brush.DrawQueuedWithTransform](), which lays them out, rasterizes
// and caches the glyph masks and draws them to the target with the
// given transform applied.
//
// By default, brushes draw to Ebitengine images. With the gtxt build
// tag, brushes draw to [image/draw.Image] targets instead, using
// [golang.org/x/image/draw] for the transformed glyph masks.
package brush
