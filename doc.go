// qtxt is a package for formatted text layout and batched text
// drawing, designed to be used mainly with the Ebitengine game engine.
//
// Common usage depends only on a couple types. First, you create a
// [font.Library], a brush and a [Context]:
//   fonts := font.NewLibrary()
//   id, err := fonts.ParseFromPath("path/to/font.ttf")
//   if err != nil { ... }
//   ctx := qtxt.NewContext(brush.New(fonts, 4*1024*1024), screenWidth, screenHeight)
//
// Then you create texts from styled fragments:
//   text := qtxt.NewText(qtxt.NewFragment("Hello, "))
//   text.AddFragment(qtxt.NewColorFragment("world!", color.RGBA{255, 0, 0, 255}))
//   text.SetFont(id, layout.UniformScale(24))
//
// Finally, on each frame you queue everything you want to draw and
// flush the queue once:
//   ctx.SetTarget(screen)
//   text.Queue(ctx, math32.Vec2(16, 16), nil)
//   err := qtxt.DrawQueued(ctx, qtxt.NewDrawParams())
//
// All texts share the brush queue owned by the context. Any flush draws
// everything queued so far, no matter which text triggered it.
package qtxt
