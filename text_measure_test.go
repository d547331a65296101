package qtxt

import "testing"

import "github.com/stretchr/testify/assert"
import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/layout"

func TestMeasureSinglePass(t *testing.T) {
	ctx, stub, regular, _ := newTestContext(t)
	text := NewText(NewFragment("Hello")).SetFont(regular, layout.UniformScale(20))

	width := text.Width(ctx)
	assert.Equal(t, 1, stub.fontsCalls)
	height := text.Height(ctx)
	assert.Equal(t, 1, stub.fontsCalls) // measured together
	assert.Greater(t, width, uint32(0))
	assert.Greater(t, height, uint32(0))
	assert.LessOrEqual(t, height, uint32(24))

	w, h := text.Dimensions(ctx)
	assert.Equal(t, width, w)
	assert.Equal(t, height, h)
	assert.Equal(t, 1, stub.fontsCalls)
}

func TestMeasureInvalidation(t *testing.T) {
	ctx, stub, regular, mono := newTestContext(t)
	text := NewText(NewFragment("ab")).SetFont(regular, layout.UniformScale(16))
	width := text.Width(ctx)
	assert.Equal(t, "ab", text.Contents())

	text.AddFragment(NewFragment("cdef"))
	assert.Equal(t, "abcdef", text.Contents())
	wider := text.Width(ctx)
	assert.Greater(t, wider, width)
	assert.Equal(t, 2, stub.fontsCalls)

	// replacing with a shorter fragment shrinks the text
	assert.NoError(t, text.ReplaceFragment(1, NewFragment("c")))
	assert.Equal(t, "abc", text.Contents())
	shorter := text.Width(ctx)
	assert.Less(t, shorter, wider)
	assert.Equal(t, 3, stub.fontsCalls)

	// scale changes
	height := text.Height(ctx)
	text.SetFont(mono, layout.UniformScale(32))
	assert.Greater(t, text.Height(ctx), height)
	assert.Equal(t, 4, stub.fontsCalls)

	// wrapping bounds
	text = NewText(NewFragment("one two three four")).SetFont(regular, layout.UniformScale(16))
	singleHeight := text.Height(ctx)
	wrap := layout.NewWrap(layout.Left, layout.Top)
	text.SetBounds(math32.Vec2(40, math32.Inf(1)), &wrap)
	assert.Greater(t, text.Height(ctx), singleHeight)
	assert.LessOrEqual(t, text.Width(ctx), uint32(41))
}

func TestMeasureWhitespace(t *testing.T) {
	ctx, _, regular, _ := newTestContext(t)
	text := NewText(NewFragment("   ")).SetFont(regular, layout.UniformScale(16))
	assert.Equal(t, uint32(0), text.Width(ctx))
	assert.Equal(t, uint32(0), text.Height(ctx))

	text = NewEmptyText()
	w, h := text.Dimensions(ctx)
	assert.Equal(t, uint32(0), w)
	assert.Equal(t, uint32(0), h)
}
