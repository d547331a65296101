package qtxt

import "testing"

import "github.com/stretchr/testify/require"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"
import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/font"
import "github.com/tinne26/qtxt/brush"
import "github.com/tinne26/qtxt/layout"

// A brush that records queued sections and flushes without drawing.
type stubBrush struct {
	fonts *font.Library
	fontsCalls int
	queue []layout.Section
	positioners []layout.GlyphPositioner
	flushed [][]layout.Section
	lastTransform math32.Matrix4
	lastBlend brush.BlendMode
	flushErr error
}

func newStubBrush(t *testing.T) (*stubBrush, font.ID, font.ID) {
	t.Helper()
	fonts := font.NewLibrary()
	regular, err := fonts.ParseFromBytes(goregular.TTF)
	require.NoError(t, err)
	mono, err := fonts.ParseFromBytes(gomono.TTF)
	require.NoError(t, err)
	return &stubBrush{ fonts: fonts }, regular, mono
}

func (self *stubBrush) Queue(section layout.Section) {
	self.queue = append(self.queue, section)
	self.positioners = append(self.positioners, nil)
}

func (self *stubBrush) QueueCustomLayout(section layout.Section, positioner layout.GlyphPositioner) {
	self.queue = append(self.queue, section)
	self.positioners = append(self.positioners, positioner)
}

func (self *stubBrush) Fonts() *font.Library {
	self.fontsCalls += 1
	return self.fonts
}

func (self *stubBrush) DrawQueuedWithTransform(transform math32.Matrix4, _ brush.TargetImage, blend brush.BlendMode) error {
	self.flushed = append(self.flushed, self.queue)
	self.queue, self.positioners = nil, nil
	self.lastTransform = transform
	self.lastBlend = blend
	return self.flushErr
}

func newTestContext(t *testing.T) (*Context, *stubBrush, font.ID, font.ID) {
	t.Helper()
	stub, regular, mono := newStubBrush(t)
	return NewContext(stub, 640, 480), stub, regular, mono
}

func brushBlendDefault() brush.BlendMode { return brush.DefaultBlendMode }
func brushBlendAlt() brush.BlendMode { return brush.DefaultBlendMode + 1 }
