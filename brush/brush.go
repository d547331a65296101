package brush

import "fmt"
import "image"
import "errors"
import "log/slog"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "cogentcore.org/core/math32"

import "github.com/tinne26/qtxt/font"
import "github.com/tinne26/qtxt/layout"
import "github.com/tinne26/qtxt/mask"
import "github.com/tinne26/qtxt/cache"

// Returned when flushing the queue without a target.
var ErrNilTarget = errors.New("brush flush target is nil")

// Returned when a glyph refers to a font that's not in the library.
var ErrUnknownFont = errors.New("glyph font not registered")

// A Brush holds the glyph queue, the glyph mask cache and the
// rasterizer used to draw queued text sections.
//
// Brushes are not concurrent-safe. They are expected to live for the
// whole program and be used from the render loop.
type Brush struct {
	fonts *font.Library
	cache *cache.Cache
	rasterizer mask.Rasterizer
	queue []queuedSection
	buffer sfnt.Buffer
	lastFlushGlyphs int
}

type queuedSection struct {
	section layout.Section
	positioner layout.GlyphPositioner
}

// Creates a new brush for the given font library, with a glyph cache
// bounded by the given byte size. A nil library or negative size will
// panic.
func New(fonts *font.Library, cacheByteSize int) *Brush {
	if fonts == nil { panic("nil font library") }
	return &Brush{
		fonts: fonts,
		cache: cache.New(cacheByteSize),
		rasterizer: &mask.DefaultRasterizer{},
	}
}

// Returns the font library used to lay out and draw glyphs.
func (self *Brush) Fonts() *font.Library { return self.fonts }

// Returns the brush glyph mask cache.
func (self *Brush) Cache() *cache.Cache { return self.cache }

// Returns the rasterizer used for glyph masks.
func (self *Brush) Rasterizer() mask.Rasterizer { return self.rasterizer }

// Sets the rasterizer used for glyph masks. Masks already in the
// cache stay valid as long as rasterizer signatures are different.
func (self *Brush) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { panic("nil rasterizer") }
	self.rasterizer = rasterizer
}

// Queues a section to be laid out with its own layout at flush time.
func (self *Brush) Queue(section layout.Section) {
	self.queue = append(self.queue, queuedSection{ section: section, positioner: section.Layout })
}

// Queues a section to be laid out with the given positioner at flush
// time. A nil positioner uses the section layout.
func (self *Brush) QueueCustomLayout(section layout.Section, positioner layout.GlyphPositioner) {
	if positioner == nil { positioner = section.Layout }
	self.queue = append(self.queue, queuedSection{ section: section, positioner: positioner })
}

// Returns the number of sections waiting for the next flush.
func (self *Brush) Len() int { return len(self.queue) }

// Returns the number of glyph masks drawn on the last flush.
func (self *Brush) LastFlushGlyphs() int { return self.lastFlushGlyphs }

// Lays out every queued section, rasterizes the glyphs that aren't
// cached yet and draws them to the target. Glyph quads are mapped to
// normalized device coordinates, multiplied by the given column-major
// transform and mapped back to target pixels.
//
// The queue is always drained, even on errors. Glyphs that fail to
// rasterize are skipped, and the first of those errors is returned
// after drawing everything else.
func (self *Brush) DrawQueuedWithTransform(transform math32.Matrix4, target TargetImage, blend BlendMode) error {
	queue := self.queue
	defer self.drain()
	self.lastFlushGlyphs = 0
	if target == nil { return ErrNilTarget }

	width, height := targetSize(target)
	proj := newProjector(transform, width, height)
	var firstErr error
	for i := range queue {
		runs := queue[i].positioner.CalculateGlyphs(self.fonts, &queue[i].section)
		for _, run := range runs {
			for _, glyph := range run.Glyphs {
				if !glyph.Visible { continue }
				glyphMask, origin, err := self.loadMask(glyph)
				if err != nil {
					Logger().Warn("qtxt: glyph skipped", slog.Any("err", err), slog.String("font", glyph.Font.String()))
					if firstErr == nil { firstErr = err }
					continue
				}
				if glyphMask == nil { continue }
				drawMask(target, glyphMask, origin, run.Color, proj, blend)
				self.lastFlushGlyphs += 1
			}
		}
	}

	self.cache.Tick()
	Logger().Debug(
		"qtxt: flush",
		slog.Int("sections", len(queue)),
		slog.Int("glyphs", self.lastFlushGlyphs),
		slog.Int("cache_bytes", self.cache.ByteSize()),
	)
	return firstErr
}

func (self *Brush) drain() {
	clear(self.queue) // release section texts
	self.queue = self.queue[:0]
}

// Returns the cached or freshly rasterized mask for the glyph and the
// integer pixel position where the mask origin must be drawn.
func (self *Brush) loadMask(glyph layout.PositionedGlyph) (cache.GlyphMask, image.Point, error) {
	x, fractX := cache.SplitPosition(fixed.Int26_6(math32.Round(glyph.Position.X*64)))
	y, fractY := cache.SplitPosition(fixed.Int26_6(math32.Round(glyph.Position.Y*64)))
	origin := image.Pt(x, y)
	fract  := fixed.Point26_6{ X: fractX, Y: fractY }

	key := cache.NewKey(glyph.Font, glyph.Index, glyph.PPEM, glyph.Stretch, self.rasterizer.Signature(), fract)
	glyphMask, found := self.cache.Get(key)
	if found { return glyphMask, origin, nil }

	sfntFont := self.fonts.Font(glyph.Font)
	if sfntFont == nil {
		return nil, origin, fmt.Errorf("%w: %s", ErrUnknownFont, glyph.Font)
	}
	outline, err := sfntFont.LoadGlyph(&self.buffer, glyph.Index, glyph.PPEM, nil)
	if err != nil { return nil, origin, err }
	alpha, err := mask.Rasterize(outline, self.rasterizer, glyph.Stretch, fract)
	if err != nil { return nil, origin, err }
	glyphMask = convertAlphaImageToGlyphMask(alpha)
	self.cache.Put(key, glyphMask)
	return glyphMask, origin, nil
}
