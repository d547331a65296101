package cache

import "math"

// The glyph mask cache used by brushes. It has memory bounds and
// evicts the coldest entries from a small random sample when full.
//
// Hotness is measured in bytes accessed per tick. Brushes call
// [Cache.Tick]() once per flush, so ticks are usually frames.
//
// Caches are not concurrent-safe.
type Cache struct {
	masks map[Key]*cachedMaskEntry
	tick uint32
	spaceBytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	hits uint64
	misses uint64
}

// A cached mask with additional information to estimate how
// much the entry is being used.
type cachedMaskEntry struct {
	Mask GlyphMask
	ByteSize uint32
	CreationTick uint32
	AccessCount uint32
}

// Coldest entries (smallest values) are candidates for eviction.
// Saturates instead of wrapping around.
func (self *cachedMaskEntry) Hotness(tick uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := uint64(self.ByteSize)*uint64(self.AccessCount)
	elapsed  := uint64(tick - self.CreationTick)
	if elapsed == 0 { elapsed = 1 }
	hotness := (ConstEvictionCost + bytesHit)/elapsed
	if hotness > math.MaxUint32 { return math.MaxUint32 }
	return uint32(hotness)
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
//
// Values below 64KiB are not recommended; allowing the cache to grow
// up to a few MiBs in size is generally preferable.
func New(maxByteSize int) *Cache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &Cache {
		masks: make(map[Key]*cachedMaskEntry, 128),
		spaceBytesLeft: uint32(maxByteSize),
		lowestBytesLeft: uint32(maxByteSize),
		byteSizeLimit: uint32(maxByteSize),
	}
}

// Advances the cache clock. Entries lose hotness as ticks go by
// unless they keep being accessed.
func (self *Cache) Tick() { self.tick += 1 }

// Gets the mask associated to the given key. Masks can be nil for
// glyphs without any visible contours.
func (self *Cache) Get(key Key) (GlyphMask, bool) {
	entry, found := self.masks[key]
	if !found {
		self.misses += 1
		return nil, false
	}
	self.hits += 1
	if entry.AccessCount < math.MaxUint32 { entry.AccessCount += 1 }
	return entry.Mask, true
}

// Stores the given mask with the given key. Returns false if the mask
// couldn't be stored due to the size limits.
func (self *Cache) Put(key Key, mask GlyphMask) bool {
	const MaxMakeRoomAttempts = 2

	_, alreadyExists := self.masks[key]
	if alreadyExists { return true }

	entry := &cachedMaskEntry{
		Mask: mask,
		ByteSize: GlyphMaskByteSize(mask),
		CreationTick: self.tick,
		AccessCount: 1,
	}
	if entry.ByteSize > self.byteSizeLimit { return false }

	// see if we have enough space to add the mask, or try to
	// make some room otherwise
	if entry.ByteSize > self.spaceBytesLeft {
		hotness := entry.Hotness(self.tick)
		for i := 0; i < MaxMakeRoomAttempts; i++ {
			if !self.removeColdEntry(hotness) { break }
			if entry.ByteSize <= self.spaceBytesLeft { break }
		}
		if entry.ByteSize > self.spaceBytesLeft { return false }
	}

	self.spaceBytesLeft -= entry.ByteSize
	if self.spaceBytesLeft < self.lowestBytesLeft {
		self.lowestBytesLeft = self.spaceBytesLeft
	}
	self.masks[key] = entry
	return true
}

// Removes the entry with the lowest hotness from a small pool of
// samples, as long as it's colder than the given hotness. Returns
// whether anything was removed.
func (self *Cache) removeColdEntry(hotness uint32) bool {
	const SampleSize = 10

	var selectedKey Key
	lowestHotness := ^uint32(0)
	samplesTaken  := 0
	for key, entry := range self.masks { // map iteration order is random
		currHotness := entry.Hotness(self.tick)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}
		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	if lowestHotness >= hotness { return false }

	entry := self.masks[selectedKey]
	delete(self.masks, selectedKey)
	self.spaceBytesLeft += entry.ByteSize
	return true
}

// Returns the number of masks currently stored in the cache.
func (self *Cache) Len() int { return len(self.masks) }

// Returns an approximation of the number of bytes taken by the
// glyph masks currently stored in the cache.
func (self *Cache) ByteSize() int {
	return int(self.byteSizeLimit - self.spaceBytesLeft)
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life.
//
// This method can be useful to determine the actual usage of a cache
// within your application and set its capacity to a reasonable value.
func (self *Cache) PeakByteSize() int {
	return int(self.byteSizeLimit - self.lowestBytesLeft)
}

// Returns the number of cache hits and misses since creation
// or the last [Cache.Clear]().
func (self *Cache) Stats() (hits, misses uint64) {
	return self.hits, self.misses
}

// Removes all the cached masks and resets the stats. The peak
// size is preserved.
func (self *Cache) Clear() {
	clear(self.masks)
	self.spaceBytesLeft = self.byteSizeLimit
	self.hits, self.misses = 0, 0
}
