package font

// cacheCapacity bounds the glyph LRU. Badges rarely draw more than a few
// dozen distinct runes, so 256 entries make eviction exceptional.
const cacheCapacity = 256

// Cached wraps a Font with a fixed-size LRU of rendered glyphs, so text
// that repeats runes skips outline extraction.
type Cached struct {
	font    Font
	entries map[rune]*cacheEntry
	head    *cacheEntry
	tail    *cacheEntry
}

type cacheEntry struct {
	r     rune
	glyph Glyph // Path owned by the cache
	prev  *cacheEntry
	next  *cacheEntry
}

// NewCached wraps f with glyph caching.
func NewCached(f Font) *Cached {
	return &Cached{
		font:    f,
		entries: make(map[rune]*cacheEntry, cacheCapacity),
	}
}

// Height returns the wrapped font's height.
func (c *Cached) Height() uint32 { return c.font.Height() }

// Scale returns the wrapped font's scale.
func (c *Cached) Scale() float32 { return c.font.Scale() }

// Precision returns the wrapped font's precision.
func (c *Cached) Precision() uint8 { return c.font.Precision() }

// RenderGlyph returns the cached glyph for r, rendering and storing it on
// first use. Runes the wrapped font cannot render are not cached.
func (c *Cached) RenderGlyph(r rune) (Glyph, bool) {
	if e, ok := c.entries[r]; ok {
		c.moveToFront(e)
		return e.glyph, true
	}

	glyph, ok := c.font.RenderGlyph(r)
	if !ok {
		return Glyph{}, false
	}

	e := &cacheEntry{r: r, glyph: glyph}
	if glyph.Path != nil {
		// The wrapped font may reuse its path buffer on the next render.
		e.glyph.Path = append([]byte(nil), glyph.Path...)
	}

	if len(c.entries) >= cacheCapacity {
		c.evictTail()
	}
	c.entries[r] = e
	c.addToFront(e)

	return e.glyph, true
}

func (c *Cached) addToFront(e *cacheEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *Cached) moveToFront(e *cacheEntry) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

func (c *Cached) unlink(e *cacheEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *Cached) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.r)
	c.unlink(c.tail)
}
