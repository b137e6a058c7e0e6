package font

import (
	"bytes"
	"testing"
)

// countingFont counts render calls per rune and reuses one path buffer,
// like TrueType does.
type countingFont struct {
	calls   map[rune]int
	missing map[rune]bool
	buf     []byte
}

func newCountingFont(missing ...rune) *countingFont {
	f := &countingFont{
		calls:   make(map[rune]int),
		missing: make(map[rune]bool),
	}
	for _, r := range missing {
		f.missing[r] = true
	}
	return f
}

func (f *countingFont) Height() uint32   { return 900 }
func (f *countingFont) Scale() float32   { return 0.5 }
func (f *countingFont) Precision() uint8 { return 1 }

func (f *countingFont) RenderGlyph(r rune) (Glyph, bool) {
	f.calls[r]++
	if f.missing[r] {
		return Glyph{}, false
	}
	f.buf = append(f.buf[:0], 'l', byte(r), 'Z')
	return Glyph{Path: f.buf, Advance: 10}, true
}

func TestCached_HitSkipsRender(t *testing.T) {
	inner := newCountingFont()
	c := NewCached(inner)

	first, ok := c.RenderGlyph('a')
	if !ok {
		t.Fatalf("RenderGlyph('a') reported no glyph")
	}
	second, ok := c.RenderGlyph('a')
	if !ok {
		t.Fatalf("cached RenderGlyph('a') reported no glyph")
	}

	if inner.calls['a'] != 1 {
		t.Fatalf("wrapped font rendered 'a' %d times, want 1", inner.calls['a'])
	}
	if !bytes.Equal(first.Path, second.Path) {
		t.Fatalf("cached path %q differs from first render %q", second.Path, first.Path)
	}
	if first.Advance != second.Advance {
		t.Fatalf("cached advance %v differs from first render %v", second.Advance, first.Advance)
	}
}

func TestCached_CopiesPathBeforeBufferReuse(t *testing.T) {
	inner := newCountingFont()
	c := NewCached(inner)

	c.RenderGlyph('a')
	// Rendering 'b' overwrites the wrapped font's shared buffer.
	c.RenderGlyph('b')

	glyph, ok := c.RenderGlyph('a')
	if !ok {
		t.Fatalf("cached RenderGlyph('a') reported no glyph")
	}
	if want := []byte{'l', 'a', 'Z'}; !bytes.Equal(glyph.Path, want) {
		t.Fatalf("cached path = %q, want %q", glyph.Path, want)
	}
}

func TestCached_MissingNotCached(t *testing.T) {
	inner := newCountingFont('x')
	c := NewCached(inner)

	for i := 0; i < 2; i++ {
		if _, ok := c.RenderGlyph('x'); ok {
			t.Fatalf("RenderGlyph('x') reported a glyph")
		}
	}
	if inner.calls['x'] != 2 {
		t.Fatalf("wrapped font rendered 'x' %d times, want 2 (failures are not cached)", inner.calls['x'])
	}
}

func TestCached_EvictsLeastRecent(t *testing.T) {
	inner := newCountingFont()
	c := NewCached(inner)

	base := rune(0x1000)
	for i := 0; i < cacheCapacity; i++ {
		c.RenderGlyph(base + rune(i))
	}

	// Touch the oldest entry so it survives the next eviction.
	c.RenderGlyph(base)

	// One over capacity: evicts base+1, now the least recently used.
	c.RenderGlyph(base + rune(cacheCapacity))

	c.RenderGlyph(base)
	if inner.calls[base] != 1 {
		t.Fatalf("touched entry was evicted: %d renders, want 1", inner.calls[base])
	}

	c.RenderGlyph(base + 1)
	if inner.calls[base+1] != 2 {
		t.Fatalf("least recent entry survived: %d renders, want 2", inner.calls[base+1])
	}
}

func TestCached_Forwards(t *testing.T) {
	inner := newCountingFont()
	c := NewCached(inner)

	if c.Height() != inner.Height() {
		t.Fatalf("Height = %d, want %d", c.Height(), inner.Height())
	}
	if c.Scale() != inner.Scale() {
		t.Fatalf("Scale = %v, want %v", c.Scale(), inner.Scale())
	}
	if c.Precision() != inner.Precision() {
		t.Fatalf("Precision = %d, want %d", c.Precision(), inner.Precision())
	}
}
