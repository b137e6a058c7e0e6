package font

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

func parseTestFont(t *testing.T) *sfnt.Font {
	t.Helper()

	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("parsing font: %v", err)
	}
	return f
}

func newTestFont(t *testing.T, precision uint8) *TrueType {
	t.Helper()

	tt, err := NewTrueType(parseTestFont(t), 1100, precision)
	if err != nil {
		t.Fatalf("preparing font: %v", err)
	}
	return tt
}

func TestTrueType_Height(t *testing.T) {
	tt := newTestFont(t, 0)

	// Height is the requested size minus the scaled descent, so it lands
	// strictly between zero and the full line height.
	if h := tt.Height(); h == 0 || h >= 1100 {
		t.Fatalf("height = %d, want in (0, 1100)", h)
	}
}

func TestTrueType_Scale(t *testing.T) {
	f := parseTestFont(t)
	tt, err := NewTrueType(f, 1100, 0)
	if err != nil {
		t.Fatalf("preparing font: %v", err)
	}

	want := 1100 / float32(f.UnitsPerEm())
	if got := tt.Scale(); got != want {
		t.Fatalf("scale = %v, want %v", got, want)
	}
	if got := tt.Precision(); got != 0 {
		t.Fatalf("precision = %d, want 0", got)
	}
}

func TestTrueType_RenderGlyph(t *testing.T) {
	tt := newTestFont(t, 0)

	glyph, ok := tt.RenderGlyph('A')
	if !ok {
		t.Fatalf("RenderGlyph('A') reported no glyph")
	}
	if glyph.Advance <= 0 {
		t.Fatalf("advance = %v, want > 0", glyph.Advance)
	}
	if len(glyph.Path) == 0 {
		t.Fatalf("path is empty")
	}
	if glyph.Path[0] != 'm' {
		t.Fatalf("path starts with %q, want 'm'", glyph.Path[0])
	}
	if glyph.Path[len(glyph.Path)-1] != 'Z' {
		t.Fatalf("path ends with %q, want 'Z'", glyph.Path[len(glyph.Path)-1])
	}
}

func TestTrueType_SpaceHasAdvanceButNoPath(t *testing.T) {
	tt := newTestFont(t, 0)

	glyph, ok := tt.RenderGlyph(' ')
	if !ok {
		t.Fatalf("RenderGlyph(' ') reported no glyph")
	}
	if glyph.Path != nil {
		t.Fatalf("space path = %q, want nil", glyph.Path)
	}
	if glyph.Advance <= 0 {
		t.Fatalf("space advance = %v, want > 0", glyph.Advance)
	}
}

func TestTrueType_MissingRune(t *testing.T) {
	tt := newTestFont(t, 0)

	// Private use area, not covered by the Go fonts.
	if _, ok := tt.RenderGlyph('\uE000'); ok {
		t.Fatalf("RenderGlyph reported a glyph for a private use rune")
	}
}

func TestTrueType_RenderIsDeterministic(t *testing.T) {
	tt := newTestFont(t, 0)

	first, ok := tt.RenderGlyph('g')
	if !ok {
		t.Fatalf("RenderGlyph('g') reported no glyph")
	}
	// The path aliases an internal buffer; copy before rendering again.
	path := append([]byte(nil), first.Path...)

	second, ok := tt.RenderGlyph('g')
	if !ok {
		t.Fatalf("second RenderGlyph('g') reported no glyph")
	}
	if !bytes.Equal(path, second.Path) {
		t.Fatalf("renders differ:\n%q\n%q", path, second.Path)
	}
	if first.Advance != second.Advance {
		t.Fatalf("advances differ: %v vs %v", first.Advance, second.Advance)
	}
}

func TestTrueType_MultipleContoursClose(t *testing.T) {
	tt := newTestFont(t, 0)

	// 'i' has two contours: the stem and the dot. Every contour must end
	// in a close command.
	glyph, ok := tt.RenderGlyph('i')
	if !ok {
		t.Fatalf("RenderGlyph('i') reported no glyph")
	}
	path := string(glyph.Path)
	moves := strings.Count(path, "m")
	closes := strings.Count(path, "Z")
	if moves < 2 {
		t.Fatalf("contours = %d, want at least 2 in %q", moves, path)
	}
	if closes != moves {
		t.Fatalf("%d contours but %d closes in %q", moves, closes, path)
	}
}

func TestTrueType_PrecisionChangesOutput(t *testing.T) {
	rough := newTestFont(t, 0)
	fine := newTestFont(t, 2)

	got, ok := rough.RenderGlyph('o')
	if !ok {
		t.Fatalf("RenderGlyph('o') reported no glyph")
	}
	if bytes.ContainsRune(got.Path, '.') {
		t.Fatalf("precision 0 path carries decimals: %q", got.Path)
	}

	if _, ok := fine.RenderGlyph('o'); !ok {
		t.Fatalf("precision 2 RenderGlyph('o') reported no glyph")
	}
}
