package badge

import (
	"bytes"
	"errors"
	"testing"
)

func TestSvgWriter_Nesting(t *testing.T) {
	var buf bytes.Buffer
	svg := startSVG(&buf)
	svg.Open("defs")
	svg.Open("path")
	svg.Attr("id", "s")
	svg.AttrBytes("d", []byte("M1 2"))
	svg.AttrUint("x", 42)
	svg.CloseInline()
	svg.Close("defs")
	if err := svg.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	want := `<svg><defs><path id="s" d="M1 2" x="42"/></defs></svg>`
	if got := buf.String(); got != want {
		t.Fatalf("document = %q, want %q", got, want)
	}
}

func TestSvgWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	svg := startSVG(&buf)
	svg.Open("text")
	svg.AttrUint("x", 5)
	svg.Text("hi")
	svg.Close("text")
	if err := svg.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	want := `<svg><text x="5">hi</text></svg>`
	if got := buf.String(); got != want {
		t.Fatalf("document = %q, want %q", got, want)
	}
}

// failAfter errors on every write past the first n.
type failAfter struct {
	n   int
	err error
}

func (w *failAfter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

func TestSvgWriter_StickyError(t *testing.T) {
	wantErr := errors.New("disk full")
	w := &failAfter{n: 3, err: wantErr}

	svg := startSVG(w)
	for i := 0; i < 20; i++ {
		svg.Open("g")
		svg.Attr("id", "x")
		svg.Close("g")
	}

	if err := svg.Finish(); !errors.Is(err, wantErr) {
		t.Fatalf("Finish = %v, want %v", err, wantErr)
	}
}
