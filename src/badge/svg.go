package badge

import (
	"io"
	"strconv"
)

// svgWriter emits SVG markup tag by tag without building a document tree.
// The first write error sticks: later calls become no-ops and Finish
// reports it.
type svgWriter struct {
	w    io.Writer
	err  error
	open bool // an opening tag has been started but not terminated
}

// startSVG begins an <svg> document on w.
func startSVG(w io.Writer) *svgWriter {
	x := &svgWriter{w: w}
	x.Open("svg")
	return x
}

// Open begins a <name> element, terminating any still-open tag first.
func (x *svgWriter) Open(name string) {
	x.endIfOpen()
	x.write("<")
	x.write(name)
	x.open = true
}

// Attr writes an attribute on the open tag. The value goes out verbatim;
// callers validate or escape beforehand.
func (x *svgWriter) Attr(name, value string) {
	x.write(" ")
	x.write(name)
	x.write(`="`)
	x.write(value)
	x.write(`"`)
}

// AttrBytes is Attr for a raw byte value.
func (x *svgWriter) AttrBytes(name string, value []byte) {
	x.write(" ")
	x.write(name)
	x.write(`="`)
	x.writeBytes(value)
	x.write(`"`)
}

// AttrUint is Attr for an unsigned number.
func (x *svgWriter) AttrUint(name string, v uint32) {
	x.Attr(name, strconv.FormatUint(uint64(v), 10))
}

// Text writes character data inside the current element.
func (x *svgWriter) Text(s string) {
	x.endIfOpen()
	x.write(s)
}

// CloseInline terminates the open tag as self-closing.
func (x *svgWriter) CloseInline() {
	x.write("/>")
	x.open = false
}

// Close writes a closing tag, terminating any still-open tag first.
func (x *svgWriter) Close(name string) {
	x.endIfOpen()
	x.write("</")
	x.write(name)
	x.write(">")
}

// Finish closes the document and reports the first write error, if any.
func (x *svgWriter) Finish() error {
	x.Close("svg")
	return x.err
}

func (x *svgWriter) endIfOpen() {
	if x.open {
		x.write(">")
		x.open = false
	}
}

func (x *svgWriter) write(s string) {
	if x.err != nil {
		return
	}
	_, x.err = io.WriteString(x.w, s)
}

func (x *svgWriter) writeBytes(b []byte) {
	if x.err != nil {
		return
	}
	_, x.err = x.w.Write(b)
}
