// Package xmlwriter emits the XML token stream of an Office Open XML part
// through a minimal tag-level interface: start tags, end tags, self-closing
// empty tags, and character-data elements.
//
// Consuming spreadsheet applications are byte-sensitive, so the writer makes
// none of the choices encoding/xml makes for the caller: attributes keep the
// order they were given, empty elements close themselves ("<c:layout/>"), and
// no indentation or line breaks are inserted after the declaration.
package xmlwriter

import (
	"bufio"
	"io"
	"strings"
)

// Attr is a single attribute of an element. Attributes are written in the
// order they are passed, never sorted.
type Attr struct {
	// Name is the attribute name, including any namespace prefix.
	Name string
	// Value is the raw attribute value; the writer escapes it.
	Value string
}

// Writer emits XML fragments to an underlying stream. Writes are buffered;
// the first error reported by the stream is latched and returned by Close,
// and all later operations become no-ops.
type Writer struct {
	bw *bufio.Writer
}

// attrEscaper rewrites the characters that may not appear raw inside a
// double-quoted attribute value.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// dataEscaper rewrites the characters that may not appear raw in character
// data. Quotes stay literal there.
var dataEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// New returns a Writer that emits to w.
func New(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Declaration writes the standard XML declaration, the only line break the
// writer ever produces.
func (w *Writer) Declaration() {
	w.bw.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
}

// StartTag writes an opening tag with the given attributes.
func (w *Writer) StartTag(name string, attrs ...Attr) {
	w.bw.WriteByte('<')
	w.bw.WriteString(name)
	w.writeAttrs(attrs)
	w.bw.WriteByte('>')
}

// EndTag writes the closing tag for name.
func (w *Writer) EndTag(name string) {
	w.bw.WriteString("</")
	w.bw.WriteString(name)
	w.bw.WriteByte('>')
}

// EmptyTag writes a self-closing element with the given attributes.
func (w *Writer) EmptyTag(name string, attrs ...Attr) {
	w.bw.WriteByte('<')
	w.bw.WriteString(name)
	w.writeAttrs(attrs)
	w.bw.WriteString("/>")
}

// DataElement writes an element whose content is the escaped character data.
func (w *Writer) DataElement(name, data string, attrs ...Attr) {
	w.StartTag(name, attrs...)
	dataEscaper.WriteString(w.bw, data)
	w.EndTag(name)
}

// Close flushes buffered output and returns the first error the underlying
// stream reported. It does not close the underlying stream.
func (w *Writer) Close() error {
	return w.bw.Flush()
}

func (w *Writer) writeAttrs(attrs []Attr) {
	for _, a := range attrs {
		w.bw.WriteByte(' ')
		w.bw.WriteString(a.Name)
		w.bw.WriteString(`="`)
		attrEscaper.WriteString(w.bw, a.Value)
		w.bw.WriteByte('"')
	}
}
