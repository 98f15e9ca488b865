package xmlwriter

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeclaration(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	w.Declaration()
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	want := "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n"
	if got := buf.String(); got != want {
		t.Errorf("Declaration = %q, want %q", got, want)
	}
}

func TestTagForms(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *Writer)
		want  string
	}{
		{
			name:  "start tag without attributes",
			write: func(w *Writer) { w.StartTag("c:chart") },
			want:  "<c:chart>",
		},
		{
			name: "start tag with ordered attributes",
			write: func(w *Writer) {
				w.StartTag("c:chartSpace", Attr{"xmlns:c", "urn:c"}, Attr{"xmlns:a", "urn:a"})
			},
			want: `<c:chartSpace xmlns:c="urn:c" xmlns:a="urn:a">`,
		},
		{
			name:  "end tag",
			write: func(w *Writer) { w.EndTag("c:chart") },
			want:  "</c:chart>",
		},
		{
			name:  "empty tag without attributes",
			write: func(w *Writer) { w.EmptyTag("c:layout") },
			want:  "<c:layout/>",
		},
		{
			name:  "empty tag with attribute",
			write: func(w *Writer) { w.EmptyTag("c:grouping", Attr{"val", "clustered"}) },
			want:  `<c:grouping val="clustered"/>`,
		},
		{
			name: "empty tag keeps attribute order",
			write: func(w *Writer) {
				w.EmptyTag("c:numFmt", Attr{"formatCode", "General"}, Attr{"sourceLinked", "1"})
			},
			want: `<c:numFmt formatCode="General" sourceLinked="1"/>`,
		},
		{
			name:  "data element",
			write: func(w *Writer) { w.DataElement("c:f", "Sheet1!$A$1:$A$5") },
			want:  "<c:f>Sheet1!$A$1:$A$5</c:f>",
		},
		{
			name:  "data element with attribute",
			write: func(w *Writer) { w.DataElement("c:v", "42", Attr{"idx", "0"}) },
			want:  `<c:v idx="0">42</c:v>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(&buf)
			tt.write(w)
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscaping(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *Writer)
		want  string
	}{
		{
			name:  "attribute escapes amp lt gt quot",
			write: func(w *Writer) { w.EmptyTag("t", Attr{"v", `a&b<c>d"e`}) },
			want:  `<t v="a&amp;b&lt;c&gt;d&quot;e"/>`,
		},
		{
			name:  "data escapes amp lt gt but not quot",
			write: func(w *Writer) { w.DataElement("c:f", `'P&L'!$A$1<>"x"`) },
			want:  `<c:f>'P&amp;L'!$A$1&lt;&gt;"x"</c:f>`,
		},
		{
			name:  "already escaped text is escaped again",
			write: func(w *Writer) { w.DataElement("t", "&amp;") },
			want:  "<t>&amp;amp;</t>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := New(&buf)
			tt.write(w)
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCloseFlushes(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	w.EmptyTag("c:pageSetup")

	// Output stays buffered until Close.
	if buf.Len() != 0 {
		t.Errorf("expected no bytes before Close, got %q", buf.String())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := buf.String(); got != "<c:pageSetup/>" {
		t.Errorf("got %q after Close", got)
	}
}

// failWriter fails every write with a fixed error.
type failWriter struct {
	err error
}

func (f failWriter) Write(p []byte) (int, error) {
	return 0, f.err
}

func TestCloseReportsStreamError(t *testing.T) {
	errStream := errors.New("stream broken")
	w := New(failWriter{err: errStream})
	w.Declaration()
	w.StartTag("c:chartSpace")
	w.EndTag("c:chartSpace")

	if err := w.Close(); !errors.Is(err, errStream) {
		t.Errorf("Close = %v, want %v", err, errStream)
	}
	// Later operations must stay safe after the failure.
	w.EmptyTag("c:layout")
	if err := w.Close(); !errors.Is(err, errStream) {
		t.Errorf("second Close = %v, want %v", err, errStream)
	}
}
