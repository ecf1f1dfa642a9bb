package codegen

import (
	"errors"
	"strings"
	"testing"
)

func TestWriteStringIndentsNonEmptyLines(t *testing.T) {
	var sb strings.Builder
	f := NewFormatter(&sb)
	f.Indent(func(f *Formatter) {
		f.WriteString("a\n\nb\n")
	})

	want := "    a\n\n    b\n"
	if got := sb.String(); got != want {
		t.Fatalf("indent mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestWriteStringTracksLineStart(t *testing.T) {
	var sb strings.Builder
	f := NewFormatter(&sb)
	if !f.IsStartOfLine() {
		t.Fatal("fresh formatter should start at line start")
	}
	f.WriteString("partial")
	if f.IsStartOfLine() {
		t.Fatal("mid-line after writing text without newline")
	}
	f.WriteString("\n")
	if !f.IsStartOfLine() {
		t.Fatal("newline should reset to line start")
	}
}

func TestBlockSpacing(t *testing.T) {
	var sb strings.Builder
	f := NewFormatter(&sb)
	f.WriteString("impl Foo")
	f.Block(func(*Formatter) {})

	if got := sb.String(); got != "impl Foo {\n}\n" {
		t.Fatalf("mid-line block = %q", got)
	}

	sb.Reset()
	f = NewFormatter(&sb)
	f.Block(func(*Formatter) {})

	// в начале строки разделительный пробел не нужен
	if got := sb.String(); got != "{\n}\n" {
		t.Fatalf("line-start block = %q", got)
	}
}

func TestIndentDepthRestoredAfterPanic(t *testing.T) {
	var sb strings.Builder
	f := NewFormatter(&sb)

	func() {
		defer func() { _ = recover() }()
		f.Block(func(f *Formatter) {
			f.WriteString("x\n")
			panic("nested render failure")
		})
	}()

	if f.spaces != 0 {
		t.Fatalf("indent depth leaked: %d spaces", f.spaces)
	}
	f.WriteString("y\n")
	if got := sb.String(); got != "{\n    x\ny\n" {
		t.Fatalf("output after recovery = %q", got)
	}
}

type failingWriter struct {
	remaining int
	err       error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.remaining == 0 {
		return 0, w.err
	}
	w.remaining--
	return len(p), nil
}

func TestWriteErrorSticks(t *testing.T) {
	sinkErr := errors.New("sink full")
	w := &failingWriter{remaining: 1, err: sinkErr}
	f := NewFormatter(w)

	f.WriteString("ok\n")
	if !errors.Is(f.Err(), sinkErr) {
		t.Fatalf("Err() = %v, want %v", f.Err(), sinkErr)
	}

	// последующие записи не затирают первую ошибку и не пишут в sink
	f.WriteString("more\n")
	if !errors.Is(f.Err(), sinkErr) {
		t.Fatalf("Err() after later writes = %v", f.Err())
	}
	if w.remaining != 0 {
		t.Fatalf("writer state changed after sticky error")
	}
}

func TestWritef(t *testing.T) {
	var sb strings.Builder
	f := NewFormatter(&sb)
	f.Writef("#[%s]\n", "inline")
	if got := sb.String(); got != "#[inline]\n" {
		t.Fatalf("Writef = %q", got)
	}
}

func TestRenderBodilessFunctionOutsideTraitPanics(t *testing.T) {
	fn := &Function{name: "orphan"}
	var sb strings.Builder
	f := NewFormatter(&sb)

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || msg != "impl blocks must define fn bodies" {
			t.Fatalf("panic = %v, want %q", r, "impl blocks must define fn bodies")
		}
	}()
	fn.Render(f, false)
	t.Fatal("expected panic for bodiless function outside a trait")
}
