package codegen

import (
	"fmt"
	"io"
	"strings"
)

const indentWidth = 4

// Formatter writes rendered output while tracking indentation depth and
// line-start state. Write failures are sticky: after the first error every
// subsequent write is a no-op and Err reports the failure, so a render pass
// never produces partially valid text without saying so.
type Formatter struct {
	w           io.Writer
	spaces      int
	atLineStart bool
	err         error
}

// NewFormatter returns a formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w, atLineStart: true}
}

// Err returns the first write error encountered, if any.
func (f *Formatter) Err() error {
	return f.err
}

// IsStartOfLine reports whether the next write lands at the start of a line.
func (f *Formatter) IsStartOfLine() bool {
	return f.atLineStart
}

// WriteString writes s, prefixing the current indent onto every non-empty
// line that begins at the start of a line. Empty lines stay empty.
func (f *Formatter) WriteString(s string) {
	for s != "" {
		line := s
		newline := false
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			line, newline, s = s[:i], true, s[i+1:]
		} else {
			s = ""
		}
		if line != "" {
			if f.atLineStart {
				f.raw(strings.Repeat(" ", f.spaces))
			}
			f.raw(line)
			f.atLineStart = false
		}
		if newline {
			f.raw("\n")
			f.atLineStart = true
		}
	}
}

// Writef formats according to format and writes the result.
func (f *Formatter) Writef(format string, args ...any) {
	f.WriteString(fmt.Sprintf(format, args...))
}

// Indent runs body one indentation level deeper. The previous depth is
// restored on exit even when body panics, so indentation bookkeeping never
// leaks out of a failed nested render.
func (f *Formatter) Indent(body func(*Formatter)) {
	f.spaces += indentWidth
	defer func() { f.spaces -= indentWidth }()
	body(f)
}

// Block writes a brace-delimited block: a separating space if the cursor is
// mid-line, the opening brace, the indented body, and the closing brace on
// its own line.
func (f *Formatter) Block(body func(*Formatter)) {
	if !f.atLineStart {
		f.WriteString(" ")
	}
	f.WriteString("{\n")
	f.Indent(body)
	f.WriteString("}\n")
}

func (f *Formatter) raw(s string) {
	if f.err != nil || s == "" {
		return
	}
	if _, err := io.WriteString(f.w, s); err != nil {
		f.err = err
	}
}

// writeGenerics renders a plain generic-parameter list: <A, B>.
func writeGenerics(f *Formatter, generics []string) {
	if len(generics) == 0 {
		return
	}
	f.WriteString("<")
	for i, g := range generics {
		if i != 0 {
			f.WriteString(", ")
		}
		f.WriteString(g)
	}
	f.WriteString(">")
}

// writeBounds renders a where clause, one bound per line, continuation
// lines aligned under the leading keyword.
func writeBounds(f *Formatter, bounds []Bound) {
	if len(bounds) == 0 {
		return
	}
	f.WriteString("\n")
	for i, b := range bounds {
		if i == 0 {
			f.WriteString("where ")
		} else {
			f.WriteString("      ")
		}
		f.WriteString(b.Name + ": ")
		writeBoundTypes(f, b.Types)
		f.WriteString(",\n")
	}
}

// writeBoundTypes renders the right-hand side of a bound: B1 + B2.
func writeBoundTypes(f *Formatter, types []Type) {
	for i := range types {
		if i != 0 {
			f.WriteString(" + ")
		}
		types[i].Render(f)
	}
}
