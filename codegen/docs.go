package codegen

import "strings"

// Docs is documentation attached to a declaration, rendered as one doc
// comment line per source line.
type Docs struct {
	text string
}

// NewDocs returns documentation with the given text.
func NewDocs(text string) Docs {
	return Docs{text: text}
}

// Render writes the documentation, one "/// " line per source line.
func (d *Docs) Render(f *Formatter) {
	lines := strings.Split(d.text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		f.WriteString("/// " + line + "\n")
	}
}
