package codegen

// Item is one top-level construct a Scope can hold. The set is closed:
// modules, structs, functions, traits, enums, impl blocks and raw text.
type Item interface {
	renderItem(f *Formatter)
}

type rawItem string

func (r rawItem) renderItem(f *Formatter) {
	f.WriteString(string(r) + "\n")
}

func (m *Module) renderItem(f *Formatter) {
	m.Render(f)
}

func (s *Struct) renderItem(f *Formatter) {
	s.Render(f)
}

func (fn *Function) renderItem(f *Formatter) {
	fn.Render(f, false)
}

func (t *Trait) renderItem(f *Formatter) {
	t.Render(f)
}

func (e *Enum) renderItem(f *Formatter) {
	e.Render(f)
}

func (im *Impl) renderItem(f *Formatter) {
	im.Render(f)
}
