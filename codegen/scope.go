package codegen

import "strings"

// Scope is an ordered collection of imports and declarations rendered as
// one unit. Imports come first, then declarations in push order separated
// by blank lines.
type Scope struct {
	imports []*Import
	items   []Item
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Import adds an import of ty from path and returns it.
func (s *Scope) Import(path, ty string) *Import {
	im := NewImport(path, ty)
	s.imports = append(s.imports, im)
	return im
}

// NewModule adds a module and returns it. Module names are unique within a
// scope; creating a duplicate panics. Use GetOrNewModule for the
// idempotent form.
func (s *Scope) NewModule(name string) *Module {
	m := NewModule(name)
	s.addModule(m)
	return m
}

// GetModule returns the module with the given name, or nil.
func (s *Scope) GetModule(name string) *Module {
	for _, it := range s.items {
		if m, ok := it.(*Module); ok && m.Name == name {
			return m
		}
	}
	return nil
}

// GetOrNewModule returns the module with the given name, creating it if
// absent. Every handle refers to the same owned module, so mutation
// through one handle is visible through the others.
func (s *Scope) GetOrNewModule(name string) *Module {
	if m := s.GetModule(name); m != nil {
		return m
	}
	return s.NewModule(name)
}

// PushModule appends a module declaration, panicking on a name collision.
func (s *Scope) PushModule(item Module) *Scope {
	s.addModule(&item)
	return s
}

func (s *Scope) addModule(m *Module) {
	if s.GetModule(m.Name) != nil {
		panic("module " + m.Name + " already defined")
	}
	s.items = append(s.items, m)
}

// NewStruct adds a struct and returns it.
func (s *Scope) NewStruct(name string) *Struct {
	st := NewStruct(name)
	s.items = append(s.items, st)
	return st
}

// PushStruct appends a struct declaration.
func (s *Scope) PushStruct(item Struct) *Scope {
	s.items = append(s.items, &item)
	return s
}

// NewFn adds a function and returns it.
func (s *Scope) NewFn(name string) *Function {
	fn := NewFunction(name)
	s.items = append(s.items, fn)
	return fn
}

// PushFn appends a function declaration.
func (s *Scope) PushFn(item Function) *Scope {
	s.items = append(s.items, &item)
	return s
}

// NewEnum adds an enum and returns it.
func (s *Scope) NewEnum(name string) *Enum {
	e := NewEnum(name)
	s.items = append(s.items, e)
	return e
}

// PushEnum appends an enum declaration.
func (s *Scope) PushEnum(item Enum) *Scope {
	s.items = append(s.items, &item)
	return s
}

// NewTrait adds a trait and returns it.
func (s *Scope) NewTrait(name string) *Trait {
	t := NewTrait(name)
	s.items = append(s.items, t)
	return t
}

// PushTrait appends a trait declaration.
func (s *Scope) PushTrait(item Trait) *Scope {
	s.items = append(s.items, &item)
	return s
}

// NewImpl adds an impl block for the named target and returns it.
func (s *Scope) NewImpl(target string) *Impl {
	im := NewImpl(NewType(target))
	s.items = append(s.items, im)
	return im
}

// PushImpl appends an impl block.
func (s *Scope) PushImpl(item Impl) *Scope {
	s.items = append(s.items, &item)
	return s
}

// Raw appends text passed through to the output unmodified.
func (s *Scope) Raw(val string) *Scope {
	s.items = append(s.items, rawItem(val))
	return s
}

// Render writes the scope: imports one per line, a blank line if any
// exist, then declarations in push order with a blank line before every
// declaration after the first. Rendering mutates nothing; rendering the
// same scope twice yields identical output.
func (s *Scope) Render(f *Formatter) {
	for _, im := range s.imports {
		f.WriteString("use " + im.line + ";\n")
	}
	if len(s.imports) > 0 {
		f.WriteString("\n")
	}
	for i, it := range s.items {
		if i != 0 {
			f.WriteString("\n")
		}
		it.renderItem(f)
	}
}

// String renders the scope and trims the single trailing newline.
func (s *Scope) String() string {
	var sb strings.Builder
	s.Render(NewFormatter(&sb))
	return strings.TrimSuffix(sb.String(), "\n")
}
