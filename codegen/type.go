package codegen

import "strings"

// Type is a type reference: a name plus ordered generic arguments.
type Type struct {
	name     string
	generics []Type
}

// NewType returns a type with the given name. The name is emitted verbatim,
// so a preformatted name such as "Vec<u8>" is allowed, but such a type can
// no longer grow generic arguments through Generic.
func NewType(name string) Type {
	return Type{name: name}
}

// Name returns the type's name without generic arguments.
func (t *Type) Name() string {
	return t.name
}

// Generic adds a generic argument to the type. Panics if the name already
// contains bracket syntax: nesting into an already-bracketed name would
// emit malformed text.
func (t *Type) Generic(ty Type) *Type {
	if strings.Contains(t.name, "<") {
		panic("type name already includes generics")
	}
	t.generics = append(t.generics, ty)
	return t
}

// Render writes the type, recursing into generic arguments.
func (t *Type) Render(f *Formatter) {
	f.WriteString(t.name)
	if len(t.generics) == 0 {
		return
	}
	f.WriteString("<")
	for i := range t.generics {
		if i != 0 {
			f.WriteString(", ")
		}
		t.generics[i].Render(f)
	}
	f.WriteString(">")
}
