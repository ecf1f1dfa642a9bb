package codegen

// Struct builds a struct declaration.
type Struct struct {
	def        typeDef
	fields     Fields
	attributes []string
}

// NewStruct returns a struct with the given name.
func NewStruct(name string) *Struct {
	return &Struct{def: newTypeDef(name)}
}

// Ty returns the struct's type, including generic parameters added so far.
func (s *Struct) Ty() Type {
	return s.def.ty
}

// Vis sets the struct's visibility.
func (s *Struct) Vis(vis string) *Struct {
	s.def.vis = vis
	return s
}

// Generic adds a generic parameter to the struct's type.
func (s *Struct) Generic(name string) *Struct {
	s.def.ty.Generic(NewType(name))
	return s
}

// Bound adds a where bound.
func (s *Struct) Bound(name string, ty Type) *Struct {
	s.def.addBound(name, ty)
	return s
}

// Doc sets the struct's documentation.
func (s *Struct) Doc(docs string) *Struct {
	s.def.setDoc(docs)
	return s
}

// Derive adds a trait name to the derive attribute.
func (s *Struct) Derive(name string) *Struct {
	s.def.derive = append(s.def.derive, name)
	return s
}

// Allow adds a lint-suppression attribute line.
func (s *Struct) Allow(allow string) *Struct {
	s.def.allow = append(s.def.allow, allow)
	return s
}

// Repr sets the representation attribute.
func (s *Struct) Repr(repr string) *Struct {
	s.def.repr = repr
	return s
}

// PushField appends a named field. Panics if the struct holds tuple fields.
func (s *Struct) PushField(field Field) *Struct {
	s.fields.PushNamed(field)
	return s
}

// Field appends a named field built from name and type.
func (s *Struct) Field(name string, ty Type) *Struct {
	s.fields.Named(name, ty)
	return s
}

// TupleField appends a positional field. Panics if the struct holds named
// fields.
func (s *Struct) TupleField(ty Type) *Struct {
	s.fields.Tuple(ty)
	return s
}

// Attr adds a free-form attribute line emitted above the whole declaration,
// before the documentation.
func (s *Struct) Attr(attribute string) *Struct {
	s.attributes = append(s.attributes, attribute)
	return s
}

// Render writes the struct declaration. The empty and tuple field modes get
// a trailing semicolon; named fields render as a block.
func (s *Struct) Render(f *Formatter) {
	for _, a := range s.attributes {
		f.WriteString(a + "\n")
	}
	s.def.renderHead(f, "struct", nil)
	s.fields.Render(f)
	if s.fields.mode != fieldsNamed {
		f.WriteString(";\n")
	}
}
