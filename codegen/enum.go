package codegen

// Enum builds an enum declaration.
type Enum struct {
	def      typeDef
	variants []*Variant
}

// NewEnum returns an enum with the given name.
func NewEnum(name string) *Enum {
	return &Enum{def: newTypeDef(name)}
}

// Ty returns the enum's type.
func (e *Enum) Ty() Type {
	return e.def.ty
}

// Vis sets the enum's visibility.
func (e *Enum) Vis(vis string) *Enum {
	e.def.vis = vis
	return e
}

// Generic adds a generic parameter to the enum's type.
func (e *Enum) Generic(name string) *Enum {
	e.def.ty.Generic(NewType(name))
	return e
}

// Bound adds a where bound.
func (e *Enum) Bound(name string, ty Type) *Enum {
	e.def.addBound(name, ty)
	return e
}

// Doc sets the enum's documentation.
func (e *Enum) Doc(docs string) *Enum {
	e.def.setDoc(docs)
	return e
}

// Derive adds a trait name to the derive attribute.
func (e *Enum) Derive(name string) *Enum {
	e.def.derive = append(e.def.derive, name)
	return e
}

// Allow adds a lint-suppression attribute line.
func (e *Enum) Allow(allow string) *Enum {
	e.def.allow = append(e.def.allow, allow)
	return e
}

// Repr sets the representation attribute.
func (e *Enum) Repr(repr string) *Enum {
	e.def.repr = repr
	return e
}

// NewVariant adds a variant and returns it for further construction.
func (e *Enum) NewVariant(name string) *Variant {
	v := &Variant{name: name}
	e.variants = append(e.variants, v)
	return v
}

// PushVariant appends a variant.
func (e *Enum) PushVariant(v Variant) *Enum {
	e.variants = append(e.variants, &v)
	return e
}

// Render writes the enum header and a block with one variant per line.
func (e *Enum) Render(f *Formatter) {
	e.def.renderHead(f, "enum", nil)
	f.Block(func(f *Formatter) {
		for _, v := range e.variants {
			v.Render(f)
		}
	})
}
