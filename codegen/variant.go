package codegen

// Variant is a single enum case: a name plus its fields.
type Variant struct {
	name   string
	fields Fields
}

// NewVariant returns a variant with the given name and no fields.
func NewVariant(name string) Variant {
	return Variant{name: name}
}

// Named adds a named field to the variant.
func (v *Variant) Named(name string, ty Type) *Variant {
	v.fields.Named(name, ty)
	return v
}

// Tuple adds a positional field to the variant.
func (v *Variant) Tuple(ty Type) *Variant {
	v.fields.Tuple(ty)
	return v
}

// Render writes the variant: name, fields, trailing comma.
func (v *Variant) Render(f *Formatter) {
	f.WriteString(v.name)
	v.fields.Render(f)
	f.WriteString(",\n")
}
