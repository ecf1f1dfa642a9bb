package codegen

// Field is a named, typed member of a struct or enum variant.
type Field struct {
	// Name of the field.
	Name string
	// Ty is the field's type.
	Ty Type

	documentation []string
	annotation    []string
}

// NewField returns a field with the provided name and type.
func NewField(name string, ty Type) Field {
	return Field{Name: name, Ty: ty}
}

// Doc replaces the field's documentation lines.
func (f *Field) Doc(lines ...string) *Field {
	f.documentation = append([]string(nil), lines...)
	return f
}

// Annotation replaces the field's annotation lines, each emitted verbatim
// above the field.
func (f *Field) Annotation(lines ...string) *Field {
	f.annotation = append([]string(nil), lines...)
	return f
}
