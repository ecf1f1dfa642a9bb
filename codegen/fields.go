package codegen

type fieldsMode uint8

const (
	fieldsEmpty fieldsMode = iota
	fieldsTuple
	fieldsNamed
)

// Fields is the field container shared by structs and enum variants. The
// zero value holds no fields; the first push commits the container to named
// or tuple mode, and mixing modes afterwards is a programmer error that
// panics without mutating the container.
type Fields struct {
	mode  fieldsMode
	tuple []Type
	named []Field
}

// PushNamed appends a named field. Panics when the container already holds
// tuple fields.
func (fs *Fields) PushNamed(field Field) *Fields {
	switch fs.mode {
	case fieldsEmpty:
		fs.mode = fieldsNamed
		fs.named = []Field{field}
	case fieldsNamed:
		fs.named = append(fs.named, field)
	default:
		panic("field list is named")
	}
	return fs
}

// Named appends a named field built from name and type.
func (fs *Fields) Named(name string, ty Type) *Fields {
	return fs.PushNamed(NewField(name, ty))
}

// Tuple appends a positional type. Panics when the container already holds
// named fields.
func (fs *Fields) Tuple(ty Type) *Fields {
	switch fs.mode {
	case fieldsEmpty:
		fs.mode = fieldsTuple
		fs.tuple = []Type{ty}
	case fieldsTuple:
		fs.tuple = append(fs.tuple, ty)
	default:
		panic("field list is tuple")
	}
	return fs
}

// Render writes the fields in their chosen mode: named fields as a block
// with per-field docs and annotations, tuple fields as a parenthesized
// list, and nothing for the empty mode, where the owning declaration emits
// any trailing terminator.
func (fs *Fields) Render(f *Formatter) {
	switch fs.mode {
	case fieldsNamed:
		f.Block(func(f *Formatter) {
			for i := range fs.named {
				fd := &fs.named[i]
				for _, doc := range fd.documentation {
					f.WriteString("/// " + doc + "\n")
				}
				for _, ann := range fd.annotation {
					f.WriteString(ann + "\n")
				}
				f.WriteString(fd.Name + ": ")
				fd.Ty.Render(f)
				f.WriteString(",\n")
			}
		})
	case fieldsTuple:
		f.WriteString("(")
		for i := range fs.tuple {
			if i != 0 {
				f.WriteString(", ")
			}
			fs.tuple[i].Render(f)
		}
		f.WriteString(")")
	case fieldsEmpty:
	}
}
