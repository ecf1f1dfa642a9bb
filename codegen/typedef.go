package codegen

// typeDef carries the header metadata shared by struct, enum and trait
// declarations: documentation, lint allows, derives, representation, macro
// lines, visibility and bounds around the declared type itself.
type typeDef struct {
	ty     Type
	vis    string
	docs   *Docs
	derive []string
	allow  []string
	repr   string
	bounds []Bound
	macros []string
}

func newTypeDef(name string) typeDef {
	return typeDef{ty: NewType(name)}
}

func (t *typeDef) setDoc(docs string) {
	d := NewDocs(docs)
	t.docs = &d
}

func (t *typeDef) addBound(name string, ty Type) {
	t.bounds = append(t.bounds, Bound{Name: name, Types: []Type{ty}})
}

// renderHead emits the shared declaration header in its fixed order: docs,
// allow attributes, derive, repr, macro lines, visibility, keyword, the
// type with generics, the parent list, and the bound clause.
func (t *typeDef) renderHead(f *Formatter, keyword string, parents []Type) {
	if t.docs != nil {
		t.docs.Render(f)
	}
	for _, allow := range t.allow {
		f.Writef("#[allow(%s)]\n", allow)
	}
	if len(t.derive) > 0 {
		f.WriteString("#[derive(")
		for i, name := range t.derive {
			if i != 0 {
				f.WriteString(", ")
			}
			f.WriteString(name)
		}
		f.WriteString(")]\n")
	}
	if t.repr != "" {
		f.Writef("#[repr(%s)]\n", t.repr)
	}
	for _, m := range t.macros {
		f.WriteString(m + "\n")
	}
	if t.vis != "" {
		f.WriteString(t.vis + " ")
	}
	f.WriteString(keyword + " ")
	t.ty.Render(f)
	for i := range parents {
		if i == 0 {
			f.WriteString(": ")
		} else {
			f.WriteString(" + ")
		}
		parents[i].Render(f)
	}
	writeBounds(f, t.bounds)
}
