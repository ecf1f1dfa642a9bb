package codegen

// Impl builds an impl block.
type Impl struct {
	target    Type
	generics  []string
	implTrait *Type
	assoc     []Field
	bounds    []Bound
	fns       []*Function
	macros    []string
}

// NewImpl returns an impl block for the target type.
func NewImpl(target Type) *Impl {
	return &Impl{target: target}
}

// Generic adds a generic parameter to the impl block.
func (im *Impl) Generic(name string) *Impl {
	im.generics = append(im.generics, name)
	return im
}

// TargetGeneric adds a generic argument to the target type.
func (im *Impl) TargetGeneric(ty Type) *Impl {
	im.target.Generic(ty)
	return im
}

// ImplTrait sets the trait being implemented.
func (im *Impl) ImplTrait(ty Type) *Impl {
	im.implTrait = &ty
	return im
}

// Macro adds a macro line above the impl block.
func (im *Impl) Macro(m string) *Impl {
	im.macros = append(im.macros, m)
	return im
}

// AssociateType assigns an associated type, rendered as "type Name = Ty;".
func (im *Impl) AssociateType(name string, ty Type) *Impl {
	im.assoc = append(im.assoc, NewField(name, ty))
	return im
}

// Bound adds a where bound.
func (im *Impl) Bound(name string, ty Type) *Impl {
	im.bounds = append(im.bounds, Bound{Name: name, Types: []Type{ty}})
	return im
}

// NewFn adds a function and returns it.
func (im *Impl) NewFn(name string) *Function {
	fn := NewFunction(name)
	im.fns = append(im.fns, fn)
	return fn
}

// PushFn appends a function.
func (im *Impl) PushFn(fn Function) *Impl {
	im.fns = append(im.fns, &fn)
	return im
}

// Render writes the impl block: macro lines, the impl header with generics,
// trait and target, the bound clause, then a block of associated-type
// assignments and function bodies.
func (im *Impl) Render(f *Formatter) {
	for _, m := range im.macros {
		f.WriteString(m + "\n")
	}
	f.WriteString("impl")
	writeGenerics(f, im.generics)
	if im.implTrait != nil {
		f.WriteString(" ")
		im.implTrait.Render(f)
		f.WriteString(" for")
	}
	f.WriteString(" ")
	im.target.Render(f)
	writeBounds(f, im.bounds)
	f.Block(func(f *Formatter) {
		for i := range im.assoc {
			f.WriteString("type " + im.assoc[i].Name + " = ")
			im.assoc[i].Ty.Render(f)
			f.WriteString(";\n")
		}
		for i, fn := range im.fns {
			if i != 0 || len(im.assoc) > 0 {
				f.WriteString("\n")
			}
			fn.Render(f, false)
		}
	})
}
