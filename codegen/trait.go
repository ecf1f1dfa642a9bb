package codegen

// AssociatedType declares an associated type inside a trait, with optional
// bounds.
type AssociatedType struct {
	bound Bound
}

// Bound adds a required bound to the associated type.
func (a *AssociatedType) Bound(ty Type) *AssociatedType {
	a.bound.Types = append(a.bound.Types, ty)
	return a
}

// Trait builds a trait declaration.
type Trait struct {
	def     typeDef
	parents []Type
	assoc   []*AssociatedType
	fns     []*Function
}

// NewTrait returns a trait with the given name.
func NewTrait(name string) *Trait {
	return &Trait{def: newTypeDef(name)}
}

// Ty returns the trait's type.
func (t *Trait) Ty() Type {
	return t.def.ty
}

// Vis sets the trait's visibility.
func (t *Trait) Vis(vis string) *Trait {
	t.def.vis = vis
	return t
}

// Generic adds a generic parameter to the trait's type.
func (t *Trait) Generic(name string) *Trait {
	t.def.ty.Generic(NewType(name))
	return t
}

// Bound adds a where bound.
func (t *Trait) Bound(name string, ty Type) *Trait {
	t.def.addBound(name, ty)
	return t
}

// Macro adds a macro line above the trait header.
func (t *Trait) Macro(m string) *Trait {
	t.def.macros = append(t.def.macros, m)
	return t
}

// Parent adds a parent trait, rendered after the name as ": P1 + P2".
func (t *Trait) Parent(ty Type) *Trait {
	t.parents = append(t.parents, ty)
	return t
}

// Doc sets the trait's documentation.
func (t *Trait) Doc(docs string) *Trait {
	t.def.setDoc(docs)
	return t
}

// AssociatedType declares an associated type and returns it.
func (t *Trait) AssociatedType(name string) *AssociatedType {
	a := &AssociatedType{bound: Bound{Name: name}}
	t.assoc = append(t.assoc, a)
	return a
}

// NewFn adds a function with no body and returns it. Until lines are added
// it renders as a bare signature; adding lines turns it into a default
// implementation.
func (t *Trait) NewFn(name string) *Function {
	fn := NewFunction(name)
	fn.body = nil
	t.fns = append(t.fns, fn)
	return fn
}

// PushFn appends a function.
func (t *Trait) PushFn(fn Function) *Trait {
	t.fns = append(t.fns, &fn)
	return t
}

// Render writes the trait header and a block holding associated types then
// functions, with a blank line before every function after the first.
func (t *Trait) Render(f *Formatter) {
	t.def.renderHead(f, "trait", t.parents)
	f.Block(func(f *Formatter) {
		for _, a := range t.assoc {
			f.WriteString("type " + a.bound.Name)
			if len(a.bound.Types) > 0 {
				f.WriteString(": ")
				writeBoundTypes(f, a.bound.Types)
			}
			f.WriteString(";\n")
		}
		for i, fn := range t.fns {
			if i != 0 || len(t.assoc) > 0 {
				f.WriteString("\n")
			}
			fn.Render(f, true)
		}
	})
}
