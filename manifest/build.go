package manifest

import (
	"rustgen/codegen"
)

// Build constructs the codegen tree for the manifest. Parse has already
// validated everything the builders would reject, so Build does not fail.
// Within a scope, items keep their schema-group order: raw blocks first,
// then structs, enums, traits, impls, free fns and modules.
func (m *Manifest) Build() *codegen.Scope {
	out := codegen.NewScope()
	buildScope(&m.Scope, out)
	return out
}

func buildScope(in *Scope, out *codegen.Scope) {
	for _, u := range in.Uses {
		im := out.Import(u.Path, u.Type)
		if u.Vis != "" {
			im.Vis(u.Vis)
		}
	}
	for _, r := range in.Raws {
		out.Raw(r.Content)
	}
	for i := range in.Structs {
		buildStruct(&in.Structs[i], out)
	}
	for i := range in.Enums {
		buildEnum(&in.Enums[i], out)
	}
	for i := range in.Traits {
		buildTrait(&in.Traits[i], out)
	}
	for i := range in.Impls {
		buildImpl(&in.Impls[i], out)
	}
	for i := range in.Fns {
		fn := out.NewFn(in.Fns[i].Name)
		configureFn(fn, &in.Fns[i])
		appendBody(fn, &in.Fns[i])
	}
	for i := range in.Modules {
		mod := out.NewModule(in.Modules[i].Name)
		if in.Modules[i].Vis != "" {
			mod.Vis(in.Modules[i].Vis)
		}
		buildScope(&in.Modules[i].Scope, mod.Scope())
	}
}

func buildStruct(in *Struct, out *codegen.Scope) {
	st := out.NewStruct(in.Name)
	if in.Vis != "" {
		st.Vis(in.Vis)
	}
	if in.Doc != "" {
		st.Doc(in.Doc)
	}
	for _, d := range in.Derive {
		st.Derive(d)
	}
	for _, a := range in.Allow {
		st.Allow(a)
	}
	if in.Repr != "" {
		st.Repr(in.Repr)
	}
	for _, a := range in.Attrs {
		st.Attr(a)
	}
	for _, g := range in.Generics {
		st.Generic(g)
	}
	for _, b := range in.Bounds {
		st.Bound(b.Name, codegen.NewType(b.Type))
	}
	for i := range in.Fields {
		st.PushField(buildField(&in.Fields[i]))
	}
	for _, ty := range in.Tuple {
		st.TupleField(codegen.NewType(ty))
	}
}

func buildField(in *Field) codegen.Field {
	f := codegen.NewField(in.Name, codegen.NewType(in.Type))
	if len(in.Doc) > 0 {
		f.Doc(in.Doc...)
	}
	if len(in.Annotations) > 0 {
		f.Annotation(in.Annotations...)
	}
	return f
}

func buildEnum(in *Enum, out *codegen.Scope) {
	e := out.NewEnum(in.Name)
	if in.Vis != "" {
		e.Vis(in.Vis)
	}
	if in.Doc != "" {
		e.Doc(in.Doc)
	}
	for _, d := range in.Derive {
		e.Derive(d)
	}
	for _, a := range in.Allow {
		e.Allow(a)
	}
	if in.Repr != "" {
		e.Repr(in.Repr)
	}
	for _, g := range in.Generics {
		e.Generic(g)
	}
	for _, b := range in.Bounds {
		e.Bound(b.Name, codegen.NewType(b.Type))
	}
	for i := range in.Variants {
		vs := &in.Variants[i]
		v := e.NewVariant(vs.Name)
		for j := range vs.Fields {
			f := &vs.Fields[j]
			v.Named(f.Name, codegen.NewType(f.Type))
		}
		for _, ty := range vs.Tuple {
			v.Tuple(codegen.NewType(ty))
		}
	}
}

func buildTrait(in *Trait, out *codegen.Scope) {
	t := out.NewTrait(in.Name)
	if in.Vis != "" {
		t.Vis(in.Vis)
	}
	if in.Doc != "" {
		t.Doc(in.Doc)
	}
	for _, m := range in.Macros {
		t.Macro(m)
	}
	for _, g := range in.Generics {
		t.Generic(g)
	}
	for _, p := range in.Parents {
		t.Parent(codegen.NewType(p))
	}
	for _, b := range in.Bounds {
		t.Bound(b.Name, codegen.NewType(b.Type))
	}
	for i := range in.Assoc {
		a := t.AssociatedType(in.Assoc[i].Name)
		for _, b := range in.Assoc[i].Bounds {
			a.Bound(codegen.NewType(b))
		}
	}
	for i := range in.Fns {
		fs := &in.Fns[i]
		if fs.Body == nil {
			// без body: голая сигнатура
			configureFn(t.NewFn(fs.Name), fs)
			continue
		}
		fn := codegen.NewFunction(fs.Name)
		configureFn(fn, fs)
		appendBody(fn, fs)
		t.PushFn(*fn)
	}
}

func buildImpl(in *Impl, out *codegen.Scope) {
	im := out.NewImpl(in.Target)
	for _, g := range in.Generics {
		im.Generic(g)
	}
	for _, g := range in.TargetGenerics {
		im.TargetGeneric(codegen.NewType(g))
	}
	if in.Trait != "" {
		im.ImplTrait(codegen.NewType(in.Trait))
	}
	for _, m := range in.Macros {
		im.Macro(m)
	}
	for _, a := range in.Assoc {
		im.AssociateType(a.Name, codegen.NewType(a.Type))
	}
	for _, b := range in.Bounds {
		im.Bound(b.Name, codegen.NewType(b.Type))
	}
	for i := range in.Fns {
		fn := im.NewFn(in.Fns[i].Name)
		configureFn(fn, &in.Fns[i])
		appendBody(fn, &in.Fns[i])
	}
}

func configureFn(fn *codegen.Function, in *Fn) {
	if in.Doc != "" {
		fn.Doc(in.Doc)
	}
	if in.Allow != "" {
		fn.Allow(in.Allow)
	}
	if in.Vis != "" {
		fn.Vis(in.Vis)
	}
	for _, a := range in.Attrs {
		fn.Attr(a)
	}
	if in.Extern != "" {
		fn.ExternABI(in.Extern)
	}
	if in.Async {
		fn.SetAsync(true)
	}
	switch in.Self {
	case "self":
		fn.ArgSelf()
	case "&self":
		fn.ArgRefSelf()
	case "&mut self":
		fn.ArgMutSelf()
	}
	for _, g := range in.Generics {
		fn.Generic(g)
	}
	for _, a := range in.Args {
		fn.Arg(a.Name, codegen.NewType(a.Type))
	}
	if in.Ret != "" {
		fn.Ret(codegen.NewType(in.Ret))
	}
	for _, b := range in.Bounds {
		fn.Bound(b.Name, codegen.NewType(b.Type))
	}
}

func appendBody(fn *codegen.Function, in *Fn) {
	if in.Body == nil {
		return
	}
	for _, line := range *in.Body {
		fn.Line(line)
	}
}
