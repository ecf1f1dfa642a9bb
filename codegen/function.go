package codegen

// Function builds a function declaration.
type Function struct {
	name     string
	docs     *Docs
	allow    string
	vis      string
	generics []string
	argSelf  string
	args     []Field
	ret      *Type
	bounds   []Bound
	// body is nil only for a bare trait signature; a non-nil empty body
	// renders as an empty block.
	body       []Body
	attributes []string
	externABI  string
	isAsync    bool
}

// NewFunction returns a function with the given name and an empty body.
func NewFunction(name string) *Function {
	return &Function{name: name, body: []Body{}}
}

// Doc sets the function's documentation.
func (fn *Function) Doc(docs string) *Function {
	d := NewDocs(docs)
	fn.docs = &d
	return fn
}

// Allow sets the function's lint-suppression attribute.
func (fn *Function) Allow(allow string) *Function {
	fn.allow = allow
	return fn
}

// Vis sets the function's visibility.
func (fn *Function) Vis(vis string) *Function {
	fn.vis = vis
	return fn
}

// Generic adds a generic parameter.
func (fn *Function) Generic(name string) *Function {
	fn.generics = append(fn.generics, name)
	return fn
}

// ArgSelf gives the function a by-value self receiver.
func (fn *Function) ArgSelf() *Function {
	fn.argSelf = "self"
	return fn
}

// ArgRefSelf gives the function a shared-reference self receiver.
func (fn *Function) ArgRefSelf() *Function {
	fn.argSelf = "&self"
	return fn
}

// ArgMutSelf gives the function a mutable-reference self receiver.
func (fn *Function) ArgMutSelf() *Function {
	fn.argSelf = "&mut self"
	return fn
}

// Arg appends an argument.
func (fn *Function) Arg(name string, ty Type) *Function {
	fn.args = append(fn.args, NewField(name, ty))
	return fn
}

// Ret sets the return type.
func (fn *Function) Ret(ty Type) *Function {
	fn.ret = &ty
	return fn
}

// Bound adds a where bound.
func (fn *Function) Bound(name string, ty Type) *Function {
	fn.bounds = append(fn.bounds, Bound{Name: name, Types: []Type{ty}})
	return fn
}

// Line appends a literal line to the body.
func (fn *Function) Line(line string) *Function {
	fn.body = append(fn.body, lineBody(line))
	return fn
}

// PushBlock appends a nested block to the body.
func (fn *Function) PushBlock(block Block) *Function {
	fn.body = append(fn.body, blockBody(block))
	return fn
}

// Attr appends an attribute line, e.g. Attr("no_mangle") for #[no_mangle].
func (fn *Function) Attr(attribute string) *Function {
	fn.attributes = append(fn.attributes, attribute)
	return fn
}

// ExternABI marks the function extern with the given ABI.
func (fn *Function) ExternABI(abi string) *Function {
	fn.externABI = abi
	return fn
}

// SetAsync marks the function async.
func (fn *Function) SetAsync(isAsync bool) *Function {
	fn.isAsync = isAsync
	return fn
}

// Render writes the function. inTrait toggles trait-position rules: a nil
// body renders as a bare signature instead of panicking, and a visibility
// modifier panics, since trait members carry none.
func (fn *Function) Render(f *Formatter, inTrait bool) {
	if fn.docs != nil {
		fn.docs.Render(f)
	}
	if fn.allow != "" {
		f.Writef("#[allow(%s)]\n", fn.allow)
	}
	for _, attr := range fn.attributes {
		f.Writef("#[%s]\n", attr)
	}
	if inTrait && fn.vis != "" {
		panic("trait fns do not have visibility modifiers")
	}
	if fn.vis != "" {
		f.WriteString(fn.vis + " ")
	}
	if fn.externABI != "" {
		f.Writef("extern %q ", fn.externABI)
	}
	if fn.isAsync {
		f.WriteString("async ")
	}
	f.WriteString("fn " + fn.name)
	writeGenerics(f, fn.generics)
	f.WriteString("(")
	if fn.argSelf != "" {
		f.WriteString(fn.argSelf)
	}
	for i := range fn.args {
		if i != 0 || fn.argSelf != "" {
			f.WriteString(", ")
		}
		f.WriteString(fn.args[i].Name + ": ")
		fn.args[i].Ty.Render(f)
	}
	f.WriteString(")")
	if fn.ret != nil {
		f.WriteString(" -> ")
		fn.ret.Render(f)
	}
	writeBounds(f, fn.bounds)
	if fn.body != nil {
		f.Block(func(f *Formatter) {
			for i := range fn.body {
				fn.body[i].render(f)
			}
		})
		return
	}
	if !inTrait {
		panic("impl blocks must define fn bodies")
	}
	f.WriteString(";\n")
}
