package codegen

// Module builds a mod declaration wrapping a nested scope.
type Module struct {
	// Name of the module, unique within its parent scope.
	Name string

	vis   string
	scope Scope
}

// NewModule returns a module with the given name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// Scope returns the module's scope.
func (m *Module) Scope() *Scope {
	return &m.scope
}

// Vis sets the module's visibility.
func (m *Module) Vis(vis string) *Module {
	m.vis = vis
	return m
}

// Import adds an import to the module's scope.
func (m *Module) Import(path, ty string) *Module {
	m.scope.Import(path, ty)
	return m
}

// NewModule adds a nested module, panicking on a name collision.
func (m *Module) NewModule(name string) *Module {
	return m.scope.NewModule(name)
}

// GetModule returns the nested module with the given name, or nil.
func (m *Module) GetModule(name string) *Module {
	return m.scope.GetModule(name)
}

// GetOrNewModule returns the nested module with the given name, creating
// it if absent.
func (m *Module) GetOrNewModule(name string) *Module {
	return m.scope.GetOrNewModule(name)
}

// PushModule appends a nested module, panicking on a name collision.
func (m *Module) PushModule(item Module) *Module {
	m.scope.PushModule(item)
	return m
}

// NewStruct adds a struct to the module's scope and returns it.
func (m *Module) NewStruct(name string) *Struct {
	return m.scope.NewStruct(name)
}

// PushStruct appends a struct to the module's scope.
func (m *Module) PushStruct(item Struct) *Module {
	m.scope.PushStruct(item)
	return m
}

// NewFn adds a function to the module's scope and returns it.
func (m *Module) NewFn(name string) *Function {
	return m.scope.NewFn(name)
}

// PushFn appends a function to the module's scope.
func (m *Module) PushFn(item Function) *Module {
	m.scope.PushFn(item)
	return m
}

// NewEnum adds an enum to the module's scope and returns it.
func (m *Module) NewEnum(name string) *Enum {
	return m.scope.NewEnum(name)
}

// PushEnum appends an enum to the module's scope.
func (m *Module) PushEnum(item Enum) *Module {
	m.scope.PushEnum(item)
	return m
}

// NewImpl adds an impl block to the module's scope and returns it.
func (m *Module) NewImpl(target string) *Impl {
	return m.scope.NewImpl(target)
}

// PushImpl appends an impl block to the module's scope.
func (m *Module) PushImpl(item Impl) *Module {
	m.scope.PushImpl(item)
	return m
}

// PushTrait appends a trait to the module's scope.
func (m *Module) PushTrait(item Trait) *Module {
	m.scope.PushTrait(item)
	return m
}

// Render writes the module header and its scope as a block.
func (m *Module) Render(f *Formatter) {
	if m.vis != "" {
		f.WriteString(m.vis + " ")
	}
	f.WriteString("mod " + m.Name)
	f.Block(func(f *Formatter) {
		m.scope.Render(f)
	})
}
