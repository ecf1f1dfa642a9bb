package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Extension is the file suffix every manifest must carry.
const Extension = ".rsgen.toml"

// ErrNotManifest indicates a path without the manifest extension.
var ErrNotManifest = errors.New("not a " + Extension + " manifest")

// Manifest is one decoded .rsgen.toml file: an output destination plus the
// declarations of the top-level scope.
type Manifest struct {
	Output Output `toml:"output"`
	Scope

	path string
}

// Output configures where the rendered file goes.
type Output struct {
	// Path is resolved against the manifest directory when relative.
	// Empty means the manifest filename with .rsgen.toml swapped for .rs.
	Path string `toml:"path"`
}

// Scope is the declaration schema shared by the manifest top level and
// nested [[module]] tables.
type Scope struct {
	Uses    []Use    `toml:"use"`
	Structs []Struct `toml:"struct"`
	Enums   []Enum   `toml:"enum"`
	Traits  []Trait  `toml:"trait"`
	Impls   []Impl   `toml:"impl"`
	Fns     []Fn     `toml:"fn"`
	Modules []Module `toml:"module"`
	Raws    []Raw    `toml:"raw"`
}

// Use is one [[use]] entry, rendered as `use path::type;`. The visibility
// is accepted and recorded but not emitted.
type Use struct {
	Path string `toml:"path"`
	Type string `toml:"type"`
	Vis  string `toml:"vis"`
}

// Bound is one where-clause entry. The type string passes through
// verbatim, so compound bounds like "Clone + Send" are written as one
// entry.
type Bound struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Field is a named field of a struct or enum variant.
type Field struct {
	Name        string   `toml:"name"`
	Type        string   `toml:"type"`
	Doc         []string `toml:"doc"`
	Annotations []string `toml:"annotations"`
}

// Struct is one [[struct]] entry. Named fields and a tuple list are
// mutually exclusive; neither makes a unit struct.
type Struct struct {
	Name     string   `toml:"name"`
	Vis      string   `toml:"vis"`
	Doc      string   `toml:"doc"`
	Derive   []string `toml:"derive"`
	Allow    []string `toml:"allow"`
	Repr     string   `toml:"repr"`
	Attrs    []string `toml:"attrs"`
	Generics []string `toml:"generics"`
	Bounds   []Bound  `toml:"bound"`
	Fields   []Field  `toml:"field"`
	Tuple    []string `toml:"tuple"`
}

// Variant is one [[enum.variant]] entry, with the same named/tuple
// exclusivity as structs.
type Variant struct {
	Name   string   `toml:"name"`
	Fields []Field  `toml:"field"`
	Tuple  []string `toml:"tuple"`
}

// Enum is one [[enum]] entry.
type Enum struct {
	Name     string    `toml:"name"`
	Vis      string    `toml:"vis"`
	Doc      string    `toml:"doc"`
	Derive   []string  `toml:"derive"`
	Allow    []string  `toml:"allow"`
	Repr     string    `toml:"repr"`
	Generics []string  `toml:"generics"`
	Bounds   []Bound   `toml:"bound"`
	Variants []Variant `toml:"variant"`
}

// Arg is a function argument; the name passes through verbatim so
// patterns like "mut buf" stay intact.
type Arg struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Fn describes a function in any position: free, inside an impl block, or
// inside a trait. Body presence matters for trait fns: an absent body key
// declares a bare signature, a present body (even empty) a default
// implementation. Free and impl fns treat an absent body as empty.
type Fn struct {
	Name     string    `toml:"name"`
	Vis      string    `toml:"vis"`
	Doc      string    `toml:"doc"`
	Allow    string    `toml:"allow"`
	Attrs    []string  `toml:"attrs"`
	Extern   string    `toml:"extern"`
	Async    bool      `toml:"async"`
	Self     string    `toml:"self"`
	Generics []string  `toml:"generics"`
	Args     []Arg     `toml:"arg"`
	Ret      string    `toml:"ret"`
	Bounds   []Bound   `toml:"bound"`
	Body     *[]string `toml:"body"`
}

// Associated is one [[trait.associated]] entry: an associated type
// declaration with optional bounds.
type Associated struct {
	Name   string   `toml:"name"`
	Bounds []string `toml:"bounds"`
}

// Trait is one [[trait]] entry.
type Trait struct {
	Name     string       `toml:"name"`
	Vis      string       `toml:"vis"`
	Doc      string       `toml:"doc"`
	Macros   []string     `toml:"macros"`
	Generics []string     `toml:"generics"`
	Parents  []string     `toml:"parents"`
	Bounds   []Bound      `toml:"bound"`
	Assoc    []Associated `toml:"associated"`
	Fns      []Fn         `toml:"fn"`
}

// Assign is one [[impl.assoc]] entry: an associated type assignment.
type Assign struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Impl is one [[impl]] entry. Target is a type string and may already
// carry brackets, in which case target_generics must stay empty.
type Impl struct {
	Target         string   `toml:"target"`
	Generics       []string `toml:"generics"`
	TargetGenerics []string `toml:"target_generics"`
	Trait          string   `toml:"trait"`
	Macros         []string `toml:"macros"`
	Assoc          []Assign `toml:"assoc"`
	Bounds         []Bound  `toml:"bound"`
	Fns            []Fn     `toml:"fn"`
}

// Module is one [[module]] entry wrapping a nested scope.
type Module struct {
	Name string `toml:"name"`
	Vis  string `toml:"vis"`
	Scope
}

// Raw is one [[raw]] entry, emitted verbatim.
type Raw struct {
	Content string `toml:"content"`
}

// Parse decodes and validates manifest data. The path is used for error
// context and output resolution; the file itself is not touched.
func Parse(data []byte, path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	m.path = path
	m.normalize()
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	if !strings.HasSuffix(path, Extension) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotManifest)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data, path)
}

// Path returns the manifest location as given to Parse.
func (m *Manifest) Path() string {
	return m.path
}

// OutputPath resolves the destination of the rendered file. An explicit
// [output] path wins; relative paths resolve against the manifest
// directory, or against outDir when it is non-empty. Without [output] the
// manifest filename swaps its extension for .rs.
func (m *Manifest) OutputPath(outDir string) string {
	out := strings.TrimSpace(m.Output.Path)
	if out != "" && filepath.IsAbs(out) {
		return filepath.Clean(out)
	}
	dir := filepath.Dir(m.path)
	if outDir != "" {
		dir = outDir
	}
	if out != "" {
		return filepath.Join(dir, filepath.FromSlash(out))
	}
	base := filepath.Base(m.path)
	if strings.HasSuffix(base, Extension) {
		base = strings.TrimSuffix(base, Extension)
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return filepath.Join(dir, base+".rs")
}
