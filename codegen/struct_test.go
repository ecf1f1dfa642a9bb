package codegen_test

import (
	"testing"

	"rustgen/codegen"
)

func TestUnitStruct(t *testing.T) {
	scope := codegen.NewScope()
	scope.NewStruct("Marker").Vis("pub")

	expectRender(t, scope, `
pub struct Marker;`)
}

func TestTupleStruct(t *testing.T) {
	scope := codegen.NewScope()
	scope.NewStruct("Pair").
		TupleField(codegen.NewType("i32")).
		TupleField(codegen.NewType("i32"))

	expectRender(t, scope, `
struct Pair(i32, i32);`)
}

func TestStructHeaderOrder(t *testing.T) {
	scope := codegen.NewScope()
	s := scope.NewStruct("Config").
		Vis("pub").
		Generic("T").
		Bound("T", codegen.NewType("Serialize")).
		Doc("Runtime configuration.\nLoaded once at startup.").
		Derive("Debug").
		Derive("Clone").
		Allow("dead_code").
		Repr("C").
		Attr("#[serde(deny_unknown_fields)]")

	inner := codegen.NewField("inner", codegen.NewType("T"))
	inner.Doc("Wrapped value.")
	inner.Annotation("#[serde(default)]")
	s.PushField(inner)
	s.Field("count", codegen.NewType("usize"))

	// свободные атрибуты идут раньше документации, заголовок в фиксированном порядке
	expectRender(t, scope, `
#[serde(deny_unknown_fields)]
/// Runtime configuration.
/// Loaded once at startup.
#[allow(dead_code)]
#[derive(Debug, Clone)]
#[repr(C)]
pub struct Config<T>
where T: Serialize,
{
    /// Wrapped value.
    #[serde(default)]
    inner: T,
    count: usize,
}`)
}

func TestStructTy(t *testing.T) {
	s := codegen.NewStruct("Grid").Generic("T").Generic("U")
	ty := s.Ty()
	if ty.Name() != "Grid" {
		t.Fatalf("Ty().Name() = %q, want %q", ty.Name(), "Grid")
	}
}

func TestStructFieldModeMixPanics(t *testing.T) {
	named := codegen.NewStruct("Named")
	named.Field("a", codegen.NewType("i32"))
	expectPanicMsg(t, "field list is tuple", func() {
		named.TupleField(codegen.NewType("i32"))
	})

	tuple := codegen.NewStruct("Tuple")
	tuple.TupleField(codegen.NewType("i32"))
	expectPanicMsg(t, "field list is named", func() {
		tuple.Field("a", codegen.NewType("i32"))
	})
}
