package codegen_test

import (
	"strings"
	"testing"

	"rustgen/codegen"
)

func TestEnumHeaderAttributes(t *testing.T) {
	tests := []struct {
		name  string
		build func(e *codegen.Enum)
		want  string
	}{
		{
			name:  "repr",
			build: func(e *codegen.Enum) { e.Repr("u8") },
			want: `
#[repr(u8)]
enum IpAddrKind {
    V4,
    V6,
}`,
		},
		{
			name:  "allow",
			build: func(e *codegen.Enum) { e.Allow("dead_code") },
			want: `
#[allow(dead_code)]
enum IpAddrKind {
    V4,
    V6,
}`,
		},
		{
			name:  "multiple allow",
			build: func(e *codegen.Enum) { e.Allow("dead_code").Allow("clippy::all") },
			want: `
#[allow(dead_code)]
#[allow(clippy::all)]
enum IpAddrKind {
    V4,
    V6,
}`,
		},
		{
			name:  "derive with visibility",
			build: func(e *codegen.Enum) { e.Vis("pub").Derive("Debug").Derive("Clone") },
			want: `
#[derive(Debug, Clone)]
pub enum IpAddrKind {
    V4,
    V6,
}`,
		},
		{
			name:  "doc",
			build: func(e *codegen.Enum) { e.Doc("Address family.") },
			want: `
/// Address family.
enum IpAddrKind {
    V4,
    V6,
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := codegen.NewScope()
			e := scope.NewEnum("IpAddrKind")
			tt.build(e)
			e.PushVariant(codegen.NewVariant("V4"))
			e.PushVariant(codegen.NewVariant("V6"))
			expectRender(t, scope, tt.want)
		})
	}
}

func TestEnumVariantShapes(t *testing.T) {
	scope := codegen.NewScope()
	e := scope.NewEnum("Shape").Vis("pub")
	e.NewVariant("Empty")
	e.NewVariant("Circle").Tuple(codegen.NewType("f64"))
	e.NewVariant("Rect").
		Named("w", codegen.NewType("f64")).
		Named("h", codegen.NewType("f64"))

	expectRender(t, scope, `
pub enum Shape {
    Empty,
    Circle(f64),
    Rect {
        w: f64,
        h: f64,
    }
    ,
}`)
}

func TestEnumVariantHandleStable(t *testing.T) {
	scope := codegen.NewScope()
	e := scope.NewEnum("Op")
	first := e.NewVariant("Read")
	for _, name := range []string{"Write", "Seek", "Flush", "Close"} {
		e.NewVariant(name)
	}
	// мутация через хэндл после роста списка вариантов
	first.Tuple(codegen.NewType("u32"))

	if got := scope.String(); !strings.Contains(got, "Read(u32),") {
		t.Fatalf("late mutation through variant handle lost:\n%s", got)
	}
}
