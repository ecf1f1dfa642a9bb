package codegen_test

import (
	"strings"
	"testing"

	"rustgen/codegen"
)

// expectRender сравнивает вывод scope.String() с эталоном. Эталоны в тестах
// начинаются с перевода строки, чтобы литерал выравнивался в исходнике.
func expectRender(t *testing.T, scope *codegen.Scope, want string) {
	t.Helper()
	want = strings.TrimPrefix(want, "\n")
	got := scope.String()
	if got != want {
		t.Fatalf("render mismatch:\nwant %q\ngot  %q", want, got)
	}
}

// expectPanicMsg проверяет, что fn паникует с ровно этим сообщением
func expectPanicMsg(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		msg, ok := r.(string)
		if !ok || msg != want {
			t.Fatalf("panic = %v, want %q", r, want)
		}
	}()
	fn()
}

func TestScopeImportsRenderFirst(t *testing.T) {
	scope := codegen.NewScope()
	scope.NewStruct("Registry").Field("entries", codegen.NewType("Vec<Entry>"))
	scope.Import("std::collections", "HashMap")
	scope.Import("std::sync", "Arc")

	expectRender(t, scope, `
use std::collections::HashMap;
use std::sync::Arc;

struct Registry {
    entries: Vec<Entry>,
}`)
}

func TestScopeBlankLineBetweenItems(t *testing.T) {
	scope := codegen.NewScope()
	scope.NewStruct("First")
	scope.NewStruct("Second")

	expectRender(t, scope, `
struct First;

struct Second;`)
}

func TestScopeRawItem(t *testing.T) {
	scope := codegen.NewScope()
	scope.Raw("// machine generated, do not edit")
	scope.NewStruct("Marker")

	expectRender(t, scope, `
// machine generated, do not edit

struct Marker;`)
}

func TestScopeStringTrimsSingleTrailingNewline(t *testing.T) {
	scope := codegen.NewScope()
	scope.NewFn("my_fn").
		Vis("pub").
		Arg("foo", codegen.NewType("uint")).
		Ret(codegen.NewType("uint")).
		Line("let res = foo + 1;").
		Line("res")

	var sb strings.Builder
	f := codegen.NewFormatter(&sb)
	scope.Render(f)
	if err := f.Err(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	raw := sb.String()
	want := "pub fn my_fn(foo: uint) -> uint {\n    let res = foo + 1;\n    res\n}\n"
	if raw != want {
		t.Fatalf("raw render mismatch:\nwant %q\ngot  %q", want, raw)
	}
	if got := scope.String(); got != strings.TrimSuffix(want, "\n") {
		t.Fatalf("String() should trim exactly one trailing newline, got %q", got)
	}
}

func TestScopeRenderIdempotent(t *testing.T) {
	scope := codegen.NewScope()
	scope.Import("std::fmt", "Display")
	scope.NewEnum("State").
		PushVariant(codegen.NewVariant("Idle")).
		PushVariant(codegen.NewVariant("Busy"))

	first := scope.String()
	second := scope.String()
	if first != second {
		t.Fatalf("rendering twice diverged:\nfirst  %q\nsecond %q", first, second)
	}
}

func TestImportVisibilityInert(t *testing.T) {
	plain := codegen.NewScope()
	plain.Import("std::io", "Read")

	marked := codegen.NewScope()
	marked.Import("std::io", "Read").Vis("pub")

	if plain.String() != marked.String() {
		t.Fatalf("import visibility leaked into output: %q vs %q", plain.String(), marked.String())
	}
	if got := marked.String(); got != "use std::io::Read;" {
		t.Fatalf("import render = %q", got)
	}
}
