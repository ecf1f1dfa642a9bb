package codegen_test

import (
	"testing"

	"rustgen/codegen"
)

func TestModuleScope(t *testing.T) {
	scope := codegen.NewScope()
	scope.NewModule("foo").Import("bar", "Bar")

	mod := scope.GetModule("foo")
	if mod == nil {
		t.Fatal("GetModule returned nil for existing module")
	}
	mod.NewStruct("Foo").Field("bar", codegen.NewType("Bar"))

	expectRender(t, scope, `
mod foo {
    use bar::Bar;

    struct Foo {
        bar: Bar,
    }
}`)
}

func TestGetOrNewModule(t *testing.T) {
	scope := codegen.NewScope()
	if scope.GetModule("foo") != nil {
		t.Fatal("GetModule should return nil before the module exists")
	}

	first := scope.GetOrNewModule("foo")
	first.Import("bar", "Bar")

	second := scope.GetOrNewModule("foo")
	if first != second {
		t.Fatal("GetOrNewModule returned a different handle for the same name")
	}
	// мутация через второй хэндл видна в том же модуле, что и импорт через первый
	second.NewStruct("Foo").Field("bar", codegen.NewType("Bar"))

	expectRender(t, scope, `
mod foo {
    use bar::Bar;

    struct Foo {
        bar: Bar,
    }
}`)
}

func TestNestedModules(t *testing.T) {
	scope := codegen.NewScope()
	net := scope.NewModule("net")
	net.Vis("pub")
	tcp := net.NewModule("tcp")
	tcp.NewStruct("Listener").Field("port", codegen.NewType("u16"))

	expectRender(t, scope, `
pub mod net {
    mod tcp {
        struct Listener {
            port: u16,
        }
    }
}`)
}

func TestDuplicateModulePanics(t *testing.T) {
	scope := codegen.NewScope()
	scope.NewModule("io")

	expectPanicMsg(t, "module io already defined", func() {
		scope.NewModule("io")
	})
}

func TestPushModuleCollisionPanics(t *testing.T) {
	scope := codegen.NewScope()
	scope.NewModule("io")

	expectPanicMsg(t, "module io already defined", func() {
		scope.PushModule(*codegen.NewModule("io"))
	})
}
