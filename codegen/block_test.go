package codegen_test

import (
	"testing"

	"rustgen/codegen"
)

func TestBlockOneLine(t *testing.T) {
	scope := codegen.NewScope()
	fn := scope.NewFn("hello_world")

	block := codegen.NewBlock("")
	block.Line(`println!("Hello, world!");`)

	fn.PushBlock(*block)

	expectRender(t, scope, `
fn hello_world() {
    {
        println!("Hello, world!");
    }
}`)
}

func TestBlockMultipleLines(t *testing.T) {
	scope := codegen.NewScope()
	fn := scope.NewFn("hello_world")

	block := codegen.NewBlock("")
	block.Line(`println!("Hello, world!");`)
	block.Line(`println!("from Rust!");`)

	fn.PushBlock(*block)

	expectRender(t, scope, `
fn hello_world() {
    {
        println!("Hello, world!");
        println!("from Rust!");
    }
}`)
}

func TestBlockBeforeAndAfter(t *testing.T) {
	scope := codegen.NewScope()
	fn := scope.NewFn("classify")

	block := codegen.NewBlock("let kind = match value")
	block.Line("0 => Kind::Zero,")
	block.Line("_ => Kind::Other,")
	block.After(";")

	fn.PushBlock(*block)

	expectRender(t, scope, `
fn classify() {
    let kind = match value {
        0 => Kind::Zero,
        _ => Kind::Other,
    };
}`)
}

func TestBlockNesting(t *testing.T) {
	scope := codegen.NewScope()
	fn := scope.NewFn("run")

	inner := codegen.NewBlock("if ready")
	inner.Line("flush();")

	outer := codegen.NewBlock("loop")
	outer.Line("tick();")
	outer.PushBlock(*inner)

	fn.PushBlock(*outer)

	expectRender(t, scope, `
fn run() {
    loop {
        tick();
        if ready {
            flush();
        }
    }
}`)
}
