// Package codegen builds Rust declaration source text programmatically.
//
// # Purpose
//
//   - Model declarations (structs, enums, traits, impl blocks, functions,
//     modules, imports, raw text) as a composition tree built through
//     chainable constructors.
//   - Render the tree into correctly indented, punctuated text through a
//     Formatter whose block primitive guarantees indentation discipline
//     even when a nested render fails.
//
// # Scope
//
// Package codegen does not parse existing source text and does not verify
// that the generated text is semantically valid Rust. File IO, manifests
// and orchestration live in the manifest package and internal/pipeline.
//
// # Building and rendering
//
// A Scope owns imports and declarations in push order. Builder calls either
// return the receiver for chaining or return a handle to the newly inserted
// element; handles stay valid for the lifetime of the owning collection.
// After construction, one Render call walks the tree. Rendering is
// read-only and deterministic: the same tree always produces the same
// bytes.
//
// # Contract violations
//
// Misuse of the builder (mixing named and tuple fields, adding generics to
// an already-bracketed type name, creating a second module under one name,
// a visibility modifier on a trait function, a bodiless function in an impl
// block) is a programmer error and panics at the violating call, or at
// render where the context is only known then. Sink write failures are not
// panics: the Formatter records the first error and Err reports it.
package codegen
