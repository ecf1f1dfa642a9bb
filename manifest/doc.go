// Package manifest loads .rsgen.toml files describing one generated Rust
// source file and compiles them into codegen scopes.
//
// Назначение: декларативная TOML-схема поверх builder-API пакета codegen,
// c валидацией до построения, чтобы Build никогда не паниковал на
// пользовательском вводе.
// Не делает: рендеринга, записи файлов, кеширования; это внутри
// internal/pipeline.
// Зависимости: codegen, BurntSushi/toml, golang.org/x/text/unicode/norm.
package manifest
