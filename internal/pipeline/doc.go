// Package pipeline runs manifests through load, build, render and write
// stages and reports progress per file.
//
// Назначение: обнаружение манифестов, параллельная генерация через errgroup,
// дисковый кэш готовых рендеров и режим наблюдения за изменениями.
// Не делает: разбора манифестов (пакет manifest) и рендеринга деклараций
// (пакет codegen); стадии только связывают их.
// Зависимости: errgroup, msgpack, safecast, fsnotify.
package pipeline
