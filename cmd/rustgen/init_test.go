package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rustgen/codegen"
	"rustgen/manifest"
)

func TestStarterManifestIsValid(t *testing.T) {
	data := starterManifest("demo")
	m, err := manifest.Parse([]byte(data), "demo"+manifest.Extension)
	if err != nil {
		t.Fatalf("starter manifest does not parse: %v", err)
	}
	if got := m.OutputPath(""); filepath.Base(got) != "demo.rs" {
		t.Fatalf("starter output = %q, want demo.rs", got)
	}

	var buf bytes.Buffer
	f := codegen.NewFormatter(&buf)
	m.Build().Render(f)
	if err := f.Err(); err != nil {
		t.Fatalf("starter render failed: %v", err)
	}
	rendered := buf.String()
	for _, want := range []string{
		"use std::collections::HashMap;",
		"pub struct Example {",
		"pub enum Mode {",
		"pub fn example() -> Example {",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("starter render missing %q:\n%s", want, rendered)
		}
	}
}

func TestRunInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()

	if err := runInit(initCmd, []string{dir}); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	path := filepath.Join(dir, filepath.Base(dir)+manifest.Extension)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected manifest at %s: %v", path, err)
	}
	// созданный манифест обязан быть валидным
	if _, err := manifest.Load(path); err != nil {
		t.Fatalf("starter manifest does not load: %v", err)
	}

	if err := runInit(initCmd, []string{dir}); err == nil {
		t.Fatal("expected an error on repeated init")
	}
}
