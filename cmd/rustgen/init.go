package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rustgen/manifest"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Create a starter manifest",
	Long: `Create a starter .rsgen.toml manifest. If [path|name] is omitted, the
current directory is used. If a non-existing name is provided, a directory
will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit drops a commented example manifest into the target directory,
// deriving the manifest name from the directory basename. It refuses to
// overwrite an existing manifest of the same name.
func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		// treat as path or name relative to cwd
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Derive manifest name from directory basename
	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "generated"
	}

	manifestPath := filepath.Join(target, name+manifest.Extension)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("manifest already exists: %s", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(starterManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	rel := manifestPath
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, manifestPath); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Created starter manifest\n")
	fmt.Fprintf(os.Stdout, "  - %s\n", rel)
	fmt.Fprintf(os.Stdout, "Run `rustgen generate` here to render %s.rs\n", name)
	return nil
}

// starterManifest returns a commented example covering the common manifest
// tables: one struct, one enum and one function.
func starterManifest(name string) string {
	return fmt.Sprintf(`# rustgen manifest: describes one generated Rust source file.
# Run "rustgen generate" in this directory to render it.

[output]
path = "%s.rs"

[[use]]
path = "std::collections"
type = "HashMap"

[[struct]]
name = "Example"
vis = "pub"
doc = "Generated example struct."
derive = ["Debug", "Clone"]

[[struct.field]]
name = "id"
type = "u64"

[[struct.field]]
name = "labels"
type = "HashMap<String, String>"

[[enum]]
name = "Mode"
vis = "pub"
derive = ["Debug"]

[[enum.variant]]
name = "Fast"

[[enum.variant]]
name = "Thorough"

[[fn]]
name = "example"
vis = "pub"
ret = "Example"
body = [
    "Example { id: 0, labels: HashMap::new() }",
]
`, name)
}
