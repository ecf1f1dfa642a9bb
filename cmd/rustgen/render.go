package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rustgen/codegen"
	"rustgen/manifest"
)

var renderCmd = &cobra.Command{
	Use:   "render <manifest>",
	Short: "Render one manifest to stdout",
	Long:  "Render the Rust source for a single .rsgen.toml manifest to stdout without writing or caching anything.",
	Args:  cobra.ExactArgs(1),
	RunE:  renderExecution,
}

func renderExecution(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	var buf bytes.Buffer
	f := codegen.NewFormatter(&buf)
	m.Build().Render(f)
	if err := f.Err(); err != nil {
		return err
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write render: %w", err)
	}
	return nil
}
