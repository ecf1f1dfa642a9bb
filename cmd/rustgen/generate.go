package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rustgen/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [path ...]",
	Short: "Generate Rust sources from manifests",
	Long: `Generate Rust sources from .rsgen.toml manifests. Paths may name manifest
files or directories to scan recursively; the default is the current directory.`,
	RunE: generateExecution,
}

func init() {
	generateCmd.Flags().String("out-dir", "", "redirect relative output paths into this directory")
	generateCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = all cores)")
	generateCmd.Flags().Bool("check", false, "verify outputs are up to date without writing")
	generateCmd.Flags().Bool("watch", false, "re-generate whenever manifests change")
	generateCmd.Flags().Duration("debounce", pipeline.DefaultDebounce, "settle delay before a watch re-run")
	generateCmd.Flags().Bool("no-cache", false, "disable the render cache")
	generateCmd.Flags().Bool("clear-cache", false, "drop the render cache before generating")
	generateCmd.Flags().String("ui", "auto", "user interface (auto|on|off)")
}

func generateExecution(cmd *cobra.Command, args []string) error {
	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}

	if check && watch {
		return fmt.Errorf("--check and --watch are mutually exclusive")
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var cache *pipeline.RenderCache
	if !noCache || clearCache {
		cache, err = pipeline.OpenRenderCache("rustgen")
		if err != nil {
			// кэш — ускорение, а не условие работы
			fmt.Fprintf(os.Stderr, "warning: render cache unavailable: %v\n", err)
			cache = nil
		}
	}
	if clearCache {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clear render cache: %w", err)
		}
		if noCache {
			cache = nil
		}
	}

	printer := newStatusPrinter(colorFlag, quiet)
	cmd.SilenceUsage = true

	if watch {
		return watchExecution(cmd.Context(), paths, outDir, jobs, debounce, cache, printer)
	}

	manifests, err := pipeline.CollectManifests(paths)
	if err != nil {
		return err
	}
	if len(manifests) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stdout, "no manifests found")
		}
		return nil
	}

	req := &pipeline.Request{
		Manifests: manifests,
		OutDir:    outDir,
		Jobs:      jobs,
		Check:     check,
		Cache:     cache,
	}

	useTUI := shouldUseTUI(uiModeValue, check, quiet)
	start := time.Now()
	var res pipeline.Result
	if useTUI && len(manifests) > 0 {
		title := fmt.Sprintf("rustgen generate (%d manifests)", len(manifests))
		res, err = runGenerateWithUI(cmd.Context(), title, manifests, req)
	} else {
		res, err = pipeline.Generate(cmd.Context(), req)
	}
	if err != nil {
		return err
	}
	return printer.report(res, check, time.Since(start))
}

func watchExecution(parent context.Context, paths []string, outDir string, jobs int, debounce time.Duration, cache *pipeline.RenderCache, printer *statusPrinter) error {
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runOnce := func(runCtx context.Context) error {
		manifests, err := pipeline.CollectManifests(paths)
		if err != nil {
			// пути могли исчезнуть между событиями, наблюдение продолжается
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			return nil
		}
		if len(manifests) == 0 {
			return nil
		}
		start := time.Now()
		res, err := pipeline.Generate(runCtx, &pipeline.Request{
			Manifests: manifests,
			OutDir:    outDir,
			Jobs:      jobs,
			Cache:     cache,
		})
		if err != nil {
			return err
		}
		// сломанные манифесты уже напечатаны, код выхода тут не нужен
		_ = printer.report(res, false, time.Since(start))
		return nil
	}

	if err := runOnce(ctx); err != nil {
		return err
	}

	dirs, err := pipeline.CollectWatchDirs(paths)
	if err != nil {
		return err
	}
	watcher, err := pipeline.NewWatcher(debounce, runOnce, func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := watcher.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close watcher: %v\n", closeErr)
		}
	}()

	if !printer.quiet {
		// новые подкаталоги на лету не подхватываются: fsnotify не рекурсивен
		fmt.Fprintf(os.Stdout, "watching %d directories for manifest changes (Ctrl+C to stop)\n", len(dirs))
	}
	if err := watcher.Watch(ctx, dirs); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
