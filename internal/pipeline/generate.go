package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"rustgen/codegen"
	"rustgen/manifest"
)

// Outcome classifies what happened to one manifest's output file.
type Outcome string

const (
	// OutcomeWrote means the output file was created or replaced.
	OutcomeWrote Outcome = "wrote"
	// OutcomeUnchanged means a fresh render already matched the output file.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeCached means a cached render already matched the output file.
	OutcomeCached Outcome = "cached"
	// OutcomeStale means check mode found an output that would change.
	OutcomeStale Outcome = "stale"
	// OutcomeFailed means a stage errored; Err carries the cause.
	OutcomeFailed Outcome = "failed"
)

// Request configures a generation run over a set of manifests.
type Request struct {
	// Manifests are paths to manifest files, already discovered and sorted.
	Manifests []string
	// OutDir, when non-empty, redirects relative output paths into this directory.
	OutDir string
	// Jobs caps worker parallelism; <=0 means GOMAXPROCS.
	Jobs int
	// Check suppresses all writes and flags outputs that would change as stale.
	Check bool
	// Cache enables render reuse between runs; nil disables caching.
	Cache *RenderCache
	// Progress receives stage events; nil discards them.
	Progress ProgressSink
}

// FileResult описывает путь одного манифеста через конвейер.
type FileResult struct {
	Manifest string
	Output   string
	Outcome  Outcome
	Err      error
	Elapsed  time.Duration
}

// Result aggregates per-manifest results for one run.
type Result struct {
	Files []FileResult
}

// Failed returns the results that errored.
func (r Result) Failed() []FileResult {
	var out []FileResult
	for _, fr := range r.Files {
		if fr.Outcome == OutcomeFailed {
			out = append(out, fr)
		}
	}
	return out
}

// Stale returns the results flagged by check mode.
func (r Result) Stale() []FileResult {
	var out []FileResult
	for _, fr := range r.Files {
		if fr.Outcome == OutcomeStale {
			out = append(out, fr)
		}
	}
	return out
}

// Generate renders every manifest in the request, fanning work out across
// workers. Ошибка возвращается только при отмене контекста; поломка одного
// манифеста не трогает остальные и остаётся в его FileResult.
func Generate(ctx context.Context, req *Request) (Result, error) {
	if req == nil {
		return Result{}, fmt.Errorf("missing generate request")
	}

	files := req.Manifests
	res := Result{Files: make([]FileResult, len(files))}
	if len(files) == 0 {
		return res, nil
	}

	emit := func(evt Event) {
		if req.Progress != nil {
			req.Progress.OnEvent(evt)
		}
	}
	for _, path := range files {
		emit(Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				start := time.Now()
				fr := processOne(req, path, emit)
				fr.Elapsed = time.Since(start)

				// Сохраняем результат (мьютекс не нужен — индекс i уникален)
				res.Files[i] = fr
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}

// processOne ведёт один манифест по стадиям load -> build -> render -> write.
// Попадание в кэш перепрыгивает build и render с готовым рендером.
func processOne(req *Request, path string, emit func(Event)) FileResult {
	fr := FileResult{Manifest: path}

	fail := func(stage Stage, err error) FileResult {
		fr.Outcome = OutcomeFailed
		fr.Err = err
		emit(Event{File: path, Stage: stage, Status: StatusError, Err: err})
		return fr
	}

	emit(Event{File: path, Stage: StageLoad, Status: StatusWorking})
	loadStart := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return fail(StageLoad, fmt.Errorf("failed to read manifest: %w", err))
	}

	contentHash := DigestBytes(data)
	key := CacheKey(path, req.OutDir)

	var rendered []byte
	var output string
	cached := false
	if hit, ok, cacheErr := req.Cache.Get(key, contentHash); cacheErr != nil {
		return fail(StageLoad, cacheErr)
	} else if ok {
		rendered = hit.Rendered
		output = hit.Output
		cached = true
		emit(Event{File: path, Stage: StageLoad, Status: StatusDone, Elapsed: time.Since(loadStart)})
		emit(Event{File: path, Stage: StageBuild, Status: StatusSkipped})
		emit(Event{File: path, Stage: StageRender, Status: StatusSkipped})
	}

	if !cached {
		m, parseErr := manifest.Parse(data, path)
		if parseErr != nil {
			return fail(StageLoad, parseErr)
		}
		output = m.OutputPath(req.OutDir)
		emit(Event{File: path, Stage: StageLoad, Status: StatusDone, Elapsed: time.Since(loadStart)})

		emit(Event{File: path, Stage: StageBuild, Status: StatusWorking})
		buildStart := time.Now()
		scope := m.Build()
		emit(Event{File: path, Stage: StageBuild, Status: StatusDone, Elapsed: time.Since(buildStart)})

		emit(Event{File: path, Stage: StageRender, Status: StatusWorking})
		renderStart := time.Now()
		var buf bytes.Buffer
		f := codegen.NewFormatter(&buf)
		scope.Render(f)
		if renderErr := f.Err(); renderErr != nil {
			return fail(StageRender, renderErr)
		}
		rendered = buf.Bytes()
		emit(Event{File: path, Stage: StageRender, Status: StatusDone, Elapsed: time.Since(renderStart)})

		if putErr := req.Cache.Put(key, contentHash, output, rendered); putErr != nil {
			// кэш не должен ронять генерацию
			fmt.Fprintf(os.Stderr, "warning: failed to cache render for %s: %v\n", path, putErr)
		}
	}

	fr.Output = output
	emit(Event{File: path, Stage: StageWrite, Status: StatusWorking})
	writeStart := time.Now()

	existing, readErr := os.ReadFile(output)
	switch {
	case readErr == nil && bytes.Equal(existing, rendered):
		if cached {
			fr.Outcome = OutcomeCached
		} else {
			fr.Outcome = OutcomeUnchanged
		}
		emit(Event{File: path, Stage: StageWrite, Status: StatusSkipped, Elapsed: time.Since(writeStart)})
		return fr
	case readErr != nil && !errors.Is(readErr, os.ErrNotExist):
		return fail(StageWrite, fmt.Errorf("failed to read existing output: %w", readErr))
	}

	if req.Check {
		fr.Outcome = OutcomeStale
		emit(Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(writeStart)})
		return fr
	}

	if mkErr := os.MkdirAll(filepath.Dir(output), 0o755); mkErr != nil {
		return fail(StageWrite, mkErr)
	}
	if writeErr := os.WriteFile(output, rendered, 0o644); writeErr != nil {
		return fail(StageWrite, writeErr)
	}
	fr.Outcome = OutcomeWrote
	emit(Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(writeStart)})
	return fr
}
