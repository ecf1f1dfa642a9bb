package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"rustgen/internal/pipeline"
)

// statusPrinter выводит по строке на манифест в плоском (без TUI) режиме.
type statusPrinter struct {
	out       io.Writer
	errOut    io.Writer
	quiet     bool
	wrote     *color.Color
	unchanged *color.Color
	cached    *color.Color
	stale     *color.Color
	failed    *color.Color
}

func newStatusPrinter(colorFlag string, quiet bool) *statusPrinter {
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	p := &statusPrinter{
		out:       os.Stdout,
		errOut:    os.Stderr,
		quiet:     quiet,
		wrote:     color.New(color.FgGreen),
		unchanged: color.New(color.FgWhite),
		cached:    color.New(color.FgYellow),
		stale:     color.New(color.FgYellow, color.Bold),
		failed:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.wrote, p.unchanged, p.cached, p.stale, p.failed} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// report печатает результаты и возвращает ошибку для кода выхода: сломанные
// манифесты всегда, устаревшие выходы только в режиме check.
func (p *statusPrinter) report(res pipeline.Result, check bool, elapsed time.Duration) error {
	for _, fr := range res.Files {
		switch fr.Outcome {
		case pipeline.OutcomeWrote:
			p.line(p.wrote, "wrote", fr.Output)
		case pipeline.OutcomeUnchanged:
			p.line(p.unchanged, "unchanged", fr.Output)
		case pipeline.OutcomeCached:
			p.line(p.cached, "cached", fr.Output)
		case pipeline.OutcomeStale:
			p.line(p.stale, "stale", fr.Output)
		case pipeline.OutcomeFailed:
			fmt.Fprintf(p.errOut, "%s %s: %v\n", p.failed.Sprintf("%-9s", "failed"), fr.Manifest, fr.Err)
		}
	}

	if !p.quiet {
		fmt.Fprintf(p.out, "%d manifests in %.1f ms\n", len(res.Files), toMillis(elapsed))
	}

	if failed := res.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d manifests failed", len(failed), len(res.Files))
	}
	if check {
		if stale := res.Stale(); len(stale) > 0 {
			return fmt.Errorf("%d outputs out of date", len(stale))
		}
	}
	return nil
}

func (p *statusPrinter) line(c *color.Color, word, path string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", c.Sprintf("%-9s", word), path)
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
