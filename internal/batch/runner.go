// Package batch runs the registry through a synthesis engine, one item at
// a time, and reports per-item status plus a final summary.
package batch

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/koreanquiz/speechgen/internal/hangul"
	"github.com/koreanquiz/speechgen/internal/store"
	"github.com/koreanquiz/speechgen/internal/synth"
)

// Outcome is the per-item result of one synthesis attempt.
type Outcome string

const (
	// OutcomeGenerated means audio was synthesized and written (or would
	// have been, in dry-run mode).
	OutcomeGenerated Outcome = "generated"

	// OutcomeSkipped means a cached file already existed and force mode
	// was off; no network call was made.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means synthesis or the write failed; the run
	// continues with the next item.
	OutcomeFailed Outcome = "failed"
)

// Config holds the run modes for a batch.
type Config struct {
	// Force regenerates every item even when a cached file exists.
	Force bool

	// DryRun walks the registry and reports what would be generated
	// without calling the engine or writing files.
	DryRun bool

	// Styled enables lipgloss styling on the summary block.
	Styled bool
}

// Tally accumulates per-item outcomes across a run.
// Generated + Skipped + Failed always equals Total.
type Tally struct {
	Total        int
	Generated    int
	Skipped      int
	Failed       int
	BytesWritten int64
}

// Runner iterates a registry in order and synthesizes each item.
// Execution is strictly sequential: one request in flight at a time,
// awaited to completion before the next begins.
type Runner struct {
	registry *hangul.Registry
	engine   synth.Synthesizer
	store    store.Store
	config   Config
	logger   *log.Logger
	out      io.Writer
}

// NewRunner wires a runner from its collaborators. All configuration is
// passed in explicitly so the runner can be tested in isolation.
func NewRunner(registry *hangul.Registry, engine synth.Synthesizer, st store.Store, config Config, logger *log.Logger, out io.Writer) *Runner {
	return &Runner{
		registry: registry,
		engine:   engine,
		store:    st,
		config:   config,
		logger:   logger,
		out:      out,
	}
}

// Run processes every registry item in order, prints per-item status
// lines and a final summary, and returns the tally. Per-item failures
// never abort the run; the summary always covers every item.
func (r *Runner) Run(ctx context.Context) (Tally, error) {
	items := r.registry.Items()
	tally := Tally{Total: len(items)}

	for i, text := range items {
		fmt.Fprintf(r.out, "[%3d/%d] ", i+1, len(items))

		outcome, written := r.processItem(ctx, text)
		switch outcome {
		case OutcomeGenerated:
			tally.Generated++
			tally.BytesWritten += written
		case OutcomeSkipped:
			tally.Skipped++
		case OutcomeFailed:
			tally.Failed++
		}
	}

	r.printSummary(tally)
	return tally, nil
}

// processItem applies the skip/generate/fail decision to a single item.
func (r *Runner) processItem(ctx context.Context, text string) (Outcome, int64) {
	existed := r.store.Exists(text)

	if existed && !r.config.Force {
		fmt.Fprintf(r.out, "skipping %s.mp3 (already exists)\n", text)
		return OutcomeSkipped, 0
	}

	if r.config.DryRun {
		fmt.Fprintf(r.out, "would generate %s.mp3\n", text)
		return OutcomeGenerated, 0
	}

	audio, err := r.engine.Synthesize(ctx, text)
	if err != nil {
		fmt.Fprintf(r.out, "error generating %s.mp3: %v\n", text, err)
		r.logger.Error("synthesis failed", "text", text, "err", err)
		return OutcomeFailed, 0
	}

	if err := r.store.Write(text, audio); err != nil {
		fmt.Fprintf(r.out, "error writing %s.mp3: %v\n", text, err)
		r.logger.Error("write failed", "text", text, "err", err)
		return OutcomeFailed, 0
	}

	verb := "generated"
	if existed {
		verb = "regenerated"
	}
	fmt.Fprintf(r.out, "%s %s → %s.mp3\n", verb, text, text)
	return OutcomeGenerated, int64(len(audio))
}
