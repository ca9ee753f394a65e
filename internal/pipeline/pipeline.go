// Package pipeline orchestrates the transformation passes over a
// notebook. Passes run in a fixed order, each individually toggleable,
// and a failure in one cell or one pass downgrades to a warning so the
// rest of the run completes. Only loading and saving the notebook are
// fatal.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/explainify/nb-explainify/internal/formatter"
	"github.com/explainify/nb-explainify/internal/fsops"
	"github.com/explainify/nb-explainify/internal/llm"
	"github.com/explainify/nb-explainify/internal/notebook"
)

// Gateway is the set of generation operations the passes call. Satisfied
// by *llm.Processor.
type Gateway interface {
	Intro(ctx context.Context, cells []llm.CellInfo) (string, error)
	Summary(ctx context.Context, cells []llm.CellInfo) (string, error)
	Explain(ctx context.Context, code string, context []string) (string, error)
	Enhance(ctx context.Context, existing, code string, context []string) (string, error)
	Comment(ctx context.Context, code string, context []string) (string, error)
	Optimize(ctx context.Context, code string) (string, error)
}

// Options selects which passes run. Order is fixed and not configurable:
// intro, markdown explanations, optimize, comment, summary, format.
// Explanations are generated before optimize/comment so they describe the
// original code; format runs last so no generation pass sees a foreign
// style.
type Options struct {
	Intro    bool
	Markdown bool
	Optimize bool
	Comment  bool
	Summary  bool
	Format   bool

	// EnhanceMarkdown switches the markdown pass to rewriting an existing
	// explanation in place when a code cell already has one directly
	// above it, instead of inserting a second.
	EnhanceMarkdown bool
}

// DefaultOptions enables every pass except markdown enhancement.
func DefaultOptions() Options {
	return Options{Intro: true, Markdown: true, Optimize: true, Comment: true, Summary: true, Format: true}
}

// Runner executes the passes. One Runner may serve many runs, but each
// run owns its notebook exclusively.
type Runner struct {
	Gateway   Gateway
	Formatter formatter.Formatter
	Logger    *slog.Logger
}

func (r Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Explainify loads a notebook, runs the enabled passes, and saves the
// result. Pass and per-cell failures are logged and skipped; the errors
// returned here are only load and save failures.
func (r Runner) Explainify(ctx context.Context, fsys fsops.FS, inputPath, outputPath string, opts Options) error {
	nb, err := notebook.Load(fsys, inputPath)
	if err != nil {
		return err
	}
	r.Run(ctx, nb, opts)
	return nb.Save(fsys, outputPath)
}

// Run applies the enabled passes to nb in the fixed order.
func (r Runner) Run(ctx context.Context, nb *notebook.Notebook, opts Options) {
	if opts.Intro {
		r.addIntro(ctx, nb)
	}
	if opts.Markdown {
		r.addMarkdownExplanations(ctx, nb, opts.EnhanceMarkdown)
	}
	if opts.Optimize {
		r.optimizeCodeCells(ctx, nb)
	}
	if opts.Comment {
		r.commentCodeCells(ctx, nb)
	}
	if opts.Summary {
		r.addSummary(ctx, nb)
	}
	if opts.Format {
		r.formatCodeCells(ctx, nb)
	}
}

// addIntro prepends one generated markdown cell built from the full cell
// listing.
func (r Runner) addIntro(ctx context.Context, nb *notebook.Notebook) {
	intro, err := r.Gateway.Intro(ctx, cellInfos(nb))
	if err != nil {
		r.logger().Warn("could not generate notebook introduction", "error", err)
		return
	}
	nb.Prepend(notebook.NewMarkdownCell(intro))
}

// addSummary appends one generated markdown cell built from the full cell
// listing, including anything earlier passes produced.
func (r Runner) addSummary(ctx context.Context, nb *notebook.Notebook) {
	summary, err := r.Gateway.Summary(ctx, cellInfos(nb))
	if err != nil {
		r.logger().Warn("could not generate notebook summary", "error", err)
		return
	}
	nb.Append(notebook.NewMarkdownCell(summary))
}

// addMarkdownExplanations inserts a generated explanation cell before
// every code cell. This pass mutates the sequence it is walking: it
// iterates over a snapshot of the original length and keeps a count of
// insertions so far, so the adjusted position of the original cell i is
// always i + inserted. Re-enumerating instead would skip cells or insert
// at the wrong place.
func (r Runner) addMarkdownExplanations(ctx context.Context, nb *notebook.Notebook, enhanceExisting bool) {
	var codeContext []string
	inserted := 0
	originalLength := len(nb.Cells)

	for originalIndex := 0; originalIndex < originalLength; originalIndex++ {
		position := originalIndex + inserted
		cell := nb.Cells[position]
		if !cell.IsCode() {
			continue
		}

		if enhanceExisting && position > 0 && nb.Cells[position-1].IsMarkdown() {
			previous := nb.Cells[position-1]
			enhanced, err := r.Gateway.Enhance(ctx, previous.Source(), cell.Source(), codeContext)
			if err != nil {
				r.logger().Warn("could not enhance explanation", "cell", originalIndex, "error", err)
			} else {
				previous.SetSource(enhanced)
			}
			codeContext = append(codeContext, cell.Source())
			continue
		}

		explanation, err := r.Gateway.Explain(ctx, cell.Source(), codeContext)
		if err != nil {
			r.logger().Warn("could not generate explanation", "cell", originalIndex, "error", err)
			codeContext = append(codeContext, cell.Source())
			continue
		}
		if insertErr := nb.InsertAt(position, notebook.NewMarkdownCell(explanation)); insertErr != nil {
			r.logger().Warn("could not insert explanation", "cell", originalIndex, "error", insertErr)
			codeContext = append(codeContext, cell.Source())
			continue
		}
		inserted++
		codeContext = append(codeContext, cell.Source())
	}
}

// optimizeCodeCells rewrites each code cell with its optimized version.
// No cells are inserted, so the code-cell enumeration is safe here.
func (r Runner) optimizeCodeCells(ctx context.Context, nb *notebook.Notebook) {
	for index, cell := range nb.CodeCells() {
		optimized, err := r.Gateway.Optimize(ctx, cell.Source())
		if err != nil {
			r.logger().Warn("could not optimize cell", "cell", index, "error", err)
			continue
		}
		cell.SetSource(optimized)
	}
}

// commentCodeCells adds comments to each code cell, feeding every later
// call the already-decided content of the cells before it. The context
// belongs to this pass alone and is discarded when it returns.
func (r Runner) commentCodeCells(ctx context.Context, nb *notebook.Notebook) {
	var codeContext []string
	for index, cell := range nb.CodeCells() {
		commented, err := r.Gateway.Comment(ctx, cell.Source(), codeContext)
		if err != nil {
			r.logger().Warn("could not add comments to cell", "cell", index, "error", err)
		} else {
			cell.SetSource(commented)
		}
		codeContext = append(codeContext, cell.Source())
	}
}

// formatCodeCells runs the external formatter per cell. A cell the
// formatter rejects keeps its content.
func (r Runner) formatCodeCells(ctx context.Context, nb *notebook.Notebook) {
	for index, cell := range nb.CodeCells() {
		formatted, err := r.Formatter.Format(ctx, cell.Source())
		if err != nil {
			r.logger().Warn("could not format cell", "cell", index, "error", err)
			continue
		}
		cell.SetSource(formatted)
	}
}

func cellInfos(nb *notebook.Notebook) []llm.CellInfo {
	infos := make([]llm.CellInfo, 0, len(nb.Cells))
	for _, cell := range nb.Cells {
		infos = append(infos, llm.CellInfo{Kind: cell.Type, Content: cell.Source()})
	}
	return infos
}
