// Package llm is the generation gateway: it renders prompt templates,
// invokes the text-generation client, and post-processes raw responses
// into markdown or code the pipeline can place into cells.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// CellInfo is the (kind, content) pair the intro and summary operations
// receive for every cell in document order.
type CellInfo struct {
	Kind    string
	Content string
}

// Processor implements the generation operations on top of a Client.
// Every call is a single request/response; nothing retries internally.
type Processor struct {
	client  Client
	prompts PromptSet
	logger  *slog.Logger
}

func NewProcessor(client Client, prompts PromptSet, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{client: client, prompts: prompts, logger: logger}
}

// Intro generates an introduction covering the whole cell sequence.
func (p *Processor) Intro(ctx context.Context, cells []CellInfo) (string, error) {
	return p.generate(ctx, OpIntro, map[string]string{"cells": formatCells(cells)})
}

// Summary generates a closing summary covering the whole cell sequence.
func (p *Processor) Summary(ctx context.Context, cells []CellInfo) (string, error) {
	return p.generate(ctx, OpSummary, map[string]string{"cells": formatCells(cells)})
}

// Explain generates a markdown explanation for one code cell.
func (p *Processor) Explain(ctx context.Context, code string, context []string) (string, error) {
	raw, err := p.generate(ctx, OpExplain, map[string]string{
		"code":    code,
		"context": joinContext(context),
	})
	if err != nil {
		return "", err
	}
	return CleanResponse(raw), nil
}

// Enhance rewrites an existing markdown explanation. A failed call is
// logged and the existing text is returned unchanged; enhancement is
// never worth losing an explanation over.
func (p *Processor) Enhance(ctx context.Context, existing, code string, context []string) (string, error) {
	enhanced, err := p.generate(ctx, OpEnhance, map[string]string{
		"existing_markdown": existing,
		"code":              code,
		"context":           joinContext(context),
	})
	if err != nil {
		p.logger.Warn("could not enhance markdown explanation", "error", err)
		return existing, nil
	}
	return enhanced, nil
}

// Comment returns code with explanatory comments added. Whether the model
// truly left the statements untouched is a prompt-level instruction; the
// gateway does not verify it.
func (p *Processor) Comment(ctx context.Context, code string, context []string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return code, nil
	}
	raw, err := p.generate(ctx, OpComment, map[string]string{
		"code":    code,
		"context": joinContext(context),
	})
	if err != nil {
		return "", err
	}
	return CleanResponse(raw), nil
}

// Optimize returns a rewritten version of code with the same behavior.
func (p *Processor) Optimize(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return code, nil
	}
	raw, err := p.generate(ctx, OpOptimize, map[string]string{"code": code})
	if err != nil {
		return "", err
	}
	return TruncateToCodeStart(CleanResponse(raw), code), nil
}

func (p *Processor) generate(ctx context.Context, op string, vars map[string]string) (string, error) {
	req := Request{
		System: systemPrompts[op],
		User:   p.prompts.Render(op, vars),
	}
	response, err := p.client.Complete(ctx, req)
	if err != nil {
		return "", &GenerationError{Op: op, Err: err}
	}
	return strings.TrimSpace(response), nil
}

func formatCells(cells []CellInfo) string {
	var sb strings.Builder
	for i, cell := range cells {
		fmt.Fprintf(&sb, "Cell %d (%s):\n%s\n\n", i+1, cell.Kind, cell.Content)
	}
	return sb.String()
}

func joinContext(context []string) string {
	if len(context) == 0 {
		return "No previous context"
	}
	return strings.Join(context, "\n")
}
