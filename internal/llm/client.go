package llm

import (
	"context"
	"fmt"
)

// Client abstracts the text-generation transport so the gateway can be
// exercised against a fake in tests.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is one generation exchange: a system role plus the rendered
// user prompt. Model, temperature and token limits are transport
// configuration, not per-request knobs.
type Request struct {
	System string
	User   string
}

// GenerationError wraps a failed generation call. The pipeline recovers
// from these per cell; they never abort a run.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string { return fmt.Sprintf("generate %s: %v", e.Op, e.Err) }
func (e *GenerationError) Unwrap() error { return e.Err }
