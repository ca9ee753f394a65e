// Package formatter shells out to an external code formatter. The
// formatter is a collaborator with its own failure modes; a formatting
// error on one cell never stops a run.
package formatter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Formatter canonicalizes code-cell source to a style standard.
type Formatter interface {
	Format(ctx context.Context, source string) (string, error)
}

// FormatError marks source the formatter rejected, typically a syntax
// error in the cell.
type FormatError struct {
	Stderr string
	Err    error
}

func (e *FormatError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		return fmt.Sprintf("format: %v", e.Err)
	}
	return fmt.Sprintf("format: %v: %s", e.Err, detail)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Command runs a formatter binary with source on stdin and reads the
// formatted result from stdout.
type Command struct {
	Name string
	Args []string
}

// NewBlack returns the default formatter: black in quiet mode reading
// from stdin.
func NewBlack() Command {
	return Command{Name: "black", Args: []string{"-q", "-"}}
}

func (c Command) Format(ctx context.Context, source string) (string, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &FormatError{Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}
