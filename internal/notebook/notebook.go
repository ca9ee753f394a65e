// Package notebook is the in-memory model of an ipynb document: an ordered
// cell sequence plus whatever top-level fields the container carries.
// Mutation happens through insert/append so positional invariants stay in
// one place.
package notebook

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/explainify/nb-explainify/internal/fsops"
)

// FormatError marks bytes that are not a valid notebook encoding.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string { return fmt.Sprintf("invalid notebook format: %v", e.Err) }
func (e *FormatError) Unwrap() error { return e.Err }

// Notebook is an ordered sequence of cells. Top-level fields other than
// cells (metadata, nbformat, nbformat_minor, ...) are preserved verbatim.
type Notebook struct {
	Cells []*Cell

	extra map[string]json.RawMessage
}

// Read decodes notebook bytes.
func Read(data []byte) (*Notebook, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &FormatError{Err: err}
	}
	rawCells, ok := fields["cells"]
	if !ok {
		return nil, &FormatError{Err: fmt.Errorf("missing cells field")}
	}
	var cells []*Cell
	if err := json.Unmarshal(rawCells, &cells); err != nil {
		return nil, &FormatError{Err: err}
	}
	delete(fields, "cells")
	return &Notebook{Cells: cells, extra: fields}, nil
}

// Load reads and decodes a notebook file.
func Load(fsys fsops.FS, path string) (*Notebook, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notebook %s: %w", path, err)
	}
	nb, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("decode notebook %s: %w", path, err)
	}
	return nb, nil
}

// Bytes serializes the notebook with nbformat-style single-space indent.
func (n *Notebook) Bytes() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(n.extra)+1)
	for key, value := range n.extra {
		fields[key] = value
	}
	encodedCells, err := json.Marshal(n.Cells)
	if err != nil {
		return nil, err
	}
	fields["cells"] = encodedCells
	out, err := json.MarshalIndent(fields, "", " ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// Save serializes the notebook to path, creating parent directories.
func (n *Notebook) Save(fsys fsops.FS, path string) error {
	data, err := n.Bytes()
	if err != nil {
		return fmt.Errorf("encode notebook: %w", err)
	}
	if err := fsops.EnsureParentDir(fsys, path); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := fsys.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write notebook %s: %w", path, err)
	}
	return nil
}

// CodeCells yields (position, cell) for code cells in sequence order.
// Positions are current positions, not stable identities: callers that
// insert while walking must track their own offset instead of ranging here.
func (n *Notebook) CodeCells() iter.Seq2[int, *Cell] {
	return func(yield func(int, *Cell) bool) {
		for i, cell := range n.Cells {
			if !cell.IsCode() {
				continue
			}
			if !yield(i, cell) {
				return
			}
		}
	}
}

// InsertAt places cell before the cell currently at index. index == len
// appends.
func (n *Notebook) InsertAt(index int, cell *Cell) error {
	if index < 0 || index > len(n.Cells) {
		return fmt.Errorf("insert position %d out of range [0,%d]", index, len(n.Cells))
	}
	n.Cells = append(n.Cells, nil)
	copy(n.Cells[index+1:], n.Cells[index:])
	n.Cells[index] = cell
	return nil
}

// Prepend puts cell at position 0.
func (n *Notebook) Prepend(cell *Cell) {
	_ = n.InsertAt(0, cell)
}

// Append puts cell after the last cell.
func (n *Notebook) Append(cell *Cell) {
	n.Cells = append(n.Cells, cell)
}
