package notebook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Cell kinds handled by the pipeline. Any other cell_type (raw, ...) is
// carried through untouched.
const (
	CellTypeCode     = "code"
	CellTypeMarkdown = "markdown"
)

// Cell is one notebook cell. Only cell_type and source are interpreted;
// every other field (id, metadata, outputs, execution_count, ...) is kept
// as raw JSON so an untouched cell serializes back to its decoded form.
type Cell struct {
	Type string

	source sourceText
	extra  map[string]json.RawMessage
}

// NewMarkdownCell builds a markdown cell with a fresh id and empty metadata,
// mirroring what nbformat's new_markdown_cell produces.
func NewMarkdownCell(text string) *Cell {
	return &Cell{
		Type:   CellTypeMarkdown,
		source: sourceText{text: text, asLines: true},
		extra: map[string]json.RawMessage{
			"id":       mustJSON(uuid.NewString()),
			"metadata": json.RawMessage(`{}`),
		},
	}
}

// Source returns the cell content as a single string.
func (c *Cell) Source() string { return c.source.text }

// SetSource replaces the cell content, keeping the serialization flavor
// (string vs. list of lines) the cell was decoded with.
func (c *Cell) SetSource(text string) { c.source.text = text }

func (c *Cell) IsCode() bool     { return c.Type == CellTypeCode }
func (c *Cell) IsMarkdown() bool { return c.Type == CellTypeMarkdown }

func (c *Cell) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	rawType, ok := fields["cell_type"]
	if !ok {
		return fmt.Errorf("cell has no cell_type")
	}
	if err := json.Unmarshal(rawType, &c.Type); err != nil {
		return fmt.Errorf("cell_type: %w", err)
	}
	if rawSource, ok := fields["source"]; ok {
		if err := json.Unmarshal(rawSource, &c.source); err != nil {
			return fmt.Errorf("source: %w", err)
		}
	}
	delete(fields, "cell_type")
	delete(fields, "source")
	c.extra = fields
	return nil
}

func (c *Cell) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(c.extra)+2)
	for key, value := range c.extra {
		fields[key] = value
	}
	encodedType, err := json.Marshal(c.Type)
	if err != nil {
		return nil, err
	}
	fields["cell_type"] = encodedType
	encodedSource, err := json.Marshal(c.source)
	if err != nil {
		return nil, err
	}
	fields["source"] = encodedSource
	return json.Marshal(fields)
}

// sourceText holds cell content plus the JSON flavor it arrived in. The
// ipynb schema allows source to be a plain string or a list of lines;
// nbformat writes lists, so cells we create use the list form.
type sourceText struct {
	text    string
	asLines bool
}

func (s *sourceText) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		s.text = asString
		s.asLines = false
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	s.text = strings.Join(lines, "")
	s.asLines = true
	return nil
}

func (s sourceText) MarshalJSON() ([]byte, error) {
	if !s.asLines {
		return json.Marshal(s.text)
	}
	return json.Marshal(splitKeepingNewlines(s.text))
}

// splitKeepingNewlines splits text after each newline, the way nbformat
// stores multi-line sources. Empty text becomes an empty list.
func splitKeepingNewlines(text string) []string {
	if text == "" {
		return []string{}
	}
	var lines []string
	for {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			lines = append(lines, text)
			return lines
		}
		lines = append(lines, text[:idx+1])
		text = text[idx+1:]
		if text == "" {
			return lines
		}
	}
}

func mustJSON(v any) json.RawMessage {
	encoded, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return encoded
}
