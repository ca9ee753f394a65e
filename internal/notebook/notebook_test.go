package notebook_test

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explainify/nb-explainify/internal/fsops"
	"github.com/explainify/nb-explainify/internal/notebook"
)

const sampleNotebook = `{
 "cells": [
  {
   "cell_type": "markdown",
   "id": "intro-cell",
   "metadata": {},
   "source": ["# Title\n", "Some prose."]
  },
  {
   "cell_type": "code",
   "execution_count": 2,
   "id": "code-cell",
   "metadata": {"tags": ["setup"]},
   "outputs": [],
   "source": ["import os\n", "print(os.name)"]
  },
  {
   "cell_type": "raw",
   "id": "raw-cell",
   "metadata": {},
   "source": "raw content"
  }
 ],
 "metadata": {"kernelspec": {"name": "python3"}},
 "nbformat": 4,
 "nbformat_minor": 5
}`

func TestReadJoinsSourceLines(t *testing.T) {
	nb, err := notebook.Read([]byte(sampleNotebook))
	require.NoError(t, err)

	require.Len(t, nb.Cells, 3)
	assert.Equal(t, "# Title\nSome prose.", nb.Cells[0].Source())
	assert.Equal(t, "import os\nprint(os.name)", nb.Cells[1].Source())
	assert.Equal(t, "raw content", nb.Cells[2].Source())
	assert.Equal(t, "raw", nb.Cells[2].Type)
}

func TestReadRejectsInvalidBytes(t *testing.T) {
	_, err := notebook.Read([]byte("not json"))
	require.Error(t, err)
	var formatErr *notebook.FormatError
	assert.ErrorAs(t, err, &formatErr)

	_, err = notebook.Read([]byte(`{"nbformat": 4}`))
	require.Error(t, err)
	assert.ErrorAs(t, err, &formatErr)
}

func TestRoundTripIsIdempotent(t *testing.T) {
	nb, err := notebook.Read([]byte(sampleNotebook))
	require.NoError(t, err)

	encoded, err := nb.Bytes()
	require.NoError(t, err)

	again, err := notebook.Read(encoded)
	require.NoError(t, err)
	reencoded, err := again.Bytes()
	require.NoError(t, err)

	assert.Equal(t, string(encoded), string(reencoded))

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(sampleNotebook), &first))
	require.NoError(t, json.Unmarshal(encoded, &second))
	assert.Equal(t, first, second)
}

func TestSourceFlavorPreserved(t *testing.T) {
	nb, err := notebook.Read([]byte(sampleNotebook))
	require.NoError(t, err)

	encoded, err := nb.Bytes()
	require.NoError(t, err)

	var decoded struct {
		Cells []struct {
			Source json.RawMessage `json:"source"`
		} `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	// List-form sources stay lists, string-form sources stay strings.
	assert.Equal(t, byte('['), decoded.Cells[0].Source[0])
	assert.Equal(t, byte('"'), decoded.Cells[2].Source[0])
}

func TestSetSourceSurvivesRoundTrip(t *testing.T) {
	nb, err := notebook.Read([]byte(sampleNotebook))
	require.NoError(t, err)

	nb.Cells[1].SetSource("x = 1\ny = 2\n")
	encoded, err := nb.Bytes()
	require.NoError(t, err)

	again, err := notebook.Read(encoded)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\ny = 2\n", again.Cells[1].Source())
}

func TestCodeCellsYieldsCurrentPositions(t *testing.T) {
	nb, err := notebook.Read([]byte(sampleNotebook))
	require.NoError(t, err)

	var positions []int
	for i, cell := range nb.CodeCells() {
		positions = append(positions, i)
		assert.True(t, cell.IsCode())
	}
	assert.Equal(t, []int{1}, positions)
}

func TestInsertAt(t *testing.T) {
	nb, err := notebook.Read([]byte(sampleNotebook))
	require.NoError(t, err)

	explanation := notebook.NewMarkdownCell("We import os here.")
	require.NoError(t, nb.InsertAt(1, explanation))

	require.Len(t, nb.Cells, 4)
	assert.Equal(t, "We import os here.", nb.Cells[1].Source())
	assert.True(t, nb.Cells[2].IsCode())

	require.Error(t, nb.InsertAt(-1, explanation))
	require.Error(t, nb.InsertAt(len(nb.Cells)+1, explanation))
}

func TestNewMarkdownCellHasUniqueIDs(t *testing.T) {
	first := notebook.NewMarkdownCell("a")
	second := notebook.NewMarkdownCell("b")

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	var firstFields, secondFields map[string]any
	require.NoError(t, json.Unmarshal(firstJSON, &firstFields))
	require.NoError(t, json.Unmarshal(secondJSON, &secondFields))

	assert.NotEmpty(t, firstFields["id"])
	assert.NotEqual(t, firstFields["id"], secondFields["id"])
	assert.Equal(t, "markdown", firstFields["cell_type"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := notebook.Load(fsops.NewMem(), "missing.ipynb")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadAndSave(t *testing.T) {
	fsys := fsops.NewMem()
	require.NoError(t, fsys.WriteFile("nb.ipynb", []byte(sampleNotebook), 0o644))

	nb, err := notebook.Load(fsys, "nb.ipynb")
	require.NoError(t, err)

	require.NoError(t, nb.Save(fsys, "out/dir/nb.ipynb"))
	saved, err := fsys.ReadFile("out/dir/nb.ipynb")
	require.NoError(t, err)

	again, err := notebook.Read(saved)
	require.NoError(t, err)
	assert.Len(t, again.Cells, 3)
}
