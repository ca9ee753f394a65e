// Package render turns a notebook into a standalone HTML page for quick
// inspection of a transformed document. It is a read-only view, separate
// from the transformation pipeline.
package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"

	"github.com/explainify/nb-explainify/internal/notebook"
)

const pageHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 900px; margin: 2rem auto; font-family: sans-serif; line-height: 1.5; }
pre.code-cell { background: #f6f8fa; padding: 1rem; border-radius: 6px; overflow-x: auto; }
div.cell { margin-bottom: 1.5rem; }
</style>
</head>
<body>
`

const pageFooter = "</body>\n</html>\n"

// HTML renders markdown cells through goldmark and code cells as
// preformatted blocks. Other cell kinds are skipped.
func HTML(nb *notebook.Notebook, title string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, pageHeader, html.EscapeString(title))

	for i, cell := range nb.Cells {
		switch {
		case cell.IsMarkdown():
			buf.WriteString(`<div class="cell">` + "\n")
			if err := goldmark.Convert([]byte(cell.Source()), &buf); err != nil {
				return nil, fmt.Errorf("render markdown cell %d: %w", i, err)
			}
			buf.WriteString("</div>\n")
		case cell.IsCode():
			buf.WriteString(`<div class="cell"><pre class="code-cell"><code>`)
			buf.WriteString(html.EscapeString(cell.Source()))
			buf.WriteString("</code></pre></div>\n")
		}
	}

	buf.WriteString(pageFooter)
	return buf.Bytes(), nil
}
