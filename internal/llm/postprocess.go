package llm

import "strings"

// CleanResponse strips a leading/trailing markdown code fence from a
// generation response. Models routinely wrap code answers in ```python
// fences even when told not to.
func CleanResponse(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```python") {
		response = strings.TrimSpace(strings.TrimPrefix(response, "```python"))
	}
	if strings.HasPrefix(response, "```") {
		response = strings.TrimSpace(response[3:])
	}
	if strings.HasSuffix(response, "```") {
		response = strings.TrimSpace(response[:len(response)-3])
	}
	return response
}

// Markers that plausibly begin a Python code body, in tie-break order.
var codeStartMarkers = []string{"def ", "class ", "import ", "from ", "#"}

func containsCodeMarker(code string) bool {
	for _, marker := range codeStartMarkers {
		if strings.Contains(code, marker) {
			return true
		}
	}
	return false
}

// TruncateToCodeStart drops any prose the model prefixed to a code
// response ("Here is the optimized version:") by slicing from the earliest
// code-start marker. If the original input contained no marker the
// response is assumed to be a bare snippet and is returned as is. This is
// a best-effort heuristic, not a parser.
func TruncateToCodeStart(response, original string) string {
	if !containsCodeMarker(original) {
		return response
	}
	start := len(response)
	for _, marker := range codeStartMarkers {
		if pos := strings.Index(response, marker); pos >= 0 && pos < start {
			start = pos
		}
	}
	return strings.TrimSpace(response[start:])
}
