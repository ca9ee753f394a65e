package llm

import (
	"fmt"
	"sort"
	"strings"
)

// Generation operations. These are the only valid keys for prompt
// template overrides.
const (
	OpIntro    = "notebook_intro"
	OpSummary  = "notebook_summary"
	OpOptimize = "code_optimization"
	OpComment  = "code_comments"
	OpExplain  = "markdown_explanation"
	OpEnhance  = "enhance_markdown"
)

// Operations lists every generation operation in a stable order.
func Operations() []string {
	return []string{OpIntro, OpSummary, OpOptimize, OpComment, OpExplain, OpEnhance}
}

const defaultIntroPrompt = `Create a comprehensive introduction for this notebook.
Explain the purpose, methodology, and expected outcomes.
Make it engaging and informative for readers but also keep it concise.

Notebook cells:
{cells}
`

const defaultSummaryPrompt = `Analyze this notebook and provide a comprehensive summary.
Focus on the main objectives, key findings, and methodologies used.
Include suggestions for potential improvements or future work.
Keep the summary clear and concise.

Notebook cells:
{cells}
`

const defaultOptimizePrompt = `Optimize this Python code to improve readability and efficiency.
Maintain the exact same functionality and output. Do not add new functionality or intention.
If the current code is already optimized, return the original code.

Focus on:
- Code structure
- Performance improvements
- Following PEP 8 style guidelines

Original code:
{code}

Only optimize the original code. Return only the optimized code without explanations.
`

const defaultCommentPrompt = `Add clear and concise comments to this Python code.
Focus on explaining:
- The purpose of each code block
- Important variables and their roles
- Complex logic or algorithms
- Any assumptions or limitations

Keep comments professional and informative.
Add comments only where they add value.
IMPORTANT: Do NOT modify the original code in any way. Only add comments.
Your entire response should be able to be pasted into a Python file and executed without errors.

Code to comment:
{code}

Previous context:
{context}

Return ONLY the original code with added comments. Do NOT rewrite or modify the code.
`

const defaultExplainPrompt = `Write a clear, educational explanation that focuses ONLY on what is happening in THIS specific code cell.
Write as if you are teaching a student, using natural language without showing any code.
Don't use phrases like "this code does" or "in this code". Instead, use active voice like "we" and focus on what we're accomplishing.
Explain the underlying concepts and why they're important. Keep the explanation concise.

IMPORTANT: Only explain what is happening in THIS cell. Do not look ahead or make assumptions about future cells.
For example, if the cell only imports libraries, explain what those libraries are used for, but do not discuss what we will do with them later.

Code to explain (don't include this in your explanation, just understand what it does):
{code}

Previous context (don't mention this directly):
{context}

Write your educational explanation focusing ONLY on this cell:`

const defaultEnhancePrompt = `Enhance this explanation to be more educational and concept-focused while maintaining its key points.
Write as if you are teaching a student, using natural language without showing any code.
Don't use phrases like "this code does" or "in this code". Instead, use active voice like "we" and focus on what we're accomplishing.
Only add information that is missing or could be explained better. Don't repeat information that is already well explained.

Existing explanation:
{existing_markdown}

Code being explained (don't include this in your explanation, just understand what it does):
{code}

Previous context (don't mention this directly):
{context}

Write your enhanced educational explanation:`

// System role per operation, sent alongside the rendered template.
var systemPrompts = map[string]string{
	OpIntro:    "You are a technical writer creating engaging notebook introductions.",
	OpSummary:  "You are a data scientist writing clear notebook summaries.",
	OpOptimize: "You are a Python expert optimizing code while maintaining functionality.",
	OpComment:  "You are a Python expert adding clear and helpful comments to code. Your task is to add comments that explain the code while preserving the original code EXACTLY as is. Do not modify, rewrite, or change the code in any way - only add comments.",
	OpExplain:  "You are an expert teacher explaining Python concepts. Focus ONLY on explaining what is happening in the current code cell. Do not look ahead or make assumptions about future cells. If a cell only imports libraries, explain what those libraries are used for, but do not discuss how they will be used later.",
	OpEnhance:  "You are an expert teacher enhancing explanations to be more educational and concept-focused. Focus on teaching the concepts and their importance, not on the code implementation.",
}

// PromptSet maps each operation to its template. Templates are fixed for
// the lifetime of the set; overrides produce a new set.
type PromptSet struct {
	templates map[string]string
}

// DefaultPrompts returns the built-in template for every operation.
func DefaultPrompts() PromptSet {
	return PromptSet{templates: map[string]string{
		OpIntro:    defaultIntroPrompt,
		OpSummary:  defaultSummaryPrompt,
		OpOptimize: defaultOptimizePrompt,
		OpComment:  defaultCommentPrompt,
		OpExplain:  defaultExplainPrompt,
		OpEnhance:  defaultEnhancePrompt,
	}}
}

// WithOverrides merges caller templates over the defaults by operation
// name. Unknown names are rejected rather than silently ignored.
func (p PromptSet) WithOverrides(overrides map[string]string) (PromptSet, error) {
	merged := make(map[string]string, len(p.templates))
	for op, template := range p.templates {
		merged[op] = template
	}
	var unknown []string
	for op, template := range overrides {
		if _, ok := merged[op]; !ok {
			unknown = append(unknown, op)
			continue
		}
		merged[op] = template
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return PromptSet{}, fmt.Errorf("unknown prompt template name(s): %s", strings.Join(unknown, ", "))
	}
	return PromptSet{templates: merged}, nil
}

// Template returns the template text for op, or "" for an unknown op.
func (p PromptSet) Template(op string) string { return p.templates[op] }

// Render substitutes {slot} placeholders in the template for op.
func (p PromptSet) Render(op string, vars map[string]string) string {
	out := p.templates[op]
	for slot, value := range vars {
		out = strings.ReplaceAll(out, "{"+slot+"}", value)
	}
	return out
}
