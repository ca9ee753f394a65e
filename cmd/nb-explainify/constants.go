package nbexplainify

const (
	runCommandUse       = "run NOTEBOOK"
	runCommandShort     = "Run the enabled transformation passes over a notebook"
	promptsCommandUse   = "prompts"
	promptsCommandShort = "Print the effective prompt templates"
	previewCommandUse   = "preview NOTEBOOK"
	previewCommandShort = "Render a notebook to a standalone HTML page"

	verboseFlagName  = "verbose"
	verboseFlagUsage = "Enable verbose logging"
	configFlagName   = "config"
	configFlagUsage  = "Path to a yaml config file (default: ./nb-explainify.yaml if present)"
	outputFlagName   = "output"
	outputFlagUsage  = "Output path (default: derived from the input path)"
	promptsFlagName  = "prompts"
	promptsFlagUsage = "Path to a yaml file overriding prompt templates by operation name"
	modelFlagName    = "model"
	modelFlagUsage   = "Override the configured generation model"

	introFlagName            = "intro"
	introFlagUsage           = "Prepend a generated introduction cell"
	markdownFlagName         = "markdown"
	markdownFlagUsage        = "Insert a generated explanation before each code cell"
	enhanceMarkdownFlagName  = "enhance-markdown"
	enhanceMarkdownFlagUsage = "Rewrite an existing explanation above a code cell instead of inserting a new one"
	optimizeFlagName         = "optimize"
	optimizeFlagUsage        = "Rewrite each code cell with an optimized version"
	commentFlagName          = "comment"
	commentFlagUsage         = "Add generated comments to each code cell"
	summaryFlagName          = "summary"
	summaryFlagUsage         = "Append a generated summary cell"
	formatFlagName           = "format"
	formatFlagUsage          = "Run the external code formatter on each code cell"

	explainifiedOutputSuffix = "_explainified.ipynb"
	notebookExtension        = ".ipynb"
	htmlExtension            = ".html"
)
