package nbexplainify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/explainify/nb-explainify/internal/config"
	"github.com/explainify/nb-explainify/internal/formatter"
	"github.com/explainify/nb-explainify/internal/fsops"
	"github.com/explainify/nb-explainify/internal/llm"
	"github.com/explainify/nb-explainify/internal/pipeline"
)

type runCommandOptions struct {
	configPath    string
	outputPath    string
	promptsPath   string
	modelOverride string

	intro           bool
	markdown        bool
	enhanceMarkdown bool
	optimize        bool
	comment         bool
	summary         bool
	format          bool
}

func init() { rootCmd.AddCommand(newRunCommand()) }

func newRunCommand() *cobra.Command {
	options := &runCommandOptions{}

	command := &cobra.Command{
		Use:   runCommandUse,
		Short: runCommandShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplainify(cmd.Context(), args[0], *options)
		},
	}

	command.Flags().StringVar(&options.configPath, configFlagName, "", configFlagUsage)
	command.Flags().StringVarP(&options.outputPath, outputFlagName, "o", "", outputFlagUsage)
	command.Flags().StringVar(&options.promptsPath, promptsFlagName, "", promptsFlagUsage)
	command.Flags().StringVar(&options.modelOverride, modelFlagName, "", modelFlagUsage)

	addToggleFlag(command, &options.intro, introFlagName, introFlagUsage, true)
	addToggleFlag(command, &options.markdown, markdownFlagName, markdownFlagUsage, true)
	addToggleFlag(command, &options.enhanceMarkdown, enhanceMarkdownFlagName, enhanceMarkdownFlagUsage, false)
	addToggleFlag(command, &options.optimize, optimizeFlagName, optimizeFlagUsage, true)
	addToggleFlag(command, &options.comment, commentFlagName, commentFlagUsage, true)
	addToggleFlag(command, &options.summary, summaryFlagName, summaryFlagUsage, true)
	addToggleFlag(command, &options.format, formatFlagName, formatFlagUsage, true)

	return command
}

func runExplainify(ctx context.Context, inputPath string, options runCommandOptions) error {
	fsys := fsops.NewOS()

	settings, err := config.Load(options.configPath)
	if err != nil {
		return err
	}
	if options.modelOverride != "" {
		settings.Model = options.modelOverride
	}

	passOptions := pipeline.Options{
		Intro:           options.intro,
		Markdown:        options.markdown,
		EnhanceMarkdown: options.enhanceMarkdown,
		Optimize:        options.optimize,
		Comment:         options.comment,
		Summary:         options.summary,
		Format:          options.format,
	}

	var gateway pipeline.Gateway
	if needsGeneration(passOptions) {
		if err := settings.Validate(); err != nil {
			return err
		}
		prompts := llm.DefaultPrompts()
		if options.promptsPath != "" {
			overrides, loadErr := config.LoadPromptOverrides(fsys, options.promptsPath)
			if loadErr != nil {
				return loadErr
			}
			prompts, loadErr = prompts.WithOverrides(overrides)
			if loadErr != nil {
				return loadErr
			}
		}
		client, clientErr := llm.NewOpenAIClient(llm.OpenAISettings{
			APIKey:      settings.APIKey,
			BaseURL:     settings.BaseURL,
			Model:       settings.Model,
			Temperature: settings.Temperature,
			MaxTokens:   settings.MaxTokens,
		})
		if clientErr != nil {
			return clientErr
		}
		gateway = llm.NewProcessor(client, prompts, slog.Default())
	}

	runner := pipeline.Runner{
		Gateway:   gateway,
		Formatter: formatterFromSettings(settings),
		Logger:    slog.Default(),
	}

	outputPath := options.outputPath
	if outputPath == "" {
		outputPath = deriveOutputPath(inputPath)
	}

	if err := runner.Explainify(ctx, fsys, inputPath, outputPath, passOptions); err != nil {
		return err
	}
	slog.Info("processed notebook written", "path", outputPath)
	return nil
}

// needsGeneration reports whether any enabled pass calls the generation
// service. A format-only run must not demand a credential.
func needsGeneration(opts pipeline.Options) bool {
	return opts.Intro || opts.Markdown || opts.Optimize || opts.Comment || opts.Summary
}

func formatterFromSettings(settings config.Settings) formatter.Formatter {
	if len(settings.FormatterCommand) == 0 {
		return formatter.NewBlack()
	}
	return formatter.Command{Name: settings.FormatterCommand[0], Args: settings.FormatterCommand[1:]}
}

func deriveOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, notebookExtension) + explainifiedOutputSuffix
}
