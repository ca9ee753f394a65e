package nbexplainify

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/explainify/nb-explainify/internal/config"
	"github.com/explainify/nb-explainify/internal/fsops"
	"github.com/explainify/nb-explainify/internal/llm"
)

func init() { rootCmd.AddCommand(newPromptsCommand()) }

// newPromptsCommand prints the template each operation will use, with any
// override file applied, so a caller can inspect exactly what a run
// would send.
func newPromptsCommand() *cobra.Command {
	var promptsPath string

	command := &cobra.Command{
		Use:   promptsCommandUse,
		Short: promptsCommandShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts := llm.DefaultPrompts()
			if promptsPath != "" {
				overrides, err := config.LoadPromptOverrides(fsops.NewOS(), promptsPath)
				if err != nil {
					return err
				}
				prompts, err = prompts.WithOverrides(overrides)
				if err != nil {
					return err
				}
			}
			for _, op := range llm.Operations() {
				fmt.Fprintf(cmd.OutOrStdout(), "## %s\n\n%s\n\n", op, prompts.Template(op))
			}
			return nil
		},
	}

	command.Flags().StringVar(&promptsPath, promptsFlagName, "", promptsFlagUsage)
	return command
}
