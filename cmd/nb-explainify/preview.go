package nbexplainify

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/explainify/nb-explainify/internal/fsops"
	"github.com/explainify/nb-explainify/internal/notebook"
	"github.com/explainify/nb-explainify/internal/render"
)

func init() { rootCmd.AddCommand(newPreviewCommand()) }

func newPreviewCommand() *cobra.Command {
	var outputPath string

	command := &cobra.Command{
		Use:   previewCommandUse,
		Short: previewCommandShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			fsys := fsops.NewOS()

			nb, err := notebook.Load(fsys, inputPath)
			if err != nil {
				return err
			}

			page, err := render.HTML(nb, filepath.Base(inputPath))
			if err != nil {
				return err
			}

			target := outputPath
			if target == "" {
				target = strings.TrimSuffix(inputPath, notebookExtension) + htmlExtension
			}
			if err := fsops.EnsureParentDir(fsys, target); err != nil {
				return err
			}
			if err := fsys.WriteFile(target, page, 0o644); err != nil {
				return err
			}
			slog.Info("preview written", "path", target)
			return nil
		},
	}

	command.Flags().StringVarP(&outputPath, outputFlagName, "o", "", outputFlagUsage)
	return command
}
