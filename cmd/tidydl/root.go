package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var pathFlag string
	var dryRun bool
	var byDate bool
	var undo bool

	ctx := newCommandContext(&configFlag, &pathFlag)

	rootCmd := &cobra.Command{
		Use:           "tidydl",
		Short:         "Organize a downloads folder into categorized subfolders",
		Long: `tidydl moves the files of a folder (by default your Downloads folder)
into category subfolders such as Images, Documents, and Archives, keeps a
per-folder history of every move, and can undo the most recent pass.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if undo {
				return runUndo(cmd, ctx)
			}
			return runOrganize(cmd, ctx, byDate, cmd.Flags().Changed("by-date"), dryRun)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&pathFlag, "path", "p", "", "Folder to organize (default: the platform Downloads folder)")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview planned moves without touching the filesystem")
	rootCmd.Flags().BoolVar(&byDate, "by-date", false, "Organize into category/year/month subfolders by modification date")
	rootCmd.Flags().BoolVar(&undo, "undo", false, "Undo the most recent organization pass")

	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
