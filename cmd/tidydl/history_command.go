package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tidydl/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the folder's recorded moves, newest last",
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := ctx.targetFolder()
			if err != nil {
				return err
			}

			ledger := history.Load(folder, nil)
			entries := ledger.Entries()
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No recorded moves.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				dest := entry.Destination
				if rel, err := filepath.Rel(folder, dest); err == nil {
					dest = rel
				}
				rows = append(rows, []string{
					entry.MovedAt.Local().Format(time.DateTime),
					entry.Filename,
					entry.Category,
					dest,
					shortBatchID(entry.BatchID),
				})
			}

			fmt.Fprintln(out, renderSummaryTable(
				[]string{"Moved At", "File", "Category", "Destination", "Batch"},
				rows,
				nil,
			))
			fmt.Fprintf(out, "%d of at most %d entries retained.\n", len(entries), history.Capacity)
			return nil
		},
	}
}

func shortBatchID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
