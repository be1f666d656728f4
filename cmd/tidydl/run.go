package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tidydl/internal/organizer"
	"tidydl/internal/planner"
	"tidydl/internal/rules"
)

func runOrganize(cmd *cobra.Command, ctx *commandContext, byDate, byDateSet, dryRun bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	folder, err := ctx.targetFolder()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger(folder)
	if err != nil {
		return err
	}

	mode := planner.ModeFlat
	if byDate || (!byDateSet && cfg.Organize.ByDate) {
		mode = planner.ModeByDate
	}

	table := rules.Merge(rules.Defaults(), rules.LoadOverrides(folder, logger))
	org := organizer.New(folder, table, organizer.Options{Mode: mode, DryRun: dryRun}, logger)

	summary, err := org.Organize()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintln(out, "Dry run: no files were moved.")
	}
	fmt.Fprintln(out, renderSummaryTable(
		[]string{"Moved", "Skipped", "Errors"},
		[][]string{{
			fmt.Sprintf("%d", summary.Moved),
			fmt.Sprintf("%d", summary.Skipped),
			fmt.Sprintf("%d", len(summary.Errors)),
		}},
		[]columnAlignment{alignRight, alignRight, alignRight},
	))
	printItemErrors(out, summary.Errors)
	if summary.LedgerErr != nil {
		fmt.Fprintf(out, "Warning: history not saved (%v); this pass cannot be undone.\n", summary.LedgerErr)
	}
	return nil
}

func runUndo(cmd *cobra.Command, ctx *commandContext) error {
	folder, err := ctx.targetFolder()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger(folder)
	if err != nil {
		return err
	}

	table := rules.Merge(rules.Defaults(), nil)
	org := organizer.New(folder, table, organizer.Options{}, logger)

	summary, err := org.UndoLast()
	if errors.Is(err, organizer.ErrNothingToUndo) {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo.")
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderSummaryTable(
		[]string{"Restored", "Errors"},
		[][]string{{
			fmt.Sprintf("%d", summary.Restored),
			fmt.Sprintf("%d", len(summary.Errors)),
		}},
		[]columnAlignment{alignRight, alignRight},
	))
	printItemErrors(out, summary.Errors)
	if summary.LedgerErr != nil {
		fmt.Fprintf(out, "Warning: history not saved (%v).\n", summary.LedgerErr)
	}
	return nil
}
