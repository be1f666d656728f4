package organizer

import (
	"os"
	"path/filepath"
	"time"

	"tidydl/internal/fileutil"
	"tidydl/internal/history"
	"tidydl/internal/logging"
)

// UndoSummary reports the outcome of one undo pass.
type UndoSummary struct {
	Restored int
	Errors   []ItemError
	// LedgerErr carries a history-persist failure after the batch was
	// dropped; restored files stay restored.
	LedgerErr error
}

// UndoLast reverses the most recent organization batch, moving each file
// from its destination back to its original location in last-moved-first
// order. The batch is dropped from history whether or not every restore
// succeeded; undo is one-shot, not retriable. Returns ErrNothingToUndo when
// the ledger holds no entries.
func (o *Organizer) UndoLast() (UndoSummary, error) {
	var summary UndoSummary

	root, err := o.validateRoot()
	if err != nil {
		return summary, err
	}

	unlock, err := o.acquireLock(root)
	if err != nil {
		return summary, err
	}
	defer unlock()

	ledger := history.Load(root, o.logger)
	batch := ledger.LastBatch()
	if len(batch) == 0 {
		return summary, ErrNothingToUndo
	}

	startedAt := time.Now()
	o.logger.Info("undoing last organization",
		logging.String("folder", root),
		logging.String("batch_id", batch[0].BatchID),
		logging.Int("entries", len(batch)))

	// Last-moved-first keeps disambiguated names stable: a file moved onto
	// a freed name cannot collide with one restored before it.
	for i := len(batch) - 1; i >= 0; i-- {
		entry := batch[i]
		if err := os.MkdirAll(filepath.Dir(entry.Source), 0o755); err != nil {
			summary.Errors = append(summary.Errors, ItemError{Path: entry.Destination, Reason: err.Error()})
			o.logger.Error("could not recreate source directory",
				logging.String("file", entry.Filename), logging.Error(err))
			continue
		}
		if err := fileutil.MoveFile(entry.Destination, entry.Source); err != nil {
			summary.Errors = append(summary.Errors, ItemError{Path: entry.Destination, Reason: err.Error()})
			o.logger.Error("could not restore file",
				logging.String("file", entry.Filename), logging.Error(err))
			continue
		}
		summary.Restored++
		o.logger.Info("restored file", logging.String("file", entry.Filename))
	}

	ledger.DropLastBatch()
	if err := ledger.Persist(); err != nil {
		summary.LedgerErr = err
		o.logger.Warn("could not persist history after undo", logging.Error(err))
	}

	o.logger.Info("undo finished",
		logging.Int("restored", summary.Restored),
		logging.Int("errors", len(summary.Errors)),
		logging.Duration("elapsed", time.Since(startedAt)))
	return summary, nil
}
