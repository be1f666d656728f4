package organizer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"tidydl/internal/fileutil"
	"tidydl/internal/history"
	"tidydl/internal/logging"
	"tidydl/internal/planner"
	"tidydl/internal/rules"
)

const (
	// LockFileName guards a folder against interleaved tidydl passes.
	LockFileName = ".tidydl.lock"
	// LogFileName is the optional per-folder log file.
	LogFileName = "organize.log"
)

// controlFiles are owned by tidydl and never classified or moved.
var controlFiles = map[string]struct{}{
	history.FileName:          {},
	history.FileName + ".tmp": {},
	rules.OverridesFileName:   {},
	LockFileName:              {},
	LogFileName:               {},
}

// Options parameterize an organization pass.
type Options struct {
	Mode   planner.Mode
	DryRun bool
}

// ItemError pairs a path with the reason it failed.
type ItemError struct {
	Path   string
	Reason string
}

// Summary reports the outcome of one organization pass.
type Summary struct {
	Moved   int
	Skipped int
	Errors  []ItemError
	// LedgerErr carries a history-persist failure. Completed moves are not
	// rolled back when persisting fails.
	LedgerErr error
}

// Organizer executes organization passes over a single folder.
type Organizer struct {
	root   string
	table  rules.Table
	opts   Options
	logger *slog.Logger
}

// New constructs an organizer for the given folder. The category table is
// the already-merged rule set; a nil logger is replaced by a no-op logger.
func New(root string, table rules.Table, opts Options, logger *slog.Logger) *Organizer {
	return &Organizer{
		root:   root,
		table:  table,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "organizer"),
	}
}

// Organize runs one full pass. A non-nil error means the pass aborted before
// touching any file; per-file failures land in the summary instead.
func (o *Organizer) Organize() (Summary, error) {
	var summary Summary

	root, err := o.validateRoot()
	if err != nil {
		return summary, err
	}

	if !o.opts.DryRun {
		unlock, err := o.acquireLock(root)
		if err != nil {
			return summary, err
		}
		defer unlock()
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return summary, Wrap(nil, "enumerate folder", root, err)
	}

	ledger := history.Load(root, o.logger)
	batchID := uuid.NewString()
	startedAt := time.Now()

	o.logger.Info("starting organization",
		logging.String("folder", root),
		logging.String("mode", o.opts.Mode.String()),
		logging.Bool("dry_run", o.opts.DryRun))

	// Paths claimed earlier in this pass; keeps disambiguator numbering
	// correct in dry-run mode and cheap in real runs.
	taken := make(map[string]struct{})

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(root, name)

		// The lock file only exists while a pass runs; counting it would
		// make dry-run and real summaries disagree.
		if name == LockFileName {
			continue
		}

		if reason, skip := o.shouldSkip(entry, path); skip {
			o.logger.Debug("skipping entry",
				logging.String("file", name), logging.String("reason", reason))
			summary.Skipped++
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File vanished between enumeration and processing.
			summary.Errors = append(summary.Errors, ItemError{Path: path, Reason: err.Error()})
			o.logger.Error("could not stat file", logging.String("file", name), logging.Error(err))
			continue
		}

		category := o.table.CategoryFor(name)
		destDir := planner.Destination(root, category, o.opts.Mode, info.ModTime())

		finalName, err := planner.ResolveName(destDir, name, taken)
		if err != nil {
			summary.Errors = append(summary.Errors, ItemError{Path: path, Reason: err.Error()})
			o.logger.Error("could not resolve destination name",
				logging.String("file", name), logging.Error(err))
			continue
		}
		destPath := filepath.Join(destDir, finalName)
		relDest, relErr := filepath.Rel(root, destPath)
		if relErr != nil {
			relDest = destPath
		}

		if o.opts.DryRun {
			o.logger.Info("would move file",
				logging.String("file", name),
				logging.String("category", category),
				logging.String("destination", relDest))
			summary.Moved++
			continue
		}

		if err := os.MkdirAll(destDir, 0o755); err != nil {
			summary.Errors = append(summary.Errors, ItemError{Path: path, Reason: err.Error()})
			o.logger.Error("could not create destination directory",
				logging.String("file", name), logging.Error(err))
			continue
		}
		if err := fileutil.MoveFile(path, destPath); err != nil {
			summary.Errors = append(summary.Errors, ItemError{Path: path, Reason: err.Error()})
			o.logger.Error("could not move file", logging.String("file", name), logging.Error(err))
			continue
		}

		ledger.Record(history.Entry{
			BatchID:     batchID,
			Filename:    name,
			Source:      path,
			Destination: destPath,
			Category:    category,
			MovedAt:     startedAt,
		})
		summary.Moved++
		o.logger.Info("moved file",
			logging.String("file", name),
			logging.String("category", category),
			logging.String("destination", relDest))
	}

	if !o.opts.DryRun {
		if err := ledger.Persist(); err != nil {
			summary.LedgerErr = err
			o.logger.Warn("could not persist history; undo will miss this pass",
				logging.Error(err))
		}
	}

	o.logger.Info("organization finished",
		logging.Int("moved", summary.Moved),
		logging.Int("skipped", summary.Skipped),
		logging.Int("errors", len(summary.Errors)),
		logging.Bool("dry_run", o.opts.DryRun),
		logging.Duration("elapsed", time.Since(startedAt)))
	return summary, nil
}

func (o *Organizer) shouldSkip(entry os.DirEntry, path string) (string, bool) {
	name := entry.Name()
	switch {
	case entry.IsDir():
		return "directory", true
	case fileutil.Hidden(path, name):
		return "hidden", true
	default:
		if _, control := controlFiles[name]; control {
			return "control file", true
		}
	}
	return "", false
}

func (o *Organizer) validateRoot() (string, error) {
	root, err := filepath.Abs(o.root)
	if err != nil {
		return "", Wrap(nil, "resolve folder", o.root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", Wrap(nil, "stat folder", root, err)
	}
	if !info.IsDir() {
		return "", Wrap(ErrNotADirectory, "validate folder", root, nil)
	}
	return root, nil
}

// acquireLock serializes tidydl's own passes on one folder. It offers no
// protection against other processes mutating the folder.
func (o *Organizer) acquireLock(root string) (func(), error) {
	lock := flock.New(filepath.Join(root, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, Wrap(nil, "acquire folder lock", root, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, root)
	}
	return func() { _ = lock.Unlock() }, nil
}
