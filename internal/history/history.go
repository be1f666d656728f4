package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tidydl/internal/logging"
)

const (
	// Capacity bounds the ledger; the oldest entries are evicted first.
	Capacity = 100
	// FileName is the ledger file kept in each organized folder.
	FileName = ".tidydl_history.json"

	formatVersion = 1
)

// Entry records one executed move.
type Entry struct {
	BatchID     string    `json:"batch_id"`
	Filename    string    `json:"filename"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Category    string    `json:"category"`
	MovedAt     time.Time `json:"moved_at"`
}

type ledgerFile struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// Ledger is the ordered, capacity-bounded move record for one folder.
type Ledger struct {
	path    string
	logger  *slog.Logger
	entries []Entry
}

// Load reads the folder's ledger from disk. Missing or malformed state
// yields an empty ledger; a corrupt history must never block organizing.
func Load(root string, logger *slog.Logger) *Ledger {
	logger = logging.NewComponentLogger(logger, "history")
	l := &Ledger{path: filepath.Join(root, FileName), logger: logger}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not read history, starting empty",
				logging.String("path", l.path), logging.Error(err))
		}
		return l
	}
	if len(data) == 0 {
		return l
	}

	var parsed ledgerFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		logger.Warn("malformed history ignored, starting empty",
			logging.String("path", l.path), logging.Error(err))
		return l
	}

	l.entries = parsed.Entries
	l.truncate()
	logger.Debug("loaded history",
		logging.Int("entries", len(l.entries)), logging.String("path", l.path))
	return l
}

// Record appends an entry, evicting from the front once the ledger exceeds
// its capacity.
func (l *Ledger) Record(entry Entry) {
	l.entries = append(l.entries, entry)
	l.truncate()
}

// Persist rewrites the ledger file wholesale. The write goes to a temp file
// first and is renamed into place so a reader never observes partial state.
func (l *Ledger) Persist() error {
	data, err := json.MarshalIndent(ledgerFile{Version: formatVersion, Entries: l.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmpPath := l.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp history: %w", err)
	}
	if err := os.Rename(tmpPath, l.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp history: %w", err)
	}
	return nil
}

// Entries returns a copy of the ledger contents, oldest first.
func (l *Ledger) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// LastBatch returns the trailing run of entries that share the most recent
// batch ID, oldest first. It returns nil when the ledger is empty.
func (l *Ledger) LastBatch() []Entry {
	if len(l.entries) == 0 {
		return nil
	}
	batchID := l.entries[len(l.entries)-1].BatchID
	start := len(l.entries)
	for start > 0 && l.entries[start-1].BatchID == batchID {
		start--
	}
	return append([]Entry(nil), l.entries[start:]...)
}

// DropLastBatch removes the trailing batch returned by LastBatch.
func (l *Ledger) DropLastBatch() {
	batch := l.LastBatch()
	l.entries = l.entries[:len(l.entries)-len(batch)]
}

// Path returns the ledger file location.
func (l *Ledger) Path() string {
	return l.path
}

func (l *Ledger) truncate() {
	if len(l.entries) > Capacity {
		l.entries = append([]Entry(nil), l.entries[len(l.entries)-Capacity:]...)
	}
}
