package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func entry(batch, name string) Entry {
	return Entry{
		BatchID:     batch,
		Filename:    name,
		Source:      filepath.Join("/downloads", name),
		Destination: filepath.Join("/downloads", "Documents", name),
		Category:    "Documents",
		MovedAt:     time.Now(),
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	l := Load(dir, nil)
	if l.Len() != 0 {
		t.Errorf("expected empty ledger, got %d entries", l.Len())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := Load(dir, nil)
	if l.Len() != 0 {
		t.Errorf("malformed history should load empty, got %d entries", l.Len())
	}
}

func TestRecordPersistLoad(t *testing.T) {
	dir := t.TempDir()

	l := Load(dir, nil)
	l.Record(entry("batch-1", "report.pdf"))
	l.Record(entry("batch-1", "photo.jpg"))
	if err := l.Persist(); err != nil {
		t.Fatal(err)
	}

	reloaded := Load(dir, nil)
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", reloaded.Len())
	}
	entries := reloaded.Entries()
	if entries[0].Filename != "report.pdf" || entries[1].Filename != "photo.jpg" {
		t.Errorf("entry order not preserved: %v", entries)
	}
	if entries[0].Category != "Documents" {
		t.Errorf("category not preserved: %q", entries[0].Category)
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	dir := t.TempDir()
	l := Load(dir, nil)

	for i := 0; i < Capacity+25; i++ {
		l.Record(entry("batch-1", fmt.Sprintf("file-%03d.pdf", i)))
	}

	if l.Len() != Capacity {
		t.Fatalf("ledger holds %d entries, want %d", l.Len(), Capacity)
	}
	entries := l.Entries()
	if entries[0].Filename != "file-025.pdf" {
		t.Errorf("oldest retained entry = %q, want file-025.pdf", entries[0].Filename)
	}
	if entries[len(entries)-1].Filename != fmt.Sprintf("file-%03d.pdf", Capacity+24) {
		t.Errorf("newest entry = %q", entries[len(entries)-1].Filename)
	}
}

func TestLoadTruncatesOversizedFile(t *testing.T) {
	dir := t.TempDir()
	l := Load(dir, nil)
	for i := 0; i < Capacity+10; i++ {
		l.entries = append(l.entries, entry("batch-1", fmt.Sprintf("file-%03d.pdf", i)))
	}
	if err := l.Persist(); err != nil {
		t.Fatal(err)
	}

	reloaded := Load(dir, nil)
	if reloaded.Len() != Capacity {
		t.Errorf("reloaded ledger holds %d entries, want %d", reloaded.Len(), Capacity)
	}
}

func TestLastBatch(t *testing.T) {
	dir := t.TempDir()
	l := Load(dir, nil)
	l.Record(entry("batch-1", "a.pdf"))
	l.Record(entry("batch-1", "b.pdf"))
	l.Record(entry("batch-2", "c.pdf"))
	l.Record(entry("batch-2", "d.pdf"))

	batch := l.LastBatch()
	if len(batch) != 2 {
		t.Fatalf("last batch has %d entries, want 2", len(batch))
	}
	if batch[0].Filename != "c.pdf" || batch[1].Filename != "d.pdf" {
		t.Errorf("unexpected batch contents: %v", batch)
	}
}

func TestDropLastBatch(t *testing.T) {
	dir := t.TempDir()
	l := Load(dir, nil)
	l.Record(entry("batch-1", "a.pdf"))
	l.Record(entry("batch-2", "b.pdf"))
	l.Record(entry("batch-2", "c.pdf"))

	l.DropLastBatch()
	if l.Len() != 1 {
		t.Fatalf("expected 1 entry after drop, got %d", l.Len())
	}
	if l.Entries()[0].BatchID != "batch-1" {
		t.Errorf("remaining entry from batch %q, want batch-1", l.Entries()[0].BatchID)
	}

	l.DropLastBatch()
	if l.Len() != 0 {
		t.Errorf("expected empty ledger, got %d entries", l.Len())
	}

	// Dropping on an empty ledger is a no-op.
	l.DropLastBatch()
}

func TestPersistEmptyLedger(t *testing.T) {
	dir := t.TempDir()
	l := Load(dir, nil)
	l.Record(entry("batch-1", "a.pdf"))
	l.DropLastBatch()
	if err := l.Persist(); err != nil {
		t.Fatal(err)
	}

	reloaded := Load(dir, nil)
	if reloaded.Len() != 0 {
		t.Errorf("expected empty ledger after persisting cleared state, got %d", reloaded.Len())
	}
}
