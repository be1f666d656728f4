package planner

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDestinationFlat(t *testing.T) {
	got := Destination("/downloads", "Documents", ModeFlat, time.Now())
	want := filepath.Join("/downloads", "Documents")
	if got != want {
		t.Errorf("Destination = %q, want %q", got, want)
	}
}

func TestDestinationByDate(t *testing.T) {
	modTime := time.Date(2024, time.March, 14, 9, 30, 0, 0, time.Local)
	got := Destination("/downloads", "Documents", ModeByDate, modTime)
	want := filepath.Join("/downloads", "Documents", "2024", "March")
	if got != want {
		t.Errorf("Destination = %q, want %q", got, want)
	}
}

func TestResolveNameNoCollision(t *testing.T) {
	dir := t.TempDir()
	got, err := ResolveName(dir, "report.pdf", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "report.pdf" {
		t.Errorf("ResolveName = %q, want report.pdf", got)
	}
}

func TestResolveNameOnDiskCollision(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "report.pdf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveName(dir, "report.pdf", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "report (1).pdf" {
		t.Errorf("ResolveName = %q, want %q", got, "report (1).pdf")
	}
}

func TestResolveNameSequentialCollisions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"report.pdf", "report (1).pdf", "report (2).pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ResolveName(dir, "report.pdf", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "report (3).pdf" {
		t.Errorf("ResolveName = %q, want %q", got, "report (3).pdf")
	}
}

func TestResolveNameTakenSet(t *testing.T) {
	dir := t.TempDir()
	taken := map[string]struct{}{}

	first, err := ResolveName(dir, "report.pdf", taken)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ResolveName(dir, "report.pdf", taken)
	if err != nil {
		t.Fatal(err)
	}

	// Nothing exists on disk; the taken set alone must disambiguate.
	if first != "report.pdf" {
		t.Errorf("first = %q, want report.pdf", first)
	}
	if second != "report (1).pdf" {
		t.Errorf("second = %q, want %q", second, "report (1).pdf")
	}
}

func TestResolveNameNoExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveName(dir, "README", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "README (1)" {
		t.Errorf("ResolveName = %q, want %q", got, "README (1)")
	}
}

func TestResolveNameMultiSuffix(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "archive.tar.gz"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveName(dir, "archive.tar.gz", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "archive.tar (1).gz" {
		t.Errorf("ResolveName = %q, want %q", got, "archive.tar (1).gz")
	}
}
