package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	// Point --config at a missing file so the developer's real config
	// cannot leak into the test.
	missingConfig := filepath.Join(t.TempDir(), "config.toml")
	args = append(args, "--config", missingConfig)

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out.String()
}

func TestRootDryRun(t *testing.T) {
	folder := t.TempDir()
	if err := os.WriteFile(filepath.Join(folder, "report.pdf"), []byte("doc"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := runCommand(t, "--path", folder, "--dry-run")
	if !strings.Contains(out, "Dry run") {
		t.Errorf("output missing dry-run notice: %q", out)
	}

	// Nothing moved.
	if _, err := os.Stat(filepath.Join(folder, "report.pdf")); err != nil {
		t.Errorf("dry run moved the file: %v", err)
	}
}

func TestRootOrganizeAndUndo(t *testing.T) {
	folder := t.TempDir()
	if err := os.WriteFile(filepath.Join(folder, "report.pdf"), []byte("doc"), 0o644); err != nil {
		t.Fatal(err)
	}

	runCommand(t, "--path", folder)
	if _, err := os.Stat(filepath.Join(folder, "Documents", "report.pdf")); err != nil {
		t.Fatalf("file not organized: %v", err)
	}

	runCommand(t, "--path", folder, "--undo")
	if _, err := os.Stat(filepath.Join(folder, "report.pdf")); err != nil {
		t.Fatalf("file not restored: %v", err)
	}
}

func TestRootUndoEmpty(t *testing.T) {
	folder := t.TempDir()

	out := runCommand(t, "--path", folder, "--undo")
	if !strings.Contains(out, "Nothing to undo") {
		t.Errorf("output = %q, want nothing-to-undo notice", out)
	}
}

func TestConfigValidateHonorsConfigFlag(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "custom.toml")
	body := "[logging]\nformat = \"json\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", configPath, "config", "validate"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out.String(), configPath) {
		t.Errorf("output = %q, want the path given via --config", out.String())
	}
	if !strings.Contains(out.String(), "is valid") {
		t.Errorf("output = %q, want validity confirmation", out.String())
	}
}

func TestConfigValidateRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "custom.toml")
	body := "[logging]\nformat = \"yaml\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", configPath, "config", "validate"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestHistoryCommandEmpty(t *testing.T) {
	folder := t.TempDir()

	out := runCommand(t, "history", "--path", folder)
	if !strings.Contains(out, "No recorded moves") {
		t.Errorf("output = %q, want empty-history notice", out)
	}
}
