package rules

import (
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is the category used for files with no extension or an extension
// no category claims.
const Fallback = "Others"

var defaultCategories = map[string][]string{
	"Images":     {".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".svg", ".ico"},
	"Documents":  {".pdf", ".docx", ".xlsx", ".txt", ".pptx", ".doc", ".xls", ".ppt", ".odt", ".csv"},
	"Videos":     {".mp4", ".mkv", ".mov", ".avi", ".flv", ".wmv", ".webm"},
	"Archives":   {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz"},
	"Installers": {".exe", ".msi", ".dmg", ".deb", ".rpm", ".pkg", ".apk"},
	"Music":      {".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a", ".wma"},
	"Code":       {".py", ".js", ".java", ".cpp", ".c", ".h", ".cs", ".php", ".rb", ".go", ".rs", ".ts", ".html", ".css"},
}

// Defaults returns a copy of the built-in category table.
func Defaults() map[string][]string {
	out := make(map[string][]string, len(defaultCategories))
	for name, exts := range defaultCategories {
		out[name] = append([]string(nil), exts...)
	}
	return out
}

// Table is an immutable extension-to-category lookup built by Merge.
type Table struct {
	names []string
	byExt map[string]string
}

// Merge combines the default table with user overrides into a new Table.
// A category present in overrides replaces the default category of the same
// name entirely; categories only present in overrides are added. Extensions
// claimed by an override category always beat default claims on the same
// extension; ties within one tier fall to the first category in name order,
// so an extension resolves to exactly one category.
func Merge(defaults, overrides map[string][]string) Table {
	merged := make(map[string][]string, len(defaults)+len(overrides))
	for name, exts := range defaults {
		merged[canonicalName(name)] = normalizeExtensions(exts)
	}
	fromOverrides := make(map[string]struct{}, len(overrides))
	for name, exts := range overrides {
		canonical := canonicalName(name)
		merged[canonical] = normalizeExtensions(exts)
		fromOverrides[canonical] = struct{}{}
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	byExt := make(map[string]string)
	claim := func(name string) {
		for _, ext := range merged[name] {
			if _, claimed := byExt[ext]; !claimed {
				byExt[ext] = name
			}
		}
	}
	for _, name := range names {
		if _, ok := fromOverrides[name]; ok {
			claim(name)
		}
	}
	for _, name := range names {
		if _, ok := fromOverrides[name]; !ok {
			claim(name)
		}
	}

	return Table{names: names, byExt: byExt}
}

// CategoryFor returns the category claiming the filename's extension, or
// Fallback when none does. The match is case-insensitive.
func (t Table) CategoryFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return Fallback
	}
	if category, ok := t.byExt[ext]; ok {
		return category
	}
	return Fallback
}

// Categories returns the category names in the table, sorted.
func (t Table) Categories() []string {
	return append([]string(nil), t.names...)
}

func canonicalName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Fallback
	}
	// Casers are stateful; build one per call rather than sharing.
	return cases.Title(language.English).String(trimmed)
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	sort.Strings(out)
	return out
}
