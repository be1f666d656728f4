package planner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Mode selects the destination directory layout.
type Mode int

const (
	// ModeFlat places files directly under <root>/<category>.
	ModeFlat Mode = iota
	// ModeByDate places files under <root>/<category>/<year>/<month>,
	// derived from the file's last-modification time.
	ModeByDate
)

func (m Mode) String() string {
	switch m {
	case ModeByDate:
		return "by-date"
	default:
		return "flat"
	}
}

// Destination returns the directory a file of the given category should move
// into. Modification time is only consulted in ModeByDate; creation time is
// deliberately not used because it is unreliable across platforms.
func Destination(root, category string, mode Mode, modTime time.Time) string {
	if mode == ModeByDate {
		year := strconv.Itoa(modTime.Year())
		month := modTime.Month().String()
		return filepath.Join(root, category, year, month)
	}
	return filepath.Join(root, category)
}

const maxProbeAttempts = 10000

// ResolveName returns a filename that is free inside dir, starting from name
// and probing "base (n)ext" with ascending n on collision. A name counts as
// occupied when it exists on disk or when its full path appears in taken,
// which lets a pass account for moves it has already planned (dry run) or
// performed. The chosen path is added to taken.
func ResolveName(dir, name string, taken map[string]struct{}) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	candidate := name
	for attempt := 1; attempt <= maxProbeAttempts; attempt++ {
		inUse, err := occupied(filepath.Join(dir, candidate), taken)
		if err != nil {
			return "", err
		}
		if !inUse {
			if taken != nil {
				taken[filepath.Join(dir, candidate)] = struct{}{}
			}
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s (%d)%s", base, attempt, ext)
	}
	return "", fmt.Errorf("exhausted filename slots for %s in %s", name, dir)
}

func occupied(path string, taken map[string]struct{}) (bool, error) {
	if taken != nil {
		if _, ok := taken[path]; ok {
			return true, nil
		}
	}
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
