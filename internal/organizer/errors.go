package organizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotADirectory reports a target that exists but is not a folder.
	ErrNotADirectory = errors.New("target is not a directory")
	// ErrLocked reports that another pass holds the folder lock.
	ErrLocked = errors.New("another pass is already running on this folder")
	// ErrNothingToUndo reports an undo request against an empty ledger.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// Wrap builds an error that includes operation context while tagging it with
// the provided marker for later classification. Fatal errors abort a pass
// before any file is touched; everything else is contained per file.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		if err != nil {
			return fmt.Errorf("%s: %w", detail, err)
		}
		return errors.New(detail)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organizer failure"
	}
	return strings.Join(parts, ": ")
}
