// Package downloads discovers the user's Downloads folder.
package downloads

import (
	"fmt"
	"os"
	"path/filepath"
)

// Folder returns the platform Downloads folder. Windows, macOS, and Linux
// all keep it directly under the home directory.
func Folder() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "Downloads"), nil
}
