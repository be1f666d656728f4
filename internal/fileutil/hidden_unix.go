//go:build !windows

package fileutil

import "strings"

// Hidden reports whether the named file should be treated as hidden. On
// Unix-like systems that means a leading dot.
func Hidden(path, name string) bool {
	return strings.HasPrefix(name, ".")
}
