//go:build windows

package fileutil

import (
	"strings"

	"golang.org/x/sys/windows"
)

// Hidden reports whether the named file should be treated as hidden. On
// Windows that means either a leading dot or the hidden file attribute.
func Hidden(path, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	pointer, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(pointer)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
