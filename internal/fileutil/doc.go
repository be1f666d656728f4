// Package fileutil provides the filesystem primitives shared by the
// organizer: collision-free moves with a cross-device copy fallback and
// platform-appropriate hidden-file detection.
package fileutil
