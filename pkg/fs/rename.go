package fs

import "os"

// Rename moves a file or directory to a new path.
func (f *realFS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}
