package ownership

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:generate counterfeiter . Chowner
type Chowner interface {
	RecursiveChown(path string, owner Owner, dirMode, fileMode os.FileMode) error
}

type FilesystemError struct {
	Path string
	Err  error
}

func (err FilesystemError) Error() string {
	return fmt.Sprintf("cannot normalize ownership of %s: %s", err.Path, err.Err)
}

type OSChowner struct{}

// RecursiveChown re-owns the tree below path and applies dirMode to
// directories and fileMode to regular files. Symbolic links are re-owned
// with Lchown but never followed and never chmod'd, so a link inside a
// profile path cannot drag unrelated trees into the operation.
func (c *OSChowner) RecursiveChown(path string, owner Owner, dirMode, fileMode os.FileMode) error {
	return filepath.WalkDir(path, func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return FilesystemError{Path: name, Err: walkErr}
		}

		if err := os.Lchown(name, owner.UID, owner.GID); err != nil {
			return FilesystemError{Path: name, Err: err}
		}

		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			// chmod would resolve the link target
		case entry.IsDir():
			if err := os.Chmod(name, dirMode); err != nil {
				return FilesystemError{Path: name, Err: err}
			}
		case entry.Type().IsRegular():
			if err := os.Chmod(name, fileMode); err != nil {
				return FilesystemError{Path: name, Err: err}
			}
		}

		return nil
	})
}
