// Package fsops implements the filesystem operations behind install,
// uninstall, clean and header export.
package fsops

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/mate/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileOps implements ports.FileOps on the local filesystem.
type FileOps struct{}

// New creates a new FileOps.
func New() *FileOps {
	return &FileOps{}
}

// Copy copies the file at src to dst. Missing parent directories of dst are
// created. An existing dst is truncated and overwritten.
func (f *FileOps) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return zerr.Wrap(err, "failed to open source file")
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create destination directory")
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.Wrap(err, "failed to create destination file")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to copy file content")
	}

	if err := out.Close(); err != nil {
		return zerr.Wrap(err, "failed to flush destination file")
	}

	return nil
}

// Remove deletes the file at path.
func (f *FileOps) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return zerr.Wrap(err, "failed to remove file")
	}
	return nil
}

// MkdirAll creates path and any missing parents.
func (f *FileOps) MkdirAll(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}
	return nil
}
