package ports

// FileOps defines the filesystem operations used by install, uninstall,
// clean and header export.
//
//go:generate mockgen -source=fileops.go -destination=mocks/mock_fileops.go -package=mocks
type FileOps interface {
	// Copy copies the file at src to dst, creating dst's parent directories
	// as needed and preserving nothing but the content.
	Copy(src, dst string) error

	// Remove deletes the file at path. Removing a missing file is an error.
	Remove(path string) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
}
