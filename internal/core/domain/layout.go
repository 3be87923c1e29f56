package domain

const (
	// MateFileName is the name of the project configuration file.
	MateFileName = "mate.yaml"

	// BinDirName is the name of the executable directory inside dist and the install prefix.
	BinDirName = "bin"

	// LibDirName is the name of the library directory inside dist and the install prefix.
	LibDirName = "lib"

	// IncludeDirName is the name of the header directory inside dist and the install prefix.
	IncludeDirName = "include"

	// DirPerm is the default permission for created directories (rwxr-xr-x).
	DirPerm = 0o755

	// FilePerm is the default permission for installed files (rw-r--r--).
	FilePerm = 0o644
)
