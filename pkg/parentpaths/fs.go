package parentpaths

import "os"

// FileSystem provides the host primitives a resolution depends on.
type FileSystem interface {
	// Exists reports whether path names an existing file or directory.
	// Failures to check, such as permission errors, report false.
	Exists(path string) bool
	// Getwd returns the working directory used to resolve relative base directories.
	Getwd() (string, error)
}

// OSFileSystem is the FileSystem backed by the os package.
type OSFileSystem struct{}

// Exists follows symlinks; a dangling link does not exist.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Getwd returns the process working directory.
func (OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// Probe records one existence check made during a resolution.
type Probe struct {
	// Level is the distance from the base directory, 0 for the base itself.
	Level    int
	Dir      string
	Fragment string
	Path     string
	Exists   bool
}
