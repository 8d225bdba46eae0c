// Package project locates project roots by their marker files.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jaspreet-dot-casa/parentpaths/pkg/parentpaths"
)

var (
	// ErrRootNotFound is returned when no marker exists in the start directory or any parent.
	ErrRootNotFound = errors.New("could not find project root")
	// ErrFileNotFound is returned by FindFile when name exists at no level.
	ErrFileNotFound = errors.New("file not found in any parent directory")
)

// DefaultMarkers are used by FindRoot when no markers are given.
var DefaultMarkers = []string{".git", "go.mod", "package.json"}

// FindRoot walks up from start and returns the nearest directory that
// contains one of markers. Within a directory, earlier markers win. An
// absolute marker that exists yields its own parent directory.
func FindRoot(start string, markers ...string) (string, error) {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	var root string
	found, err := parentpaths.Resolve(markers, &parentpaths.Options{
		Dir:  start,
		Mode: parentpaths.ModeFirst,
		Probe: func(p parentpaths.Probe) {
			if !p.Exists || root != "" {
				return
			}
			if filepath.IsAbs(p.Fragment) {
				root = filepath.Dir(p.Path)
			} else {
				root = p.Dir
			}
		},
	})
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", fmt.Errorf("%w (looked for %s)", ErrRootNotFound, strings.Join(markers, ", "))
	}
	return root, nil
}

// FindFile walks up from start and returns the nearest path to name.
func FindFile(start, name string) (string, error) {
	found, err := parentpaths.Resolve([]string{name}, &parentpaths.Options{
		Dir:  start,
		Mode: parentpaths.ModeFirst,
	})
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return found[0], nil
}
