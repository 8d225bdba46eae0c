// Package parentpaths resolves relative path fragments by walking upward
// from a base directory through each of its parents.
//
// Four modes control when the walk stops and what is returned:
//
//   - first: the first fragment found at the nearest level that has one
//   - some:  every fragment found at the nearest level that has at least one
//   - all:   every fragment, found together at one level
//   - each:  every fragment, each at the nearest level it is found
package parentpaths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Mode selects the matching and stopping policy of a resolution.
type Mode string

const (
	ModeFirst Mode = "first"
	ModeSome  Mode = "some"
	ModeAll   Mode = "all"
	ModeEach  Mode = "each"

	// DefaultMode is used when Options.Mode is empty.
	DefaultMode = ModeAll
)

// Unresolved marks a slot in an each-mode result whose fragment was not
// found at any level.
const Unresolved = ""

var (
	// ErrInvalidArgument is returned when the fragments are not a list of strings.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOption is returned when options are malformed or name an unknown mode.
	ErrInvalidOption = errors.New("invalid option")
)

// strategy walks the parent chain for one mode.
type strategy func(w *walker, fragments []string) []string

var strategies = map[Mode]strategy{
	ModeFirst: first,
	ModeSome:  some,
	ModeAll:   all,
	ModeEach:  each,
}

// Modes returns the recognized mode names in documentation order.
func Modes() []Mode {
	return []Mode{ModeFirst, ModeSome, ModeAll, ModeEach}
}

// ParseMode converts a mode name into a Mode. An empty name yields DefaultMode.
func ParseMode(name string) (Mode, error) {
	if name == "" {
		return DefaultMode, nil
	}
	mode := Mode(name)
	if _, ok := strategies[mode]; !ok {
		return "", fmt.Errorf("%w: mode must be one of %s. Value: `%s`", ErrInvalidOption, modeList(), name)
	}
	return mode, nil
}

func modeList() string {
	names := make([]string, 0, len(strategies))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

// Options configures a resolution. The zero value starts at the working
// directory in all mode against the OS filesystem.
type Options struct {
	// Dir is the base directory. Relative values are resolved against the
	// working directory.
	Dir string
	// Mode defaults to DefaultMode.
	Mode Mode
	// FS defaults to OSFileSystem.
	FS FileSystem
	// Logger receives debug entries for each level visited. Defaults to a no-op logger.
	Logger *zap.Logger
	// Probe, when set, is called after every existence check.
	Probe func(Probe)
}

// Resolve walks from the base directory toward the filesystem root and
// returns the absolute paths matched according to the selected mode.
//
// For ModeEach the result has one slot per fragment, in input order, and
// fragments never found hold Unresolved. For the other modes the result
// only contains matches. An empty fragment list returns an empty result
// without validating opts.
func Resolve(fragments []string, opts *Options) ([]string, error) {
	if len(fragments) == 0 {
		return []string{}, nil
	}
	if opts == nil {
		opts = &Options{}
	}

	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = OSFileSystem{}
	}

	base, err := baseDir(fsys, opts.Dir)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &walker{
		fs:     fsys,
		base:   base,
		logger: logger.With(zap.String("mode", string(mode))),
		probe:  opts.Probe,
	}

	w.logger.Debug("resolving parent paths",
		zap.String("dir", base),
		zap.Strings("fragments", fragments))

	out := strategies[mode](w, fragments)

	w.logger.Debug("resolved parent paths",
		zap.Int("levels", w.levels),
		zap.Int("matches", len(Resolved(out))))

	return out, nil
}

// baseDir returns the absolute, cleaned starting directory.
func baseDir(fsys FileSystem, dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	cwd, err := fsys.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	if dir == "" {
		return filepath.Clean(cwd), nil
	}
	return filepath.Join(cwd, dir), nil
}

// Resolved returns the resolved entries of a result, dropping Unresolved slots.
func Resolved(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != Unresolved {
			out = append(out, p)
		}
	}
	return out
}
