package parentpaths

import (
	"path/filepath"

	"go.uber.org/zap"
)

// walker carries the per-call state shared by the mode strategies.
type walker struct {
	fs     FileSystem
	base   string
	logger *zap.Logger
	probe  func(Probe)
	levels int
}

// walk calls visit for the base directory and then each parent in turn,
// stopping when visit returns true or when the parent of a directory is
// the directory itself.
func (w *walker) walk(visit func(level int, dir string) bool) {
	var previous string
	dir := w.base
	for level := 0; previous != dir; level++ {
		w.levels = level + 1
		w.logger.Debug("visiting level", zap.Int("level", level), zap.String("dir", dir))
		if visit(level, dir) {
			return
		}
		previous = dir
		dir = filepath.Dir(dir)
	}
}

// lookup joins fragment to dir and checks whether the result exists.
func (w *walker) lookup(level int, dir, fragment string) (string, bool) {
	path := join(dir, fragment)
	found := w.fs.Exists(path)
	if w.probe != nil {
		w.probe(Probe{
			Level:    level,
			Dir:      dir,
			Fragment: fragment,
			Path:     path,
			Exists:   found,
		})
	}
	if found {
		w.logger.Debug("found", zap.Int("level", level), zap.String("path", path))
	}
	return path, found
}

func join(dir, fragment string) string {
	if filepath.IsAbs(fragment) {
		return filepath.Clean(fragment)
	}
	return filepath.Join(dir, fragment)
}

// first returns the first fragment that exists, probing fragments in input
// order at each level.
func first(w *walker, fragments []string) []string {
	out := []string{}
	w.walk(func(level int, dir string) bool {
		for _, f := range fragments {
			if path, ok := w.lookup(level, dir, f); ok {
				out = append(out, path)
				return true
			}
		}
		return false
	})
	return out
}

// some returns every fragment that exists at the nearest level where at
// least one does.
func some(w *walker, fragments []string) []string {
	out := []string{}
	w.walk(func(level int, dir string) bool {
		for _, f := range fragments {
			if path, ok := w.lookup(level, dir, f); ok {
				out = append(out, path)
			}
		}
		return len(out) > 0
	})
	return out
}

// all returns every fragment from the nearest level where all of them exist.
// Partial matches are discarded before moving to the parent.
func all(w *walker, fragments []string) []string {
	var out []string
	done := false
	w.walk(func(level int, dir string) bool {
		out = make([]string, 0, len(fragments))
		for _, f := range fragments {
			if path, ok := w.lookup(level, dir, f); ok {
				out = append(out, path)
			}
		}
		done = len(out) == len(fragments)
		return done
	})
	if !done {
		return []string{}
	}
	return out
}

// each resolves every fragment independently at the nearest level where it
// exists. A filled slot is never probed again.
func each(w *walker, fragments []string) []string {
	out := make([]string, len(fragments))
	count := 0
	w.walk(func(level int, dir string) bool {
		for i, f := range fragments {
			if out[i] != Unresolved {
				continue
			}
			if path, ok := w.lookup(level, dir, f); ok {
				out[i] = path
				count++
			}
		}
		return count == len(fragments)
	})
	return out
}
