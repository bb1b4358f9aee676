package policy

import (
	"os"
	"path/filepath"
)

// Protection reports whether a directory in the target's ancestry carries a
// marker file. Existence is tracked separately from the marker's content so
// that a malformed marker still protects its directory.
type Protection struct {
	Found      bool
	Dir        string
	MarkerPath string
}

// Scan walks from the target's own parent directory toward the filesystem
// root and returns the nearest level carrying a marker file. The walk is
// anchored at the target, never at the process working directory; a relative
// target is made absolute first and that is the only use of the working
// directory. Levels that cannot be read are treated as unprotected and the
// walk continues.
func Scan(target string, markers []string) Protection {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	dir := filepath.Dir(ResolvePath(target))
	for {
		if markerPath, ok := markerIn(dir, markers); ok {
			return Protection{Found: true, Dir: dir, MarkerPath: markerPath}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Protection{}
		}
		dir = parent
	}
}

// markerIn checks a single directory level for any of the marker filenames.
func markerIn(dir string, markers []string) (string, bool) {
	for _, name := range markers {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// ResolvePath converts a path to absolute, cleaned form.
func ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	if cwd, err := os.Getwd(); err == nil {
		return filepath.Clean(filepath.Join(cwd, p))
	}
	return filepath.Clean(p)
}
