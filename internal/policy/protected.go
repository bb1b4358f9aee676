package policy

import (
	"os"
	"path/filepath"
	"strings"
)

// SelfConfigDir returns the directory holding the gate's own configuration.
func SelfConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "blockgate")
}

// IsSelfProtected reports whether the target falls inside the gate's own
// configuration directory. Guarding it keeps an agent from editing the gate
// out of its own way; markers are not consulted for this check.
func IsSelfProtected(target string) bool {
	if target == "" {
		return false
	}

	dir := SelfConfigDir()
	if dir == "" {
		return false
	}

	abs := ResolvePath(target)
	return abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator))
}
