package policy

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Decide produces the verdict for a target given the nearest protected level
// and its policy. Only that single level is consulted: a nearer marker is
// never weakened or strengthened by policies further up the tree.
//
// An allowed list is a strict allow-list ("only these may pass") and takes
// precedence over blocked patterns at the same level. Patterns match the
// target's base filename only, case-sensitively.
func Decide(target string, prot Protection, pol Policy) Verdict {
	if !prot.Found {
		return Allow()
	}

	name := filepath.Base(ResolvePath(target))

	if len(pol.Allowed) > 0 {
		if matchAny(name, pol.Allowed) {
			return Verdict{Allowed: true, Dir: prot.Dir}
		}
		return Verdict{
			Dir:    prot.Dir,
			Reason: fmt.Sprintf("blocked: %s does not match any allowed pattern in %s", name, prot.MarkerPath),
		}
	}

	if len(pol.Blocked) > 0 {
		if matchAny(name, pol.Blocked) {
			return Verdict{
				Dir:    prot.Dir,
				Reason: fmt.Sprintf("blocked: %s matches a blocked pattern in %s", name, prot.MarkerPath),
			}
		}
		return Verdict{Allowed: true, Dir: prot.Dir}
	}

	return Verdict{
		Dir:    prot.Dir,
		Reason: fmt.Sprintf("blocked: %s is protected by %s", prot.Dir, filepath.Base(prot.MarkerPath)),
	}
}

// matchAny matches a filename against shell-style glob patterns (*, ?,
// bracket classes). Patterns that do not compile are skipped.
func matchAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(name) {
			return true
		}
	}
	return false
}
