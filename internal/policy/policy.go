// Package policy implements marker discovery and protection decisions.
package policy

// DefaultMarkers are the filenames that activate protection in a directory.
// Both are equivalent in effect; the .local variant is intended for
// machine-local policy that stays out of version control.
var DefaultMarkers = []string{".block", ".block.local"}

// Verdict is the outcome of checking a target against directory protection.
type Verdict struct {
	Allowed bool
	Reason  string
	Dir     string // protected directory that produced the decision, if any
}

// Allow returns an allowing verdict with no protected level attached.
func Allow() Verdict {
	return Verdict{Allowed: true}
}
