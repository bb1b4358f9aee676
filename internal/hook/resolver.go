package hook

import (
	"path/filepath"
	"strings"

	"github.com/adrianpk/blockgate/internal/parser"
)

// fileTools modify the file named by their file_path field.
var fileTools = map[string]bool{
	"Write":        true,
	"Edit":         true,
	"NotebookEdit": true,
}

// mutatingCommands are shell commands whose path argument names a file the
// command creates, overwrites or removes. The value selects which argument
// carries the target: copy/move style commands mutate their destination,
// the rest their first path argument.
var mutatingCommands = map[string]string{
	"touch":    "first",
	"tee":      "first",
	"truncate": "first",
	"mkdir":    "first",
	"rm":       "first",
	"cp":       "last",
	"mv":       "last",
	"install":  "last",
	"ln":       "last",
}

// ResolveTarget extracts the candidate target path from a tool invocation.
// Resolution is best effort and favors missing a target over flagging an
// unrelated one; when no candidate is found the caller allows the
// operation.
func ResolveTarget(toolName string, toolInput map[string]any) (string, bool) {
	switch {
	case fileTools[toolName]:
		if fp, ok := toolInput["file_path"].(string); ok && fp != "" {
			return fp, true
		}
	case toolName == "Bash":
		if cmdStr, ok := toolInput["command"].(string); ok {
			return resolveCommandTarget(cmdStr)
		}
	}
	return "", false
}

// resolveCommandTarget scans a shell command for the file it writes.
// Output redirections are the strongest signal and win over command
// arguments.
func resolveCommandTarget(cmdStr string) (string, bool) {
	cmd := parser.Parse(cmdStr)

	for _, seg := range cmd.Segments {
		for _, r := range seg.Redirections {
			if r.Target != "" && !strings.HasPrefix(r.Target, "/dev/") {
				return r.Target, true
			}
		}
	}

	for _, seg := range cmd.Segments {
		if target, ok := segmentTarget(seg); ok {
			return target, true
		}
	}

	return "", false
}

func segmentTarget(seg parser.Segment) (string, bool) {
	program := filepath.Base(seg.Program)

	if program == "dd" {
		for _, arg := range seg.Args {
			if out, ok := strings.CutPrefix(arg, "of="); ok && out != "" {
				return out, true
			}
		}
		return "", false
	}

	pick, ok := mutatingCommands[program]
	if !ok || len(seg.Args) == 0 {
		return "", false
	}

	if pick == "last" {
		// Destination semantics need a source and a destination.
		if len(seg.Args) < 2 {
			return "", false
		}
		return seg.Args[len(seg.Args)-1], true
	}

	return seg.Args[0], true
}
