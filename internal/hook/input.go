// Package hook turns tool-invocation payloads into protection verdicts.
package hook

import (
	"encoding/json"
	"io"
)

// Input is the PreToolUse payload the host delivers on stdin.
type Input struct {
	HookType  string         `json:"hook_type"`
	ToolName  string         `json:"tool_name"`
	ToolInput map[string]any `json:"tool_input"`
}

// Decode reads a single hook payload. Callers treat a decode error as
// "cannot determine intent" and allow the operation through.
func Decode(r io.Reader) (Input, error) {
	var input Input
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return Input{}, err
	}
	return input, nil
}
