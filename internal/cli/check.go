package cli

import (
	"fmt"

	"github.com/adrianpk/blockgate/internal/config"
	"github.com/adrianpk/blockgate/internal/hook"
)

// RunCheck evaluates a path directly, outside the hook protocol, and prints
// the verdict. It runs the same pipeline as the hook so the answer matches
// what the host would see for a Write against the path.
func RunCheck(cfg *config.Config, target string) error {
	if target == "" {
		return fmt.Errorf("target path cannot be empty")
	}

	verdict := hook.NewEvaluator(cfg).Evaluate(hook.Input{
		ToolName:  "Write",
		ToolInput: map[string]any{"file_path": target},
	})

	if verdict.Allowed {
		fmt.Printf("allow: %s\n", target)
		return nil
	}

	fmt.Printf("block: %s\n", target)
	fmt.Printf("  %s\n", verdict.Reason)
	return nil
}
