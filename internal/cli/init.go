// Package cli provides CLI command implementations.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/adrianpk/blockgate/internal/policy"
)

// RunInit creates a marker file in dir. With local set, the machine-local
// variant is written instead of the shared one. An existing marker is never
// overwritten.
func RunInit(dir string, local bool, allowed, blocked []string) error {
	name := ".block"
	if local {
		name = ".block.local"
	}
	path := filepath.Join(dir, name)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("marker already exists: %s", path)
	}

	content := []byte("{}\n")
	if len(allowed) > 0 || len(blocked) > 0 {
		data, err := yaml.Marshal(policy.Policy{Allowed: allowed, Blocked: blocked})
		if err != nil {
			return fmt.Errorf("cannot encode marker: %w", err)
		}
		content = data
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("cannot write marker: %w", err)
	}

	fmt.Printf("Created marker: %s\n", path)
	return nil
}
