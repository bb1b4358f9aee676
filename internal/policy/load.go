package policy

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Policy is the parsed content of a marker file. The zero value blocks
// everything: a marker's presence is the protection, its content only carves
// out exceptions.
type Policy struct {
	Allowed []string `yaml:"allowed"`
	Blocked []string `yaml:"blocked"`
}

// LoadPolicy reads and parses a marker file. Marker content may be YAML or
// JSON; both forms decode through yaml.v3. Empty, unreadable or malformed
// content yields the zero Policy rather than an error: a marker that cannot
// be parsed still signals operator intent to protect, so parsing fails
// closed.
func LoadPolicy(markerPath string) Policy {
	data, err := os.ReadFile(markerPath)
	if err != nil {
		return Policy{}
	}

	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}
	}
	return p
}
