package hook

import (
	"encoding/json"
	"io"

	"github.com/adrianpk/blockgate/internal/policy"
)

// Output is the decision payload consumed by the host.
type Output struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

// Emit renders the verdict on w. The process exit code stays zero either
// way; the host reads the decision from the payload. That separation lets
// the host tell a gate that could not run (non-zero exit) apart from a gate
// that ran and denied the request (zero exit, block payload).
func Emit(w io.Writer, v policy.Verdict) error {
	out := Output{Decision: "allow"}
	if !v.Allowed {
		out.Decision = "block"
		out.Reason = v.Reason
		if out.Reason == "" {
			out.Reason = "blocked by directory protection"
		}
	}
	return json.NewEncoder(w).Encode(out)
}
