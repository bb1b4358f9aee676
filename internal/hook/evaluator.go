package hook

import (
	"log/slog"

	"github.com/adrianpk/blockgate/internal/config"
	"github.com/adrianpk/blockgate/internal/policy"
)

// Evaluator applies directory protection to one tool invocation.
type Evaluator struct {
	cfg *config.Config
}

// NewEvaluator creates an evaluator for the given configuration.
func NewEvaluator(cfg *config.Config) *Evaluator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Evaluator{cfg: cfg}
}

// Evaluate produces exactly one verdict for the input. Invocations the gate
// cannot attribute to a target are allowed through: blocking is reserved for
// targets that provably fall under a marker.
func (e *Evaluator) Evaluate(input Input) policy.Verdict {
	target, ok := ResolveTarget(input.ToolName, input.ToolInput)
	if !ok {
		slog.Debug("no target resolved, allowing", "tool", input.ToolName)
		return policy.Allow()
	}

	if e.cfg.ProtectConfig && policy.IsSelfProtected(target) {
		return policy.Verdict{
			Reason: "blocked: blockgate configuration is protected",
		}
	}

	prot := policy.Scan(target, e.cfg.Markers)
	if !prot.Found {
		return policy.Allow()
	}

	pol := policy.LoadPolicy(prot.MarkerPath)
	verdict := policy.Decide(target, prot, pol)
	slog.Debug("evaluated target",
		"tool", input.ToolName,
		"target", target,
		"marker", prot.MarkerPath,
		"allowed", verdict.Allowed)
	return verdict
}
