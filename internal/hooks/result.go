package hooks

// Permission decisions understood by Claude Code.
const (
	PermissionAllow = "allow"
	PermissionDeny  = "deny"
)

// Violation is a rule match within one content blob.
type Violation struct {
	RuleID   string
	Message  string
	Guidance string
}

// EngineResult represents the outcome of one engine over one content blob.
type EngineResult struct {
	// Policy is the name of the policy that produced this result.
	Policy string

	// Domain prefixes diagnostic lines, e.g. "Rule bypass".
	Domain string

	// Scanned is false when the content was empty, unsupported or filtered out.
	Scanned bool

	// Violations holds at most one entry per rule, in rule order.
	Violations []Violation

	// Reason explains the result and is used in the final decision.
	Reason string
}

// Allowed reports whether the engine found no violations.
func (r *EngineResult) Allowed() bool {
	return len(r.Violations) == 0
}

// Decision is the verdict returned to Claude Code.
type Decision struct {
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason"`
}

// NewAllowDecision creates a decision that allows the tool usage.
func NewAllowDecision(reason string) *Decision {
	return &Decision{
		PermissionDecision:       PermissionAllow,
		PermissionDecisionReason: reason,
	}
}

// NewDenyDecision creates a decision that blocks the tool usage.
func NewDenyDecision(reason string) *Decision {
	return &Decision{
		PermissionDecision:       PermissionDeny,
		PermissionDecisionReason: reason,
	}
}

// Allowed reports whether the decision allows the tool usage.
func (d *Decision) Allowed() bool {
	return d.PermissionDecision == PermissionAllow
}
