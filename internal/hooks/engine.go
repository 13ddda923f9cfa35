package hooks

import (
	"github.com/michael-freling/claude-code-guards/internal/logger"
)

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=hooks

// Engine evaluates one policy domain against extracted content.
type Engine interface {
	// Name returns the name of the policy this engine enforces.
	Name() string

	// Evaluate scans content and reports the violations found.
	Evaluate(content *Content) *EngineResult
}

// ruleEngine applies the rules of a single policy.
type ruleEngine struct {
	policy *Policy
	log    logger.Logger
}

// NewRuleEngine creates a new rule engine for policy.
func NewRuleEngine(policy *Policy, log logger.Logger) *ruleEngine {
	if log == nil {
		log = logger.NewNop()
	}

	return &ruleEngine{
		policy: policy,
		log:    log.With("policy", policy.Name),
	}
}

// Name returns the policy name.
func (e *ruleEngine) Name() string {
	return e.policy.Name
}

// Evaluate runs every rule once over the content. A rule yields at most one
// violation however often its pattern occurs.
func (e *ruleEngine) Evaluate(content *Content) *EngineResult {
	result := &EngineResult{
		Policy: e.policy.Name,
		Domain: e.policy.Domain,
		Reason: e.policy.EmptyReason,
	}

	if content == nil || content.IsEmpty() {
		e.log.Debug("no content to check")
		return result
	}

	if e.policy.Filter != nil && !e.policy.Filter.Eligible(content) {
		e.log.Debug("file not eligible", "file_path", content.FilePath)
		return result
	}

	result.Scanned = true

	seen := make(map[string]bool, len(e.policy.Rules))
	for i := range e.policy.Rules {
		rule := &e.policy.Rules[i]
		if seen[rule.ID] {
			continue
		}

		violation, matched := rule.Evaluate(content.Text)
		if !matched {
			continue
		}

		seen[rule.ID] = true
		result.Violations = append(result.Violations, violation)
		e.log.Debug("rule matched", "rule", rule.ID)
	}

	if len(result.Violations) == 0 {
		result.Reason = e.policy.CleanReason
		return result
	}

	result.Reason = e.policy.DenyReason(result.Violations)
	return result
}
