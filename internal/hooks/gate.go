package hooks

import (
	"strings"

	"github.com/michael-freling/claude-code-guards/internal/logger"
)

// InvalidJSONReason is the deny reason for input that is not valid JSON.
const InvalidJSONReason = "Invalid JSON input provided"

// Verdict is the decision for one invocation together with the per-engine
// results it was built from.
type Verdict struct {
	Decision *Decision
	Results  []*EngineResult
}

// Violations returns every engine result that found violations.
func (v *Verdict) Violations() []*EngineResult {
	var denied []*EngineResult
	for _, r := range v.Results {
		if !r.Allowed() {
			denied = append(denied, r)
		}
	}
	return denied
}

// Gate runs engines over a tool invocation and combines their results into
// a single decision.
type Gate struct {
	engines []Engine
	log     logger.Logger
}

// NewGate creates a gate over engines, evaluated in the given order.
func NewGate(log logger.Logger, engines ...Engine) *Gate {
	if log == nil {
		log = logger.NewNop()
	}

	return &Gate{
		engines: engines,
		log:     log,
	}
}

// NewPolicyGate creates a gate with one rule engine per policy.
func NewPolicyGate(log logger.Logger, policies ...*Policy) *Gate {
	engines := make([]Engine, 0, len(policies))
	for _, p := range policies {
		engines = append(engines, NewRuleEngine(p, log))
	}
	return NewGate(log, engines...)
}

// Evaluate decides on a parsed tool invocation.
func (g *Gate) Evaluate(invocation *ToolInvocation) *Verdict {
	content := ExtractContent(invocation)
	g.log.Debug("extracted content",
		"tool", content.ToolName,
		"supported", content.Supported,
		"file_path", content.FilePath,
		"bytes", len(content.Text),
	)

	return g.EvaluateContent(content)
}

// EvaluateContent runs every engine and aggregates the results:
// any violation denies, with the reasons of all denying engines;
// otherwise the clean reasons of the engines that scanned are combined,
// falling back to the first engine's reason when nothing was scanned.
func (g *Gate) EvaluateContent(content *Content) *Verdict {
	verdict := &Verdict{
		Results: make([]*EngineResult, 0, len(g.engines)),
	}

	for _, engine := range g.engines {
		result := engine.Evaluate(content)
		g.log.Debug("engine evaluated",
			"engine", engine.Name(),
			"scanned", result.Scanned,
			"violations", len(result.Violations),
		)
		verdict.Results = append(verdict.Results, result)
	}

	verdict.Decision = decide(verdict.Results)
	g.log.Info("decision",
		"permission", verdict.Decision.PermissionDecision,
		"reason", verdict.Decision.PermissionDecisionReason,
	)

	return verdict
}

func decide(results []*EngineResult) *Decision {
	var denyReasons, cleanReasons []string
	for _, r := range results {
		switch {
		case !r.Allowed():
			denyReasons = append(denyReasons, r.Reason)
		case r.Scanned:
			cleanReasons = append(cleanReasons, r.Reason)
		}
	}

	if len(denyReasons) > 0 {
		return NewDenyDecision(strings.Join(denyReasons, "\n\n"))
	}

	if len(cleanReasons) > 0 {
		return NewAllowDecision(strings.Join(cleanReasons, "; "))
	}

	if len(results) > 0 {
		return NewAllowDecision(results[0].Reason)
	}

	return NewAllowDecision("No content to check")
}

// InvalidInput is the verdict for input that could not be parsed.
func InvalidInput() *Verdict {
	return &Verdict{Decision: NewDenyDecision(InvalidJSONReason)}
}
