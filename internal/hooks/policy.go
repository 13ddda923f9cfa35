package hooks

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownPolicy is returned when a policy name is not registered.
var ErrUnknownPolicy = errors.New("unknown policy")

// Policy groups the rules of one policy domain with the file filter that
// scopes them and the messages used in decisions.
type Policy struct {
	// Name identifies the policy on the command line.
	Name string

	// Domain prefixes deny reasons and diagnostic lines.
	Domain string

	// Filter decides which files the rules apply to.
	Filter FileFilter

	// Rules are evaluated in order.
	Rules []Rule

	// Guidance is appended to every deny reason.
	Guidance string

	// EmptyReason is used when there is nothing to scan.
	EmptyReason string

	// CleanReason is used when content was scanned and no rule matched.
	CleanReason string
}

// DenyReason builds the deny reason for violations: every distinct message,
// the policy guidance, and one line per rule-specific hint.
func (p *Policy) DenyReason(violations []Violation) string {
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}

	var sb strings.Builder
	sb.WriteString(p.Domain)
	sb.WriteString(" detected: ")
	sb.WriteString(strings.Join(messages, "; "))
	sb.WriteString(". ")
	sb.WriteString(p.Guidance)

	for _, v := range violations {
		if v.Guidance == "" {
			continue
		}
		sb.WriteString("\n- ")
		sb.WriteString(v.Message)
		sb.WriteString(": ")
		sb.WriteString(v.Guidance)
	}

	return sb.String()
}

// Policies returns the built-in policies in evaluation order.
func Policies() []*Policy {
	return []*Policy{ESLintBypassPolicy(), JestMockPolicy()}
}

// PolicyNames returns the names of the built-in policies.
func PolicyNames() []string {
	policies := Policies()
	names := make([]string, 0, len(policies))
	for _, p := range policies {
		names = append(names, p.Name)
	}
	return names
}

// LookupPolicies resolves names to built-in policies, keeping the given order
// and dropping duplicates. No names selects every policy.
func LookupPolicies(names ...string) ([]*Policy, error) {
	if len(names) == 0 {
		return Policies(), nil
	}

	byName := make(map[string]*Policy)
	for _, p := range Policies() {
		byName[p.Name] = p
	}

	seen := make(map[string]bool, len(names))
	policies := make([]*Policy, 0, len(names))
	for _, name := range names {
		policy, ok := byName[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownPolicy, "%q (available: %s)",
				name, strings.Join(PolicyNames(), ", "))
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		policies = append(policies, policy)
	}

	return policies, nil
}
