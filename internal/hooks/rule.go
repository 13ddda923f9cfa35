package hooks

import (
	"regexp"
	"strings"
)

// Matcher reports whether text contains a pattern.
type Matcher interface {
	Match(text string) bool
}

// Rule is a named pattern with the message reported when it matches.
type Rule struct {
	// ID is the unique identifier for this rule within its policy.
	ID string

	// Matcher detects the disallowed construct.
	Matcher Matcher

	// Message is the human-readable violation message.
	Message string

	// Guidance optionally explains how to fix the violation.
	Guidance string
}

// Evaluate returns a violation if the rule matches text.
func (r *Rule) Evaluate(text string) (Violation, bool) {
	if !r.Matcher.Match(text) {
		return Violation{}, false
	}

	return Violation{
		RuleID:   r.ID,
		Message:  r.Message,
		Guidance: r.Guidance,
	}, true
}

type regexpMatcher struct {
	re *regexp.Regexp
}

// MatchRegexp returns a Matcher for expr. It panics if expr does not compile.
func MatchRegexp(expr string) Matcher {
	return &regexpMatcher{re: regexp.MustCompile(expr)}
}

func (m *regexpMatcher) Match(text string) bool {
	return m.re.MatchString(text)
}

func (m *regexpMatcher) String() string {
	return m.re.String()
}

// namedImportMatcher matches ES named imports of specific bindings from a module,
// such as `import { fn, spyOn as spy } from "@jest/globals"`.
type namedImportMatcher struct {
	module string
	names  map[string]struct{}
	re     *regexp.Regexp
}

// MatchNamedImport returns a Matcher that fires when any of names is imported
// by name from module. Default and namespace imports do not match.
func MatchNamedImport(module string, names ...string) Matcher {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	quoted := regexp.QuoteMeta(module)
	re := regexp.MustCompile(
		`\bimport\s+(?:type\s+)?(?:[\w$]+\s*,\s*)?\{([^}]*)\}\s*from\s*['"]` + quoted + `['"]`,
	)

	return &namedImportMatcher{module: module, names: set, re: re}
}

func (m *namedImportMatcher) Match(text string) bool {
	for _, groups := range m.re.FindAllStringSubmatch(text, -1) {
		for _, specifier := range strings.Split(groups[1], ",") {
			if _, ok := m.names[importedName(specifier)]; ok {
				return true
			}
		}
	}
	return false
}

func (m *namedImportMatcher) String() string {
	return "named import from " + m.module
}

// importedName returns the exported binding of an import specifier,
// e.g. "fn" for "type fn as mockFn".
func importedName(specifier string) string {
	fields := strings.Fields(specifier)
	if len(fields) > 1 && fields[0] == "type" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
